package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/texgen/internal/config"
	"github.com/san-kum/texgen/internal/export"
	"github.com/san-kum/texgen/internal/palette"
	"github.com/san-kum/texgen/internal/texture"
	"github.com/san-kum/texgen/internal/tui"
)

var (
	width       int
	height      int
	seed        int64
	scale       float64
	octaves     int
	persistence float64
	points      int
	metric      string
	blendMode   string
	weight      float64
	threshold   float64
	sigma       float64
	dynamicBlur bool
	supersample int
	output      string
	format      string
	unique      bool
	configFile  string
	preset      string
	count       int
	bins        int
	verbose     bool

	logger *log.Logger
)

func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = derive from time)")
	cmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "perlin lattice cells per span")
	cmd.Flags().IntVar(&octaves, "octaves", config.DefaultOctaves, "perlin fbm octaves")
	cmd.Flags().Float64Var(&persistence, "persistence", config.DefaultPersistence, "perlin octave falloff")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "voronoi seed points")
	cmd.Flags().StringVar(&metric, "metric", "euclidean", "voronoi distance metric")
	cmd.Flags().StringVar(&blendMode, "blend", "weighted", "blend mode (weighted|multiply|threshold)")
	cmd.Flags().Float64Var(&weight, "weight", -1, "blend weight in [0,1], -1 = random per run")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.5, "blend threshold")
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "gaussian blur sigma")
	cmd.Flags().BoolVar(&dynamicBlur, "dynamic-blur", false, "draw blur sigma per run from a size-relative range")
	cmd.Flags().IntVar(&supersample, "supersample", 1, "render at Nx and downscale (1, 2, or 4)")
	cmd.Flags().StringVar(&output, "out", "texture.png", "output path")
	cmd.Flags().StringVar(&format, "format", "png", "output format (png|bmp|tiff)")
	cmd.Flags().BoolVar(&unique, "unique", false, "never overwrite: append _N to the filename")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")
}

// buildConfig resolves the run config: preset, then config file, then
// any explicitly set flags on top.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("scale") {
		cfg.Perlin.Scale = scale
	}
	if flags.Changed("octaves") {
		cfg.Perlin.Octaves = octaves
	}
	if flags.Changed("persistence") {
		cfg.Perlin.Persistence = persistence
	}
	if flags.Changed("points") {
		cfg.Voronoi.Points = points
	}
	if flags.Changed("metric") {
		cfg.Voronoi.Metric = metric
	}
	if flags.Changed("blend") {
		cfg.Blend.Mode = blendMode
	}
	if flags.Changed("weight") {
		cfg.Blend.Weight = weight
	}
	if flags.Changed("threshold") {
		cfg.Blend.Threshold = threshold
	}
	if flags.Changed("sigma") {
		cfg.Blur.Sigma = sigma
	}
	if flags.Changed("dynamic-blur") {
		cfg.Blur.Dynamic = dynamicBlur
	}
	if flags.Changed("supersample") {
		cfg.Supersample = supersample
	}
	if flags.Changed("out") {
		cfg.Output = output
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("unique") {
		cfg.Unique = unique
	}

	return cfg, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "texgen",
		Short: "procedural texture generator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger()
		},
		Run: func(cmd *cobra.Command, args []string) {
			if err := tui.Run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate one texture",
		RunE:  runGenerate,
	}
	addGenerateFlags(generateCmd)

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "generate several textures with derived seeds",
		RunE:  runBatch,
	}
	addGenerateFlags(batchCmd)
	batchCmd.Flags().IntVar(&count, "count", 4, "number of textures")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-10s %dx%d  perlin %g/%d  voronoi %d %s  blend %s\n",
					name, p.Width, p.Height, p.Perlin.Scale, p.Perlin.Octaves,
					p.Voronoi.Points, p.Voronoi.Metric, p.Blend.Mode)
			}
		},
	}

	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "preview a randomized palette",
		RunE:  runPalette,
	}
	paletteCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = derive from time)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "plot the blended field's value histogram",
		RunE:  runStats,
	}
	addGenerateFlags(statsCmd)
	statsCmd.Flags().IntVar(&bins, "bins", 32, "histogram bins")

	interactiveCmd := &cobra.Command{
		Use:   "interactive",
		Short: "interactive parameter picker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(generateCmd, batchCmd, presetsCmd, paletteCmd, statsCmd, interactiveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := texture.Run(cfg)
	if err != nil {
		return err
	}

	path := cfg.Output
	if cfg.Unique {
		path, err = export.UniquePath(path)
		if err != nil {
			return err
		}
	}
	if err := export.Write(path, result.Image, cfg.Format); err != nil {
		return err
	}

	logger.Info("texture written",
		"path", path,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"seed", result.Seed,
		"sigma", fmt.Sprintf("%.2f", result.Sigma),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	logger.Debug("palette", "anchors", result.Palette.Hex())
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	if count < 1 {
		return fmt.Errorf("count must be >= 1")
	}
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	base := cfg.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	for i := 0; i < count; i++ {
		run := *cfg
		run.Seed = base + int64(i)

		result, err := texture.Run(&run)
		if err != nil {
			return err
		}
		path, err := export.UniquePath(cfg.Output)
		if err != nil {
			return err
		}
		if err := export.Write(path, result.Image, cfg.Format); err != nil {
			return err
		}
		logger.Info("texture written", "path", path, "seed", result.Seed)
	}
	return nil
}

func runPalette(cmd *cobra.Command, args []string) error {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	pal := palette.Random(rand.New(rand.NewSource(s)))

	fmt.Printf("seed: %d\n\n", s)
	for _, hex := range pal.Hex() {
		block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("        ")
		fmt.Printf("%s  %s\n", block, hex)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	f, err := texture.BlendedField(cfg)
	if err != nil {
		return err
	}

	min, max := f.MinMax()
	fmt.Printf("samples: %d\n", f.Len())
	fmt.Printf("min: %.4f  max: %.4f  mean: %.4f\n\n", min, max, f.Mean())

	graph := asciigraph.Plot(f.Histogram(bins),
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption("blended field value distribution"),
	)
	fmt.Println(graph)
	return nil
}
