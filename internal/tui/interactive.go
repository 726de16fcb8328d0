// Package tui provides an interactive terminal front end for texture
// generation: pick a preset, tweak parameters, generate, repeat.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/texgen/internal/config"
	"github.com/san-kum/texgen/internal/export"
	"github.com/san-kum/texgen/internal/texture"
)

const (
	statePresets = iota
	stateParams
	stateDone
)

type param struct {
	name string
	get  func(*config.Config) string
	set  func(*config.Config, string) error
}

var params = []param{
	{"width", func(c *config.Config) string { return strconv.Itoa(c.Width) },
		func(c *config.Config, s string) error { return setInt(&c.Width, s) }},
	{"height", func(c *config.Config) string { return strconv.Itoa(c.Height) },
		func(c *config.Config, s string) error { return setInt(&c.Height, s) }},
	{"seed", func(c *config.Config) string { return strconv.FormatInt(c.Seed, 10) },
		func(c *config.Config, s string) error {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return err
			}
			c.Seed = v
			return nil
		}},
	{"perlin scale", func(c *config.Config) string { return trimFloat(c.Perlin.Scale) },
		func(c *config.Config, s string) error { return setFloat(&c.Perlin.Scale, s) }},
	{"perlin octaves", func(c *config.Config) string { return strconv.Itoa(c.Perlin.Octaves) },
		func(c *config.Config, s string) error { return setInt(&c.Perlin.Octaves, s) }},
	{"voronoi points", func(c *config.Config) string { return strconv.Itoa(c.Voronoi.Points) },
		func(c *config.Config, s string) error { return setInt(&c.Voronoi.Points, s) }},
	{"voronoi metric", func(c *config.Config) string { return c.Voronoi.Metric },
		func(c *config.Config, s string) error { c.Voronoi.Metric = s; return nil }},
	{"blend mode", func(c *config.Config) string { return c.Blend.Mode },
		func(c *config.Config, s string) error { c.Blend.Mode = s; return nil }},
	{"blend weight", func(c *config.Config) string { return trimFloat(c.Blend.Weight) },
		func(c *config.Config, s string) error { return setFloat(&c.Blend.Weight, s) }},
	{"blur sigma", func(c *config.Config) string { return trimFloat(c.Blur.Sigma) },
		func(c *config.Config, s string) error { return setFloat(&c.Blur.Sigma, s) }},
	{"output", func(c *config.Config) string { return c.Output },
		func(c *config.Config, s string) error { c.Output = s; return nil }},
}

func setInt(dst *int, s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func setFloat(dst *float64, s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func trimFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

type genDoneMsg struct {
	path   string
	result *texture.Result
	err    error
}

type model struct {
	state       int
	cursor      int
	presets     []string
	cfg         *config.Config
	paramCursor int
	editing     bool
	editBuf     string
	busy        bool
	done        genDoneMsg
}

// New returns the interactive model starting at the preset menu.
func New() tea.Model {
	return model{
		state:   statePresets,
		presets: append(config.ListPresets(), "custom"),
		cfg:     config.DefaultConfig(),
	}
}

// Run starts the interactive session and blocks until it exits.
func Run() error {
	_, err := tea.NewProgram(New()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case genDoneMsg:
		m.busy = false
		m.done = msg
		m.state = stateDone
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	switch m.state {
	case statePresets:
		return m.presetsKey(msg)
	case stateParams:
		return m.paramsKey(msg)
	case stateDone:
		return m.doneKey(msg)
	}
	return m, nil
}

func (m model) presetsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter":
		name := m.presets[m.cursor]
		if name == "custom" {
			m.cfg = config.DefaultConfig()
		} else {
			m.cfg = config.GetPreset(name)
		}
		m.state = stateParams
		m.paramCursor = 0
	}
	return m, nil
}

func (m model) paramsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if err := params[m.paramCursor].set(m.cfg, strings.TrimSpace(m.editBuf)); err == nil {
				m.editing = false
				m.editBuf = ""
			}
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.editBuf += msg.String()
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = statePresets
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(params)-1 {
			m.paramCursor++
		}
	case "enter", "e":
		m.editing = true
		m.editBuf = params[m.paramCursor].get(m.cfg)
	case "g":
		m.busy = true
		cfg := *m.cfg
		return m, func() tea.Msg { return generate(&cfg) }
	}
	return m, nil
}

func (m model) doneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.state = stateParams
	}
	return m, nil
}

func generate(cfg *config.Config) genDoneMsg {
	result, err := texture.Run(cfg)
	if err != nil {
		return genDoneMsg{err: err}
	}
	path := cfg.Output
	if cfg.Unique {
		path, err = export.UniquePath(path)
		if err != nil {
			return genDoneMsg{err: err}
		}
	}
	if err := export.Write(path, result.Image, cfg.Format); err != nil {
		return genDoneMsg{err: err}
	}
	return genDoneMsg{path: path, result: result}
}

func (m model) View() string {
	switch m.state {
	case statePresets:
		return m.viewPresets()
	case stateParams:
		return m.viewParams()
	case stateDone:
		return m.viewDone()
	}
	return ""
}

func (m model) viewPresets() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("texgen") + "\n\n")
	b.WriteString(dim.Render("pick a starting point") + "\n\n")
	for i, name := range m.presets {
		line := "  " + name
		if i == m.cursor {
			line = cyan.Render("> " + name)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + dim.Render("enter select · q quit"))
	return panelStyle.Render(b.String())
}

func (m model) viewParams() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("parameters") + "\n\n")
	for i, p := range params {
		val := p.get(m.cfg)
		if m.editing && i == m.paramCursor {
			val = yellow.Render(m.editBuf + "▌")
		}
		line := fmt.Sprintf("  %-16s %s", p.name, white.Render(val))
		if i == m.paramCursor && !m.editing {
			line = cyan.Render(fmt.Sprintf("> %-16s", p.name)) + white.Render(val)
		}
		b.WriteString(line + "\n")
	}
	hint := "e edit · g generate · esc back · q quit"
	if m.busy {
		hint = magenta.Render("generating...")
	}
	b.WriteString("\n" + dim.Render(hint))
	return panelStyle.Render(b.String())
}

func (m model) viewDone() string {
	var b strings.Builder
	if m.done.err != nil {
		b.WriteString(red.Render("error: "+m.done.err.Error()) + "\n")
	} else {
		b.WriteString(green.Render("wrote "+m.done.path) + "\n\n")
		b.WriteString(fmt.Sprintf("seed   %s\n", white.Render(strconv.FormatInt(m.done.result.Seed, 10))))
		b.WriteString(fmt.Sprintf("sigma  %s\n", white.Render(trimFloat(m.done.result.Sigma))))
		var sw []string
		for _, hex := range m.done.result.Palette.Hex() {
			sw = append(sw, Swatch(hex))
		}
		b.WriteString("\n" + strings.Join(sw, " ") + "\n")
	}
	b.WriteString("\n" + dim.Render("enter tweak again · q quit"))
	return panelStyle.Render(b.String())
}
