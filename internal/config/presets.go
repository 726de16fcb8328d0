package config

import "sort"

// Presets are named starting points for common texture styles. Each is a
// complete config; flags may still override individual values.
var Presets = map[string]*Config{
	"clouds": {
		Width: 512, Height: 512, Supersample: 1, Output: "clouds.png", Format: "png",
		Perlin:  PerlinConfig{Scale: 6, Octaves: 5, Persistence: 0.55},
		Voronoi: VoronoiConfig{Points: 8, Metric: "euclidean"},
		Blend:   BlendConfig{Mode: "weighted", Weight: 0.85, Threshold: 0.5},
		Blur:    BlurConfig{Sigma: 3.0, MinFrac: DefaultBlurMin, MaxFrac: DefaultBlurMax},
	},
	"cells": {
		Width: 512, Height: 512, Supersample: 1, Output: "cells.png", Format: "png",
		Perlin:  PerlinConfig{Scale: 4, Octaves: 2, Persistence: 0.5},
		Voronoi: VoronoiConfig{Points: 40, Metric: "euclidean"},
		Blend:   BlendConfig{Mode: "weighted", Weight: 0.15, Threshold: 0.5},
		Blur:    BlurConfig{Sigma: 1.0, MinFrac: DefaultBlurMin, MaxFrac: DefaultBlurMax},
	},
	"marble": {
		Width: 512, Height: 512, Supersample: 2, Output: "marble.png", Format: "png",
		Perlin:  PerlinConfig{Scale: 10, Octaves: 6, Persistence: 0.6},
		Voronoi: VoronoiConfig{Points: 12, Metric: "euclidean"},
		Blend:   BlendConfig{Mode: "multiply", Weight: -1, Threshold: 0.5},
		Blur:    BlurConfig{Sigma: 1.5, MinFrac: DefaultBlurMin, MaxFrac: DefaultBlurMax},
	},
	"shards": {
		Width: 512, Height: 512, Supersample: 1, Output: "shards.png", Format: "png",
		Perlin:  PerlinConfig{Scale: 5, Octaves: 3, Persistence: 0.5},
		Voronoi: VoronoiConfig{Points: 60, Metric: "manhattan"},
		Blend:   BlendConfig{Mode: "threshold", Weight: -1, Threshold: 0.45},
		Blur:    BlurConfig{Sigma: 0.5, MinFrac: DefaultBlurMin, MaxFrac: DefaultBlurMax},
	},
	"dreamy": {
		Width: 512, Height: 512, Supersample: 1, Output: "dreamy.png", Format: "png",
		Perlin:  PerlinConfig{Scale: 7, Octaves: 4, Persistence: 0.5},
		Voronoi: VoronoiConfig{Points: 16, Metric: "euclidean"},
		Blend:   BlendConfig{Mode: "weighted", Weight: -1, Threshold: 0.5},
		Blur:    BlurConfig{Dynamic: true, MinFrac: DefaultBlurMin, MaxFrac: DefaultBlurMax},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown. The
// copy keeps callers from mutating the shared table.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
