package config

import "sort"

var Presets = map[string]*Config{
	"classic": {Speed: 1.0, FPS: 60, Palette: "rainbow", Waves: 5},
	"calm":    {Speed: 0.4, FPS: 30, Palette: "ocean", Waves: 3},
	"drift":   {Speed: 0.7, FPS: 60, Palette: "aurora", Waves: 6},
	"storm":   {Speed: 2.5, FPS: 120, Palette: "dracula", Waves: 12},
	"embers":  {Speed: 0.6, FPS: 45, Palette: "fire", Waves: 8, Glyph: "▪"},
	"matrix":  {Speed: 0.8, FPS: 45, Palette: "matrix", Waves: 16},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
