package cli

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"

	"view3d/render"
)

// config mirrors the optional view3d.toml file. Only the fields present in
// the file override the built-in snapshot defaults.
type config struct {
	Snapshot snapshotConfig `toml:"snapshot"`
}

type snapshotConfig struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	FOV        float64 `toml:"fov"`
	Distance   float64 `toml:"distance"`
	Background string  `toml:"background"`
	Stroke     string  `toml:"stroke"`
}

// loadOptions returns the snapshot options from path layered over the
// defaults. An empty path means defaults only; a missing file is an error.
func loadOptions(path string) (render.Options, error) {
	opts := render.DefaultOptions()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	var cfg config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return opts, fmt.Errorf("%s: %w", path, err)
	}

	s := cfg.Snapshot
	if s.Width > 0 {
		opts.Width = s.Width
	}
	if s.Height > 0 {
		opts.Height = s.Height
	}
	if s.FOV > 0 {
		opts.FOV = s.FOV
	}
	if s.Distance > 0 {
		opts.Distance = s.Distance
	}
	if s.Background != "" {
		c, err := parseHexColor(s.Background)
		if err != nil {
			return opts, fmt.Errorf("%s: background: %w", path, err)
		}
		opts.Background = c
	}
	if s.Stroke != "" {
		c, err := parseHexColor(s.Stroke)
		if err != nil {
			return opts, fmt.Errorf("%s: stroke: %w", path, err)
		}
		opts.Stroke = c
	}
	return opts, nil
}

// parseHexColor parses "#rrggbb" into an opaque color.
func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("bad color %q, want #rrggbb", s)
	}
	return color.RGBA{r, g, b, 255}, nil
}
