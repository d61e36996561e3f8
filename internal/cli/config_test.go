package cli

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"view3d/render"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "view3d.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := loadOptions("")
	require.NoError(t, err)
	assert.Equal(t, render.DefaultOptions(), opts)
}

func TestLoadOptionsOverrides(t *testing.T) {
	path := writeConfig(t, `
[snapshot]
width = 400
height = 300
fov = 150
distance = 10
background = "#000000"
stroke = "#ff0080"
`)
	opts, err := loadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 400, opts.Width)
	assert.Equal(t, 300, opts.Height)
	assert.Equal(t, 150.0, opts.FOV)
	assert.Equal(t, 10.0, opts.Distance)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, opts.Background)
	assert.Equal(t, color.RGBA{255, 0, 128, 255}, opts.Stroke)
}

func TestLoadOptionsPartial(t *testing.T) {
	path := writeConfig(t, `
[snapshot]
width = 1024
`)
	opts, err := loadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, opts.Width)

	defaults := render.DefaultOptions()
	assert.Equal(t, defaults.Height, opts.Height)
	assert.Equal(t, defaults.FOV, opts.FOV)
	assert.Equal(t, defaults.Stroke, opts.Stroke)
}

func TestLoadOptionsErrors(t *testing.T) {
	_, err := loadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = loadOptions(writeConfig(t, "[snapshot\n"))
	assert.Error(t, err)

	_, err = loadOptions(writeConfig(t, "[snapshot]\nstroke = \"yellow\"\n"))
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#ffff00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 0, 255}, c)

	for _, in := range []string{"", "#fff", "ffff00", "#gggggg", "#ffff0000"} {
		_, err := parseHexColor(in)
		assert.Error(t, err, "input %q", in)
	}
}
