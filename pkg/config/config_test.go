package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispa.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// The file now exists and loads back to the same values.
	_, err = os.Stat(path)
	require.NoError(t, err)
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispa.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: mypack\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mypack", cfg.Namespace)
	assert.Equal(t, "./src", cfg.Source)
	assert.Equal(t, "./objects", cfg.Target)
	assert.Equal(t, "./tick.mcfunction", cfg.TickFunction)
}

func TestLoadFullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispa.yaml")
	body := "source: ./animations\ntarget: ./out\ntick_function: ./dispatch.mcfunction\nnamespace: pack\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Source:       "./animations",
		Target:       "./out",
		TickFunction: "./dispatch.mcfunction",
		Namespace:    "pack",
	}, cfg)
}

func TestLoadRejectsEmptyPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispa.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: ''\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "source and target must be set")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispa.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispa.yaml")
	cfg := Config{Source: "./a", Target: "./b", TickFunction: "./t.mcfunction", Namespace: "n"}

	require.NoError(t, Write(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
