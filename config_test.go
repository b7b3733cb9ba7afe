package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), configFileName))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("valid", func(t *testing.T) {
		cfg, err := LoadConfig(writeTestFile(t, configFileName, lines(
			`show_stack_level = true`,
			`conversion_constant = 2.54`,
			`monochrome = true`,
		)))
		require.NoError(t, err)
		assert.Equal(t, Config{
			ShowStackLevel:     true,
			ConversionConstant: 2.54,
			Monochrome:         true,
			ShowWarnings:       true,
		}, cfg)
	})

	t.Run("malformed", func(t *testing.T) {
		cfg, err := LoadConfig(writeTestFile(t, configFileName, lines(
			`show_stack_level = true`,
			`conversion_constant = "lots"`,
		)))
		assert.Error(t, err)
		assert.Equal(t, DefaultConfig(), cfg, "expected defaults")
	})

	t.Run("unknown keys", func(t *testing.T) {
		cfg, err := LoadConfig(writeTestFile(t, configFileName, lines(
			`monochrome = true`,
			`colour = "blue"`,
		)))
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "colour")
		}
		assert.True(t, cfg.Monochrome, "expected known keys to still apply")
	})
}

func TestConfig_Encode(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, DefaultConfig().Encode(&buf))
	out := buf.String()
	for _, line := range []string{
		"show_stack_level = false",
		"conversion_constant = 1.0",
		"monochrome = false",
		"show_warnings = true",
		"persist_stack = false",
	} {
		assert.Contains(t, out, line)
	}

	path := writeTestFile(t, configFileName, out)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "encoded config must load back")
}

func TestSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), snapshotFileName)

	stack, err := loadSnapshot(path)
	require.NoError(t, err)
	assert.Nil(t, stack, "missing snapshot is empty")

	require.NoError(t, saveSnapshot(path, []string{"1", "two words", "3"}))
	stack, err = loadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "two words", "3"}, stack)

	require.NoError(t, saveSnapshot(path, nil))
	stack, err = loadSnapshot(path)
	require.NoError(t, err)
	assert.Empty(t, stack)

	_, err = loadSnapshot(writeTestFile(t, snapshotFileName, "stack = 5\n"))
	assert.Error(t, err)
}
