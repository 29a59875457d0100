package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"circuitboard/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.yml")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "circuitboard dev\n", out)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circuitboard.yml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)

	_, err = execute(t, "--config", path, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigShowAppliesEnv(t *testing.T) {
	t.Setenv("CIRCUITBOARD_SEED", "9")
	t.Setenv("CIRCUITBOARD_WINDOW__WIDTH", "640")

	out, err := execute(t, "--config", missingConfig(t), "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "seed: 9")
	assert.Contains(t, out, "width: 640")
}

func TestInvalidConfigIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: -1\n"), 0644))

	_, err := execute(t, "--config", path, "stats", "--wraps", "1")
	assert.ErrorContains(t, err, "invalid config")
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("CI", "1")
	output := filepath.Join(t.TempDir(), "board.gif")

	out, err := execute(t, "--config", missingConfig(t), "render",
		"--width", "100", "--height", "200",
		"--frames", "2", "--warmup", "0",
		"--seed", "4", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 frames (1 paths, seed 4) to "+output)
	assert.FileExists(t, output)
}

func TestRenderRejectsBadFormat(t *testing.T) {
	_, err := execute(t, "--config", missingConfig(t), "render", "--format", "bmp")
	assert.ErrorContains(t, err, "invalid export.format")
	// Leave the shared flag in a valid state for later tests.
	require.NoError(t, renderCmd.Flags().Set("format", "gif"))
}

func TestStatsCommand(t *testing.T) {
	out, err := execute(t, "--config", missingConfig(t), "stats",
		"--width", "1000", "--height", "400", "--wraps", "10", "--seed", "1")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`paths\s+20\n`), out)
	assert.Regexp(t, regexp.MustCompile(`wraps\s+10\n`), out)
	assert.Contains(t, out, "regeneration rate")
}

func TestRunWithoutHost(t *testing.T) {
	SetHost(nil)
	_, err := execute(t, "--config", missingConfig(t), "run")
	assert.ErrorContains(t, err, "no display host available")
}

func TestRunUsesHost(t *testing.T) {
	t.Setenv("CIRCUITBOARD_TICK_RATE", "30")
	var got *config.Config
	SetHost(func(ctx context.Context, c *config.Config, log *zap.Logger) error {
		got = c
		require.NotNil(t, log)
		return nil
	})
	defer SetHost(nil)

	_, err := execute(t, "--config", missingConfig(t))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 30.0, got.TickRate)
}
