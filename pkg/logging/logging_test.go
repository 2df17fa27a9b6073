package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonymity12/habitplanet/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		Desc  string
		In    string
		Want  slog.Level
		Error bool
	}{
		{Desc: "empty is info", In: "", Want: slog.LevelInfo},
		{Desc: "debug", In: "debug", Want: slog.LevelDebug},
		{Desc: "upper case", In: "WARN", Want: slog.LevelWarn},
		{Desc: "unknown", In: "loud", Error: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, err := logging.ParseLevel(tc.In)
			if tc.Error {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewHandler(&buf, "json", slog.LevelInfo))
	logger.Debug("hidden")
	logger.Info("check-in committed", slog.Int("coins", 15))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"coins":15`)

	buf.Reset()
	logger = slog.New(logging.NewHandler(&buf, "pretty", slog.LevelInfo))
	logger.Info("card drawn")
	assert.Contains(t, buf.String(), "card drawn")
}

func TestContextLogger(t *testing.T) {
	assert.Equal(t, slog.Default(), logging.FromContext(context.Background()))
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := logging.ContextWithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
}

func TestSetupWithFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	path := filepath.Join(t.TempDir(), "habitplanet.log")
	logger, closer, err := logging.Setup(logging.Options{Level: "info", Format: "text", File: path})
	require.NoError(t, err)
	logger.Info("hello")
	assert.NoError(t, closer.Close())
	assert.FileExists(t, path)
}
