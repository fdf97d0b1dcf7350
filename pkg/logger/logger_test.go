package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(log.New(&buf, "", 0))
	defer SetOutput(log.New(&buf, "", 0))

	Init("warn")
	require.Equal(t, "warn", LevelString())

	Infof("hidden %d", 1)
	require.Empty(t, buf.String())

	Warnf("visible %d", 2)
	require.Contains(t, buf.String(), "[WARN] visible 2")

	Errorf("also visible")
	require.Contains(t, buf.String(), "[ERROR] also visible")
}

func TestInitFallback(t *testing.T) {
	Init("nonsense")
	require.Equal(t, "info", LevelString())

	Init("DEBUG")
	require.Equal(t, "debug", LevelString())

	Init("info")
}
