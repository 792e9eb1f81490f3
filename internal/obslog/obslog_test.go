package obslog_test

import (
	"testing"

	"github.com/katalvlaran/collapse/internal/obslog"
	"github.com/stretchr/testify/assert"
)

func TestNew_NoneLevelProducesUsableLogger(t *testing.T) {
	logger := obslog.New(obslog.LevelNone, nil)
	assert.NotPanics(t, func() { logger.Info("should be discarded") })
}

func TestNew_DebugLevelProducesUsableLogger(t *testing.T) {
	logger := obslog.New(obslog.LevelDebug, nil)
	assert.NotPanics(t, func() { logger.Debug("visible") })
}

func TestNew_WithFileSinkProducesUsableLogger(t *testing.T) {
	dir := t.TempDir()
	logger := obslog.New(obslog.LevelInfo, &obslog.FileSink{Path: dir + "/engine.log"})
	assert.NotPanics(t, func() { logger.Info("written to both sinks") })
}
