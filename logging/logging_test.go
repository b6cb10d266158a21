package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetLevelAcceptsKnownLevels(t *testing.T) {
	tests := []string{"debug", "info", "warn", "error"}

	for _, level := range tests {
		if err := SetLevel(level); err != nil {
			t.Errorf("SetLevel(%q) returned error: %v", level, err)
		}
	}

	// restore a sane default for any other test in this package
	if err := SetLevel("debug"); err != nil {
		t.Fatalf("failed to restore debug level: %v", err)
	}
}

func TestSetLevelRejectsUnknownLevel(t *testing.T) {
	err := SetLevel("not-a-level")
	if err == nil {
		t.Fatal("expected an error for an invalid level, got nil")
	}
}

func TestForRenderReturnsInfoEnabledLogger(t *testing.T) {
	logger := ForRender()
	if logger == nil {
		t.Fatal("ForRender returned a nil logger")
	}

	core := logger.Core()
	if !core.Enabled(zapcore.InfoLevel) {
		t.Error("expected the render logger to have info level enabled by default")
	}
}

func TestPackageLevelHelpersDoNotPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("package-level logging helper panicked: %v", r)
		}
	}()

	Debug("debug message")
	Debugf("debug %s", "formatted")
	Info("info message")
	Infof("info %s", "formatted")
	Warn("warn message")
	Warnf("warn %s", "formatted")
	Error("error message")
	Errorf("error %s", "formatted")
}
