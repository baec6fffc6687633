package logging

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"DEBUG":   logrus.DebugLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"info":    logrus.InfoLevel,
		"trace":   logrus.TraceLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"":        logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, GetLevel(in), "level %q", in)
	}
}

func TestSetup_StdoutOnly(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup(LoggerSetupParams{LogLevel: "warn", LogFormatJSON: true})

	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
}

func TestSetup_File(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetOutput(os.Stdout)

	Setup(LoggerSetupParams{LogFileName: t.TempDir() + "/engine", LogLevel: "debug"})
	logrus.Debug("rotating file logger ready")

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
