package logger

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (suite *LoggerTestSuite) TestNewLogger() {
	logger, err := NewLogger()
	suite.NoError(err)
	suite.NotNil(logger)
	suite.NotNil(logger.Logger)
	suite.True(logger.Core().Enabled(zapcore.InfoLevel))
	suite.False(logger.Core().Enabled(zapcore.DebugLevel))
}

func (suite *LoggerTestSuite) TestNewLoggerWithOptions() {
	tests := []struct {
		name    string
		level   string
		format  Format
		wantErr bool
	}{
		{"debug json", "debug", FormatJSON, false},
		{"warn console", "warn", FormatConsole, false},
		{"default format", "error", "", false},
		{"bad level", "loud", FormatJSON, true},
		{"bad format", "info", Format("xml"), true},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			logger, err := NewLoggerWithOptions(tc.level, tc.format)
			if tc.wantErr {
				suite.Error(err)
				suite.Nil(logger)

				return
			}

			suite.NoError(err)
			suite.NotNil(logger)
		})
	}
}

func (suite *LoggerTestSuite) TestLevelIsApplied() {
	logger, err := NewLoggerWithOptions("debug", FormatJSON)
	suite.Require().NoError(err)
	suite.True(logger.Core().Enabled(zapcore.DebugLevel))
}

func (suite *LoggerTestSuite) TestLoggerSyncNilLogger() {
	logger := &Logger{Logger: nil}
	suite.NoError(logger.Sync())
}

func (suite *LoggerTestSuite) TestNopLogger() {
	logger := NewNopLogger()
	suite.NotNil(logger.Logger)

	// These should not panic
	logger.Info("test info message")
	logger.Debug("test debug message")
	logger.Warn("test warn message")
	logger.Error("test error message")
}
