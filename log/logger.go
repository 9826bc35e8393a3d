package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging interface used across the exchange service.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

type loggerImpl struct {
	zapLogger *zap.Logger
}

var _ Logger = &loggerImpl{}

// Debug implements Logger.
func (l *loggerImpl) Debug(msg string, fields ...zap.Field) {
	l.zapLogger.Debug(msg, fields...)
}

// Info implements Logger.
func (l *loggerImpl) Info(msg string, fields ...zap.Field) {
	l.zapLogger.Info(msg, fields...)
}

// Warn implements Logger.
func (l *loggerImpl) Warn(msg string, fields ...zap.Field) {
	l.zapLogger.Warn(msg, fields...)
}

// Error implements Logger.
func (l *loggerImpl) Error(msg string, fields ...zap.Field) {
	l.zapLogger.Error(msg, fields...)
}

// NoOpLogger discards everything. Used in tests.
type NoOpLogger struct{}

var _ Logger = &NoOpLogger{}

// Debug implements Logger.
func (*NoOpLogger) Debug(msg string, fields ...zap.Field) {}

// Info implements Logger.
func (*NoOpLogger) Info(msg string, fields ...zap.Field) {}

// Warn implements Logger.
func (*NoOpLogger) Warn(msg string, fields ...zap.Field) {}

// Error implements Logger.
func (*NoOpLogger) Error(msg string, fields ...zap.Field) {}

const (
	maxLogFileSizeMB  = 100
	maxLogFileBackups = 5
	maxLogFileAgeDays = 14
)

// NewLogger creates a new logger.
// In production mode, JSON logs are written both to stdout and to a rotating file at fileName.
// Otherwise, human readable console logs are written to stdout only.
// logLevelStr is one of debug, info, warn or error.
func NewLogger(isProduction bool, fileName string, logLevelStr string) (Logger, error) {
	logLevel := zap.NewAtomicLevel()
	if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	if isProduction {
		encoderConfig = zap.NewProductionEncoderConfig()
	} else {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(newEncoder(isProduction, encoderConfig), zapcore.Lock(os.Stdout), logLevel),
	}

	if isProduction && fileName != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   fileName,
			MaxSize:    maxLogFileSizeMB,
			MaxBackups: maxLogFileBackups,
			MaxAge:     maxLogFileAgeDays,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileSink, logLevel))
	}

	zapLogger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))

	return &loggerImpl{
		zapLogger: zapLogger,
	}, nil
}

func newEncoder(isProduction bool, encoderConfig zapcore.EncoderConfig) zapcore.Encoder {
	if isProduction {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}
