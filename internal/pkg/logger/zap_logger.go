package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ILogger interface {
	Debug(module, message string, details map[string]interface{})
	Info(module, message string, details map[string]interface{})
	Warn(module, message string, details map[string]interface{})
	Error(module, message string, details map[string]interface{})
	Sync() error
}

type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger writes JSON lines to a rotated file and mirrors to stdout
// (console encoding in development, JSON in production).
func NewZapLogger(logFilePath string, isProd bool) *ZapLogger {
	rotator := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    10, // Megabytes
		MaxBackups: 5,
		MaxAge:     30, // Days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "message"
	encoderConfig.LevelKey = "level"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	jsonEncoder := zapcore.NewJSONEncoder(encoderConfig)

	fileCore := zapcore.NewCore(
		jsonEncoder,
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)

	var consoleEncoder zapcore.Encoder
	if isProd {
		consoleEncoder = jsonEncoder
	} else {
		consoleEncoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	consoleCore := zapcore.NewCore(
		consoleEncoder,
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)

	core := zapcore.NewTee(fileCore, consoleCore)

	// Skip 1 so the caller of the wrapper shows up, not the wrapper itself.
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &ZapLogger{logger: l}
}

func (l *ZapLogger) Debug(module, message string, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	l.logger.Debug(message, zap.String("module", module), zap.Any("details", details))
}

func (l *ZapLogger) Info(module, message string, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	l.logger.Info(message, zap.String("module", module), zap.Any("details", details))
}

func (l *ZapLogger) Warn(module, message string, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	l.logger.Warn(message, zap.String("module", module), zap.Any("details", details))
}

func (l *ZapLogger) Error(module, message string, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	l.logger.Error(message, zap.String("module", module), zap.Any("details", details))
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
