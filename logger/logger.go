package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FormatJSON writes one JSON object per entry
	FormatJSON = "json"
	// FormatConsole writes human readable entries, useful for local runs
	FormatConsole = "console"
)

var (
	// Global logger instance
	logger *zap.Logger
	// Global sugared logger instance, handed to callers
	sugar *zap.SugaredLogger
	// Sugared logger used by the package level helpers, skipping their frame
	wrapped *zap.SugaredLogger
	// Ensure initialization happens only once
	once sync.Once
	mu   sync.RWMutex
)

// Init initializes the logger with the given log level and encoding format.
// Valid levels: debug, info, warn, error, dpanic, panic, fatal
func Init(level, format string) {
	once.Do(func() {
		var zapLevel zapcore.Level
		if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
			zapLevel = zap.InfoLevel
		}

		encoderConfig := zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}

		var encoder zapcore.Encoder
		if format == FormatConsole {
			encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			encoder = zapcore.NewConsoleEncoder(encoderConfig)
		} else {
			encoder = zapcore.NewJSONEncoder(encoderConfig)
		}

		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zapLevel)

		set(zap.New(core, zap.AddCaller()))
	})
}

// Replace swaps the global logger, e.g. for an observer core in tests.
// The returned function restores the previous logger.
func Replace(l *zap.Logger) func() {
	mu.Lock()
	prevLogger, prevSugar, prevWrapped := logger, sugar, wrapped
	mu.Unlock()

	set(l)
	return func() {
		mu.Lock()
		logger, sugar, wrapped = prevLogger, prevSugar, prevWrapped
		mu.Unlock()
	}
}

func set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	sugar = l.Sugar()
	wrapped = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// Sugar returns the global sugared logger
func Sugar() *zap.SugaredLogger {
	mu.RLock()
	s := sugar
	mu.RUnlock()
	if s == nil {
		// If logger hasn't been initialized, initialize with info level
		Init("info", FormatJSON)
		mu.RLock()
		s = sugar
		mu.RUnlock()
	}
	return s
}

func helper() *zap.SugaredLogger {
	Sugar()
	mu.RLock()
	defer mu.RUnlock()
	return wrapped
}

// Sync flushes any buffered log entries
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if logger != nil {
		_ = logger.Sync()
	}
}

// With returns a sugared logger carrying the given key/value pairs
func With(keysAndValues ...interface{}) *zap.SugaredLogger {
	return Sugar().With(keysAndValues...)
}

// Info logs a message at info level
func Info(args ...interface{}) {
	helper().Info(args...)
}

// Error logs a message at error level
func Error(args ...interface{}) {
	helper().Error(args...)
}

// Debugf logs a formatted message at debug level
func Debugf(template string, args ...interface{}) {
	helper().Debugf(template, args...)
}

// Infof logs a formatted message at info level
func Infof(template string, args ...interface{}) {
	helper().Infof(template, args...)
}

// Warnf logs a formatted message at warn level
func Warnf(template string, args ...interface{}) {
	helper().Warnf(template, args...)
}
