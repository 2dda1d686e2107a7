// Package logging provides categorized structured logging for truthlens.
// Each subsystem logs under its own category so scan traces, LLM calls
// and audit writes can be filtered independently. Verbosity is controlled
// by TRUTHLENS_LOG_LEVEL (debug/info/warn/error, default warn).
package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, config load
	CategoryScan     Category = "scan"     // Detector orchestration
	CategoryCore     Category = "core"     // Frozen core evaluation
	CategoryLLM      Category = "llm"      // LLM API calls, circuit breaker
	CategoryAudit    Category = "audit"    // Audit chain writes and verification
	CategoryLearning Category = "learning" // Learning ring, pattern proposals
	CategoryCorrect  Category = "correct"  // Correction loop
	CategoryCache    Category = "cache"    // Scan cache hits/misses
)

// Logger wraps a zap sugared logger bound to a category.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	root      *zap.Logger
	rootOnce  sync.Once
)

func rootLogger() *zap.Logger {
	rootOnce.Do(func() {
		level := zapcore.WarnLevel
		switch strings.ToLower(os.Getenv("TRUTHLENS_LOG_LEVEL")) {
		case "debug":
			level = zapcore.DebugLevel
		case "info":
			level = zapcore.InfoLevel
		case "warn", "warning":
			level = zapcore.WarnLevel
		case "error":
			level = zapcore.ErrorLevel
		}

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			level,
		)
		root = zap.New(core)
	})
	return root
}

// Get returns (or creates) the logger for the given category.
func Get(category Category) *Logger {
	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	l := &Logger{
		category: category,
		sugar:    rootLogger().Sugar().Named(string(category)),
	}
	loggers[category] = l
	return l
}

// Sync flushes buffered log entries. Call at shutdown.
func Sync() {
	if root != nil {
		_ = root.Sync()
	}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Convenience functions for the common categories.

func Boot(format string, args ...interface{})      { Get(CategoryBoot).Info(format, args...) }
func Scan(format string, args ...interface{})      { Get(CategoryScan).Info(format, args...) }
func ScanDebug(format string, args ...interface{}) { Get(CategoryScan).Debug(format, args...) }
func LLM(format string, args ...interface{})       { Get(CategoryLLM).Info(format, args...) }
func LLMWarn(format string, args ...interface{})   { Get(CategoryLLM).Warn(format, args...) }
func Audit(format string, args ...interface{})     { Get(CategoryAudit).Info(format, args...) }
func Learning(format string, args ...interface{})  { Get(CategoryLearning).Info(format, args...) }
func Correct(format string, args ...interface{})   { Get(CategoryCorrect).Info(format, args...) }

// Timer measures operation duration.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation.
func StartTimer(category Category, operation string) *Timer {
	return &Timer{category: category, op: operation, start: time.Now()}
}

// Stop ends the timer and logs the duration at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}
