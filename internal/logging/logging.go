// Package logging sets up the process logger. The TUI owns stdout, so
// logs always go to a rotated file under the config directory.
package logging

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a zap logger writing to <dir>/oraculo.log with rotation.
func New(dir string, debug bool) *zap.Logger {
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, "oraculo.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
	})

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
	return zap.New(core)
}
