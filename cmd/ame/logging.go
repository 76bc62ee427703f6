package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/gogo-ame/parameter"
)

// setupLogger returns a no-op logger unless debug is set
// Debug output goes to a rotating file; the terminal belongs to the game
func setupLogger(debug bool, path string) (*zap.Logger, func(), error) {
	if !debug {
		return zap.NewNop(), func() {}, nil
	}
	if path == "" {
		path = filepath.Join(parameter.LogDir, parameter.LogFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    parameter.LogMaxSizeMB,
		MaxBackups: parameter.LogMaxBackups,
		MaxAge:     parameter.LogMaxAgeDays,
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(sink),
		zap.DebugLevel,
	)
	log := zap.New(fileCore, zap.AddCaller())

	closeFn := func() {
		_ = log.Sync()
		_ = sink.Close()
	}
	return log, closeFn, nil
}
