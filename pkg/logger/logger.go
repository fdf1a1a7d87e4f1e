package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level      string
	FormatJSON bool
	Rotation   Rotation
}

// Rotation configures the optional rotating file sink. An empty File disables
// file logging and everything goes to stdout only.
type Rotation struct {
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

func MustSetupLogger(cfg *Config) *zap.Logger {
	log, err := SetupLogger(cfg)
	if err != nil {
		panic(err)
	}

	return log
}

func SetupLogger(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level %q: %w", cfg.Level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.FormatJSON {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}

	if cfg.Rotation.File != "" {
		rotor := &lumberjack.Logger{
			Filename:   cfg.Rotation.File,
			MaxSize:    cfg.Rotation.MaxSize,
			MaxBackups: cfg.Rotation.MaxBackups,
			MaxAge:     cfg.Rotation.MaxAge,
		}

		sinks = append(sinks, zapcore.AddSync(rotor))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), level)

	return zap.New(core, zap.AddCaller()), nil
}
