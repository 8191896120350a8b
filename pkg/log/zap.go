package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // development | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sl *zap.SugaredLogger
}

// Init builds the process-wide Logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var zcfg zap.Config
	if cfg.Mode == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		if cfg.ColorEnabled {
			zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}
	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	l, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	return &zapLogger{sl: l.Sugar()}
}

// NewNop returns a Logger that discards everything. Useful in tests.
func NewNop() Logger {
	return &zapLogger{sl: zap.NewNop().Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...any)  { z.sl.Debug(args...) }
func (z *zapLogger) Info(ctx context.Context, args ...any)   { z.sl.Info(args...) }
func (z *zapLogger) Warn(ctx context.Context, args ...any)   { z.sl.Warn(args...) }
func (z *zapLogger) Error(ctx context.Context, args ...any)  { z.sl.Error(args...) }
func (z *zapLogger) DPanic(ctx context.Context, args ...any) { z.sl.DPanic(args...) }
func (z *zapLogger) Panic(ctx context.Context, args ...any)  { z.sl.Panic(args...) }
func (z *zapLogger) Fatal(ctx context.Context, args ...any)  { z.sl.Fatal(args...) }

func (z *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.sl.Debugf(format, args...)
}

func (z *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.sl.Infof(format, args...)
}

func (z *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.sl.Warnf(format, args...)
}

func (z *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.sl.Errorf(format, args...)
}

func (z *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	z.sl.DPanicf(format, args...)
}

func (z *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	z.sl.Panicf(format, args...)
}

func (z *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	z.sl.Fatalf(format, args...)
}
