package zap_adapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"courierqueue/pkg/logger"
)

type ZapAdapter struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

type Option func(cfg *zap.Config)

// WithLevel задает минимальный уровень ("debug", "info", "warn", "error").
// Неизвестное значение игнорируется.
func WithLevel(level string) Option {
	return func(cfg *zap.Config) {
		if level == "" {
			return
		}
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}
}

func NewZapAdapter(opts ...Option) (*ZapAdapter, error) {
	config := zap.NewProductionConfig()

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Encoding = "json"

	for _, opt := range opts {
		opt(&config)
	}

	zapLogger, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return nil, err
	}
	return &ZapAdapter{logger: zapLogger, level: config.Level}, nil
}

// NewNop - логгер для тестов, ничего не пишет.
func NewNop() *ZapAdapter {
	return &ZapAdapter{logger: zap.NewNop(), level: zap.NewAtomicLevel()}
}

// SetLevel меняет уровень на лету, включая логгеры, полученные через With.
// Конфиг читается после создания логгера, поэтому LOG_LEVEL применяется здесь.
func (z *ZapAdapter) SetLevel(level string) error {
	if level == "" {
		return nil
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	z.level.SetLevel(parsed)
	return nil
}

func (z *ZapAdapter) Debug(msg string, fields ...logger.Field) {
	z.logger.Debug(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Info(msg string, fields ...logger.Field) {
	z.logger.Info(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Warn(msg string, fields ...logger.Field) {
	z.logger.Warn(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Error(msg string, fields ...logger.Field) {
	z.logger.Error(msg, convertFields(fields)...)
}

func (z *ZapAdapter) With(fields ...logger.Field) logger.Logger {
	zapFields := convertFields(fields)
	return &ZapAdapter{
		logger: z.logger.With(zapFields...),
		level:  z.level,
	}
}

func (z *ZapAdapter) Sync() error {
	return z.logger.Sync()
}

func convertFields(fields []logger.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			zapFields = append(zapFields, zap.NamedError(f.Key, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return zapFields
}
