package helpers

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/asiyani/lazyftp/pkg/models"
)

// NewLogger writes JSON lines to a rotating file. The TUI owns the terminal,
// so nothing goes to stderr.
func NewLogger(cfg models.LogConfig) *zap.Logger {
	writer := &lumberjack.Logger{
		Filename:   cfg.File,
		LocalTime:  true,
		MaxBackups: 10,
		MaxSize:    10,
	}

	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(writer), level)
	return zap.New(core, zap.AddCaller()).Named(appName)
}

// DiagnosticSink records failed operations to the log.
type DiagnosticSink struct {
	logger *zap.Logger
}

func NewDiagnosticSink(logger *zap.Logger) *DiagnosticSink {
	return &DiagnosticSink{logger: logger.Named("diagnostics")}
}

func (s *DiagnosticSink) Record(op string, err error) {
	s.logger.Error("operation failed", zap.String("op", op), zap.Error(err))
}
