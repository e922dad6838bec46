package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/giovaniif/ordersystem/infra/loki"
)

// New builds the service logger: JSON to stderr, optionally teed into a
// Loki writer when one is configured.
func New(lokiWriter *loki.Writer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zapcore.InfoLevel),
	}
	if lokiWriter != nil {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(lokiWriter), zapcore.InfoLevel))
	}
	return zap.New(zapcore.NewTee(cores...))
}
