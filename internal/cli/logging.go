package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger logs to w: everything at debug level for --debug, warnings and
// errors otherwise.
func newLogger(w io.Writer, debug bool) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	level := zapcore.WarnLevel
	if debug {
		encCfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core).Named("ni")
}
