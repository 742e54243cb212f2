package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
)

// NewLogger builds the process logger. Logs go to stderr so stdout stays
// free for MCP JSON-RPC framing; set LOG_FILE to write to a rotating file
// instead.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, linearb.NewConfigError(fmt.Sprintf("invalid LOG_LEVEL %q", cfg.LogLevel))
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var core zapcore.Core
	if cfg.LogFile != "" {
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
		core = zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
	} else {
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level)
	}

	return zap.New(core), nil
}
