package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"clientportal/internal/config"
)

// Values of logging.format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// NewLogger builds the process logger on stdout. Production always encodes
// JSON; other environments follow logging.format.
func NewLogger(cfg *config.LoggingConfig, appCfg *config.AppConfig) (*zap.Logger, error) {
	return build(cfg, appCfg, zapcore.Lock(os.Stdout))
}

func build(cfg *config.LoggingConfig, appCfg *config.AppConfig, out zapcore.WriteSyncer) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if s := strings.TrimSpace(cfg.Level); s != "" {
		parsed, err := zapcore.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("logging.level: %w", err)
		}
		level = parsed
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if appCfg.Environment == "production" {
		format = FormatJSON
	}
	var enc zapcore.Encoder
	switch format {
	case FormatJSON:
		ec := zap.NewProductionEncoderConfig()
		ec.TimeKey = "time"
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	case FormatConsole, "":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		enc = zapcore.NewConsoleEncoder(ec)
	default:
		return nil, fmt.Errorf("logging.format: unknown format %q", cfg.Format)
	}

	return zap.New(zapcore.NewCore(enc, out, level),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(
			zap.String("service", appCfg.Name),
			zap.String("environment", appCfg.Environment),
		),
	), nil
}
