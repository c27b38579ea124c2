package log

import (
	"os"
	"strings"

	"talentsync/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level 由 viper 監聽設定檔變更時調整，不需重啟
var level = zap.NewAtomicLevelAt(zap.InfoLevel)

func NewLogger(conf *config.Configuration) (*zap.Logger, error) {
	SetLevel(conf.Log.Level)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.TimeKey = "ts"
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if strings.EqualFold(conf.Log.Format, "console") {
		// CLI 子命令在終端機上看比較清楚
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	// warn 以上寫 stderr，其餘寫 stdout
	stdoutLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return level.Enabled(l) && l < zapcore.WarnLevel
	})
	stderrLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return level.Enabled(l) && l >= zapcore.WarnLevel
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), stdoutLevel),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), stderrLevel),
	)

	fields := []zap.Field{}
	if conf.App.Name != "" {
		fields = append(fields, zap.String("service", conf.App.Name))
	}
	if conf.App.Version != "" {
		fields = append(fields, zap.String("version", conf.App.Version))
	}
	if conf.App.Env != "" {
		fields = append(fields, zap.String("env", conf.App.Env))
	}

	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(fields...),
	)
	logger.Info("zap logger ready", zap.String("level", level.String()), zap.String("format", conf.Log.Format))
	return logger, nil
}

// SetLevel 無法解析時退回 info
func SetLevel(raw string) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(raw))
	if err != nil || raw == "" {
		lvl = zapcore.InfoLevel
	}
	level.SetLevel(lvl)
}

// Level 目前生效的層級
func Level() zapcore.Level {
	return level.Level()
}
