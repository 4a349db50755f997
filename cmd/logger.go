package cmd

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels accepted by --log-level.
const (
	levelNone   = "none"
	levelNormal = "normal"
	levelDebug  = "debug"
)

// newLogger builds the CLI logger. Console output always goes to stderr,
// since stdout may carry rendered content. When file is set, a second core
// writes there at the same level. The returned closer releases the file.
func newLogger(level, file string, stderr io.Writer) (*zap.Logger, func() error, error) {
	var enabler zapcore.LevelEnabler
	switch level {
	case levelNone:
		return zap.NewNop(), func() error { return nil }, nil
	case levelNormal:
		enabler = zapcore.InfoLevel
	case levelDebug:
		enabler = zapcore.DebugLevel
	default:
		return nil, nil, fmt.Errorf("unknown log level %q (want %s, %s or %s)", level, levelNone, levelNormal, levelDebug)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(stderr), enabler),
	}

	closer := func() error { return nil }
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", file, err)
		}
		fec := zap.NewDevelopmentEncoderConfig()
		fec.EncodeCaller = nil
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fec), zapcore.Lock(f), enabler))
		closer = func() error {
			if err := f.Sync(); err != nil {
				f.Close()
				return fmt.Errorf("syncing log file: %w", err)
			}
			return f.Close()
		}
	}
	return zap.New(zapcore.NewTee(cores...)), closer, nil
}
