package logger

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Root  string
	Debug bool
}

var (
	mu       sync.RWMutex
	global   = zap.NewNop()
	logFile  *os.File
	logPath  string
	initedAt time.Time
)

// Setup points the global logger at <root>/.soonpage/logs/soonpage.log.
// On failure the logger stays a no-op and the error is returned.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	if root == "" {
		root = "."
	}

	dir := filepath.Join(root, ".soonpage", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		setNop()
		return nil, err
	}

	path := filepath.Join(dir, "soonpage.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		setNop()
		return nil, err
	}

	level := zapcore.InfoLevel
	var opts []zap.Option
	if cfg.Debug {
		level = zapcore.DebugLevel
		opts = append(opts, zap.AddCaller())
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339Nano))
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), level)
	l := zap.New(core, opts...)

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	initedAt = time.Now().UTC()
	mu.Unlock()

	l.Info("logger.initialized", zap.String("path", path), zap.Bool("debug", cfg.Debug))

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		_ = global.Sync()
		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		initedAt = time.Time{}
		global = zap.NewNop()
		return cerr
	}

	return cleanup, nil
}

func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return initedAt
}

func setNop() {
	mu.Lock()
	defer mu.Unlock()
	global = zap.NewNop()
	logFile = nil
	logPath = ""
	initedAt = time.Time{}
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}
