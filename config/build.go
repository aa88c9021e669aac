package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/sharedlog/core"
	"github.com/philipp01105/sharedlog/formatter"
	"github.com/philipp01105/sharedlog/handler/filehandler"
	"github.com/philipp01105/sharedlog/handler/zaphandler"
	"github.com/philipp01105/sharedlog/logger"
	"github.com/philipp01105/sharedlog/metrics"
)

// Option customizes Build and Apply
type Option func(*builder)

// WithCollector registers every file and stream sink of the tree with c,
// under the sink's name.
func WithCollector(c *metrics.Collector) Option {
	return func(b *builder) {
		b.collector = c
	}
}

type builder struct {
	collector *metrics.Collector
}

// Build constructs the logger tree described by sc.
func Build(sc SinkConfig, opts ...Option) (*logger.Logger, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b.build(sc, "")
}

func (b *builder) build(sc SinkConfig, fallbackName string) (*logger.Logger, error) {
	name := sc.Name
	if name == "" {
		name = fallbackName
	}
	if name == "" {
		name = sc.Type
	}

	switch sc.Type {
	case TypeFile:
		if sc.Path == "" {
			return nil, fmt.Errorf("config: sink %q: file sink needs a path", name)
		}
		h, err := filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:   sc.Path,
			Mode:       sc.Mode,
			Formatter:  textFormatter(sc),
			MaxSizeMB:  sc.MaxSizeMB,
			MaxBackups: sc.MaxBackups,
			MaxAgeDays: sc.MaxAgeDays,
			Compress:   sc.Compress,
		})
		if err != nil {
			return nil, fmt.Errorf("config: sink %q: %w", name, err)
		}
		b.register(name, h)
		return logger.NewFileLoggerWithHandler(h, sc.Level).Logger, nil

	case TypeStderr, TypeStdout:
		var w io.Writer = os.Stderr
		if sc.Type == TypeStdout {
			w = os.Stdout
		}
		h := filehandler.NewStreamHandler(w, textFormatter(sc))
		b.register(name, h)
		return logger.NewFileLoggerWithHandler(h, sc.Level).Logger, nil

	case TypeNull:
		return logger.NewNullLogger().Logger, nil

	case TypeZap:
		return buildZap(sc, name)

	case TypeMulti:
		m := logger.NewMultiLogger(sc.Level)
		for i, child := range sc.Children {
			childName := child.Name
			if childName == "" {
				childName = child.Type + strconv.Itoa(i)
			}
			if _, exists := m.Get(childName); exists {
				return nil, multierr.Append(
					fmt.Errorf("config: sink %q: duplicate child %q", name, childName),
					m.Close())
			}
			l, err := b.build(child, childName)
			if err != nil {
				return nil, multierr.Append(err, m.Close())
			}
			m.Insert(childName, l)
		}
		return m.Logger, nil

	case TypeArray:
		a := logger.NewArrayLogger(sc.Level)
		for i, child := range sc.Children {
			l, err := b.build(child, name+"."+strconv.Itoa(i))
			if err != nil {
				return nil, multierr.Append(err, a.Close())
			}
			a.Append(l)
		}
		return a.Logger, nil
	}
	return nil, fmt.Errorf("config: sink %q: unknown type %q", name, sc.Type)
}

func (b *builder) register(name string, h *filehandler.FileHandler) {
	if b.collector != nil {
		b.collector.Register(name, h)
	}
}

func textFormatter(sc SinkConfig) formatter.Formatter {
	return formatter.NewTextFormatter(formatter.Config{
		TimestampFormat: sc.TimestampFormat,
		UTC:             sc.UTC,
	})
}

// zapSink closes the outputs zap opened for it.
type zapSink struct {
	*zaphandler.ZapHandler
	close func()
}

func (z *zapSink) Close() error {
	err := z.Sync()
	z.close()
	// Syncing a terminal or pipe fails on some platforms
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return nil
	}
	return err
}

func buildZap(sc SinkConfig, name string) (*logger.Logger, error) {
	path := sc.Path
	if path == "" {
		path = "stderr"
	}
	ws, closeOut, err := zap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: sink %q: %w", name, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	switch sc.Encoding {
	case "", "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console":
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		closeOut()
		return nil, fmt.Errorf("config: sink %q: unknown zap encoding %q", name, sc.Encoding)
	}

	// The zap core admits everything; the Logger threshold filters.
	zc := zapcore.NewCore(enc, ws, zapcore.DebugLevel)
	sink := &zapSink{ZapHandler: zaphandler.New(zc), close: closeOut}
	return logger.NewBuilder().
		WithSink(sink).
		WithLevel(sc.Level).
		Build(), nil
}

// Apply builds cfg.Shared and installs it as the shared log together
// with the global threshold and clock. Closing the returned closer closes
// the sink tree. If the built log is still the shared log at that point,
// Close also restores the default shared log and the global threshold and
// clock that were in place before Apply.
func Apply(cfg *Config, opts ...Option) (io.Closer, error) {
	l, err := Build(cfg.Shared, opts...)
	if err != nil {
		return nil, err
	}

	prev := installed{
		l:     l,
		level: logger.GlobalLogLevel(),
		clock: logger.Clock(),
	}

	logger.SetGlobalLogLevel(cfg.GlobalLevel)
	if cfg.CoarseClock {
		logger.SetClock(core.CoarseNow)
	} else {
		logger.SetClock(nil)
	}
	logger.SetSharedLog(l)
	return prev, nil
}

// installed remembers what Apply replaced.
type installed struct {
	l     *logger.Logger
	level core.Level
	clock core.Clock
}

func (i installed) Close() error {
	if logger.SharedLog() == i.l {
		logger.SetSharedLog(nil)
		logger.SetGlobalLogLevel(i.level)
		logger.SetClock(i.clock)
	}
	return i.l.Close()
}
