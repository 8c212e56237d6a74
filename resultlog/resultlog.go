// Package resultlog is the logging adapter for xgx-result: it records an
// escaping Panic before the process dies, and ships a ready-made zerolog
// constructor with rotating file output for services that want those records
// to survive the crash.
//
// The core stays policy-free; everything opinionated about logging lives
// here. LogPanic never swallows a panic — it logs and re-raises, leaving
// propagation to the surrounding unwinding and, ultimately, the top-level
// hook.
package resultlog

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	xgxresult "github.com/xgx-io/xgx-result"
)

// Config describes the destinations for panic diagnostics.
type Config struct {
	// Filename is the log file path. Empty disables file output.
	Filename string
	// MaxSize is the maximum size in megabytes of the log file before
	// rotation.
	MaxSize int
	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int
	// MaxBackups is the maximum number of rotated files to retain.
	MaxBackups int
	// Compress rotated files.
	Compress bool
	// Level is the minimum level, parsed by zerolog ("debug", "info", ...).
	// Empty means info.
	Level string
	// Console, when non-nil, additionally receives human-readable output.
	Console io.Writer
}

// New builds a zerolog.Logger per conf: a lumberjack-rotated file writer,
// an optional console writer, or both.
func New(conf Config) (zerolog.Logger, error) {
	if conf.Level == "" {
		conf.Level = zerolog.LevelInfoValue
	}
	level, err := zerolog.ParseLevel(conf.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var writers []io.Writer
	if conf.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        conf.Console,
			TimeFormat: time.RFC3339,
		})
	}
	if conf.Filename != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   conf.Filename,
			MaxSize:    conf.MaxSize,
			MaxAge:     conf.MaxAge,
			MaxBackups: conf.MaxBackups,
			LocalTime:  true,
			Compress:   conf.Compress,
		})
	}
	if len(writers) == 0 {
		return zerolog.Nop(), nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	return logger, nil
}

// LogPanic runs fn and, if a Panic escapes it, logs the message and the
// filtered trace at panic level before re-raising. Expected conditions and
// ordinary returns pass through silently; panics foreign to xgx-result are
// re-raised unlogged.
func LogPanic(logger zerolog.Logger, fn func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if p, ok := xgxresult.AsPanic(r); ok {
			logger.WithLevel(zerolog.PanicLevel).
				Str("trace", p.Trace()).
				Msg(p.Error())
		}
		panic(r)
	}()
	fn()
}
