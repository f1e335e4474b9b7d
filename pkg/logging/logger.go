/*
Copyright 2026 the GoREST Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logging provides the execution logger: a colourised console
// stream, an append-only log of everything, and a second append-only log of
// errors only.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ExecutionLog receives entries of every enabled level.
	ExecutionLog = "execution.log"

	// ErrorLog receives error entries only.
	ErrorLog = "error.log"

	timestampFormat = "2006-01-02 15:04:05"
)

// Options configure a logger.
type Options struct {
	// Dir is where the log files are created.  Empty means console only.
	Dir string

	// Console receives the colourised stream, os.Stdout if nil.
	Console io.Writer

	// Level is the minimum level written to the console and execution log.
	Level zapcore.Level
}

// Logger is a leveled logger.  It is safe for concurrent use.
type Logger struct {
	sugar   *zap.SugaredLogger
	closers []func()
}

// New opens the log files and returns a logger writing to every sink.
func New(options Options) (*Logger, error) {
	console := options.Console
	if console == nil {
		console = os.Stdout
	}

	level := zap.NewAtomicLevelAt(options.Level)

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(colorLevelEncoder)), zapcore.AddSync(console), level),
	}

	var closers []func()

	if options.Dir != "" {
		if err := os.MkdirAll(options.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}

		execution, closeExecution, err := zap.Open(filepath.Join(options.Dir, ExecutionLog))
		if err != nil {
			return nil, fmt.Errorf("opening execution log: %w", err)
		}

		errorsOnly, closeErrors, err := zap.Open(filepath.Join(options.Dir, ErrorLog))
		if err != nil {
			closeExecution()

			return nil, fmt.Errorf("opening error log: %w", err)
		}

		closers = append(closers, closeExecution, closeErrors)

		fileEncoder := zapcore.NewConsoleEncoder(encoderConfig(levelEncoder))

		cores = append(cores,
			zapcore.NewCore(fileEncoder, execution, level),
			zapcore.NewCore(fileEncoder, errorsOnly, zapcore.ErrorLevel),
		)
	}

	return &Logger{
		sugar:   zap.New(zapcore.NewTee(cores...)).Sugar(),
		closers: closers,
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{
		sugar: zap.NewNop().Sugar(),
	}
}

// ParseLevel accepts debug, info or error in any case.
func ParseLevel(s string) (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zapcore.DebugLevel, fmt.Errorf("parsing log level: %w", err)
	}

	return level, nil
}

func (l *Logger) Debugf(template string, args ...any) {
	l.sugar.Debugf(template, args...)
}

func (l *Logger) Infof(template string, args ...any) {
	l.sugar.Infof(template, args...)
}

func (l *Logger) Errorf(template string, args ...any) {
	l.sugar.Errorf(template, args...)
}

// Close flushes buffered entries and closes the log files.
func (l *Logger) Close() error {
	err := l.sugar.Sync()

	for _, closer := range l.closers {
		closer()
	}

	l.closers = nil

	// Syncing a terminal or pipe fails on some platforms, that's not
	// interesting to anybody.
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return nil
	}

	return err
}

// encoderConfig formats entries as "[timestamp] LEVEL: message".
func encoderConfig(encodeLevel zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       timeEncoder,
		EncodeLevel:      encodeLevel,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format(timestampFormat) + "]")
}

func levelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(level.CapitalString() + ":")
}

//nolint:gochecknoglobals
var levelColors = map[zapcore.Level]*color.Color{
	zapcore.DebugLevel: color.New(color.FgBlue),
	zapcore.InfoLevel:  color.New(color.FgGreen),
	zapcore.WarnLevel:  color.New(color.FgYellow),
	zapcore.ErrorLevel: color.New(color.FgRed),
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	c, ok := levelColors[level]
	if !ok {
		c = color.New(color.FgRed, color.Bold)
	}

	enc.AppendString(c.Sprint(level.CapitalString() + ":"))
}
