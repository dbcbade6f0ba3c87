package logger

import (
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates writers based on format
type WriterFactory struct {
	console    io.Writer
	isTerminal func() bool
}

// NewWriterFactory creates a writer factory whose console output is console.
// Colour is only possible when console is a terminal file.
func NewWriterFactory(console io.Writer) *WriterFactory {
	return &WriterFactory{
		console: console,
		isTerminal: func() bool {
			f, ok := console.(*os.File)
			return ok && term.IsTerminal(int(f.Fd()))
		},
	}
}

// newWriterFactoryFor is used by tests to capture console output
func newWriterFactoryFor(console io.Writer, isTerminal bool) *WriterFactory {
	return &WriterFactory{
		console:    console,
		isTerminal: func() bool { return isTerminal },
	}
}

// CreateConsoleWriter creates a console writer
func (wf *WriterFactory) CreateConsoleWriter(config LoggerConfig) io.Writer {
	switch config.Format {
	case FormatJSON:
		return (&JSONWriterStrategy{}).CreateWriter(wf.console)
	case FormatText:
		return (&TextWriterStrategy{}).CreateWriter(wf.console)
	default:
		noColor := config.NoColor || !wf.isTerminal()
		return (&ConsoleWriterStrategy{NoColor: noColor}).CreateWriter(wf.console)
	}
}

// CreateFileWriter creates a file writer with rotation. Files never carry colour codes.
func (wf *WriterFactory) CreateFileWriter(config LoggerConfig) io.Writer {
	// Best effort; lumberjack reports the failure on first write.
	_ = os.MkdirAll(filepath.Dir(config.FilePath), 0755)

	lumberjackLogger := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		LocalTime:  true,
		MaxBackups: config.MaxBackups,
	}

	if config.Format == FormatJSON {
		return (&JSONWriterStrategy{}).CreateWriter(lumberjackLogger)
	}
	return (&TextWriterStrategy{}).CreateWriter(lumberjackLogger)
}
