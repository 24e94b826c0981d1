package internal

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Logger writes report lines to the report file and echoes them to out.
// The first file write error is kept; later lines are dropped. A failing
// echo is logged once and otherwise ignored.
type Logger struct {
	mu      sync.Mutex
	path    string
	f       io.WriteCloser
	out     io.Writer
	err     error
	outDead bool
}

func NewLogger(fsys afero.Fs, path string, out io.Writer) (*Logger, error) {
	f, err := fsys.Create(path)
	if err != nil {
		return nil, &ReportError{Path: path, Err: err}
	}
	return &Logger{path: path, f: f, out: out}, nil
}

func (l *Logger) Log(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return
	}

	line := fmt.Sprintf(format+"\n", args...)
	if _, err := io.WriteString(l.f, line); err != nil {
		l.err = &ReportError{Path: l.path, Err: err}
		return
	}

	if l.out != nil && !l.outDead {
		if _, err := io.WriteString(l.out, line); err != nil {
			logrus.WithError(err).Warn("stdout echo failed, report continues in file only")
			l.outDead = true
		}
	}
}

// Err returns the first report file write failure, if any.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *Logger) Close() error {
	if err := l.f.Close(); err != nil {
		return &ReportError{Path: l.path, Err: err}
	}
	return l.Err()
}
