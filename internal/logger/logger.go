// Package logger provides the leveled logger used by the binaries.
package logger

import (
	"io"
	"log"
)

// Logger is satisfied by *log.Logger wrappers and by hufftree.Logger.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l     *log.Logger
	quiet bool
}

// New returns a Logger writing "[INFO]" and "[ERROR]" lines to w.  A quiet
// Logger drops the "[INFO]" lines.
func New(w io.Writer, quiet bool) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags), quiet: quiet}
}

func (s *stdLogger) Infof(format string, v ...any) {
	if s.quiet {
		return
	}
	s.l.Printf("[INFO] "+format, v...)
}

func (s *stdLogger) Errorf(format string, v ...any) {
	s.l.Printf("[ERROR] "+format, v...)
}
