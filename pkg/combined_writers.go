package pkg

import (
	"io"
	"sync"

	"go.uber.org/multierr"
)

// CombinedWriter copies log output to several writers, e.g. stdout and a
// rotating file. A write succeeds when at least one writer took all of it,
// failures of the others are collected and reported by Err.
type CombinedWriter struct {
	mutex   sync.Mutex
	writers []io.Writer
	err     error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

// Err returns every write failure seen so far.
func (cw *CombinedWriter) Err() error {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()
	return cw.err
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()

	var failed error
	delivered := false
	for _, w := range cw.writers {
		n, err := w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			failed = multierr.Append(failed, err)
			continue
		}
		delivered = true
	}

	cw.err = multierr.Append(cw.err, failed)
	if !delivered && failed != nil {
		return 0, failed
	}
	return len(p), nil
}
