package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers. A failing
// writer does not stop the others; the failures are combined into one error.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w == nil {
			continue
		}
		cw.Writers = append(cw.Writers, w)
	}
	return cw
}

// Write reports len(p) when at least one writer accepted the whole buffer,
// so a broken log file never makes logrus drop the stdout copy.
func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	accepted := false
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if written == len(p) {
			accepted = true
		}
	}
	if accepted {
		return len(p), err
	}
	return 0, err
}
