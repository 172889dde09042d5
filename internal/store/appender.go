package store

import (
	"os"
	"path/filepath"

	"codeberg.org/mutker/envlogd/internal/errors"
)

const (
	defaultDirPerm  = 0o755
	defaultFilePerm = 0o644
)

// Appender durably appends one formatted line to the log store
type Appender interface {
	Append(line string) error
}

// FileAppender writes to an append-only file on the storage medium. Every
// append opens, writes, syncs and closes; the handle is never held across
// cycles, which bounds the window in which the store is uncommitted if power
// is lost.
type FileAppender struct {
	path string
}

func NewFileAppender(path string) *FileAppender {
	return &FileAppender{path: path}
}

// Path returns the log store location
func (a *FileAppender) Path() string {
	return a.path
}

// Init prepares the medium once at startup: it creates the parent directory
// and writes the header line, but only if the store is absent or empty.
// Re-runs against a non-empty store append data lines under the existing
// header. A failure here is fatal to the daemon.
func (a *FileAppender) Init() error {
	errFactory := errors.New()

	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
			return errFactory.Wrap(ErrMediumInit, err)
		}
	}

	info, err := os.Stat(a.path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return errFactory.Wrap(ErrMediumInit, err)
	}

	if err := a.writeLine(Header + "\n"); err != nil {
		return errFactory.Wrap(ErrMediumInit, err)
	}

	return nil
}

// Append durably appends one line. Errors are normal per-cycle outcomes: the
// medium may be absent (unreachable) or refuse the write (full, read-only).
func (a *FileAppender) Append(line string) error {
	return a.writeLine(line)
}

func (a *FileAppender) writeLine(line string) error {
	errFactory := errors.New()

	f, err := os.OpenFile(a.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, defaultFilePerm)
	if err != nil {
		return errFactory.Wrap(ErrUnreachable, err)
	}

	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return errFactory.Wrap(ErrWriteRejected, err)
	}

	// Commit before closing so a power cut after this cycle cannot lose the line
	if err := f.Sync(); err != nil {
		f.Close()
		return errFactory.Wrap(ErrWriteRejected, err)
	}

	if err := f.Close(); err != nil {
		return errFactory.Wrap(ErrWriteRejected, err)
	}

	return nil
}
