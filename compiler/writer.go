package compiler

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

type (
	// DirWriter writes files atomically through a temp file in the same directory.
	// Files with unchanged content are left untouched.
	DirWriter struct {
		Perm os.FileMode

		mu  sync.Mutex
		tmp map[string]struct{}
	}
)

func NewDirWriter() *DirWriter {
	return &DirWriter{Perm: 0o644}
}

func (w *DirWriter) WriteFile(name string, data []byte) (err error) {
	if old, err := os.ReadFile(name); err == nil && bytes.Equal(old, data) {
		tlog.V("writer").Printw("file unchanged", "name", name)
		return nil
	}

	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return errors.Wrap(err, "create temp")
	}

	tmp := f.Name()

	w.track(tmp, true)
	defer w.track(tmp, false)

	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	_, err = f.Write(data)
	if e := f.Close(); err == nil {
		err = e
	}
	if err != nil {
		return errors.Wrap(err, "write temp")
	}

	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}

	err = os.Chmod(tmp, perm)
	if err != nil {
		return errors.Wrap(err, "chmod")
	}

	err = os.Rename(tmp, name)
	if err != nil {
		return errors.Wrap(err, "rename")
	}

	return nil
}

// Cleanup removes temp files of unfinished writes.
func (w *DirWriter) Cleanup() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for name := range w.tmp {
		err := os.Remove(name)
		tlog.Printw("remove temp file", "name", name, "err", err)
	}

	w.tmp = nil
}

func (w *DirWriter) track(name string, add bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !add {
		delete(w.tmp, name)
		return
	}

	if w.tmp == nil {
		w.tmp = map[string]struct{}{}
	}

	w.tmp[name] = struct{}{}
}
