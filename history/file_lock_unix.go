//go:build !windows

package history

import (
	"fmt"
	"os"
	"syscall"
)

// historyLock serializes writers of one history file across rvw processes.
type historyLock struct {
	path string
	f    *os.File
}

func newHistoryLock(historyPath string) *historyLock {
	return &historyLock{path: historyPath + ".lock"}
}

func (l *historyLock) acquire() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf("open history lock: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		_ = f.Close()
		return fmt.Errorf("flock history: %w", err)
	}

	l.f = f
	return nil
}

func (l *historyLock) release() error {
	if l.f == nil {
		return nil
	}
	_ = syscall.Flock(int(l.f.Fd()), syscall.LOCK_UN)
	err := l.f.Close()
	l.f = nil
	return err
}
