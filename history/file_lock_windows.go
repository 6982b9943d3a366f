//go:build windows

package history

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

type historyLock struct {
	path string
	f    *os.File
}

func newHistoryLock(historyPath string) *historyLock {
	return &historyLock{path: historyPath + ".lock"}
}

type overlapped struct {
	Internal     uintptr
	InternalHigh uintptr
	Offset       uint32
	OffsetHigh   uint32
	HEvent       syscall.Handle
}

var (
	kernel32          = syscall.NewLazyDLL("kernel32.dll")
	procLockFileEx    = kernel32.NewProc("LockFileEx")
	procUnlockFileEx  = kernel32.NewProc("UnlockFileEx")
	lockfileExclusive = uintptr(0x00000002)
)

func (l *historyLock) acquire() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf("open history lock: %w", err)
	}

	var ov overlapped
	r1, _, e1 := procLockFileEx.Call(uintptr(syscall.Handle(f.Fd())), lockfileExclusive, 0, 1, 0, uintptr(unsafe.Pointer(&ov)))
	if r1 == 0 {
		_ = f.Close()
		return fmt.Errorf("lock history: %w", e1)
	}

	l.f = f
	return nil
}

func (l *historyLock) release() error {
	if l.f == nil {
		return nil
	}

	var ov overlapped
	r1, _, e1 := procUnlockFileEx.Call(uintptr(syscall.Handle(l.f.Fd())), 0, 1, 0, uintptr(unsafe.Pointer(&ov)))

	errClose := l.f.Close()
	l.f = nil

	if r1 == 0 {
		return fmt.Errorf("unlock history: %w", e1)
	}
	return errClose
}
