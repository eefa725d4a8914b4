package retry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"
)

func TestFileSystemErrorClassifier_IsTransient(t *testing.T) {
	c := NewFileSystemErrorClassifier()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"EINTR", &os.PathError{Op: "write", Path: "/out/a.gir", Err: syscall.EINTR}, true},
		{"EAGAIN", fmt.Errorf("write: %w", syscall.EAGAIN), true},
		{"EBUSY", &os.PathError{Op: "open", Path: "/out/a.gir", Err: syscall.EBUSY}, true},
		{"ETXTBSY", &os.PathError{Op: "open", Path: "/out/a.gir", Err: syscall.ETXTBSY}, true},
		{"windows sharing violation", errors.New("open out\\a.gir: The process cannot access the file because it is being used by another process."), true},
		{"message only", errors.New("write /out/a.gir: resource temporarily unavailable"), true},
		{"not exist", &os.PathError{Op: "open", Path: "/missing/a.gir", Err: syscall.ENOENT}, false},
		{"wrapped not exist", fmt.Errorf("parent directory not found: %w", fs.ErrNotExist), false},
		{"permission", &os.PathError{Op: "open", Path: "/out/a.gir", Err: syscall.EACCES}, false},
		{"disk full", &os.PathError{Op: "write", Path: "/out/a.gir", Err: syscall.ENOSPC}, false},
		{"other", errors.New("path is a directory, not a file"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
