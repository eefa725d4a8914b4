package retry

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
)

// transientErrnos are errno values a repeated write may not hit again.
var transientErrnos = []syscall.Errno{
	syscall.EINTR,
	syscall.EAGAIN,
	syscall.EBUSY,
	syscall.ETXTBSY,
}

// transientPatterns match wrapped errors that lost their errno, including
// Windows sharing violations.
var transientPatterns = []string{
	"interrupted system call",
	"resource temporarily unavailable",
	"device or resource busy",
	"text file busy",
	"being used by another process",
}

// FileSystemErrorClassifier implements gircheck.ErrorClassifier for file writes.
type FileSystemErrorClassifier struct{}

// NewFileSystemErrorClassifier creates a new filesystem error classifier.
func NewFileSystemErrorClassifier() *FileSystemErrorClassifier {
	return &FileSystemErrorClassifier{}
}

// IsTransient reports whether a write that failed with err may succeed if repeated.
func (c *FileSystemErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// Conditions that never clear on their own
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.ENOSPC) {
		return false
	}

	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
