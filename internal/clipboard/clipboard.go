// Package clipboard reads text from the system clipboard for paste.
package clipboard

import (
	"strings"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/numbox/internal/errors"
	"github.com/zhubert/numbox/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times; a failed Init is retried on the next call.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return nil
	}

	log := logger.ComponentLogger("clipboard")
	if err := clipboard.Init(); err != nil {
		log.Warn("failed to initialize", "error", err)
		return errors.ClipboardUnavailable(err)
	}

	initialized = true
	log.Debug("initialized")
	return nil
}

// ReadText reads text from the clipboard. An empty clipboard is not an error.
// Trailing newlines are dropped since the caller pastes into a single-line field.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}

	textBytes := clipboard.Read(clipboard.FmtText)
	if textBytes == nil {
		return "", nil
	}

	logger.ComponentLogger("clipboard").Debug("read text", "bytes", len(textBytes))
	return strings.TrimRight(string(textBytes), "\r\n"), nil
}
