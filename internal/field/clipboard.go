package field

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard is the text store used by paste, cut and copy.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("system clipboard unavailable")
	}
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("system clipboard unavailable")
	}
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps the text in process.
type MemoryClipboard struct {
	text string
}

func (m *MemoryClipboard) ReadAll() (string, error) { return m.text, nil }

func (m *MemoryClipboard) WriteAll(text string) error {
	m.text = text
	return nil
}

// DefaultClipboard returns the system clipboard when one is reachable and an
// in-process one otherwise.
func DefaultClipboard() Clipboard {
	if clipboard.Unsupported {
		return &MemoryClipboard{}
	}
	return SystemClipboard{}
}
