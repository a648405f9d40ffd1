package infrastructure

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	Write(text string) error
}

// SystemClipboard uses the host clipboard (pbcopy, xclip/xsel/wl-copy,
// or the Windows API).
type SystemClipboard struct{}

func NewSystemClipboard() SystemClipboard { return SystemClipboard{} }

func (SystemClipboard) Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available on this host")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
