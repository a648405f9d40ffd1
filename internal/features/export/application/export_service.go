package application

import (
	"log"

	"promptcraft/backend/internal/features/export/infrastructure"
	notification "promptcraft/backend/internal/features/notification/application"
)

const (
	msgCopied     = "已复制到剪贴板"
	msgCopyFailed = "复制失败，请手动复制"
)

// PromptSource yields the currently compiled prompt.
type PromptSource interface {
	Prompt() string
}

// ExportService copies the compiled prompt and reports the outcome as a toast.
type ExportService struct {
	prompts   PromptSource
	clipboard infrastructure.Clipboard
	notifier  notification.Notifier
}

func NewExportService(prompts PromptSource, clipboard infrastructure.Clipboard, notifier notification.Notifier) *ExportService {
	return &ExportService{prompts: prompts, clipboard: clipboard, notifier: notifier}
}

// CopyPrompt writes the prompt to the clipboard and returns what was copied.
func (s *ExportService) CopyPrompt() (string, error) {
	text := s.prompts.Prompt()
	if err := s.clipboard.Write(text); err != nil {
		log.Println("[ERROR] Failed to copy prompt:", err)
		s.notifier.Error(msgCopyFailed)
		return text, err
	}
	s.notifier.Success(msgCopied)
	return text, nil
}
