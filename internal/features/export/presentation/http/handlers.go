package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"promptcraft/backend/internal/features/export/application"
)

const helpText = "UI Prompt Generator 帮助\n\n" +
	"1. 选择目的：确定你要设计的应用类型。\n" +
	"2. 定义风格：选择喜欢的视觉语言和品牌色。\n" +
	"3. 配置组件：勾选需要包含的具体功能模块。\n\n" +
	"完成后，会自动生成结构化的AI提示词，可直接复制用于 Midjourney、Stable Diffusion 或 GPT-4。\n\n" +
	"💬 AI设计助手：\n与AI实时对话获取设计建议。"

// ExportHandler serves prompt export and help.
type ExportHandler struct {
	exportService *application.ExportService
}

func NewExportHandler(exportService *application.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// CopyPromptHandler copies the compiled prompt to the host clipboard. On
// failure the prompt is still returned so the caller can copy it manually.
func (h *ExportHandler) CopyPromptHandler(c *gin.Context) {
	text, err := h.exportService.CopyPrompt()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error(), "prompt": text})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prompt copied", "prompt": text})
}

// HelpHandler returns the usage help.
func (h *ExportHandler) HelpHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"help": helpText})
}

func (h *ExportHandler) Register(r gin.IRouter) {
	r.POST("/prompt/copy", h.CopyPromptHandler)
	r.GET("/help", h.HelpHandler)
}
