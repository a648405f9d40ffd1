package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"promptcraft/backend/internal/features/wizard/application"
)

// WizardHandler holds the wizard service.
type WizardHandler struct {
	wizardService *application.WizardService
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(wizardService *application.WizardService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

type idRequest struct {
	ID string `json:"id" binding:"required"`
}

type valueRequest struct {
	Value string `json:"value" binding:"required"`
}

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrPurposeRequired), errors.Is(err, application.ErrStyleRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, application.ErrUnknownPurpose), errors.Is(err, application.ErrUnknownStyle),
		errors.Is(err, application.ErrUnknownComponent):
		return http.StatusNotFound
	case errors.Is(err, application.ErrInvalidFormat):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrResetNotConfirmed):
		return http.StatusPreconditionRequired
	default:
		return http.StatusInternalServerError
	}
}

func respond(c *gin.Context, view application.View, err error) {
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "wizard": view})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetWizardHandler returns the current wizard view.
func (h *WizardHandler) GetWizardHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.wizardService.View())
}

// SelectPurposeHandler handles choosing the design purpose.
func (h *WizardHandler) SelectPurposeHandler(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.wizardService.SelectPurpose(c.Request.Context(), req.ID)
	respond(c, view, err)
}

// SelectStyleHandler handles choosing the visual style.
func (h *WizardHandler) SelectStyleHandler(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.wizardService.SelectStyle(c.Request.Context(), req.ID)
	respond(c, view, err)
}

// ToggleComponentHandler adds or removes one component.
func (h *WizardHandler) ToggleComponentHandler(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.wizardService.ToggleComponent(c.Request.Context(), req.ID)
	respond(c, view, err)
}

// SetColorHandler overrides the primary color.
func (h *WizardHandler) SetColorHandler(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.wizardService.SetColor(c.Request.Context(), req.Value)
	respond(c, view, err)
}

// SetFormatHandler changes the prompt output format.
func (h *WizardHandler) SetFormatHandler(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.wizardService.SetOutputFormat(c.Request.Context(), req.Value)
	respond(c, view, err)
}

// NextStepHandler advances the wizard.
func (h *WizardHandler) NextStepHandler(c *gin.Context) {
	view, err := h.wizardService.AdvanceStep(c.Request.Context())
	respond(c, view, err)
}

// PrevStepHandler moves the wizard back.
func (h *WizardHandler) PrevStepHandler(c *gin.Context) {
	view, err := h.wizardService.RetreatStep(c.Request.Context())
	respond(c, view, err)
}

// ResetHandler restores the defaults when the body carries {"confirm": true}.
func (h *WizardHandler) ResetHandler(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.wizardService.Reset(c.Request.Context(), req.Confirm)
	respond(c, view, err)
}

// GetPromptHandler returns the compiled prompt and its format.
func (h *WizardHandler) GetPromptHandler(c *gin.Context) {
	view := h.wizardService.View()
	c.JSON(http.StatusOK, gin.H{"format": view.State.OutputFormat, "prompt": view.Prompt})
}

// Register mounts the wizard routes on r.
func (h *WizardHandler) Register(r gin.IRouter) {
	wizardGroup := r.Group("/wizard")
	{
		wizardGroup.GET("", h.GetWizardHandler)
		wizardGroup.POST("/purpose", h.SelectPurposeHandler)
		wizardGroup.POST("/style", h.SelectStyleHandler)
		wizardGroup.POST("/components/toggle", h.ToggleComponentHandler)
		wizardGroup.POST("/color", h.SetColorHandler)
		wizardGroup.POST("/format", h.SetFormatHandler)
		wizardGroup.POST("/next", h.NextStepHandler)
		wizardGroup.POST("/prev", h.PrevStepHandler)
		wizardGroup.POST("/reset", h.ResetHandler)
	}
	r.GET("/prompt", h.GetPromptHandler)
}
