package controller

import (
	"ctchen222/travel-assistant/internal/api/middleware"
	"ctchen222/travel-assistant/internal/api/models"
	"ctchen222/travel-assistant/internal/api/response"
	"ctchen222/travel-assistant/internal/api/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AssistantController handles the authenticated question and history endpoints.
// Both handlers expect middleware.BearerAuth to have run.
type AssistantController struct {
	assistantService service.AssistantService
}

// NewAssistantController creates a new AssistantController.
func NewAssistantController(assistantService service.AssistantService) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// Ask handles POST /ask.
func (ac *AssistantController) Ask(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := ac.assistantService.Ask(c.Request.Context(), userID, req.Question)
	if err != nil {
		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			response.ErrorResponse(c, http.StatusInternalServerError, "AI provider error: "+upstream.Err.Error())
			return
		}
		internalError(c, "ask", err)
		return
	}

	response.SuccessResponse(c, models.AskResponse{Response: answer})
}

// History handles GET /history.
func (ac *AssistantController) History(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	entries, err := ac.assistantService.History(c.Request.Context(), userID)
	if err != nil {
		internalError(c, "history", err)
		return
	}

	response.SuccessResponse(c, entries)
}
