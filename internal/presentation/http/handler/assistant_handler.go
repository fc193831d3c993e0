package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pattarad/rankha-pos/internal/application/service"
	"github.com/pattarad/rankha-pos/internal/presentation/http/dto/request"
	"github.com/pattarad/rankha-pos/internal/presentation/http/dto/response"
)

// AssistantHandler handles the shopkeeper chat endpoint
type AssistantHandler struct {
	assistantService *service.AssistantService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Ask handles POST /assistant/ask
func (h *AssistantHandler) Ask(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	reply, err := h.assistantService.Ask(c.Request.Context(), *shopID, req.Question)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Assistant replied", reply)
}
