package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pattarad/rankha-pos/internal/application/service"
	"github.com/pattarad/rankha-pos/internal/presentation/http/dto/request"
	"github.com/pattarad/rankha-pos/internal/presentation/http/dto/response"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// ShiftHandler handles cash drawer shift endpoints
type ShiftHandler struct {
	shiftService *service.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// Open handles POST /shifts/open
func (h *ShiftHandler) Open(c *gin.Context) {
	shopID := GetShopID(c)
	userID := GetUserID(c)
	if shopID == nil || userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	shift, err := h.shiftService.OpenShift(c.Request.Context(), *shopID, &service.OpenShiftInput{
		UserID:      *userID,
		OpeningCash: req.OpeningCash,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Shift opened", shift)
}

// Close handles POST /shifts/close
func (h *ShiftHandler) Close(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	shift, err := h.shiftService.CloseShift(c.Request.Context(), *shopID, &service.CloseShiftInput{
		ActualCash: req.ActualCash,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift closed", shift)
}

// Current handles GET /shifts/current
func (h *ShiftHandler) Current(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	shift, err := h.shiftService.GetCurrentShift(c.Request.Context(), *shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Current shift retrieved", shift)
}

// Get handles GET /shifts/:id
func (h *ShiftHandler) Get(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shift ID")
		return
	}

	shift, err := h.shiftService.GetShift(c.Request.Context(), *shopID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift retrieved", shift)
}

// List handles GET /shifts
func (h *ShiftHandler) List(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.shiftService.ListShifts(c.Request.Context(), *shopID, &pageParams)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Shifts retrieved", result)
}
