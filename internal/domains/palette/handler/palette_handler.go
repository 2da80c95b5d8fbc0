package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	p "palette-backend/internal/domains/palette"
	"palette-backend/internal/shared/response"
)

type PaletteHandler struct {
	service p.Service
}

func NewPaletteHandler(service p.Service) *PaletteHandler {
	return &PaletteHandler{
		service: service,
	}
}

// Analyze handles POST /palettes/analyze
func (h *PaletteHandler) Analyze(c *gin.Context) {
	var req p.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload", err.Error())
		return
	}

	id, err := h.service.Analyze(c.Request.Context(), req.ImageURL)
	if err != nil {
		response.ErrorResponse(c, p.ToHTTPStatus(err), p.ToErrorCode(err), "Failed to analyze palette")
		return
	}

	response.Success(c, http.StatusCreated, p.AnalyzeResponse{ID: id})
}

// GetByID handles GET /palettes/:id
func (h *PaletteHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Palette id must be an integer")
		return
	}

	view, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, p.ToHTTPStatus(err), p.ToErrorCode(err), "Failed to load palette")
		return
	}

	response.Success(c, http.StatusOK, view)
}

// GetLatest handles GET /palettes/latest
func (h *PaletteHandler) GetLatest(c *gin.Context) {
	view, err := h.service.GetLatest(c.Request.Context())
	if err != nil {
		// An empty table is a normal state for this endpoint
		if p.ToErrorCode(err) == "PALETTE_NOT_FOUND" {
			response.Success(c, http.StatusOK, nil)
			return
		}
		response.ErrorResponse(c, p.ToHTTPStatus(err), p.ToErrorCode(err), "Failed to load latest palette")
		return
	}

	response.Success(c, http.StatusOK, view)
}

// RequestEmail handles POST /palettes/:id/email
func (h *PaletteHandler) RequestEmail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Palette id must be an integer")
		return
	}

	var req p.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload", err.Error())
		return
	}

	if err := h.service.RequestEmail(c.Request.Context(), id, req.Email); err != nil {
		response.ErrorResponse(c, p.ToHTTPStatus(err), p.ToErrorCode(err), "Failed to request palette email")
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"queued": true})
}
