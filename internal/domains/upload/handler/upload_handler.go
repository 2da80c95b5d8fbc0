package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	u "palette-backend/internal/domains/upload"
	"palette-backend/internal/shared/response"
)

// maxUploadBytes bounds the multipart read before image validation runs
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	service u.Service
}

func NewUploadHandler(service u.Service) *UploadHandler {
	return &UploadHandler{
		service: service,
	}
}

// Upload handles POST /uploads (multipart form, field "photo")
func (h *UploadHandler) Upload(c *gin.Context) {
	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		response.BadRequest(c, "Missing photo file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		response.BadRequest(c, "Failed to read photo")
		return
	}
	if len(data) > maxUploadBytes {
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Photo exceeds 10MB")
		return
	}

	result, err := h.service.StorePhoto(c.Request.Context(), data)
	if err != nil {
		if errors.Is(err, u.ErrInvalidImage) {
			response.ErrorResponse(c, http.StatusBadRequest, "INVALID_IMAGE", "Only JPEG and PNG photos are accepted")
			return
		}
		response.InternalServerError(c, "Failed to store photo")
		return
	}

	response.Success(c, http.StatusCreated, result)
}
