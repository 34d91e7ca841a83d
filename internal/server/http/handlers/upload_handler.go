package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
	"github.com/adolfokaiser/precios-api/internal/server/http/dto"
)

// UploadHandler accepts document uploads and returns extracted codes.
type UploadHandler struct {
	facade UploadFacade
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(facade UploadFacade) *UploadHandler {
	return &UploadHandler{facade: facade}
}

// Upload handles POST /upload (multipart form, "file" field).
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file field is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "unable to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "unable to read file"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	extraction, err := h.facade.ExtractDocument(c.Request.Context(), header.Filename, contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUnsupportedFile):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"detail": "unsupported file type, upload .pdf or .xlsx"})
		case errors.Is(err, domainErrors.ErrInvalidFile):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		case errors.Is(err, domainErrors.ErrParserUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "document parser unavailable"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewUploadResponse(*extraction))
}
