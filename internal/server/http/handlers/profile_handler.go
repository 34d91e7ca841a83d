package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
	"github.com/adolfokaiser/precios-api/internal/server/http/dto"
)

// ProfileHandler manages the authenticated user's own record.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Read handles GET /profile.
func (h *ProfileHandler) Read(c *gin.Context) {
	user, err := h.facade.Profile(c.Request.Context(), CurrentSubject(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponse{Email: user.Email, Name: user.Name})
}

// Update handles PUT /profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.facade.UpdateProfile(c.Request.Context(), CurrentSubject(c), req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNothingToUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "nothing to update"})
		case errors.Is(err, domainErrors.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "email already registered"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{Email: user.Email, Name: user.Name})
}
