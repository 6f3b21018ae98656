package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/linkhub/internal/common"
)

// writeError maps a service error to its status code and a JSON body.
// Internal detail never reaches the client; it goes to the log instead.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error"})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "already exists"})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, common.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid token"})
	case errors.Is(err, common.ErrorForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		s.logger.Error(c.Request.Context(), "internal error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
