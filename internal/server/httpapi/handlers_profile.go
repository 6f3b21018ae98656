package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// publicProfile handles GET /api/profile/:username. No token required.
func (s *Server) publicProfile(c *gin.Context) {
	p, err := s.profiles.GetPublicProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
