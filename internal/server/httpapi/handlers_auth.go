package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// register handles POST /api/auth/register. A token is not issued here;
// the caller logs in separately.
func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := s.users.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// login handles POST /api/auth/login.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// me handles GET /api/auth/me.
func (s *Server) me(c *gin.Context) {
	user, err := s.users.GetCurrentUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type updateBioRequest struct {
	Bio string `json:"bio"`
}

// updateBio handles PUT /api/auth/bio. An empty bio is a valid value.
func (s *Server) updateBio(c *gin.Context) {
	var req updateBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.users.UpdateBio(c.Request.Context(), currentUserID(c), req.Bio); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "bio updated successfully"})
}
