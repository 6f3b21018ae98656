package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createLinkRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

// createLink handles POST /api/links.
func (s *Server) createLink(c *gin.Context) {
	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	link, err := s.links.CreateLink(c.Request.Context(), currentUserID(c), req.Title, req.URL)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// listLinks handles GET /api/links.
func (s *Server) listLinks(c *gin.Context) {
	result, err := s.links.ListLinks(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type updateLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// updateLink handles PUT /api/links/:id. Absent fields keep their prior value.
func (s *Server) updateLink(c *gin.Context) {
	var req updateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	link, err := s.links.UpdateLink(c.Request.Context(), currentUserID(c), c.Param("id"), req.Title, req.URL)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// toggleVisibility handles PATCH /api/links/:id/toggle-visibility.
func (s *Server) toggleVisibility(c *gin.Context) {
	link, err := s.links.ToggleVisibility(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

type reorderRequest struct {
	LinkIDs []string `json:"linkIds" binding:"required"`
}

// reorderLinks handles POST /api/links/reorder.
func (s *Server) reorderLinks(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.links.Reorder(c.Request.Context(), currentUserID(c), req.LinkIDs)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// deleteLink handles DELETE /api/links/:id.
func (s *Server) deleteLink(c *gin.Context) {
	if err := s.links.DeleteLink(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "link deleted"})
}
