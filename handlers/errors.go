package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintra-backend/database"
)

// Request-level failures are one of four categories: unauthorized, not-found,
// bad-request or internal, each with a human-readable message. Record-level
// extraction failures never reach here; invalid records are simply dropped.

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func internal(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// storageError translates a database failure into a categorized response.
// Transport detail never leaks, with one exception: a missing table gets a
// migration hint, since that is the common first-run mistake.
func (h *Handler) storageError(c *gin.Context, err error, msg string) {
	h.Log.Error().Err(err).Msg(msg)
	if hint, ok := database.MissingTableHint(err); ok {
		internal(c, hint)
		return
	}
	internal(c, msg)
}
