package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/abhishek622/moodgap/pkg/response"
)

// Health reports liveness
// GET /healthz
func (app *Handler) Health(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ok",
		"version": app.Version,
	})
}

// RequestID retrieves the id the request-id middleware attached to the
// current request; empty when the middleware did not run.
func RequestID(c *gin.Context) string {
	return c.GetString("request_id")
}
