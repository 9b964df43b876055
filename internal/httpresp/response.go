package httpresp

import "github.com/gin-gonic/gin"

type Ack struct {
	Success bool `json:"success"`
}

// OK writes data as-is; list endpoints return plain arrays, which is the
// shape the frontend consumes.
func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// Success is the acknowledgment returned by every mutation.
func Success(c *gin.Context) {
	c.JSON(200, Ack{Success: true})
}
