package middleware

import (
	"net/http"

	"github.com/ariebrainware/medi-help/controller"
	"github.com/gin-gonic/gin"
)

const controllerKey = "controller"

// CORSMiddleware configures CORS headers for incoming requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		setCorsHeaders(c)

		// For preflight requests, respond with 204 and abort further processing.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func setCorsHeaders(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
	h.Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Authorization")
	h.Set("Access-Control-Max-Age", "86400")
	h.Set("Content-Type", "application/json")
}

// ControllerMiddleware makes ctrl available to handlers through GetController.
func ControllerMiddleware(ctrl *controller.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(controllerKey, ctrl)
		c.Next()
	}
}

// GetController returns the controller set by ControllerMiddleware, or nil.
func GetController(c *gin.Context) *controller.Controller {
	v, ok := c.Get(controllerKey)
	if !ok {
		return nil
	}
	ctrl, _ := v.(*controller.Controller)
	return ctrl
}
