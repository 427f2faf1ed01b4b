package utils

import (
	"log"

	"github.com/gin-gonic/gin"
)

func SuccessResponse(message string, data interface{}) gin.H {
	resp := gin.H{
		"status":  "success",
		"message": message,
	}
	if data != nil {
		resp["data"] = data
	}
	return resp
}

func FailedResponse(message string) gin.H {
	return gin.H{
		"status":  "error",
		"message": message,
	}
}

// RespondError writes the envelope for a service error. The full error is
// logged here; the client only ever sees ClientMessage.
func RespondError(c *gin.Context, err error) {
	log.Println("request failed:", c.Request.Method, c.FullPath(), "-", err)
	c.JSON(StatusCode(err), FailedResponse(ClientMessage(err)))
}
