package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const PasscodeQueryParam = "passcode"

// MessageResponse carries a fixed human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"` // Confirmation text
} // @Name _MessageResponse

// ErrorResponse carries a fixed human-readable failure reason. The text never
// identifies which check failed beyond what the contract requires.
type ErrorResponse struct {
	Error string `json:"error"` // Failure text
} // @Name _ErrorResponse

func NoMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
		Error: "Method not allowed on this endpoint.",
	})
}

func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: "Page not found.",
	})
}
