// Package response writes the API's flat JSON bodies: payloads as-is
// on success, `{"message": "..."}` with a real HTTP status on failure.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gigboard/internal/apperr"
)

type Message struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) { c.JSON(http.StatusOK, data) }

func Created(c *gin.Context, data any) { c.JSON(http.StatusCreated, data) }

func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Message{Message: msg})
}

// Fail maps a service error onto the wire. Untyped errors answer a
// generic 500; the cause stays server-side via gin's error stack for
// the access log.
func Fail(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Err != nil {
			_ = c.Error(ae.Err)
		}
		Error(c, ae.Status, ae.Message)
		return
	}
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, "Server error")
}
