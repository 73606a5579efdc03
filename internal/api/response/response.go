package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the body of every failed request.
type Error struct {
	Detail string `json:"detail"`
}


// SuccessResponse writes body as a 200 JSON response.
func SuccessResponse(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// ErrorResponse aborts the request with code and a {"detail": message} body.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Error{Detail: message})
}
