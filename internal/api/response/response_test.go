package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponse(c, http.StatusUnauthorized, "Invalid token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid token"}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

func TestSuccessResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessResponse(c, []map[string]string{{"question": "q", "response": "r"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"question":"q","response":"r"}]`, w.Body.String())
}
