package httperr

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("invalid_state")

	assert.True(t, IsBusiness(err, "invalid_state"))
	assert.False(t, IsBusiness(err, "appointment_not_found"))
	assert.True(t, IsBusiness(fmt.Errorf("cancel: %w", err), "invalid_state"))
	assert.False(t, IsBusiness(assert.AnError, "invalid_state"))
}

func TestWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Conflict(c, "slot_taken", "Horário ocupado.")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error_code":"slot_taken","message":"Horário ocupado."}`, w.Body.String())
}
