package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barbearia-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-agenda/internal/httperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.Invalid(domain.ReasonOutsideHours), http.StatusBadRequest, "outside_business_hours"},
		{"closed day", domain.Invalid(domain.ReasonClosedDay), http.StatusBadRequest, "closed_day"},
		{"conflict", domain.ConflictError{BarberID: 1, Date: "2026-10-26", Time: "10:00"}, http.StatusConflict, "slot_taken"},
		{"storage", domain.StorageError{Op: "create", Err: errors.New("boom")}, http.StatusServiceUnavailable, "storage_unavailable"},
		{"not found", httperr.ErrBusiness("appointment_not_found"), http.StatusNotFound, "appointment_not_found"},
		{"invalid state", httperr.ErrBusiness("invalid_state"), http.StatusBadRequest, "invalid_state"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)

			var body httperr.HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		_, err := parseID(raw)
		assert.Error(t, err, raw)
	}
}
