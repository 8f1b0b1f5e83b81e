package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navillera/models"
)

func verify(t *testing.T, c *AdminController, password string) (int, map[string]bool) {
	t.Helper()
	w := postJSON(t, c.Verify, "/api/admin/verify", models.AdminVerifyRequest{Password: password})
	var body map[string]bool
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w.Code, body
}

func TestVerifyPassword(t *testing.T) {
	c := NewAdminController("hunter2")

	code, body := verify(t, c, "hunter2")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body["valid"])

	code, body = verify(t, c, "wrong")
	require.Equal(t, http.StatusOK, code)
	assert.False(t, body["valid"])
}

func TestVerifyUnconfigured(t *testing.T) {
	c := NewAdminController("")
	code, _ := verify(t, c, "anything")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}
