package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapToHTTPStatus(t *testing.T) {
	cases := []struct {
		err      error
		status   int
		category string
	}{
		{NewValidationError("x"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{NewNotFoundError("x"), http.StatusNotFound, "NOT_FOUND"},
		{NewForbiddenError("x"), http.StatusForbidden, "FORBIDDEN"},
		{NewTooManyRequestsError("x"), http.StatusTooManyRequests, "RATE_LIMITED"},
		{NewInternalError("x", errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{errors.New("cru"), http.StatusInternalServerError, "UNKNOWN_ERROR"},
	}
	for _, c := range cases {
		status, category, _ := MapToHTTPStatus(c.err)
		assert.Equal(t, c.status, status)
		assert.Equal(t, c.category, category)
	}
}

func TestMapToHTTPStatus_MasksInternalMessage(t *testing.T) {
	_, _, msg := MapToHTTPStatus(NewDBError("insert falhou", errors.New("senha no dsn")))
	assert.NotContains(t, msg, "senha")
}
