package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("name"), http.StatusBadRequest},
		{"invalid", Invalid("progress", "must be between 0 and 100"), http.StatusBadRequest},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"not found", NotFound("character not found"), http.StatusNotFound},
		{"conflict", Conflict("race name already in use"), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestKindedErrorsMatchSentinels(t *testing.T) {
	assert.ErrorIs(t, NotFound("story not found"), ErrNotFound)
	assert.ErrorIs(t, Conflict("in use"), ErrConflict)
	assert.Equal(t, "story not found", NotFound("story not found").Error())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "name is required", Message(Validation("name")))
	assert.Equal(t, "race not found", Message(NotFound("race not found")))
	// internal errors never leak their text
	assert.Equal(t, "internal server error", Message(errors.New("pq: connection refused")))
}
