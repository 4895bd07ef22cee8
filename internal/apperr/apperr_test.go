package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	// Kind survives wrapping
	wrapped := fmt.Errorf("context: %w", InsufficientBalance("too poor"))
	assert.Equal(t, KindInsufficientBalance, KindOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("bad input")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InsufficientBalance("no funds")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Expired("otp expired")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("missing")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("duplicate")))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(Authentication("bad token")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden("denied")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestMessageHidesInternals(t *testing.T) {
	err := Internal(errors.New("dial tcp: connection refused"))
	assert.Equal(t, "internal server error", Message(err, "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("raw"), "fallback"))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Wrap(KindNotFound, "gone", cause)
	assert.ErrorIs(t, err, cause)
}
