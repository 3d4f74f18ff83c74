package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NotFound("appeal %s not found", "abc")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.Equal(t, "appeal abc not found", err.Error())

	// Wrapped errors still resolve
	wrapped := fmt.Errorf("outer: %w", err)
	kind, ok = KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed")
	err := Wrap(cause, KindConflict, "file number already exists")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "file number already exists")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindValidation))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(KindConflict))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(KindPermission))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Kind("other")))
}
