package models

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	url := GravatarURL("jane@example.com")
	assert.Contains(t, url, "https://www.gravatar.com/avatar/")
	assert.Contains(t, url, "s=200")
	assert.Contains(t, url, "r=pg")
	assert.Contains(t, url, "d=mm")

	// Case and surrounding whitespace do not change the digest.
	assert.Equal(t, url, GravatarURL("  Jane@Example.COM "))
	assert.NotEqual(t, url, GravatarURL("other@example.com"))
}

func TestStringList_RoundTrip(t *testing.T) {
	v, err := StringList{"Go", "SQL"}.Value()
	assert.NoError(t, err)

	var got StringList
	assert.NoError(t, got.Scan(v))
	assert.Equal(t, StringList{"Go", "SQL"}, got)
}

func TestStringList_EmptyStoresArray(t *testing.T) {
	v, err := StringList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)

	var got StringList
	assert.NoError(t, got.Scan([]byte("[]")))
	assert.Empty(t, got)
}

func TestAppError_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("bad").HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("Post").HTTPStatus())
	assert.Equal(t, http.StatusConflict, NewConflictError("dup").HTTPStatus())
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("no").HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, NewUnauthenticatedError("who").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, NewInternalError(assert.AnError).HTTPStatus())

	// Upstream 404s stay 404; any other upstream failure is a bad gateway.
	assert.Equal(t, http.StatusNotFound, NewUpstreamError(http.StatusNotFound, "gone").HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, NewUpstreamError(http.StatusForbidden, "limited").HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, NewUpstreamError(http.StatusInternalServerError, "down").HTTPStatus())
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "Profile not found", NewNotFoundError("Profile").Error())
}
