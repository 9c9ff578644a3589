package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	ok := New(http.StatusCreated, "payload", "created")
	assert.True(t, ok.Success)
	assert.Equal(t, http.StatusCreated, ok.StatusCode)
	assert.Equal(t, "payload", ok.Data)

	bad := New(http.StatusNotFound, nil, "missing")
	assert.False(t, bad.Success)
	assert.Nil(t, bad.Data)
}
