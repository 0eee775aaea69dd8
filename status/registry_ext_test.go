package status_test

import (
	"testing"

	"github.com/adeilh/statusx/status"
	"github.com/go-playground/assert/v2"
)

func TestLookupRoundTrip(t *testing.T) {
	for _, e := range status.All() {
		byCode, err := status.ByCode(int(e.Code))
		assert.Equal(t, err, nil)
		assert.Equal(t, byCode, e)

		byName, err := status.ByName(e.Name)
		assert.Equal(t, err, nil)
		assert.Equal(t, byName, e)
	}
}

func TestWellKnownCodes(t *testing.T) {
	assert.Equal(t, int(status.OK), 200)
	assert.Equal(t, int(status.NotFound), 404)
	assert.Equal(t, int(status.InternalServerError), 500)

	e, err := status.ByName("NOT_FOUND")
	assert.Equal(t, err, nil)
	assert.Equal(t, e.Code, status.NotFound)
	assert.Equal(t, e.Class, status.ClientError)
}

func TestClassSizes(t *testing.T) {
	assert.Equal(t, len(status.ByClass(status.Informational)), 4)
	assert.Equal(t, len(status.ByClass(status.Success)), 10)
	assert.Equal(t, len(status.ByClass(status.Redirection)), 9)
	assert.Equal(t, len(status.ByClass(status.ClientError)), 29)
	assert.Equal(t, len(status.ByClass(status.ServerError)), 11)
	assert.Equal(t, len(status.All()), 63)
}
