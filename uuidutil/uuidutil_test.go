package uuidutil_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utilkit/uuidutil"
)

const (
	dashed  = "123e4567-e89b-12d3-a456-426614174000"
	compact = "123e4567e89b12d3a456426614174000"
)

func TestAddDashes(t *testing.T) {
	assert.Equal(t, dashed, uuidutil.AddDashes(compact))
	assert.Equal(t, "short", uuidutil.AddDashes("short"))
	// no validation: any 32 characters are grouped
	assert.Equal(t, "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz", uuidutil.AddDashes("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"))
}

func TestStripDashes(t *testing.T) {
	assert.Equal(t, compact, uuidutil.StripDashes(dashed))
	assert.Equal(t, compact, uuidutil.StripDashes(compact+"xxxx")[:32])
	assert.Equal(t, "short", uuidutil.StripDashes("short"))
	assert.Equal(t, "123e4567xe89b-12d3-a456-426614174000", uuidutil.StripDashes("123e4567xe89b-12d3-a456-426614174000"))
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		u := uuid.NewString()
		assert.Equal(t, u, uuidutil.AddDashes(uuidutil.StripDashes(u)))
	}
	assert.Equal(t, dashed, uuidutil.AddDashes(uuidutil.StripDashes(dashed)))
}

func TestCanonical(t *testing.T) {
	got, err := uuidutil.Canonical("123E4567E89B12D3A456426614174000")
	require.NoError(t, err)
	assert.Equal(t, dashed, got)

	got, err = uuidutil.Canonical("urn:uuid:" + dashed)
	require.NoError(t, err)
	assert.Equal(t, dashed, got)

	_, err = uuidutil.Canonical("not-a-uuid")
	assert.Error(t, err)
}

func TestNewCompact(t *testing.T) {
	s := uuidutil.NewCompact()
	require.Len(t, s, 32)
	assert.NotContains(t, s, "-")

	id, err := uuid.Parse(uuidutil.AddDashes(s))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}
