package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDListRoundTrip(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	parsed, err := splitIDList(joinIDList(ids))
	require.NoError(t, err)
	assert.Equal(t, ids, parsed, "order must survive the round trip")
}

func TestIDListEmpty(t *testing.T) {
	assert.Equal(t, "", joinIDList(nil))

	parsed, err := splitIDList("")
	require.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestIDListMalformed(t *testing.T) {
	_, err := splitIDList("not-a-uuid+also-bad")
	assert.Error(t, err)
}
