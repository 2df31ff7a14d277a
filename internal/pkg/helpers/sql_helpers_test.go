package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNullString(t *testing.T) {
	assert.False(t, GetNullString(nil).Valid)

	name := ""
	ns := GetNullString(&name)
	assert.True(t, ns.Valid, "empty string is a value, not NULL")
	assert.Equal(t, "", ns.String)
}

func TestGetNullInt64(t *testing.T) {
	assert.False(t, GetNullInt64(nil).Valid)

	zero := int64(0)
	ni := GetNullInt64(&zero)
	assert.True(t, ni.Valid)
	assert.Equal(t, int64(0), ni.Int64)
}

func TestInt64OrDefault(t *testing.T) {
	five := int64(5)
	assert.Equal(t, int64(5), Int64OrDefault(&five, 0))
	assert.Equal(t, int64(0), Int64OrDefault(nil, 0))
}

func TestStringOrDefault(t *testing.T) {
	name := "abc123"
	assert.Equal(t, "abc123", StringOrDefault(&name, ""))
	assert.Equal(t, "", StringOrDefault(nil, ""))
}
