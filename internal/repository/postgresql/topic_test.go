package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDOnly(t *testing.T) {
	ids := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"not-a-uuid",
		"",
		"123E4567-E89B-12D3-A456-426614174001",
		"123e4567e89b12d3a456426614174000",
	}
	assert.Equal(t, []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174001",
	}, uuidOnly(ids))
}

func TestUUIDOnly_AllMalformed(t *testing.T) {
	assert.Empty(t, uuidOnly([]string{"garbage", "42"}))
	assert.Empty(t, uuidOnly(nil))
}
