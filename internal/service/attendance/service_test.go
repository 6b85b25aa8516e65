package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPresence_FirstScanMarksIn(t *testing.T) {
	assert.True(t, nextPresence(nil))
}

func TestNextPresence_Alternates(t *testing.T) {
	in := true
	out := false
	assert.False(t, nextPresence(&in))
	assert.True(t, nextPresence(&out))
}

func TestNextPresence_Sequence(t *testing.T) {
	// Scans always alternate regardless of how much time passes between them.
	var last *bool
	want := []bool{true, false, true, false, true}
	for i, expected := range want {
		got := nextPresence(last)
		assert.Equal(t, expected, got, "scan %d", i+1)
		last = &got
	}
}

func TestPresenceMessage(t *testing.T) {
	assert.Equal(t, "Attendance marked as in", presenceMessage(true))
	assert.Equal(t, "Attendance marked as out", presenceMessage(false))
}
