package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoercePoints(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int
	}{
		{"float truncates", float64(3.9), 3},
		{"int passes through", 7, 7},
		{"int64 passes through", int64(12), 12},
		{"numeric string", "5", 5},
		{"decimal string truncates", "2.8", 2},
		{"negative string", "-4", -4},
		{"non-numeric string", "high", 0},
		{"bool ignored", true, 0},
		{"nil ignored", nil, 0},
		{"map ignored", map[string]interface{}{"a": 1}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, coercePoints(c.input))
		})
	}
}

func TestBasePoints(t *testing.T) {
	data := map[string]interface{}{
		"pushups": "5",
		"mood":    "great",
		"laps":    float64(3),
	}
	assert.Equal(t, 8, basePoints(data))
}

func TestBasePoints_Empty(t *testing.T) {
	assert.Equal(t, 0, basePoints(map[string]interface{}{}))
	assert.Equal(t, 0, basePoints(nil))
}
