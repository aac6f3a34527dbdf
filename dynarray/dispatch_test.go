package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPivotPolicyString(t *testing.T) {
	assert.Equal(t, "last", PivotLast.String())
	assert.Equal(t, "median3", PivotMedianOfThree.String())
	assert.Equal(t, "random", PivotRandom.String())
	assert.Equal(t, "unknown", PivotPolicy(99).String())
}

func TestParsePivotPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want PivotPolicy
		ok   bool
	}{
		{"", PivotLast, true},
		{"last", PivotLast, true},
		{" Median3 ", PivotMedianOfThree, true},
		{"median-of-three", PivotMedianOfThree, true},
		{"RANDOM", PivotRandom, true},
		{"bogus", PivotLast, false},
	}
	for _, tt := range tests {
		got, ok := ParsePivotPolicy(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
	}
}

func TestPivotEnv(t *testing.T) {
	t.Setenv("DYNARRAY_PIVOT", "random")
	assert.Equal(t, PivotRandom, PivotEnv())

	t.Setenv("DYNARRAY_PIVOT", "nonsense")
	assert.Equal(t, PivotLast, PivotEnv())
}

func TestSetPivotPolicy(t *testing.T) {
	prev := SetPivotPolicy(PivotRandom)
	defer SetPivotPolicy(prev)
	assert.Equal(t, PivotRandom, CurrentPivotPolicy())

	assert.Equal(t, PivotRandom, SetPivotPolicy(PivotPolicy(-4)))
	assert.Equal(t, PivotLast, CurrentPivotPolicy())
}

func TestDebugEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("DYNARRAY_DEBUG", tt.val)
		assert.Equal(t, tt.want, DebugEnv(), "DYNARRAY_DEBUG=%q", tt.val)
	}
}
