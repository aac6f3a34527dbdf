package dynarray

import (
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

// PivotPolicy selects which element of a range becomes the partition pivot.
type PivotPolicy int

const (
	// PivotLast uses the last element of the range. This is the default.
	// Already-sorted and reverse-sorted inputs degrade to O(n²).
	PivotLast PivotPolicy = iota

	// PivotMedianOfThree uses the median of the first, middle and last elements.
	PivotMedianOfThree

	// PivotRandom uses a uniformly random element of the range.
	PivotRandom
)

// String returns a human-readable name for the pivot policy.
func (p PivotPolicy) String() string {
	switch p {
	case PivotLast:
		return "last"
	case PivotMedianOfThree:
		return "median3"
	case PivotRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParsePivotPolicy maps a policy name to a PivotPolicy.
// Accepts the names returned by String, case-insensitively.
func ParsePivotPolicy(name string) (PivotPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "last", "":
		return PivotLast, true
	case "median3", "median-of-three", "median":
		return PivotMedianOfThree, true
	case "random", "rand":
		return PivotRandom, true
	default:
		return PivotLast, false
	}
}

// currentPivot is the process-wide default pivot policy.
// Set by init() from DYNARRAY_PIVOT and by SetPivotPolicy.
var currentPivot atomic.Int32

func init() {
	currentPivot.Store(int32(PivotEnv()))
	debugEnabled.Store(DebugEnv())
}

// CurrentPivotPolicy returns the pivot policy used by lists that do not set
// their own.
func CurrentPivotPolicy() PivotPolicy {
	return PivotPolicy(currentPivot.Load())
}

// SetPivotPolicy changes the process-wide default pivot policy and returns
// the previous one.
func SetPivotPolicy(p PivotPolicy) PivotPolicy {
	if p < PivotLast || p > PivotRandom {
		p = PivotLast
	}
	return PivotPolicy(currentPivot.Swap(int32(p)))
}

// PivotEnv reads the DYNARRAY_PIVOT environment variable.
// Unset or unrecognized values select PivotLast.
func PivotEnv() PivotPolicy {
	p, _ := ParsePivotPolicy(os.Getenv("DYNARRAY_PIVOT"))
	return p
}

// DebugEnv checks if the DYNARRAY_DEBUG environment variable is set.
func DebugEnv() bool {
	val := os.Getenv("DYNARRAY_DEBUG")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
