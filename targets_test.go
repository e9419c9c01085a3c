package apvd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetsMapClosesFromDigitsAlone(t *testing.T) {
	tm, err := NewTargetsMap(2, map[string]float64{
		"0-": 2,
		"-1": 2,
		"01": 1,
	})
	require.NoError(t, err)

	v, ok := tm.Area(RegionKey("0-"))
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	// all 9 keys of a 2-set alphabet must be present
	for _, k := range []string{"--", "0-", "-1", "01", "*-", "-*", "0*", "*1", "**"} {
		_, ok := tm.Area(RegionKey(k))
		assert.True(t, ok, "missing derived key %q", k)
	}
}

func TestTargetsMapStarIsUnionOfDigitAndDash(t *testing.T) {
	tm, err := NewTargetsMap(2, map[string]float64{
		"0-": 2,
		"-1": 3,
		"01": 1,
	})
	require.NoError(t, err)

	star, ok := tm.Area(RegionKey("0*"))
	require.True(t, ok)
	dash, _ := tm.Area(RegionKey("0-"))
	digit, _ := tm.Area(RegionKey("01"))
	assert.Equal(t, dash+digit, star)
}

func TestTargetsMapUnderDeterminedReturnsError(t *testing.T) {
	_, err := NewTargetsMap(3, map[string]float64{
		"0--": 1,
	})
	assert.Error(t, err)
	var te *TargetsError
	assert.ErrorAs(t, err, &te)
}

func TestTargetsMapFullySpecifiedNeedsNoClosure(t *testing.T) {
	raw := map[string]float64{}
	// enumerate all 9 keys of the 2-set alphabet directly
	alphabet := []byte{'0', '-', '*'}
	for _, a := range alphabet {
		for _, b := range alphabet {
			raw[string([]byte{a, b})] = 1
		}
	}
	tm, err := NewTargetsMap(2, raw)
	require.NoError(t, err)
	v, ok := tm.Area(RegionKey("**"))
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
}
