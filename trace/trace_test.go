package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apvd-go/apvd"
	"github.com/apvd-go/apvd/optim"
)

func twoCircleTargets(t *testing.T) *apvd.TargetsMap {
	tm, err := apvd.NewTargetsMap(2, map[string]float64{
		"0-": 2,
		"-1": 2,
		"01": 1,
	})
	require.NoError(t, err)
	return tm
}

func TestTieredRecordsOnlyConfiguredSteps(t *testing.T) {
	tr := NewTiered(TieredConfig{Intervals: []int{10}})
	shapes := []apvd.Shape{apvd.NewCircle(apvd.Real(0), apvd.Real(0), apvd.Real(1))}
	for s := 0; s < 25; s++ {
		tr.Record(s, shapes)
	}
	var steps []int
	for _, kf := range tr.Keyframes {
		steps = append(steps, kf.Step)
	}
	assert.Equal(t, []int{0, 10, 20}, steps)
}

func TestTieredReconstructReplaysForward(t *testing.T) {
	shapes := []apvd.Shape{
		apvd.NewCircle(apvd.Real(-0.5), apvd.Real(0), apvd.Real(1)),
		apvd.NewCircle(apvd.Real(0.5), apvd.Real(0), apvd.Real(1)),
	}
	tm := twoCircleTargets(t)
	// interval 3 keeps steps 0 and 3, so reconstructing step 5 replays
	// two steps forward from the step-3 keyframe
	tr := NewTiered(TieredConfig{Intervals: []int{3}})

	opt := optim.NewGD(0.01)
	m := apvd.NewModel(shapes, nil, tm, opt)
	tr.Record(0, m.Shapes)
	for s := 1; s <= 5; s++ {
		ok, err := m.Advance()
		require.NoError(t, err)
		require.True(t, ok)
		tr.Record(s, m.Shapes)
	}

	replayOpt := optim.NewGD(0.01)
	got, err := tr.Reconstruct(5, nil, tm, replayOpt)
	require.NoError(t, err)

	for i := range got {
		wantX, wantY := m.Shapes[i].Center().Float()
		gotX, gotY := got[i].Center().Float()
		assert.InDelta(t, wantX, gotX, 1e-9)
		assert.InDelta(t, wantY, gotY, 1e-9)
	}
}

func TestTieredReconstructErrorsWithoutKeyframe(t *testing.T) {
	tr := NewTiered(TieredConfig{Intervals: []int{10}})
	_, err := tr.Reconstruct(5, nil, twoCircleTargets(t), optim.NewGD(0.01))
	assert.Error(t, err)
}
