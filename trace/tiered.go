// Package trace reconstructs any step of a training run from a sparse,
// tiered index of keyframes rather than storing every iteration's shapes
// (spec §2.10, §6).
package trace

import (
	"fmt"

	"github.com/apvd-go/apvd"
)

// TieredConfig controls which steps are kept as keyframes (spec §6). Its
// yaml tag matches the run configuration's trace section; this package
// does not read YAML itself.
type TieredConfig struct {
	// Intervals lists the keyframe spacing of each tier, e.g.
	// [1, 10, 100] keeps every step of the finest tier and additionally
	// snapshots every 10th and every 100th step.
	Intervals []int `yaml:"intervals"`
}

// Keyframe is one stored snapshot of a training run.
type Keyframe struct {
	Step   int
	Shapes []apvd.Shape
}

// Tiered is a sparse, replay-reconstructible history of a training run.
type Tiered struct {
	Config    TieredConfig
	Keyframes []Keyframe
}

// NewTiered returns an empty Tiered index for cfg.
func NewTiered(cfg TieredConfig) *Tiered {
	return &Tiered{Config: cfg}
}

func (t *Tiered) shouldKeyframe(step int) bool {
	if step == 0 {
		return true
	}
	for _, iv := range t.Config.Intervals {
		if iv > 0 && step%iv == 0 {
			return true
		}
	}
	return false
}

// Record stores shapes as a keyframe for step if the tier configuration
// calls for one there.
func (t *Tiered) Record(step int, shapes []apvd.Shape) {
	if t.shouldKeyframe(step) {
		t.Keyframes = append(t.Keyframes, Keyframe{Step: step, Shapes: shapes})
	}
}

func (t *Tiered) nearestKeyframe(step int) *Keyframe {
	var best *Keyframe
	for i := range t.Keyframes {
		if t.Keyframes[i].Step <= step && (best == nil || t.Keyframes[i].Step > best.Step) {
			best = &t.Keyframes[i]
		}
	}
	return best
}

// Reconstruct rebuilds the shapes at step by replaying opt forward from
// the nearest keyframe at or before it (spec §2.10). opt must be freshly
// initialized: the replay's optimizer state starts at the keyframe, not
// at the run's true step 0, so a stateful optimizer like Adam reproduces
// the original trajectory exactly only when the keyframe is step 0 and
// approximately otherwise.
func (t *Tiered) Reconstruct(step int, masks []apvd.TrainableMask, tm *apvd.TargetsMap, opt apvd.Optimizer) ([]apvd.Shape, error) {
	kf := t.nearestKeyframe(step)
	if kf == nil {
		return nil, fmt.Errorf("trace: no keyframe at or before step %d", step)
	}
	shapes := kf.Shapes
	for s := kf.Step; s < step; s++ {
		m := apvd.NewModel(shapes, masks, tm, opt)
		ok, err := m.Advance()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("trace: model stopped advancing at step %d before reaching %d", s, step)
		}
		shapes = m.Shapes
	}
	return shapes, nil
}
