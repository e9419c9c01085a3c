package apvd

import "fmt"

// Optimizer advances a set of shapes by one iteration given the current
// gradient (spec §4.8); the optim subpackage provides the concrete
// implementations (vanilla GD, Adam, clipped GD, and the robust
// combination of the three).
type Optimizer interface {
	Step(coords []float64, gradient []float64) []float64
}

// Model drives the optimization loop, keeping an append-only history of
// every Step and tracking the best one seen (spec §2.9, §3.6).
type Model struct {
	Shapes    []Shape
	Masks     []TrainableMask
	Targets   *TargetsMap
	Optimizer Optimizer
	Log       Log

	History  []*Step
	BestStep int // index into History

	seenCoords map[string][]float64
}

// NewModel returns a Model ready to Advance, with masks[i]==nil meaning
// "every coordinate of shapes[i] is trainable".
func NewModel(shapes []Shape, masks []TrainableMask, tm *TargetsMap, opt Optimizer) *Model {
	return &Model{
		Shapes:     shapes,
		Masks:      masks,
		Targets:    tm,
		Optimizer:  opt,
		BestStep:   -1,
		seenCoords: map[string][]float64{},
	}
}

// Advance runs one iteration: dualize the current shapes, build a Step,
// update the best-step record, detect exact-coordinate cycles, and
// apply the optimizer to produce the next iteration's shapes (spec
// §2.9). It returns false once a cycle is detected or a step produces a
// non-normal loss, at which point the model has stopped advancing but
// its History is left intact for inspection.
func (m *Model) Advance() (bool, error) {
	dualShapes, g := DualizeShapes(m.Shapes, m.Masks)
	step, err := NewStep(len(m.History), dualShapes, m.Targets, g)
	if err != nil {
		m.Log.Error("step %d: %v", len(m.History), err)
		return false, err
	}
	m.History = append(m.History, step)

	if !step.Loss.IsNormal() {
		m.Log.Warning("step %d: non-normal loss, stopping", step.Index)
		return false, nil
	}

	if m.BestStep < 0 || step.Loss.Val() < m.History[m.BestStep].Loss.Val() {
		m.BestStep = step.Index
	}

	key := fmt.Sprintf("%v", FloatCoords(m.Shapes, m.Masks))
	if prev, ok := m.seenCoords[key]; ok {
		m.Log.Progress("step %d: repeats coordinates first seen earlier (cycle), stopping", step.Index)
		_ = prev
		return false, nil
	}
	m.seenCoords[key] = FloatCoords(m.Shapes, m.Masks)

	coords := FloatCoords(m.Shapes, m.Masks)
	next := m.Optimizer.Step(coords, step.Gradient)
	delta := make([]float64, len(next))
	for i := range next {
		delta[i] = next[i] - coords[i]
	}
	m.Shapes = UpdateShapes(m.Shapes, m.Masks, delta)
	return true, nil
}

// Best returns the lowest-loss Step recorded so far.
func (m *Model) Best() *Step {
	if m.BestStep < 0 {
		return nil
	}
	return m.History[m.BestStep]
}
