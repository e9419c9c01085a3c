package cmd

import (
	"fmt"

	"github.com/apvd-go/apvd"
)

func buildShape(spec ShapeSpec) (apvd.Shape, error) {
	switch spec.Kind {
	case "circle":
		return apvd.NewCircle(apvd.Real(spec.C[0]), apvd.Real(spec.C[1]), apvd.Real(spec.R)), nil
	case "xyrr":
		return apvd.XYRR{
			C:  apvd.Point{X: apvd.Real(spec.C[0]), Y: apvd.Real(spec.C[1])},
			Rx: apvd.Real(spec.Rx),
			Ry: apvd.Real(spec.Ry),
		}, nil
	case "xyrrt":
		return apvd.XYRRT{
			C:  apvd.Point{X: apvd.Real(spec.C[0]), Y: apvd.Real(spec.C[1])},
			Rx: apvd.Real(spec.Rx),
			Ry: apvd.Real(spec.Ry),
			T:  apvd.Real(spec.T),
		}, nil
	case "polygon":
		verts := make([]apvd.Point, len(spec.Verts))
		for i, v := range spec.Verts {
			verts[i] = apvd.Point{X: apvd.Real(v[0]), Y: apvd.Real(v[1])}
		}
		return apvd.NewPolygon(verts), nil
	}
	return nil, fmt.Errorf("apvd: unknown shape kind %q", spec.Kind)
}

func buildMask(spec ShapeSpec, n int) apvd.TrainableMask {
	if len(spec.Frozen) == 0 {
		return nil
	}
	mask := make(apvd.TrainableMask, n)
	for i := range mask {
		mask[i] = true
	}
	for i, frozen := range spec.Frozen {
		if i < len(mask) && frozen {
			mask[i] = false
		}
	}
	return mask
}

func buildScene(cfg RunConfig) ([]apvd.Shape, []apvd.TrainableMask, error) {
	shapes := make([]apvd.Shape, len(cfg.Shapes))
	masks := make([]apvd.TrainableMask, len(cfg.Shapes))
	for i, spec := range cfg.Shapes {
		s, err := buildShape(spec)
		if err != nil {
			return nil, nil, err
		}
		shapes[i] = s
		masks[i] = buildMask(spec, s.NumCoords())
	}
	return shapes, masks, nil
}
