package apvd

// Point is a 2D point over a generic scalar, the apvd equivalent of
// gogeo's d3.Vec3 cut down to the plane and made polymorphic over Num
// instead of float32.
type Point struct {
	X, Y Num
}

// NewPoint returns the point (x,y).
func NewPoint(x, y Num) Point { return Point{X: x, Y: y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X.Sub(q.X), p.Y.Sub(q.Y)} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X.Add(q.X), p.Y.Add(q.Y)} }

// Scale returns p scaled by the scalar s.
func (p Point) Scale(s Num) Point { return Point{p.X.Mul(s), p.Y.Mul(s)} }

// Dot returns the dot product p.q.
func (p Point) Dot(q Point) Num { return p.X.Mul(q.X).Add(p.Y.Mul(q.Y)) }

// Cross returns the z-component of the 2D cross product p x q.
func (p Point) Cross(q Point) Num { return p.X.Mul(q.Y).Sub(p.Y.Mul(q.X)) }

// DistSqr returns the squared distance between p and q.
func (p Point) DistSqr(q Point) Num {
	d := p.Sub(q)
	return d.Dot(d)
}

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) Num { return p.DistSqr(q).Sqrt() }

// Float returns the (float64,float64) value of p, discarding any gradient.
func (p Point) Float() (float64, float64) { return p.X.Val(), p.Y.Val() }
