package lstm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// adam implements the Adam optimizer with bias-corrected first and second
// moment estimates, one moment pair per parameter tensor.
type adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	step  int

	m map[string]*mat.Dense
	v map[string]*mat.Dense
}

func newAdam(lr float64) *adam {
	return &adam{
		lr:    lr,
		beta1: 0.9,
		beta2: 0.999,
		eps:   1e-8,
		m:     make(map[string]*mat.Dense),
		v:     make(map[string]*mat.Dense),
	}
}

// begin advances the shared timestep. Call once per optimizer step, before
// updating the individual tensors.
func (a *adam) begin() {
	a.step++
}

// update applies one Adam step to param in place.
func (a *adam) update(name string, param, grad *mat.Dense) {
	r, c := param.Dims()

	m, ok := a.m[name]
	if !ok {
		m = mat.NewDense(r, c, nil)
		a.m[name] = m
	}
	v, ok := a.v[name]
	if !ok {
		v = mat.NewDense(r, c, nil)
		a.v[name] = v
	}

	c1 := 1 - math.Pow(a.beta1, float64(a.step))
	c2 := 1 - math.Pow(a.beta2, float64(a.step))

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g := grad.At(i, j)
			mij := a.beta1*m.At(i, j) + (1-a.beta1)*g
			vij := a.beta2*v.At(i, j) + (1-a.beta2)*g*g
			m.Set(i, j, mij)
			v.Set(i, j, vij)

			mHat := mij / c1
			vHat := vij / c2
			param.Set(i, j, param.At(i, j)-a.lr*mHat/(math.Sqrt(vHat)+a.eps))
		}
	}
}

// updateScalar applies one Adam step to a scalar parameter, reusing the
// tensor machinery through a 1x1 matrix.
func (a *adam) updateScalar(name string, param *float64, grad float64) {
	p := mat.NewDense(1, 1, []float64{*param})
	g := mat.NewDense(1, 1, []float64{grad})
	a.update(name, p, g)
	*param = p.At(0, 0)
}
