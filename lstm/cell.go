package lstm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// cellState caches one forward pass through the unrolled cell so the backward
// pass can replay it. Index t holds the state after consuming input t.
type cellState struct {
	xs     []float64    // raw inputs, one scalar per step
	hs     []*mat.Dense // hidden state after each step, (h x 1)
	cs     []*mat.Dense // cell state after each step, (h x 1)
	ig     []*mat.Dense // input gate activations
	fg     []*mat.Dense // forget gate activations
	gg     []*mat.Dense // candidate activations
	og     []*mat.Dense // output gate activations
	output float64      // dense head output
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// forward runs one window through the cell and dense head, returning the
// prediction and the cached per-step state. Gate weights are stacked row-wise
// in wx/wh/b as [input; forget; candidate; output], h rows each.
func (m *Model) forward(window []float64) *cellState {
	h := m.cfg.HiddenSize
	steps := len(window)

	st := &cellState{
		xs: window,
		hs: make([]*mat.Dense, steps),
		cs: make([]*mat.Dense, steps),
		ig: make([]*mat.Dense, steps),
		fg: make([]*mat.Dense, steps),
		gg: make([]*mat.Dense, steps),
		og: make([]*mat.Dense, steps),
	}

	hPrev := mat.NewDense(h, 1, nil)
	cPrev := mat.NewDense(h, 1, nil)

	for t := 0; t < steps; t++ {
		x := window[t]

		ig := mat.NewDense(h, 1, nil)
		fg := mat.NewDense(h, 1, nil)
		gg := mat.NewDense(h, 1, nil)
		og := mat.NewDense(h, 1, nil)
		cNew := mat.NewDense(h, 1, nil)
		hNew := mat.NewDense(h, 1, nil)

		for j := 0; j < h; j++ {
			// Pre-activations: wx*x + wh*hPrev + b, one gate block at a time.
			zi := m.wx.At(j, 0)*x + m.b.At(j, 0)
			zf := m.wx.At(h+j, 0)*x + m.b.At(h+j, 0)
			zg := m.wx.At(2*h+j, 0)*x + m.b.At(2*h+j, 0)
			zo := m.wx.At(3*h+j, 0)*x + m.b.At(3*h+j, 0)
			for p := 0; p < h; p++ {
				hp := hPrev.At(p, 0)
				zi += m.wh.At(j, p) * hp
				zf += m.wh.At(h+j, p) * hp
				zg += m.wh.At(2*h+j, p) * hp
				zo += m.wh.At(3*h+j, p) * hp
			}

			i := sigmoid(zi)
			f := sigmoid(zf)
			g := math.Tanh(zg)
			o := sigmoid(zo)

			c := f*cPrev.At(j, 0) + i*g

			ig.Set(j, 0, i)
			fg.Set(j, 0, f)
			gg.Set(j, 0, g)
			og.Set(j, 0, o)
			cNew.Set(j, 0, c)
			hNew.Set(j, 0, o*math.Tanh(c))
		}

		st.ig[t], st.fg[t], st.gg[t], st.og[t] = ig, fg, gg, og
		st.cs[t], st.hs[t] = cNew, hNew
		hPrev, cPrev = hNew, cNew
	}

	out := m.by
	for j := 0; j < h; j++ {
		out += m.wy.At(0, j) * hPrev.At(j, 0)
	}
	st.output = out
	return st
}

// backward computes gradients for one sample via backpropagation through time
// and accumulates them into grads. dOut is dLoss/dOutput at the dense head.
func (m *Model) backward(st *cellState, dOut float64, grads *gradients) {
	h := m.cfg.HiddenSize
	steps := len(st.xs)

	// Dense head.
	last := st.hs[steps-1]
	for j := 0; j < h; j++ {
		grads.wy.Set(0, j, grads.wy.At(0, j)+dOut*last.At(j, 0))
	}
	grads.by += dOut

	dh := mat.NewDense(h, 1, nil)
	dc := mat.NewDense(h, 1, nil)
	for j := 0; j < h; j++ {
		dh.Set(j, 0, dOut*m.wy.At(0, j))
	}

	for t := steps - 1; t >= 0; t-- {
		var cPrev *mat.Dense
		if t > 0 {
			cPrev = st.cs[t-1]
		}
		var hPrev *mat.Dense
		if t > 0 {
			hPrev = st.hs[t-1]
		}

		dz := make([]float64, 4*h)
		for j := 0; j < h; j++ {
			i := st.ig[t].At(j, 0)
			f := st.fg[t].At(j, 0)
			g := st.gg[t].At(j, 0)
			o := st.og[t].At(j, 0)
			c := st.cs[t].At(j, 0)
			tc := math.Tanh(c)

			dcj := dc.At(j, 0) + dh.At(j, 0)*o*(1-tc*tc)

			cp := 0.0
			if cPrev != nil {
				cp = cPrev.At(j, 0)
			}

			// Gate order matches the forward stacking: input, forget,
			// candidate, output.
			dz[j] = dcj * g * i * (1 - i)
			dz[h+j] = dcj * cp * f * (1 - f)
			dz[2*h+j] = dcj * i * (1 - g*g)
			dz[3*h+j] = dh.At(j, 0) * tc * o * (1 - o)

			dc.Set(j, 0, dcj*f)
		}

		x := st.xs[t]
		dhPrev := mat.NewDense(h, 1, nil)
		for r := 0; r < 4*h; r++ {
			grads.wx.Set(r, 0, grads.wx.At(r, 0)+dz[r]*x)
			grads.b.Set(r, 0, grads.b.At(r, 0)+dz[r])
			for p := 0; p < h; p++ {
				hp := 0.0
				if hPrev != nil {
					hp = hPrev.At(p, 0)
				}
				grads.wh.Set(r, p, grads.wh.At(r, p)+dz[r]*hp)
				dhPrev.Set(p, 0, dhPrev.At(p, 0)+m.wh.At(r, p)*dz[r])
			}
		}
		dh = dhPrev
	}
}
