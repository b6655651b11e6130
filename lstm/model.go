package lstm

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrNotFitted is returned by Predict before a successful Fit.
var ErrNotFitted = errors.New("lstm: model has not been fitted")

// ErrNonFinite is returned when the model produces NaN or Inf predictions,
// usually a sign of a diverged optimization.
var ErrNonFinite = errors.New("lstm: non-finite prediction")

// Config holds the model hyperparameters.
type Config struct {
	HiddenSize   int     // LSTM hidden units
	Epochs       int     // full passes over the training pairs
	BatchSize    int     // samples per optimizer step
	LearningRate float64 // Adam step size
	Seed         int64   // weight initialization seed
}

// DefaultConfig returns the hyperparameters used for the airline series.
func DefaultConfig() Config {
	return Config{
		HiddenSize:   4,
		Epochs:       100,
		BatchSize:    1,
		LearningRate: 0.01,
		Seed:         1,
	}
}

// Model is an LSTM regressor: a single LSTM cell unrolled over the input
// window, followed by a dense linear head producing one scalar.
type Model struct {
	cfg Config

	// Gate weights, stacked row-wise as [input; forget; candidate; output].
	wx *mat.Dense // (4h x 1)
	wh *mat.Dense // (4h x h)
	b  *mat.Dense // (4h x 1)

	// Dense head.
	wy *mat.Dense // (1 x h)
	by float64

	opt    *adam
	fitted bool

	// LossHistory records the mean squared training loss per epoch.
	LossHistory []float64
}

// gradients accumulates parameter gradients across a batch.
type gradients struct {
	wx, wh, b, wy *mat.Dense
	by            float64
}

func newGradients(h int) *gradients {
	return &gradients{
		wx: mat.NewDense(4*h, 1, nil),
		wh: mat.NewDense(4*h, h, nil),
		b:  mat.NewDense(4*h, 1, nil),
		wy: mat.NewDense(1, h, nil),
	}
}

func (g *gradients) scale(f float64) {
	g.wx.Scale(f, g.wx)
	g.wh.Scale(f, g.wh)
	g.b.Scale(f, g.b)
	g.wy.Scale(f, g.wy)
	g.by *= f
}

// New creates an unfitted model. Zero or negative config fields fall back to
// the defaults.
func New(cfg Config) *Model {
	def := DefaultConfig()
	if cfg.HiddenSize <= 0 {
		cfg.HiddenSize = def.HiddenSize
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = def.Epochs
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = def.LearningRate
	}
	return &Model{cfg: cfg}
}

// Config returns the effective hyperparameters.
func (m *Model) Config() Config {
	return m.cfg
}

// init allocates and seeds the weights. Uniform in [-s, s] with s scaled by
// fan-in, the usual small-weight initialization for sigmoid/tanh gates.
func (m *Model) init() {
	h := m.cfg.HiddenSize
	rng := rand.New(rand.NewSource(m.cfg.Seed))

	uniform := func(rows, cols int, scale float64) *mat.Dense {
		data := make([]float64, rows*cols)
		for i := range data {
			data[i] = (2*rng.Float64() - 1) * scale
		}
		return mat.NewDense(rows, cols, data)
	}

	inScale := 1.0 / math.Sqrt(1+float64(h))
	m.wx = uniform(4*h, 1, inScale)
	m.wh = uniform(4*h, h, inScale)
	m.b = mat.NewDense(4*h, 1, nil)
	// Forget gate bias starts at 1 so early training does not wipe the cell
	// state before the gradients find their footing.
	for j := 0; j < h; j++ {
		m.b.Set(h+j, 0, 1)
	}

	m.wy = uniform(1, h, 1.0/math.Sqrt(float64(h)))
	m.by = 0

	m.opt = newAdam(m.cfg.LearningRate)
}

// Fit trains the model on windowed pairs: X[i] is an input window, Y[i] the
// value immediately following it. Windows must share one length. Training
// iterates in input order, matching the deterministic windowing upstream.
func (m *Model) Fit(X [][]float64, Y []float64) error {
	if len(X) == 0 || len(Y) == 0 {
		return errors.New("lstm: no training pairs")
	}
	if len(X) != len(Y) {
		return errors.Errorf("lstm: input/target length mismatch: %d vs %d", len(X), len(Y))
	}
	width := len(X[0])
	if width == 0 {
		return errors.New("lstm: empty input window")
	}
	for i, w := range X {
		if len(w) != width {
			return errors.Errorf("lstm: window %d has length %d, expected %d", i, len(w), width)
		}
	}

	m.init()
	m.LossHistory = make([]float64, 0, m.cfg.Epochs)
	h := m.cfg.HiddenSize

	for epoch := 0; epoch < m.cfg.Epochs; epoch++ {
		epochLoss := 0.0

		for start := 0; start < len(X); start += m.cfg.BatchSize {
			end := start + m.cfg.BatchSize
			if end > len(X) {
				end = len(X)
			}

			grads := newGradients(h)
			for i := start; i < end; i++ {
				st := m.forward(X[i])
				diff := st.output - Y[i]
				epochLoss += diff * diff
				m.backward(st, 2*diff, grads)
			}
			grads.scale(1 / float64(end-start))

			m.opt.begin()
			m.opt.update("wx", m.wx, grads.wx)
			m.opt.update("wh", m.wh, grads.wh)
			m.opt.update("b", m.b, grads.b)
			m.opt.update("wy", m.wy, grads.wy)
			m.opt.updateScalar("by", &m.by, grads.by)
		}

		epochLoss /= float64(len(X))
		if math.IsNaN(epochLoss) || math.IsInf(epochLoss, 0) {
			return errors.Wrapf(ErrNonFinite, "training diverged at epoch %d", epoch)
		}
		m.LossHistory = append(m.LossHistory, epochLoss)
	}

	m.fitted = true
	return nil
}

// Predict runs each window through the fitted model and returns one scalar
// per window. Non-finite outputs are an error, never silently returned.
func (m *Model) Predict(X [][]float64) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	out := make([]float64, len(X))
	for i, w := range X {
		if len(w) == 0 {
			return nil, errors.Errorf("lstm: empty window at index %d", i)
		}
		st := m.forward(w)
		if math.IsNaN(st.output) || math.IsInf(st.output, 0) {
			return nil, errors.Wrapf(ErrNonFinite, "window %d", i)
		}
		out[i] = st.output
	}
	return out, nil
}

// NumParameters reports the trainable parameter count.
func (m *Model) NumParameters() int {
	h := m.cfg.HiddenSize
	return 4*h*1 + 4*h*h + 4*h + h + 1
}

// Summary returns a one-line description of the architecture.
func (m *Model) Summary() string {
	return fmt.Sprintf("LSTM(hidden=%d) -> Dense(1), %d parameters, Adam(lr=%g)",
		m.cfg.HiddenSize, m.NumParameters(), m.cfg.LearningRate)
}
