// Package lstm implements a small LSTM regressor for one-step-ahead series
// prediction.
//
// The model is a single LSTM cell unrolled over the input window (one scalar
// per step) followed by a dense linear head. Training uses full
// backpropagation through time, mean squared error loss, and the Adam
// optimizer. Weight initialization is seeded, so a fixed configuration always
// produces the same fitted model.
//
// # Usage
//
// Fit a model on windowed pairs and predict:
//
//	model := lstm.New(lstm.Config{
//	    HiddenSize:   4,
//	    Epochs:       100,
//	    LearningRate: 0.01,
//	    Seed:         1,
//	})
//	if err := model.Fit(X, Y); err != nil {
//	    // handle
//	}
//	preds, err := model.Predict(X)
//
// Predict refuses to return NaN or Inf: a diverged model surfaces as
// ErrNonFinite instead of propagating bad numbers downstream.
package lstm
