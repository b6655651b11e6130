package scale

import (
	"errors"
	"math"
	"testing"
)

func TestMinMaxTransform(t *testing.T) {
	m := NewMinMax()
	scaled, err := m.FitTransform([]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	// 1 -> 0.0, 3 -> 0.5, 5 -> 1.0
	expected := []float64{0.0, 0.25, 0.5, 0.75, 1.0}
	for i, want := range expected {
		if math.Abs(scaled[i]-want) > 1e-12 {
			t.Errorf("Scaled value at %d: expected %f, got %f", i, want, scaled[i])
		}
	}

	inv, err := m.Inverse([]float64{0.5})
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}
	if math.Abs(inv[0]-3.0) > 1e-12 {
		t.Errorf("Expected inverse(0.5)=3.0, got %f", inv[0])
	}
}

func TestMinMaxRoundTrip(t *testing.T) {
	values := []float64{112, 118, 132, 129, 121, 135, 148, 622, 104}

	m := NewMinMax()
	scaled, err := m.FitTransform(values)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	restored, err := m.Inverse(scaled)
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}

	for i, v := range values {
		if math.Abs(restored[i]-v) > 1e-9 {
			t.Errorf("Round trip at %d: expected %f, got %f", i, v, restored[i])
		}
	}
}

func TestMinMaxConstantSeries(t *testing.T) {
	m := NewMinMax()
	err := m.Fit([]float64{7, 7, 7, 7})
	if err == nil {
		t.Fatal("Expected error fitting constant series, got none")
	}
	if !errors.Is(err, ErrConstantSeries) {
		t.Errorf("Expected ErrConstantSeries, got %v", err)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	m := NewMinMax()
	if err := m.Fit(nil); err == nil {
		t.Error("Expected error fitting empty data")
	}
}

func TestMinMaxNotFitted(t *testing.T) {
	m := NewMinMax()
	if _, err := m.Transform([]float64{1}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Expected ErrNotFitted from Transform, got %v", err)
	}
	if _, err := m.Inverse([]float64{0.5}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Expected ErrNotFitted from Inverse, got %v", err)
	}
}

func TestMinMaxOutOfRangeStaysInvertible(t *testing.T) {
	m := NewMinMax()
	if err := m.Fit([]float64{0, 10}); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	// Test values outside the fitted range (train-only fitting leaves the
	// test suffix free to exceed the training extremes).
	scaled, _ := m.Transform([]float64{15})
	if scaled[0] <= 1.0 {
		t.Errorf("Expected out-of-range value to scale above 1, got %f", scaled[0])
	}
	restored, _ := m.Inverse(scaled)
	if math.Abs(restored[0]-15) > 1e-9 {
		t.Errorf("Expected exact inversion of out-of-range value, got %f", restored[0])
	}
}
