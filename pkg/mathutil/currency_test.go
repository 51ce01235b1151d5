package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Large negative", -12345.678, -12345.68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		decimals int
		expected float64
	}{
		{"Utilization one decimal", 85.81560283687944, 1, 85.8},
		{"Over budget one decimal", 101.35135135135135, 1, 101.4},
		{"Whole number", 150, 1, 150},
		{"Zero decimals", 2258064.516, 0, 2258065},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundTo(tt.input, tt.decimals)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("RoundTo(%v, %d) = %v, expected %v", tt.input, tt.decimals, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Very small positive", 0.001, true},
		{"Very small negative", -0.001, true},
		{"Just above tolerance", 0.02, false},
		{"Large positive", 100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsZero(tt.input)
			if result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(10.0, 10.005, 0.01) {
		t.Error("expected values within tolerance")
	}
	if WithinTolerance(10.0, 10.5, 0.01) {
		t.Error("expected values outside tolerance")
	}
}

func TestSumAndMean(t *testing.T) {
	values := []float64{19000000, 17000000, 14770000}
	if got := Sum(values); got != 50770000 {
		t.Errorf("Sum() = %v, expected 50770000", got)
	}

	mean, ok := Mean(values)
	if !ok {
		t.Fatal("Mean() reported empty input")
	}
	if math.Abs(mean-16923333.333333) > 0.001 {
		t.Errorf("Mean() = %v, expected ~16923333.33", mean)
	}

	if _, ok := Mean(nil); ok {
		t.Error("Mean(nil) should report not ok")
	}
}

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		expected    float64
	}{
		{"Normal division", 2200, 450, 2200.0 / 450.0},
		{"Zero denominator", 77000000, 0, 0},
		{"Negative denominator", 10, -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeDivide(tt.numerator, tt.denominator); got != tt.expected {
				t.Errorf("SafeDivide(%v, %v) = %v, expected %v", tt.numerator, tt.denominator, got, tt.expected)
			}
		})
	}
}
