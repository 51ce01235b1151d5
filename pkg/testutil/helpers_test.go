package testutil

import (
	"testing"

	"github.com/iwvelando/marui-portal/internal/sales"
)

func TestFindSegment(t *testing.T) {
	segments := []sales.Segment{
		{Name: "Gendes", Brand: "Gendes", Target: 150000000},
		{Name: "Kavela", Brand: "Kavela", Target: 120000000},
		{Name: "Kavela - TikTok Shop", Brand: "Kavela", Channel: "TikTok Shop", Target: 120000000},
	}

	tests := []struct {
		name           string
		searchName     string
		expectFound    bool
		expectedTarget float64
	}{
		{"find brand", "Gendes", true, 150000000},
		{"find brand channel pair", "Kavela - TikTok Shop", true, 120000000},
		{"missing segment", "SYMS", false, 0},
		{"empty name", "", false, 0},
		{"case sensitive", "gendes", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindSegment(segments, tt.searchName)
			if tt.expectFound {
				if result == nil {
					t.Fatalf("expected to find segment '%s', but got nil", tt.searchName)
				}
				if result.Target != tt.expectedTarget {
					t.Errorf("expected target %.2f, got %.2f", tt.expectedTarget, result.Target)
				}
			} else if result != nil {
				t.Errorf("expected not to find segment '%s', but found %+v", tt.searchName, *result)
			}
		})
	}

	if FindSegment(nil, "Gendes") != nil {
		t.Error("expected nil for nil segments")
	}
}

func TestFindSegmentReturnsElementPointer(t *testing.T) {
	segments := []sales.Segment{{Name: "Gendes", Target: 1}}
	found := FindSegment(segments, "Gendes")
	found.Target = 2
	if segments[0].Target != 2 {
		t.Error("expected pointer into the original slice")
	}
}

func TestNearCurrency(t *testing.T) {
	tests := []struct {
		got, expected float64
		want          bool
	}{
		{165000000, 165000000, true},
		{110.00000000000001, 110, true},
		{100.005, 100, true},
		{100.02, 100, false},
		{-5, 5, false},
	}
	for _, tt := range tests {
		if got := NearCurrency(tt.got, tt.expected); got != tt.want {
			t.Errorf("NearCurrency(%v, %v) = %v, want %v", tt.got, tt.expected, got, tt.want)
		}
	}
}
