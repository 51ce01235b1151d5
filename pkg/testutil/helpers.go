// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/marui-portal/internal/sales"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/mathutil"
)

// FindSegment finds a dashboard segment by name in the segments slice.
// Returns a pointer to the segment if found, nil otherwise.
func FindSegment(segments []sales.Segment, name string) *sales.Segment {
	for i := range segments {
		if segments[i].Name == name {
			return &segments[i]
		}
	}
	return nil
}

// NearCurrency reports whether two amounts agree within the currency tolerance.
func NearCurrency(got, expected float64) bool {
	return mathutil.WithinTolerance(got, expected, constants.CurrencyTolerance)
}
