package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name          string
		fields        []Field
		expectErr     bool
		expectMissing []string
	}{
		{
			name:      "All fields present",
			fields:    []Field{{"month", "January"}, {"brand", "BRD001"}},
			expectErr: false,
		},
		{
			name:          "One blank field",
			fields:        []Field{{"month", "January"}, {"brand", ""}},
			expectErr:     true,
			expectMissing: []string{"brand"},
		},
		{
			name:          "Whitespace counts as blank",
			fields:        []Field{{"month", "  "}, {"channel", ""}},
			expectErr:     true,
			expectMissing: []string{"month", "channel"},
		},
		{
			name:      "No fields",
			fields:    nil,
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required(tt.fields...)
			if !tt.expectErr {
				if err != nil {
					t.Fatalf("Required() unexpected error = %v", err)
				}
				return
			}

			var vErr *Error
			if !errors.As(err, &vErr) {
				t.Fatalf("Required() error = %v, expected *Error", err)
			}
			if vErr.Message != MsgRequiredFields {
				t.Errorf("Required() message = %q, expected %q", vErr.Message, MsgRequiredFields)
			}
			if strings.Join(vErr.Fields, ",") != strings.Join(tt.expectMissing, ",") {
				t.Errorf("Required() fields = %v, expected %v", vErr.Fields, tt.expectMissing)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	err := fmt.Errorf("saving campaign: %w", Failf(MsgContributionTotal, 90.0))
	if !IsValidationError(err) {
		t.Fatal("expected wrapped validation error to be detected")
	}
	if !strings.Contains(err.Error(), "Current total: 90%") {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if IsValidationError(errors.New("boom")) {
		t.Error("plain error must not be a validation error")
	}
}
