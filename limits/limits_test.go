package limits

import (
	"errors"
	"math"
	"testing"
)

// TestMaxIterationsMatchesCInt verifies that MaxIterations is the C int range
func TestMaxIterationsMatchesCInt(t *testing.T) {
	if MaxIterations != math.MaxInt32 {
		t.Errorf("MaxIterations = %d, want %d", MaxIterations, math.MaxInt32)
	}
}

// TestValidateLength tests the generic validation function
func TestValidateLength(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		max     int
		wantErr error
	}{
		{name: "zero", n: 0, max: 10, wantErr: nil},
		{name: "at limit", n: 10, max: 10, wantErr: nil},
		{name: "over limit", n: 11, max: 10, wantErr: ErrTooLarge},
		{name: "negative", n: -1, max: 10, wantErr: ErrNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength(tt.n, tt.max)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateLength(%d, %d) = %v, want nil", tt.n, tt.max, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateLength(%d, %d) = %v, want %v", tt.n, tt.max, err, tt.wantErr)
			}
		})
	}
}

// TestValidateTextLength tests the text limit
func TestValidateTextLength(t *testing.T) {
	if err := ValidateTextLength(0); err != nil {
		t.Errorf("empty text should be valid, got %v", err)
	}
	if err := ValidateTextLength(MaxTextLength); err != nil {
		t.Errorf("max-size text should be valid, got %v", err)
	}
	if err := ValidateTextLength(MaxTextLength + 1); !errors.Is(err, ErrTooLarge) {
		t.Errorf("oversized text: got %v, want ErrTooLarge", err)
	}
}

// TestValidateArrayLength tests the array limit
func TestValidateArrayLength(t *testing.T) {
	if err := ValidateArrayLength(MaxArrayLength); err != nil {
		t.Errorf("max-size array should be valid, got %v", err)
	}
	if err := ValidateArrayLength(MaxArrayLength + 1); !errors.Is(err, ErrTooLarge) {
		t.Errorf("oversized array: got %v, want ErrTooLarge", err)
	}
	if err := ValidateArrayLength(-5); !errors.Is(err, ErrNegative) {
		t.Errorf("negative array: got %v, want ErrNegative", err)
	}
}
