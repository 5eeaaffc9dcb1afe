package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidArrangement", ErrInvalidArrangement, ErrInvalidArrangement},
		{"ErrInvalidID", ErrInvalidID, ErrInvalidID},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrEntropy", ErrEntropy, ErrEntropy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidArrangement, ErrInvalidID) {
		t.Error("ErrInvalidArrangement should not match ErrInvalidID")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("decoding argument: %w", ErrInvalidID)

	if !errors.Is(wrapped, ErrInvalidID) {
		t.Errorf("errors.Is(wrapped, ErrInvalidID) = false, want true")
	}
}

func TestArrangementError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ArrangementError
		contains []string
	}{
		{
			name:     "input and reason",
			err:      &ArrangementError{Input: "KQRNNBBR", Reason: "king is not between the rooks"},
			contains: []string{"invalid arrangement", "KQRNNBBR", "between the rooks"},
		},
		{
			name:     "reason only",
			err:      &ArrangementError{Reason: "want 8 pieces, got 7"},
			contains: []string{"invalid arrangement", "want 8 pieces"},
		},
		{
			name:     "bare",
			err:      &ArrangementError{},
			contains: []string{"invalid arrangement"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("ArrangementError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestArrangementError_Unwrap(t *testing.T) {
	err := &ArrangementError{Input: "NONONONO", Reason: "unknown piece letter 'O'"}
	if !errors.Is(err, ErrInvalidArrangement) {
		t.Error("errors.Is(err, ErrInvalidArrangement) = false, want true")
	}

	custom := &ArrangementError{Input: "x", Err: ErrInvalidFEN}
	if !errors.Is(custom, ErrInvalidFEN) {
		t.Error("errors.Is(custom, ErrInvalidFEN) = false, want true")
	}
	if errors.Is(custom, ErrInvalidArrangement) {
		t.Error("custom Err should replace the default sentinel")
	}
}

func TestArrangementError_As(t *testing.T) {
	wrapped := fmt.Errorf("encode: %w", &ArrangementError{Input: "BNBQRNKR", Reason: "bishops on same-coloured squares"})

	var extracted *ArrangementError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract ArrangementError")
	}
	if extracted.Input != "BNBQRNKR" {
		t.Errorf("extracted.Input = %q, want %q", extracted.Input, "BNBQRNKR")
	}
}

// TestInputError_Error verifies the error message format
func TestInputError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *InputError
		contains []string
	}{
		{
			name: "full context",
			err: &InputError{
				Err:    ErrInvalidID,
				Source: "ids.txt",
				Line:   12,
				Input:  "960",
			},
			contains: []string{"ids.txt:12", "960", "invalid position id"},
		},
		{
			name:     "line only",
			err:      &InputError{Err: ErrInvalidArrangement, Line: 3},
			contains: []string{"line 3", "invalid arrangement"},
		},
		{
			name:     "no context",
			err:      &InputError{Err: ErrInvalidFEN},
			contains: []string{"invalid fen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("InputError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestInputError_Unwrap verifies that InputError properly implements Unwrap
func TestInputError_Unwrap(t *testing.T) {
	inputErr := &InputError{Err: ErrInvalidID, Source: "stdin", Line: 1}

	if !errors.Is(errors.Unwrap(inputErr), ErrInvalidID) {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(inputErr), ErrInvalidID)
	}
	if !errors.Is(inputErr, ErrInvalidID) {
		t.Error("errors.Is(inputErr, ErrInvalidID) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "reading back rank")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "reading back rank") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidID, "id %d outside [0, %d]", 960, 959)

	if !errors.Is(wrapped, ErrInvalidID) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "id 960") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
