package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeInvalidLabel, "unknown state %q", "s9"),
			want: `INVALID_LABEL: unknown state "s9"`,
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeParse, fmt.Errorf("unexpected token"), "line %d", 3),
			want: "PARSE_ERROR: line 3: unexpected token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeDuplicateLabel, "state q0 already exists")

	if !Is(err, ErrCodeDuplicateLabel) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeInvalidLabel) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeDuplicateLabel) {
		t.Error("Is() = true for plain error")
	}
}

func TestIsWrapped(t *testing.T) {
	inner := New(ErrCodeTransductionFailure, "no accepting path")
	outer := fmt.Errorf("transduce: %w", inner)

	if !Is(outer, ErrCodeTransductionFailure) {
		t.Error("Is() should unwrap the error chain")
	}
	if GetCode(outer) != ErrCodeTransductionFailure {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeTransductionFailure)
	}
}

func TestIsSoft(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"TransductionFailure", New(ErrCodeTransductionFailure, "no path"), true},
		{"InvalidLabel", New(ErrCodeInvalidLabel, "unknown"), false},
		{"DeterminizationConflict", New(ErrCodeDeterminizationConflict, "ambiguous"), false},
		{"Plain", stderrors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSoft(tt.err); got != tt.want {
				t.Errorf("IsSoft() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeNoInitialState, "graph has no initial state")
	if got := UserMessage(err); got != "graph has no initial state" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q", got)
	}
}
