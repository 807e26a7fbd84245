package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidLength, "plasmid length must be positive, got %d", 0),
			want: "INVALID_LENGTH: plasmid length must be positive, got 0",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeFileNotFound, fmt.Errorf("no such file"), "open map file %s", "x.toml"),
			want: "FILE_NOT_FOUND: open map file x.toml: no such file",
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
	err := New(ErrCodeInvalidSpan, "start 500 >= end 400")

	if !Is(err, ErrCodeInvalidSpan) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeInvalidLength) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidSpan) {
		t.Error("Is() should not match plain errors")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeOutOfBounds, "feature end 5000 exceeds plasmid length 4361")
	outer := fmt.Errorf("add feature: %w", inner)

	if !Is(outer, ErrCodeOutOfBounds) {
		t.Error("Is() should unwrap fmt.Errorf chains")
	}
	if GetCode(outer) != ErrCodeOutOfBounds {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeOutOfBounds)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(ErrCodeInternal, cause, "render failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should satisfy errors.Is for its cause")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidDirection, "direction must be 1 or -1, got 3")
	if got := UserMessage(err); strings.Contains(got, "INVALID_DIRECTION") {
		t.Errorf("UserMessage() should not include the code prefix, got %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain failure")
	}
}

func TestErrorFamilies(t *testing.T) {
	tests := []struct {
		name       string
		code       Code
		wantConfig bool
		wantGeom   bool
	}{
		{name: "length is configuration", code: ErrCodeInvalidLength, wantConfig: true},
		{name: "tick count is configuration", code: ErrCodeInvalidTickCount, wantConfig: true},
		{name: "out of bounds is configuration", code: ErrCodeOutOfBounds, wantConfig: true},
		{name: "span is geometry", code: ErrCodeInvalidSpan, wantGeom: true},
		{name: "direction is geometry", code: ErrCodeInvalidDirection, wantGeom: true},
		{name: "format is neither", code: ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "x")
			if got := IsConfiguration(err); got != tt.wantConfig {
				t.Errorf("IsConfiguration() = %v, want %v", got, tt.wantConfig)
			}
			if got := IsGeometry(err); got != tt.wantGeom {
				t.Errorf("IsGeometry() = %v, want %v", got, tt.wantGeom)
			}
		})
	}
}
