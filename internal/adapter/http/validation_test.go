package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		ApplicationID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{ApplicationID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		err := cv.Validate(P{ApplicationID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !containsFieldMsg(ToFieldErrors(err), "ApplicationID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, ToFieldErrors(err))
		}
	}
}

func TestCredentialTags(t *testing.T) {
	type P struct {
		Username string `validate:"required,min=3,max=10,alphanum"`
		Decision string `validate:"omitempty,oneof=approve reject"`
	}
	cv := NewValidator()

	tests := []struct {
		name  string
		in    P
		field string
		msg   string
	}{
		{"missing", P{}, "Username", "is required"},
		{"short", P{Username: "ab"}, "Username", "at least 3"},
		{"long", P{Username: strings.Repeat("a", 11)}, "Username", "at most 10"},
		{"symbols", P{Username: "jane.doe"}, "Username", "letters and digits"},
		{"oneof", P{Username: "jane", Decision: "maybe"}, "Decision", "approve reject"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := cv.Validate(tc.in)
			if err == nil {
				t.Fatalf("expected error")
			}
			if fe := ToFieldErrors(err); !containsFieldMsg(fe, tc.field, tc.msg) {
				t.Fatalf("want %s/%q, got %+v", tc.field, tc.msg, fe)
			}
		})
	}

	if err := cv.Validate(P{Username: "jane2024"}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected: %+v", fe)
	}
}
