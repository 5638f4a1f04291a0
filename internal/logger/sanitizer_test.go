package logger

import (
	"errors"
	"testing"
)

type sciperLike int

func (s sciperLike) String() string { return "123456" }

func TestSanitizer_Sanitize(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sciper query",
			input:    "fetching sciper=123456",
			expected: "fetching sciper=***",
		},
		{
			name:     "sciper json body",
			input:    `body {"sciper": 123456, "answer": "x"}`,
			expected: `body {"sciper":***, "answer": "x"}`,
		},
		{
			name:     "bearer token",
			input:    "Authorization: Bearer eyJhbGc...",
			expected: "Authorization: bearer ***",
		},
		{
			name:     "unix home path",
			input:    "saved to /home/elliot/.sciper",
			expected: "saved to /home/***/.sciper",
		},
		{
			name:     "email partial mask",
			input:    "from: elliot.alderson@ecorp.com",
			expected: "from: ell***@ecorp.com",
		},
		{
			name:     "no sensitive data",
			input:    "normal log message",
			expected: "normal log message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.Sanitize(tt.input)
			if result != tt.expected {
				t.Errorf("Sanitize() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSanitizer_SanitizeArgs(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name     string
		input    []any
		expected []any
	}{
		{
			name:     "sciper string",
			input:    []any{"sciper", "123456", "path", "mail.txt"},
			expected: []any{"sciper", "1***", "path", "mail.txt"},
		},
		{
			name:     "sciper stringer",
			input:    []any{"sciper", sciperLike(1)},
			expected: []any{"sciper", "1***"},
		},
		{
			name:     "sensitive error",
			input:    []any{"auth_error", errors.New("denied")},
			expected: []any{"auth_error", "d***"},
		},
		{
			name:     "non-sensitive key untouched",
			input:    []any{"msg", "token=abc123"},
			expected: []any{"msg", "token=abc123"},
		},
		{
			name:     "int value untouched",
			input:    []any{"file", "test.txt", "size", 1024},
			expected: []any{"file", "test.txt", "size", 1024},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.SanitizeArgs(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("SanitizeArgs() len = %d, want %d", len(result), len(tt.expected))
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("SanitizeArgs()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSanitizer_SanitizeArgsDoesNotMutateInput(t *testing.T) {
	s := NewSanitizer()
	input := []any{"sciper", "123456"}

	s.SanitizeArgs(input)

	if input[1] != "123456" {
		t.Errorf("input mutated: %v", input)
	}
}

func TestSanitizer_AddRule(t *testing.T) {
	s := NewSanitizer()

	if err := s.AddRule(`camipro=\d+`, "camipro=***"); err != nil {
		t.Fatalf("AddRule failed: %v", err)
	}

	result := s.Sanitize("badge camipro=998877 scanned")
	if result != "badge camipro=*** scanned" {
		t.Errorf("got %q", result)
	}

	if err := s.AddRule(`(unclosed`, "x"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ab", "***"},
		{"abc", "a***"},
		{"abcdefgh", "a***"},
		{"abcdefghi", "a***i"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := maskValue(tt.input); got != tt.expected {
				t.Errorf("maskValue(%s) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
