package utils

import (
	"testing"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		region      string
		expected    string
		shouldError bool
	}{
		{
			name:     "US national number",
			input:    "(650) 253-0000",
			region:   "US",
			expected: "+16502530000",
		},
		{
			name:     "US number with dashes and country code",
			input:    "+1-650-253-0000",
			region:   "US",
			expected: "+16502530000",
		},
		{
			name:     "leading and trailing spaces",
			input:    "  650 253 0000  ",
			region:   "US",
			expected: "+16502530000",
		},
		{
			name:     "Romanian mobile with default region",
			input:    "0721 234 567",
			region:   "RO",
			expected: "+40721234567",
		},
		{
			name:     "country code overrides default region",
			input:    "+49 170 1234567",
			region:   "US",
			expected: "+491701234567",
		},
		{
			name:        "national number of another country",
			input:       "0721234567",
			region:      "US",
			shouldError: true,
		},
		{
			name:        "too short",
			input:       "123",
			region:      "US",
			shouldError: true,
		},
		{
			name:        "letters",
			input:       "abcdefghij",
			region:      "US",
			shouldError: true,
		},
		{
			name:        "empty string",
			input:       "",
			region:      "US",
			shouldError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizePhoneNumber(tt.input, tt.region)

			if tt.shouldError {
				if err == nil {
					t.Errorf("Expected error for input %q, but got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for input %q: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("For input %q, expected %q but got %q", tt.input, tt.expected, result)
			}
		})
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		region   string
		expected string
	}{
		{
			name:     "US national number",
			input:    "(650) 253-0000",
			region:   "US",
			expected: "+1 650-253-0000",
		},
		{
			name:     "US number with country code",
			input:    "+16502530000",
			region:   "RO",
			expected: "+1 650-253-0000",
		},
		{
			name:     "lowercase region",
			input:    "650 253 0000",
			region:   "us",
			expected: "+1 650-253-0000",
		},
		{
			name:     "unparseable number is kept",
			input:    "  call the front desk ",
			region:   "US",
			expected: "call the front desk",
		},
		{
			name:     "invalid number is kept",
			input:    "123",
			region:   "US",
			expected: "123",
		},
		{
			name:     "empty",
			input:    "",
			region:   "US",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPhoneNumber(tt.input, tt.region); got != tt.expected {
				t.Errorf("FormatPhoneNumber(%q, %q) = %q, expected %q", tt.input, tt.region, got, tt.expected)
			}
		})
	}
}
