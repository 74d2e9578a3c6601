package casing

import (
	"strings"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Single Word", "Order", []string{"Order"}},
		{"Two Words", "OrderPlaced", []string{"Order", "Placed"}},
		{"Leading Acronym", "HTTPServer", []string{"HTTP", "Server"}},
		{"Trailing Acronym", "ServerHTTP", []string{"Server", "HTTP"}},
		{"All Acronym", "HTTP", []string{"HTTP"}},
		{"Single Letter", "A", []string{"A"}},
		{"Single Letter Word", "AServer", []string{"A", "Server"}},
		{"Digits Attach", "OAuth2Token", []string{"O", "Auth2", "Token"}},
		{"Version Suffix", "PaymentV2", []string{"Payment", "V2"}},
		{"Mid Acronym", "XMLHttpRequest", []string{"XML", "Http", "Request"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Words(%q): want %v, got %v", tt.input, tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Words(%q): want %v, got %v", tt.input, tt.want, got)
				}
			}
		})
	}
}

// Joining the fragments must reproduce the identifier exactly.
func TestWords_RoundTrip(t *testing.T) {
	inputs := []string{
		"Order", "OrderPlaced", "HTTPServer", "ServerHTTP", "HTTP",
		"A", "AServer", "OAuth2Token", "PaymentV2", "XMLHttpRequest",
		"InvalidArgumentError", "DBConnectionPoolV3",
	}
	for _, in := range inputs {
		if got := strings.Join(Words(in), ""); got != in {
			t.Errorf("round trip failed for %q: fragments join to %q", in, got)
		}
	}
}

func TestWords_Empty(t *testing.T) {
	if got := Words(""); got != nil {
		t.Fatalf("Words(\"\"): want nil, got %v", got)
	}
}

func TestSnake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Order", "order"},
		{"OrderPlaced", "order_placed"},
		{"HTTPServer", "http_server"},
		{"InvalidArgument", "invalid_argument"},
		{"PaymentV2", "payment_v2"},
	}

	for _, tt := range tests {
		if got := Snake(tt.input); got != tt.want {
			t.Errorf("Snake(%q): want %q, got %q", tt.input, tt.want, got)
		}
	}
}
