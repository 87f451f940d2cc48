package util

import (
	"testing"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{name: "empty", fragment: "", expected: ""},
		{name: "plain text passes through", fragment: "Give blood", expected: "Give blood"},
		{name: "inline tags are removed", fragment: "<p>Donate <strong>today</strong>!</p>", expected: "Donate today!"},
		{name: "blocks become lines", fragment: "<h1>Title</h1><p>First</p><p>Second</p>", expected: "Title\nFirst\nSecond"},
		{name: "entities are decoded", fragment: "<p>A &amp; B &lt;3</p>", expected: "A & B <3"},
		{name: "entities decode once", fragment: "<p>&amp;lt;</p>", expected: "&lt;"},
		{name: "scripts and styles are dropped", fragment: "<style>p{}</style><p>Keep</p><script>alert(1)</script>", expected: "Keep"},
		{name: "whitespace collapses", fragment: "<p>  many \n\t spaces  </p>", expected: "many spaces"},
		{name: "line breaks", fragment: "one<br/>two", expected: "one\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PlainText(tt.fragment); got != tt.expected {
				t.Fatalf("PlainText(%q) = %q, want %q", tt.fragment, got, tt.expected)
			}
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price    float64
		expected int64
	}{
		{price: 10, expected: 1000},
		{price: 0.5, expected: 50},
		{price: 12.345, expected: 1234},
	}

	for _, tt := range tests {
		if got := ToMinorUnits(tt.price); got != tt.expected {
			t.Fatalf("ToMinorUnits(%v) = %d, want %d", tt.price, got, tt.expected)
		}
	}

	if got := FromMinorUnits(2550); got != 25.5 {
		t.Fatalf("FromMinorUnits(2550) = %v, want 25.5", got)
	}
}
