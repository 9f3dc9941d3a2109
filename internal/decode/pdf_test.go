package decode

import (
	"context"
	"errors"
	"testing"

	"github.com/scopelens/scopelens/internal/common"
)

func TestPDFText_CorruptData(t *testing.T) {
	_, err := PDFText(context.Background(), []byte("definitely not a pdf"))
	if err == nil {
		t.Fatal("corrupt PDF decoded without error")
	}
	if !errors.Is(err, common.ErrDecodeFailed) {
		t.Errorf("error = %v, want ErrDecodeFailed in chain", err)
	}
}

func TestExtractTextFromStream(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{
			name:   "show text operator",
			stream: "BT\n/F1 12 Tf\n(Milestone 1: Design) Tj\nET",
			want:   "Milestone 1: Design",
		},
		{
			name:   "reposition keeps word boundary",
			stream: "(Design) Tj\n10 0 Td\n(work) Tj",
			want:   "Design work",
		},
		{
			name:   "next-line show operator",
			stream: "(first) Tj\n(second) '",
			want:   "first second",
		},
		{
			name:   "array show operator",
			stream: "[(Hours) (: ) (10)] TJ",
			want:   "Hours: 10",
		},
		{
			name:   "no text operators",
			stream: "0 0 100 100 re\nf",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTextFromStream([]byte(tt.stream)); got != tt.want {
				t.Errorf("extractTextFromStream = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"escaped parens", `\(scope\)`, "(scope)"},
		{"escaped backslash", `a\\b`, `a\b`},
		{"newline escape", `a\nb`, "a\nb"},
		{"octal space", `a\040b`, "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodePDFString([]byte(tt.in)); got != tt.want {
				t.Errorf("decodePDFString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanPDFText(t *testing.T) {
	if got := cleanPDFText("  a \n\n b\tc  "); got != "a b c" {
		t.Errorf("cleanPDFText = %q, want %q", got, "a b c")
	}
}
