package reportsrc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildPDF writes a single-page PDF showing each line with its own Tj.
func buildPDF(lines ...string) []byte {
	var content strings.Builder
	content.WriteString("BT /F1 12 Tf 72 720 Td 14 TL\n")
	for _, l := range lines {
		fmt.Fprintf(&content, "(%s) Tj T*\n", l)
	}
	content.WriteString("ET")

	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
	}

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return b.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadFile_Text(t *testing.T) {
	path := writeFile(t, "report.txt", []byte("42 Total Questions\n1 Math A B Incorrect\n"))

	got, err := ReadFile(path, nil, false)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(got, "1 Math A B Incorrect") {
		t.Errorf("text = %q", got)
	}
}

func TestReadFile_Stdin(t *testing.T) {
	for _, path := range []string{"", Stdin} {
		got, err := ReadFile(path, strings.NewReader("30 Correct Answers"), false)
		if err != nil {
			t.Fatalf("ReadFile(%q): %v", path, err)
		}
		if got != "30 Correct Answers" {
			t.Errorf("ReadFile(%q) = %q", path, got)
		}
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "none.txt"), nil, false); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFile_TooLarge(t *testing.T) {
	big := bytes.Repeat([]byte("a"), MaxSize+1)
	_, err := ReadFile(Stdin, bytes.NewReader(big), false)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestReadFile_PDF(t *testing.T) {
	path := writeFile(t, "report.pdf", buildPDF("42 Total Questions", "12 Incorrect Answers"))

	got, err := ReadFile(path, nil, false)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, want := range []string{"42 Total Questions", "12 Incorrect Answers"} {
		if !strings.Contains(got, want) {
			t.Errorf("text %q missing %q", got, want)
		}
	}
}

func TestDecode_SniffsPDF(t *testing.T) {
	data := buildPDF("30 Correct Answers")
	if !IsPDF(data) {
		t.Fatal("IsPDF = false for a PDF")
	}
	got, err := Decode(data, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !strings.Contains(got, "30 Correct Answers") {
		t.Errorf("text = %q", got)
	}
}

func TestDecode_BrokenPDF(t *testing.T) {
	if _, err := Decode([]byte("%PDF-1.4\nnot really a pdf"), false); err == nil {
		t.Fatal("expected error for a truncated PDF")
	}
	if _, err := Decode([]byte("plain text"), true); err == nil {
		t.Fatal("expected error when forcing PDF on text")
	}
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"%PDF-1.7", true},
		{"\n %PDF-1.4", false},
		{"PDF", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPDF([]byte(tt.in)); got != tt.want {
			t.Errorf("IsPDF(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
