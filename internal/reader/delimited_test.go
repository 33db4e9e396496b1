package reader

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// readAll drains a source for test assertions.
func readAll(t *testing.T, src Source) ([][]string, error) {
	t.Helper()

	var rows [][]string
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}

func TestDelimited(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter rune
		want      [][]string
	}{
		{
			name:      "basic rows",
			input:     "a,b,c\nd,e,f\n",
			delimiter: ',',
			want:      [][]string{{"a", "b", "c"}, {"d", "e", "f"}},
		},
		{
			name:      "fields trimmed of surrounding whitespace",
			input:     " a , b \nc,\td\n",
			delimiter: ',',
			want:      [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:      "semicolon delimiter",
			input:     "a;b\nc;d\n",
			delimiter: ';',
			want:      [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:      "quoted field containing the delimiter",
			input:     "\"a,b\",c\n",
			delimiter: ',',
			want:      [][]string{{"a,b", "c"}},
		},
		{
			name:      "empty input",
			input:     "",
			delimiter: ',',
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewDelimited(strings.NewReader(tt.input), tt.delimiter)
			got, err := readAll(t, src)
			if err != nil {
				t.Fatalf("readAll error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDelimitedRaggedRow(t *testing.T) {
	src := NewDelimited(strings.NewReader("a,b\nc\n"), ',')

	if _, err := src.Next(); err != nil {
		t.Fatalf("first row error: %v", err)
	}
	if _, err := src.Next(); err == nil || errors.Is(err, io.EOF) {
		t.Errorf("second row error = %v, want field count error", err)
	}
}

func TestDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: ",", want: ','},
		{in: ";", want: ';'},
		{in: "\t", want: '\t'},
		{in: "", wantErr: true},
		{in: "ab", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Delimiter(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Delimiter(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Delimiter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	if err := os.WriteFile(path, []byte("a,1\nb,2\n"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	src, err := Open(path, ',')
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer src.Close()

	got, err := readAll(t, src)
	if err != nil {
		t.Fatalf("readAll error: %v", err)
	}

	want := [][]string{{"a", "1"}, {"b", "2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.csv"), ','); err == nil {
		t.Error("Open returned nil error for a missing file")
	}
}
