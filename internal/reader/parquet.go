package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

// Parquet reads rows from a parquet file and renders every value to text.
// Columns appear in the order the file schema declares them.
type Parquet struct {
	file    *os.File
	reader  *parquet.Reader
	columns []string
}

// OpenParquet opens a parquet file as a row source.
func OpenParquet(path string) (*Parquet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	columns := make([]string, 0, len(pqFile.Schema().Fields()))
	for _, field := range pqFile.Schema().Fields() {
		columns = append(columns, field.Name())
	}

	return &Parquet{
		file:    file,
		reader:  parquet.NewReader(pqFile),
		columns: columns,
	}, nil
}

// Next returns the next row, or io.EOF at end of file.
func (p *Parquet) Next() ([]string, error) {
	row := make(map[string]interface{})
	if err := p.reader.Read(&row); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	out := make([]string, len(p.columns))
	for i, col := range p.columns {
		out[i] = formatValue(row[col])
	}
	return out, nil
}

// Close closes the parquet reader and the underlying file. Safe to call
// multiple times.
func (p *Parquet) Close() error {
	if p.reader != nil {
		p.reader.Close()
		p.reader = nil
	}
	if p.file != nil {
		err := p.file.Close()
		p.file = nil
		return err
	}
	return nil
}

// formatValue renders a parquet value as a text field.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 64)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
