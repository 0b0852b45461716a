// Package parquetio reads and writes dataset splits stored as Parquet.
package parquetio

import (
	"errors"
	"io"
	"os"
	"strings"

	parquet "github.com/segmentio/parquet-go"

	"github.com/wdm0006/medfix/pkg/io/schema"
	"github.com/wdm0006/medfix/pkg/medfix"
)

// ReadAll loads a whole Parquet file into a Frame. Rows are decoded as
// generic maps and the logical schema is inferred from at most sampleRows of
// them, the same voting used for the other split formats.
func ReadAll(path string, sampleRows int) (*medfix.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	r := parquet.NewGenericReader[map[string]any](file)
	defer func() { _ = r.Close() }()

	var rows []map[string]any
	buf := make([]map[string]any, 256)
	for {
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			rows = append(rows, buf[i])
			buf[i] = nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "EOF") {
				break
			}
			return nil, err
		}
		if n == 0 {
			break
		}
	}

	f := medfix.NewFrame(schema.FromMaps(rows, sampleRows))
	for _, m := range rows {
		f.AppendNullRow()
		schema.SetRow(f, f.Rows()-1, m)
	}
	return f, nil
}
