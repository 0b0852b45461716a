// Package csvio reads and writes dataset splits stored as headed CSV.
package csvio

import (
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/wdm0006/medfix/pkg/io/ioutils"
	"github.com/wdm0006/medfix/pkg/io/schema"
	"github.com/wdm0006/medfix/pkg/medfix"
)

// ReadAll loads a whole CSV file (header row required) into a Frame. Column
// kinds are inferred from at most sampleRows data records; empty cells load
// as null.
func ReadAll(path string, sampleRows int) (*medfix.Frame, error) {
	rc, err := ioutils.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	r := csv.NewReader(rc)
	all, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return medfix.NewFrame(medfix.Schema{}), nil
	}
	names := make([]string, len(all[0]))
	for i, h := range all[0] {
		names[i] = strings.TrimPrefix(strings.ToValidUTF8(h, "?"), "\uFEFF")
	}
	recs := all[1:]

	sample := recs
	if sampleRows > 0 && sampleRows < len(sample) {
		sample = sample[:sampleRows]
	}
	f := medfix.NewFrame(schema.FromRecords(names, sample))
	for _, rec := range recs {
		f.AppendNullRow()
		setRecord(f, f.Rows()-1, names, rec)
	}
	return f, nil
}

func setRecord(f *medfix.Frame, row int, names []string, rec []string) {
	for i, name := range names {
		if i >= len(rec) {
			continue
		}
		cell := rec[i]
		if strings.TrimSpace(cell) == "" {
			continue
		}
		cs := f.Schema().Columns[i]
		switch cs.Type {
		case medfix.KindFloat:
			if x, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
				_ = f.SetCell(row, name, x)
			}
		case medfix.KindInt:
			if x, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64); err == nil {
				_ = f.SetCell(row, name, x)
			}
		case medfix.KindBool:
			if x, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(cell))); err == nil {
				_ = f.SetCell(row, name, x)
			}
		default:
			_ = f.SetCell(row, name, cell)
		}
	}
}

// WriteAll writes a Frame to CSV with a header row. Null cells are written
// as empty fields.
func WriteAll(path string, f *medfix.Frame) error {
	out, err := ioutils.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(out)

	hdr := make([]string, len(f.Schema().Columns))
	for i, cs := range f.Schema().Columns {
		hdr[i] = cs.Name
	}
	if err := w.Write(hdr); err != nil {
		_ = out.Close()
		return err
	}

	for r := 0; r < f.Rows(); r++ {
		row := make([]string, len(hdr))
		for c, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case medfix.KindFloat:
				if v, ok := col.(*medfix.FloatColumn).Get(r); ok {
					row[c] = strconv.FormatFloat(v, 'g', -1, 64)
				}
			case medfix.KindInt:
				if v, ok := col.(*medfix.IntColumn).Get(r); ok {
					row[c] = strconv.FormatInt(v, 10)
				}
			case medfix.KindBool:
				if v, ok := col.(*medfix.BoolColumn).Get(r); ok {
					row[c] = strconv.FormatBool(v)
				}
			case medfix.KindString:
				if v, ok := col.(*medfix.StringColumn).Get(r); ok {
					row[c] = v
				}
			case medfix.KindTime:
				if v, ok := col.(*medfix.TimeColumn).Get(r); ok {
					row[c] = v.Format(time.RFC3339)
				}
			}
		}
		if err := w.Write(row); err != nil {
			_ = out.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
