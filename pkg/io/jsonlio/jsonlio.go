// Package jsonlio reads and writes dataset splits stored as JSON Lines.
package jsonlio

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"

	"github.com/wdm0006/medfix/pkg/io/ioutils"
	"github.com/wdm0006/medfix/pkg/io/schema"
	"github.com/wdm0006/medfix/pkg/medfix"
)

// ReadAll loads a whole JSONL file into a Frame. The schema is inferred by
// voting over the first sampleRows decoded rows (all rows when <= 0). A null
// or missing field decodes as a null cell.
func ReadAll(path string, sampleRows int) (*medfix.Frame, error) {
	rc, err := ioutils.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	dec := json.NewDecoder(bufio.NewReader(rc))
	var rows []map[string]any
	for {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, m)
	}

	f := medfix.NewFrame(schema.FromMaps(rows, sampleRows))
	for _, m := range rows {
		f.AppendNullRow()
		schema.SetRow(f, f.Rows()-1, m)
	}
	return f, nil
}

// WriteAll writes a Frame as JSONL, one object per row. Null cells are
// omitted from the row object, so absent and null round-trip the same way.
func WriteAll(path string, f *medfix.Frame) error {
	out, err := ioutils.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	for r := 0; r < f.Rows(); r++ {
		m := make(map[string]any, f.Cols())
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case medfix.KindFloat:
				if v, ok := col.(*medfix.FloatColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case medfix.KindInt:
				if v, ok := col.(*medfix.IntColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case medfix.KindBool:
				if v, ok := col.(*medfix.BoolColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case medfix.KindString:
				if v, ok := col.(*medfix.StringColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case medfix.KindTime:
				if v, ok := col.(*medfix.TimeColumn).Get(r); ok {
					m[cs.Name] = v
				}
			}
		}
		if err := enc.Encode(m); err != nil {
			_ = out.Close()
			return err
		}
	}
	return out.Close()
}
