package parquetio

import (
	"encoding/json"
	"fmt"
	"time"

	local "github.com/xitongsys/parquet-go-source/local"
	pw "github.com/xitongsys/parquet-go/writer"

	"github.com/wdm0006/medfix/pkg/medfix"
)

func parquetSchemaJSON(s medfix.Schema) string {
	type field struct {
		Tag string `json:"Tag"`
	}
	type root struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	sc := root{Tag: "name=schema, repetitiontype=REQUIRED"}
	for _, cs := range s.Columns {
		tag := "name=" + cs.Name + ", repetitiontype=OPTIONAL, type="
		switch cs.Type {
		case medfix.KindFloat:
			tag += "DOUBLE"
		case medfix.KindInt:
			tag += "INT64"
		case medfix.KindBool:
			tag += "BOOLEAN"
		default:
			tag += "BYTE_ARRAY, convertedtype=UTF8"
		}
		sc.Fields = append(sc.Fields, field{Tag: tag})
	}
	b, _ := json.Marshal(sc)
	return string(b)
}

// WriteAll writes a Frame to a Parquet file. Rows pass through the JSON
// writer so null cells map to missing optional fields.
func WriteAll(path string, f *medfix.Frame) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	writer, err := pw.NewJSONWriter(parquetSchemaJSON(f.Schema()), fw, 4)
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("parquet writer init: %w", err)
	}
	defer func() { _ = fw.Close() }()

	for r := 0; r < f.Rows(); r++ {
		rec := make(map[string]any, len(f.Schema().Columns))
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case medfix.KindFloat:
				if v, ok := col.(*medfix.FloatColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case medfix.KindInt:
				if v, ok := col.(*medfix.IntColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case medfix.KindBool:
				if v, ok := col.(*medfix.BoolColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case medfix.KindString:
				if v, ok := col.(*medfix.StringColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case medfix.KindTime:
				if v, ok := col.(*medfix.TimeColumn).Get(r); ok {
					rec[cs.Name] = v.Format(time.RFC3339)
				}
			}
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("parquet encode row: %w", err)
		}
		if err := writer.Write(string(b)); err != nil {
			return fmt.Errorf("parquet write row: %w", err)
		}
	}
	if err := writer.WriteStop(); err != nil {
		return fmt.Errorf("parquet finalize: %w", err)
	}
	return nil
}
