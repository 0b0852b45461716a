package jsonlio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wdm0006/medfix/pkg/medfix"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.jsonl")
	if err := os.WriteFile(path, []byte(
		`{"id": 1, "output": "skin cancer found"}
{"id": 2}
{"id": 3, "output": ""}
`), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := ReadAll(path, 100)
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows() != 3 {
		t.Fatalf("rows = %d", f.Rows())
	}
	col, ok := f.ColumnByName("output")
	if !ok {
		t.Fatal("output column missing")
	}
	sc, ok := col.(*medfix.StringColumn)
	if !ok {
		t.Fatalf("output inferred as %v", col.Kind())
	}
	if v, _ := sc.Get(0); v != "skin cancer found" {
		t.Fatalf("row 0 = %q", v)
	}
	if !sc.IsNull(1) {
		t.Fatal("missing field should load null")
	}
	idCol, _ := f.ColumnByName("id")
	if idCol.Kind() != medfix.KindInt {
		t.Fatalf("id inferred as %v", idCol.Kind())
	}

	out := filepath.Join(t.TempDir(), "out.jsonl")
	if err := WriteAll(out, f); err != nil {
		t.Fatal(err)
	}
	f2, err := ReadAll(out, 100)
	if err != nil {
		t.Fatal(err)
	}
	if f2.Rows() != f.Rows() {
		t.Fatalf("rows after round trip = %d", f2.Rows())
	}
	col2, _ := f2.ColumnByName("output")
	sc2 := col2.(*medfix.StringColumn)
	if v, _ := sc2.Get(0); v != "skin cancer found" {
		t.Fatalf("round trip row 0 = %q", v)
	}
	if !sc2.IsNull(1) {
		t.Fatal("null lost in round trip")
	}
}

func TestGzip(t *testing.T) {
	dir := t.TempDir()
	f := medfix.NewFrame(medfix.Schema{Columns: []medfix.ColumnSchema{{Name: "output", Type: medfix.KindString, Nullable: true}}})
	f.AppendNullRow()
	if err := f.SetCell(0, "output", "hello"); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "data.jsonl.gz")
	if err := WriteAll(path, f); err != nil {
		t.Fatal(err)
	}
	f2, err := ReadAll(path, 100)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := f2.ColumnByName("output")
	if v, _ := col.(*medfix.StringColumn).Get(0); v != "hello" {
		t.Fatalf("gz round trip = %q", v)
	}
}
