package medfix

import "testing"

func newStringFrame(t *testing.T, name string, vals []*string) *Frame {
	t.Helper()
	f := NewFrame(Schema{Columns: []ColumnSchema{{Name: name, Type: KindString, Nullable: true}}})
	for _, v := range vals {
		f.AppendNullRow()
		if v != nil {
			if err := f.SetCell(f.Rows()-1, name, *v); err != nil {
				t.Fatal(err)
			}
		}
	}
	return f
}

func strptr(s string) *string { return &s }

func TestSetCellAndNulls(t *testing.T) {
	f := newStringFrame(t, "s", []*string{strptr("a"), nil, strptr("")})
	col, ok := f.ColumnByName("s")
	if !ok {
		t.Fatal("column missing")
	}
	sc := col.(*StringColumn)
	if v, ok := sc.Get(0); !ok || v != "a" {
		t.Fatalf("row 0: %q ok=%v", v, ok)
	}
	if !sc.IsNull(1) {
		t.Fatal("row 1 should be null")
	}
	if v, ok := sc.Get(2); !ok || v != "" {
		t.Fatalf("row 2: %q ok=%v", v, ok)
	}
}

func TestReplaceColumn(t *testing.T) {
	f := newStringFrame(t, "s", []*string{strptr("a"), nil, strptr("c")})

	next := NewStringColumn("s", 0)
	next.Append("A")
	next.AppendNull()
	next.Append("C")
	if err := f.ReplaceColumn("s", next); err != nil {
		t.Fatal(err)
	}
	col, _ := f.ColumnByName("s")
	sc := col.(*StringColumn)
	if v, _ := sc.Get(0); v != "A" {
		t.Fatalf("row 0 after swap: %q", v)
	}
	if !sc.IsNull(1) {
		t.Fatal("row 1 lost null after swap")
	}
	if sc.Len() != f.Rows() {
		t.Fatalf("column length %d, frame rows %d", sc.Len(), f.Rows())
	}
}

func TestReplaceColumnRejectsBadShape(t *testing.T) {
	f := newStringFrame(t, "s", []*string{strptr("a")})

	short := NewStringColumn("s", 0)
	if err := f.ReplaceColumn("s", short); err == nil {
		t.Fatal("row-count mismatch accepted")
	}
	misnamed := NewStringColumn("other", 0)
	misnamed.Append("x")
	if err := f.ReplaceColumn("s", misnamed); err == nil {
		t.Fatal("misnamed column accepted")
	}
	ok := NewStringColumn("s", 0)
	ok.Append("x")
	if err := f.ReplaceColumn("missing", ok); err == nil {
		t.Fatal("unknown column accepted")
	}
}

func TestMixedKinds(t *testing.T) {
	f := NewFrame(Schema{Columns: []ColumnSchema{
		{Name: "n", Type: KindInt, Nullable: true},
		{Name: "x", Type: KindFloat, Nullable: true},
		{Name: "b", Type: KindBool, Nullable: true},
	}})
	f.AppendNullRow()
	if err := f.SetCell(0, "n", 7); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "x", 1.5); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "b", true); err != nil {
		t.Fatal(err)
	}
	col, _ := f.ColumnByName("n")
	if v, _ := col.(*IntColumn).Get(0); v != 7 {
		t.Fatalf("int cell = %d", v)
	}
	if err := f.SetCell(0, "b", "nope"); err == nil {
		t.Fatal("bad type accepted")
	}
}
