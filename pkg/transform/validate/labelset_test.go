package validate

import (
	"context"
	"testing"

	"github.com/wdm0006/medfix/pkg/medfix"
)

func frameWith(t *testing.T, vals []*string) *medfix.Frame {
	t.Helper()
	f := medfix.NewFrame(medfix.Schema{Columns: []medfix.ColumnSchema{{Name: "output", Type: medfix.KindString, Nullable: true}}})
	for _, v := range vals {
		f.AppendNullRow()
		if v != nil {
			if err := f.SetCell(f.Rows()-1, "output", *v); err != nil {
				t.Fatal(err)
			}
		}
	}
	return f
}

func sp(s string) *string { return &s }

func TestLabelSetCountsUnknown(t *testing.T) {
	f := frameWith(t, []*string{
		sp("<label>new</label> ok"),
		sp("<label>weird</label>"),
		sp("no tag here"),
		nil,
	})
	v := NewLabelSet("output", []string{"new"}, false)
	if _, err := v.Apply(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	if v.Unknown != 1 {
		t.Fatalf("Unknown = %d", v.Unknown)
	}
}

func TestLabelSetStrictFails(t *testing.T) {
	f := frameWith(t, []*string{sp("<label>weird</label>")})
	v := NewLabelSet("output", []string{"new"}, true)
	if _, err := v.Apply(context.Background(), f); err == nil {
		t.Fatal("strict mode did not fail")
	}
}

func TestLabelSetMissingColumnNoop(t *testing.T) {
	f := frameWith(t, []*string{sp("<label>weird</label>")})
	v := NewLabelSet("other", []string{"new"}, true)
	if _, err := v.Apply(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	if v.Unknown != 0 {
		t.Fatalf("Unknown = %d", v.Unknown)
	}
}
