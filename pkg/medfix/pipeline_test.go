package medfix

import (
	"context"
	"errors"
	"testing"
)

type upper struct{ column string }

func (t *upper) Name() string { return "upper" }

func (t *upper) Apply(ctx context.Context, f *Frame) (*Frame, error) {
	col, ok := f.ColumnByName(t.column)
	if !ok {
		return f, nil
	}
	sc := col.(*StringColumn)
	for i := 0; i < sc.Len(); i++ {
		if sc.IsNull(i) {
			continue
		}
		v, _ := sc.Get(i)
		if v == "x" {
			sc.Set(i, "X")
		}
	}
	return f, nil
}

type failing struct{}

func (t *failing) Name() string { return "failing" }
func (t *failing) Apply(ctx context.Context, f *Frame) (*Frame, error) {
	return nil, errors.New("boom")
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	f := newStringFrame(t, "s", []*string{strptr("x"), nil})
	out, err := NewPipeline().Add(&upper{column: "s"}).Run(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("s")
	if v, _ := col.(*StringColumn).Get(0); v != "X" {
		t.Fatalf("stage not applied, got %q", v)
	}
}

func TestPipelineStopsOnError(t *testing.T) {
	f := newStringFrame(t, "s", []*string{strptr("x")})
	if _, err := NewPipeline().Add(&failing{}).Add(&upper{column: "s"}).Run(context.Background(), f); err == nil {
		t.Fatal("error not propagated")
	}
	col, _ := f.ColumnByName("s")
	if v, _ := col.(*StringColumn).Get(0); v != "x" {
		t.Fatalf("later stage ran after failure, got %q", v)
	}
}
