package validate

import (
	"context"
	"fmt"

	"github.com/wdm0006/medfix/pkg/medfix"
	"github.com/wdm0006/medfix/pkg/transform/label"
)

// LabelSet checks that every <label> value in a string column belongs to the
// canonical vocabulary. By default it only counts offenders; with Strict set
// it fails the pipeline run.
type LabelSet struct {
	Column string
	Values map[string]struct{}
	Strict bool

	// Unknown is the number of rows whose label value fell outside Values.
	Unknown int
}

func NewLabelSet(col string, vals []string, strict bool) *LabelSet {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return &LabelSet{Column: col, Values: m, Strict: strict}
}

func (t *LabelSet) Name() string { return "validate_labels" }

func (t *LabelSet) Apply(ctx context.Context, f *medfix.Frame) (*medfix.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	sc, ok := col.(*medfix.StringColumn)
	if !ok {
		return f, nil
	}
	for i := 0; i < sc.Len(); i++ {
		if sc.IsNull(i) {
			continue
		}
		v, _ := sc.Get(i)
		inner, ok := label.First(v)
		if !ok {
			continue
		}
		if _, ok := t.Values[inner]; !ok {
			t.Unknown++
		}
	}
	if t.Strict && t.Unknown > 0 {
		return f, fmt.Errorf("validate_labels: column %s has %d label values outside canonical set", t.Column, t.Unknown)
	}
	return f, nil
}
