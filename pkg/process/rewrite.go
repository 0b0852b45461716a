package process

import (
	"context"
	"fmt"
	"io"

	progressbar "github.com/schollz/progressbar/v2"

	"github.com/wdm0006/medfix/pkg/medfix"
	"github.com/wdm0006/medfix/pkg/transform/label"
	"github.com/wdm0006/medfix/pkg/transform/translate"
)

// Rewrite is the pipeline stage that runs term translation followed by label
// normalization over every record of a string column. The column is rebuilt
// positionally (new column built in full, then swapped in), never edited
// while it is being read. Counters accumulate on the stage.
type Rewrite struct {
	Column string
	Rules  translate.Rules
	Labels map[string]string

	// Progress, when non-nil, receives a per-record progress bar.
	Progress io.Writer
	Desc     string

	Total    int
	Changed  int
	MultiTag int
	// Freq counts label values observed after normalization.
	Freq map[string]int
}

func (t *Rewrite) Name() string { return "rewrite_output" }

func (t *Rewrite) Apply(ctx context.Context, f *medfix.Frame) (*medfix.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	sc, ok := col.(*medfix.StringColumn)
	if !ok {
		// unexpected column shape: pass the whole column through unchanged
		t.Total += col.Len()
		return f, nil
	}
	if t.Freq == nil {
		t.Freq = make(map[string]int)
	}

	var bar *progressbar.ProgressBar
	if t.Progress != nil && sc.Len() > 0 {
		bar = progressbar.NewOptions(sc.Len(),
			progressbar.OptionSetWriter(t.Progress),
			progressbar.OptionSetDescription(t.Desc),
		)
	}

	next := medfix.NewStringColumn(t.Column, 0)
	for i := 0; i < sc.Len(); i++ {
		if bar != nil {
			_ = bar.Add(1)
		}
		t.Total++
		if sc.IsNull(i) {
			next.AppendNull()
			continue
		}
		v, _ := sc.Get(i)
		if v == "" {
			next.Append(v)
			continue
		}
		out := t.Rules.Apply(v)
		out = label.Normalize(out, t.Labels)
		if out != v {
			t.Changed++
		}
		if n := label.TagCount(out); n > 1 {
			t.MultiTag++
		}
		if inner, ok := label.First(out); ok {
			t.Freq[inner]++
		}
		next.Append(out)
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(t.Progress)
	}
	if err := f.ReplaceColumn(t.Column, next); err != nil {
		return f, err
	}
	return f, nil
}
