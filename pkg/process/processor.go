// Package process orchestrates the one-shot normalization pass: load the
// dataset, rewrite the designated column in every split, and save the rebuilt
// dataset to a distinct path.
package process

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/wdm0006/medfix/pkg/dataset"
	"github.com/wdm0006/medfix/pkg/medfix"
	"github.com/wdm0006/medfix/pkg/report"
	"github.com/wdm0006/medfix/pkg/transform/translate"
	"github.com/wdm0006/medfix/pkg/transform/validate"
)

// DefaultColumn is the text field the pass rewrites.
const DefaultColumn = "output"

// requiredSplits must both be present in the loaded dataset.
var requiredSplits = []string{"train", "test"}

type Options struct {
	// Column defaults to DefaultColumn.
	Column string
	// Terms maps source-language terms to localized replacements.
	Terms map[string]string
	// Labels maps label values to their canonical form.
	Labels map[string]string
	// Progress, when non-nil, receives per-split progress bars.
	Progress io.Writer
	// TopLabels caps the label frequency listing in the summary (0 = all).
	TopLabels int
	// Strict fails the run when normalized labels fall outside the
	// canonical vocabulary.
	Strict bool
}

// Run executes the full pass. Load and save failures abort the run with a
// phase-tagged error; the transform itself is total and cannot fail a record.
// Nothing is written unless every split transformed.
func Run(ctx context.Context, datasetPath, savePath string, opt Options) (*report.Summary, error) {
	if filepath.Clean(savePath) == filepath.Clean(datasetPath) {
		return nil, fmt.Errorf("save path must differ from dataset path (%s)", datasetPath)
	}
	column := opt.Column
	if column == "" {
		column = DefaultColumn
	}

	d, err := dataset.Load(datasetPath)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if err := d.Require(requiredSplits, column); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	rules := translate.Compile(opt.Terms)
	canonical := canonicalLabels(opt.Labels)
	summary := report.New(opt.TopLabels)

	for _, sp := range d.Splits {
		rw := &Rewrite{
			Column:   column,
			Rules:    rules,
			Labels:   opt.Labels,
			Progress: opt.Progress,
			Desc:     sp.Name,
		}
		p := medfix.NewPipeline().Add(rw)
		var vs *validate.LabelSet
		if len(canonical) > 0 {
			vs = validate.NewLabelSet(column, canonical, opt.Strict)
			p.Add(vs)
		}
		if _, err := p.Run(ctx, sp.Frame); err != nil {
			return nil, fmt.Errorf("transform split %q: %w", sp.Name, err)
		}
		c := report.SplitCount{Name: sp.Name, Total: rw.Total, Changed: rw.Changed, MultiTag: rw.MultiTag}
		if vs != nil {
			c.UnknownLabels = vs.Unknown
		}
		summary.AddSplit(c)
		summary.CountLabels(rw.Freq)
	}

	if err := d.Save(savePath); err != nil {
		return nil, fmt.Errorf("save dataset: %w", err)
	}
	return summary, nil
}

// canonicalLabels is the set of values the label map normalizes into.
func canonicalLabels(labels map[string]string) []string {
	seen := make(map[string]struct{}, len(labels))
	var out []string
	for _, v := range labels {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
