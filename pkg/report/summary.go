// Package report accumulates and renders the run summary: per-split and
// combined record counts plus the label vocabulary observed after
// normalization.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// SplitCount holds the counters for one processed split.
type SplitCount struct {
	Name          string
	Total         int
	Changed       int
	MultiTag      int // records carrying more than one <label> span
	UnknownLabels int // records whose label value is outside the canonical set
}

func (c SplitCount) Unchanged() int { return c.Total - c.Changed }

// Summary is the whole run's report.
type Summary struct {
	Splits    []SplitCount
	LabelFreq map[string]int
	TopK      int
}

func New(topK int) *Summary {
	return &Summary{LabelFreq: make(map[string]int), TopK: topK}
}

func (s *Summary) AddSplit(c SplitCount) { s.Splits = append(s.Splits, c) }

// CountLabels merges observed label frequencies into the summary.
func (s *Summary) CountLabels(freq map[string]int) {
	for k, v := range freq {
		s.LabelFreq[k] += v
	}
}

func (s *Summary) Total() int {
	n := 0
	for _, c := range s.Splits {
		n += c.Total
	}
	return n
}

func (s *Summary) Changed() int {
	n := 0
	for _, c := range s.Splits {
		n += c.Changed
	}
	return n
}

func (s *Summary) Unchanged() int { return s.Total() - s.Changed() }

// Text renders the summary as the final console report.
func (s *Summary) Text() string {
	var b strings.Builder
	b.WriteString("Run Summary\n")
	for _, c := range s.Splits {
		fmt.Fprintf(&b, "- %s: total=%d changed=%d unchanged=%d", c.Name, c.Total, c.Changed, c.Unchanged())
		if c.MultiTag > 0 {
			fmt.Fprintf(&b, " multi_tag=%d", c.MultiTag)
		}
		if c.UnknownLabels > 0 {
			fmt.Fprintf(&b, " unknown_labels=%d", c.UnknownLabels)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "- combined: total=%d changed=%d unchanged=%d\n", s.Total(), s.Changed(), s.Unchanged())

	if len(s.LabelFreq) > 0 {
		type kv struct {
			k string
			v int
		}
		arr := make([]kv, 0, len(s.LabelFreq))
		for k, v := range s.LabelFreq {
			arr = append(arr, kv{k, v})
		}
		sort.Slice(arr, func(i, j int) bool {
			if arr[i].v != arr[j].v {
				return arr[i].v > arr[j].v
			}
			return arr[i].k < arr[j].k
		})
		n := s.TopK
		if n <= 0 || n > len(arr) {
			n = len(arr)
		}
		b.WriteString("Labels:\n")
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "  %q: %d\n", arr[i].k, arr[i].v)
		}
	}
	return b.String()
}
