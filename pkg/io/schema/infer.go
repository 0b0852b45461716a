// Package schema infers dataset column schemas from sampled rows and fills
// frame rows from loosely typed values. Shared by the split-file formats.
package schema

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/wdm0006/medfix/pkg/medfix"
)

var numPattern = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)

// FromMaps infers a schema from decoded rows, voting over at most sampleRows
// of them. Column order is sorted by name so repeated loads agree.
func FromMaps(rows []map[string]any, sampleRows int) medfix.Schema {
	if sampleRows <= 0 || sampleRows > len(rows) {
		sampleRows = len(rows)
	}
	sample := rows[:sampleRows]
	keysSet := map[string]struct{}{}
	for _, m := range rows {
		for k := range m {
			keysSet[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(keysSet))
	for k := range keysSet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := medfix.Schema{Columns: make([]medfix.ColumnSchema, len(keys))}
	for i, k := range keys {
		var nNum, nInt, nBool, nStr int
		for _, m := range sample {
			v, ok := m[k]
			if !ok || v == nil {
				continue
			}
			switch t := v.(type) {
			case float64:
				nNum++
				if float64(int64(t)) == t {
					nInt++
				}
			case int, int64:
				nNum++
				nInt++
			case bool:
				nBool++
			case string:
				sv := strings.TrimSpace(t)
				if sv == "" {
					continue
				}
				if numPattern.MatchString(sv) {
					nNum++
					if !strings.ContainsAny(sv, ".eE") {
						nInt++
					}
				} else {
					nStr++
				}
			default:
				nStr++
			}
		}
		s.Columns[i] = medfix.ColumnSchema{Name: k, Type: vote(nNum, nInt, nBool, nStr), Nullable: true}
	}
	return s
}

// FromRecords infers a schema for named CSV columns from sampled records.
func FromRecords(names []string, sample [][]string) medfix.Schema {
	s := medfix.Schema{Columns: make([]medfix.ColumnSchema, len(names))}
	for i, name := range names {
		var nNum, nInt, nBool, nStr int
		for _, rec := range sample {
			if i >= len(rec) {
				continue
			}
			sv := strings.TrimSpace(rec[i])
			if sv == "" {
				continue
			}
			switch {
			case numPattern.MatchString(sv):
				nNum++
				if !strings.ContainsAny(sv, ".eE") {
					nInt++
				}
			case isBoolToken(sv):
				nBool++
			default:
				nStr++
			}
		}
		s.Columns[i] = medfix.ColumnSchema{Name: name, Type: vote(nNum, nInt, nBool, nStr), Nullable: true}
	}
	return s
}

func isBoolToken(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false":
		return true
	}
	return false
}

func vote(nNum, nInt, nBool, nStr int) medfix.Kind {
	switch {
	case nBool > nNum && nBool >= nStr:
		return medfix.KindBool
	case nNum > nStr:
		if nInt == nNum {
			return medfix.KindInt
		}
		return medfix.KindFloat
	default:
		return medfix.KindString
	}
}

// SetRow fills one frame row from a decoded map, coercing values to the
// column kinds. Missing keys and uncoercible values leave the cell null.
func SetRow(f *medfix.Frame, row int, m map[string]any) {
	for _, cs := range f.Schema().Columns {
		v, ok := m[cs.Name]
		if !ok || v == nil {
			continue
		}
		switch cs.Type {
		case medfix.KindFloat:
			switch t := v.(type) {
			case float64:
				_ = f.SetCell(row, cs.Name, t)
			case int:
				_ = f.SetCell(row, cs.Name, float64(t))
			case int64:
				_ = f.SetCell(row, cs.Name, float64(t))
			case string:
				if s := strings.TrimSpace(t); s != "" {
					if x, err := strconv.ParseFloat(s, 64); err == nil {
						_ = f.SetCell(row, cs.Name, x)
					}
				}
			}
		case medfix.KindInt:
			switch t := v.(type) {
			case int64:
				_ = f.SetCell(row, cs.Name, t)
			case int:
				_ = f.SetCell(row, cs.Name, int64(t))
			case float64:
				_ = f.SetCell(row, cs.Name, int64(t))
			case string:
				if s := strings.TrimSpace(t); s != "" {
					if x, err := strconv.ParseInt(s, 10, 64); err == nil {
						_ = f.SetCell(row, cs.Name, x)
					}
				}
			}
		case medfix.KindBool:
			switch t := v.(type) {
			case bool:
				_ = f.SetCell(row, cs.Name, t)
			case string:
				if x, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(t))); err == nil {
					_ = f.SetCell(row, cs.Name, x)
				}
			}
		default:
			switch t := v.(type) {
			case string:
				_ = f.SetCell(row, cs.Name, t)
			default:
				b, _ := json.Marshal(t)
				_ = f.SetCell(row, cs.Name, string(b))
			}
		}
	}
}
