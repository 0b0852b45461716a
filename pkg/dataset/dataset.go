// Package dataset loads and saves a split dataset directory:
//
//	<dir>/dataset_dict.json          {"splits": ["train", "test"]}
//	<dir>/<split>/data.jsonl         (or data.jsonl.gz, data.csv, data.csv.gz,
//	                                  data.parquet)
//
// The whole dataset is materialized in memory on load and written back
// wholesale on save; each split is saved in the format it was loaded from.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wdm0006/medfix/pkg/io/csvio"
	"github.com/wdm0006/medfix/pkg/io/jsonlio"
	"github.com/wdm0006/medfix/pkg/io/parquetio"
	"github.com/wdm0006/medfix/pkg/medfix"
)

const dictFile = "dataset_dict.json"

// splitFiles are the recognized split data files, probed in this order.
var splitFiles = []string{"data.jsonl", "data.jsonl.gz", "data.csv", "data.csv.gz", "data.parquet"}

// Split is one named partition of the dataset.
type Split struct {
	Name  string
	Frame *medfix.Frame

	file string // data file name, preserved across save
}

// Dict is the full dataset: ordered splits plus the directory it came from.
type Dict struct {
	Splits []*Split

	srcDir string
	index  map[string]*Split
}

// Split returns the named split.
func (d *Dict) Split(name string) (*Split, bool) {
	s, ok := d.index[name]
	return s, ok
}

// Require verifies the named splits exist and each carries the named column.
func (d *Dict) Require(splits []string, column string) error {
	for _, name := range splits {
		s, ok := d.index[name]
		if !ok {
			return fmt.Errorf("missing split %q", name)
		}
		if _, ok := s.Frame.ColumnByName(column); !ok {
			return fmt.Errorf("split %q has no column %q", name, column)
		}
	}
	return nil
}

// Load reads a dataset directory. Split order follows dataset_dict.json.
func Load(dir string) (*Dict, error) {
	b, err := os.ReadFile(filepath.Join(dir, dictFile))
	if err != nil {
		return nil, err
	}
	var dict struct {
		Splits []string `json:"splits"`
	}
	if err := json.Unmarshal(b, &dict); err != nil {
		return nil, fmt.Errorf("%s: %w", dictFile, err)
	}
	if len(dict.Splits) == 0 {
		return nil, fmt.Errorf("%s: no splits declared", dictFile)
	}

	d := &Dict{srcDir: filepath.Clean(dir), index: make(map[string]*Split)}
	for _, name := range dict.Splits {
		sp, err := loadSplit(dir, name)
		if err != nil {
			return nil, fmt.Errorf("split %q: %w", name, err)
		}
		d.Splits = append(d.Splits, sp)
		d.index[name] = sp
	}
	return d, nil
}

func loadSplit(dir, name string) (*Split, error) {
	splitDir := filepath.Join(dir, name)
	for _, file := range splitFiles {
		path := filepath.Join(splitDir, file)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f, err := readSplitFile(path, file)
		if err != nil {
			return nil, err
		}
		return &Split{Name: name, Frame: f, file: file}, nil
	}
	return nil, fmt.Errorf("no data file in %s", splitDir)
}

const sampleRows = 100

func readSplitFile(path, file string) (*medfix.Frame, error) {
	switch file {
	case "data.jsonl", "data.jsonl.gz":
		return jsonlio.ReadAll(path, sampleRows)
	case "data.csv", "data.csv.gz":
		return csvio.ReadAll(path, sampleRows)
	case "data.parquet":
		return parquetio.ReadAll(path, sampleRows)
	default:
		return nil, fmt.Errorf("unsupported data file %s", file)
	}
}

// Save writes the dataset to dir, which must differ from the directory it was
// loaded from; the source dataset is never overwritten in place. All splits
// are written, each in its original format.
func (d *Dict) Save(dir string) error {
	if filepath.Clean(dir) == d.srcDir {
		return fmt.Errorf("save path %s equals the dataset source path", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	names := make([]string, 0, len(d.Splits))
	for _, sp := range d.Splits {
		names = append(names, sp.Name)
	}
	b, err := json.MarshalIndent(struct {
		Splits []string `json:"splits"`
	}{Splits: names}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, dictFile), b, 0o644); err != nil {
		return err
	}

	for _, sp := range d.Splits {
		splitDir := filepath.Join(dir, sp.Name)
		if err := os.MkdirAll(splitDir, 0o755); err != nil {
			return err
		}
		if err := writeSplitFile(filepath.Join(splitDir, sp.file), sp.file, sp.Frame); err != nil {
			return fmt.Errorf("split %q: %w", sp.Name, err)
		}
	}
	return nil
}

func writeSplitFile(path, file string, f *medfix.Frame) error {
	switch file {
	case "data.jsonl", "data.jsonl.gz":
		return jsonlio.WriteAll(path, f)
	case "data.csv", "data.csv.gz":
		return csvio.WriteAll(path, f)
	case "data.parquet":
		return parquetio.WriteAll(path, f)
	default:
		return fmt.Errorf("unsupported data file %s", file)
	}
}

// New assembles a dataset in memory, defaulting every split to JSONL storage.
func New(splits ...*Split) *Dict {
	d := &Dict{index: make(map[string]*Split)}
	for _, sp := range splits {
		if sp.file == "" {
			sp.file = "data.jsonl"
		}
		d.Splits = append(d.Splits, sp)
		d.index[sp.Name] = sp
	}
	return d
}
