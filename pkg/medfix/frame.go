package medfix

import (
	"fmt"
	"time"
)

// Schema describes the logical shape of a split.
type Schema struct {
	Columns []ColumnSchema
}

type ColumnSchema struct {
	Name     string
	Type     Kind
	Nullable bool
}

// Kind enumerates supported logical types.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime
)

// Column is a typed, nullable column abstraction.
type Column interface {
	Name() string
	Kind() Kind
	Len() int
	IsNull(i int) bool
	SetNull(i int)
}

// column holds the storage shared by every concrete column kind.
type column[T any] struct {
	name  string
	data  []T
	nulls []bool
}

func newColumn[T any](name string, n int) column[T] {
	return column[T]{name: name, data: make([]T, n), nulls: make([]bool, n)}
}

func (c *column[T]) Name() string      { return c.name }
func (c *column[T]) Len() int          { return len(c.data) }
func (c *column[T]) IsNull(i int) bool { return c.nulls[i] }
func (c *column[T]) SetNull(i int)     { c.nulls[i] = true }

func (c *column[T]) Get(i int) (T, bool) { return c.data[i], !c.nulls[i] }

func (c *column[T]) Set(i int, v T) {
	c.data[i] = v
	c.nulls[i] = false
}

func (c *column[T]) Append(v T) {
	c.data = append(c.data, v)
	c.nulls = append(c.nulls, false)
}

func (c *column[T]) AppendNull() {
	var zero T
	c.data = append(c.data, zero)
	c.nulls = append(c.nulls, true)
}

type BoolColumn struct{ column[bool] }

func NewBoolColumn(name string, n int) *BoolColumn {
	return &BoolColumn{newColumn[bool](name, n)}
}
func (c *BoolColumn) Kind() Kind { return KindBool }

type IntColumn struct{ column[int64] }

func NewIntColumn(name string, n int) *IntColumn {
	return &IntColumn{newColumn[int64](name, n)}
}
func (c *IntColumn) Kind() Kind { return KindInt }

type FloatColumn struct{ column[float64] }

func NewFloatColumn(name string, n int) *FloatColumn {
	return &FloatColumn{newColumn[float64](name, n)}
}
func (c *FloatColumn) Kind() Kind { return KindFloat }

type StringColumn struct{ column[string] }

func NewStringColumn(name string, n int) *StringColumn {
	return &StringColumn{newColumn[string](name, n)}
}
func (c *StringColumn) Kind() Kind { return KindString }

type TimeColumn struct{ column[time.Time] }

func NewTimeColumn(name string, n int) *TimeColumn {
	return &TimeColumn{newColumn[time.Time](name, n)}
}
func (c *TimeColumn) Kind() Kind { return KindTime }

// Frame is a columnar container for one split of a dataset.
type Frame struct {
	schema Schema
	cols   []Column
	index  map[string]int // name -> col index
	nrows  int
}

func NewFrame(s Schema) *Frame {
	f := &Frame{schema: s, cols: make([]Column, len(s.Columns)), index: make(map[string]int)}
	for i, cs := range s.Columns {
		f.cols[i] = newColumnFor(cs)
		f.index[cs.Name] = i
	}
	return f
}

func newColumnFor(cs ColumnSchema) Column {
	switch cs.Type {
	case KindBool:
		return NewBoolColumn(cs.Name, 0)
	case KindInt:
		return NewIntColumn(cs.Name, 0)
	case KindFloat:
		return NewFloatColumn(cs.Name, 0)
	case KindString:
		return NewStringColumn(cs.Name, 0)
	case KindTime:
		return NewTimeColumn(cs.Name, 0)
	default:
		panic("invalid column kind")
	}
}

func (f *Frame) Schema() Schema { return f.schema }
func (f *Frame) Rows() int      { return f.nrows }
func (f *Frame) Cols() int      { return len(f.cols) }

func (f *Frame) ColumnByName(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// AppendNullRow appends a row with all-null values.
func (f *Frame) AppendNullRow() {
	for _, c := range f.cols {
		switch col := c.(type) {
		case *BoolColumn:
			col.AppendNull()
		case *IntColumn:
			col.AppendNull()
		case *FloatColumn:
			col.AppendNull()
		case *StringColumn:
			col.AppendNull()
		case *TimeColumn:
			col.AppendNull()
		default:
			panic("unknown column type")
		}
	}
	f.nrows++
}

// ReplaceColumn swaps a column wholesale, keeping its position in the schema.
// The replacement must be fully built (same row count) before the swap; the
// frame is never mutated while the old column is still being read.
func (f *Frame) ReplaceColumn(name string, col Column) error {
	i, ok := f.index[name]
	if !ok {
		return fmt.Errorf("unknown column: %s", name)
	}
	if col.Len() != f.nrows {
		return fmt.Errorf("column %s: replacement has %d rows, frame has %d", name, col.Len(), f.nrows)
	}
	if col.Name() != name {
		return fmt.Errorf("column %s: replacement is named %s", name, col.Name())
	}
	f.cols[i] = col
	f.schema.Columns[i].Type = col.Kind()
	return nil
}

// SetCell sets a single cell value by column name (row must exist).
// A nil value marks the cell null.
func (f *Frame) SetCell(row int, name string, v any) error {
	i, ok := f.index[name]
	if !ok {
		return fmt.Errorf("unknown column: %s", name)
	}
	switch col := f.cols[i].(type) {
	case *BoolColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("column %s expects bool", name)
		}
		col.Set(row, b)
	case *IntColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		switch t := v.(type) {
		case int:
			col.Set(row, int64(t))
		case int64:
			col.Set(row, t)
		case float64:
			col.Set(row, int64(t))
		default:
			return fmt.Errorf("column %s expects int/int64", name)
		}
	case *FloatColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		switch t := v.(type) {
		case float32:
			col.Set(row, float64(t))
		case float64:
			col.Set(row, t)
		case int:
			col.Set(row, float64(t))
		case int64:
			col.Set(row, float64(t))
		default:
			return fmt.Errorf("column %s expects float64", name)
		}
	case *StringColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("column %s expects string", name)
		}
		col.Set(row, s)
	case *TimeColumn:
		if v == nil {
			col.SetNull(row)
			return nil
		}
		t, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("column %s expects time.Time", name)
		}
		col.Set(row, t)
	default:
		return fmt.Errorf("unknown column kind")
	}
	return nil
}
