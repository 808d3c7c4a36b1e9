package models

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ColumnKind is the storage type of a player column.
type ColumnKind int

const (
	KindInteger ColumnKind = iota
	KindReal
	KindText
)

func (k ColumnKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	default:
		return "text"
	}
}

// Column describes one column of the players table.
type Column struct {
	Name     string
	Kind     ColumnKind
	Required bool
	field    int
}

var playerColumns = buildPlayerColumns()

// buildPlayerColumns derives the column set from the db tags on Player so the
// table layout, JSON shape and scan order cannot drift apart.
func buildPlayerColumns() []Column {
	t := reflect.TypeOf(Player{})
	columns := make([]Column, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("db")
		if tag == "" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		var kind ColumnKind
		switch ft.Kind() {
		case reflect.Int64:
			kind = KindInteger
		case reflect.Float64:
			kind = KindReal
		case reflect.String:
			kind = KindText
		default:
			panic(fmt.Sprintf("models: unsupported column type %s for %s", ft, name))
		}
		columns = append(columns, Column{
			Name:     name,
			Kind:     kind,
			Required: opts == "notnull",
			field:    i,
		})
	}
	return columns
}

// PlayerColumns returns every players column, id first, in table order.
func PlayerColumns() []Column {
	out := make([]Column, len(playerColumns))
	copy(out, playerColumns)
	return out
}

// PlayerColumnNames returns the names of PlayerColumns.
func PlayerColumnNames() []string {
	names := make([]string, len(playerColumns))
	for i, c := range playerColumns {
		names[i] = c.Name
	}
	return names
}

// LookupPlayerColumn finds a column by name.
func LookupPlayerColumn(name string) (Column, bool) {
	for _, c := range playerColumns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ScanTargets returns pointers to p's fields in PlayerColumns order, ready for
// (*sql.Row).Scan. Nullable fields are scanned through pointer-to-pointer.
func (p *Player) ScanTargets() []any {
	v := reflect.ValueOf(p).Elem()
	targets := make([]any, len(playerColumns))
	for i, c := range playerColumns {
		targets[i] = v.Field(c.field).Addr().Interface()
	}
	return targets
}

// Coerce converts a decoded JSON value into the Go value stored for this
// column. A nil value is accepted for nullable columns only.
func (c Column) Coerce(value any) (any, error) {
	if value == nil {
		if c.Required {
			return nil, fmt.Errorf("%s cannot be null", c.Name)
		}
		return nil, nil
	}

	switch c.Kind {
	case KindInteger:
		return c.toInteger(value)
	case KindReal:
		return c.toReal(value)
	default:
		return c.toText(value)
	}
}

func (c Column) toInteger(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) || v < -(1<<63) || v >= 1<<63 {
			return nil, c.typeError(value)
		}
		return int64(v), nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, c.typeError(value)
		}
		return c.toInteger(f)
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, c.typeError(value)
		}
		return c.toInteger(f)
	default:
		return nil, c.typeError(value)
	}
}

func (c Column) toReal(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, c.typeError(value)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, c.typeError(value)
		}
		return f, nil
	default:
		return nil, c.typeError(value)
	}
}

func (c Column) toText(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return nil, c.typeError(value)
	}
}

func (c Column) typeError(value any) error {
	return fmt.Errorf("%s must be of type %s, got %T", c.Name, c.Kind, value)
}
