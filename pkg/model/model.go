package model

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

var (
	ErrUnknownType   = errors.New("unknown type")
	ErrDuplicateType = errors.New("duplicate type")
	ErrUnnamedType   = errors.New("type has no name")
	ErrEmptyTable    = errors.New("type table is empty")
)

// Table is the read-only set of type records. It is never modified after
// NewTable returns, so it can be shared between goroutines without locking.
type Table struct {
	types  []Type
	byName map[string]int
	folded []string
}

func NewTable(types []Type) (*Table, error) {
	if len(types) == 0 {
		return nil, ErrEmptyTable
	}

	fold := cases.Fold()
	table := &Table{
		types:  make([]Type, len(types)),
		byName: make(map[string]int, len(types)),
		folded: make([]string, len(types)),
	}
	for i := range types {
		typ := &types[i]
		if strings.TrimSpace(typ.Name) == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrUnnamedType)
		}
		if _, ok := table.byName[typ.Name]; ok {
			return nil, fmt.Errorf("type %q: %w", typ.Name, ErrDuplicateType)
		}

		table.types[i] = typ.clone()
		table.byName[typ.Name] = i
		table.folded[i] = fold.String(typ.Name)
	}

	return table, nil
}

// Lookup returns a copy of the named type, so callers cannot change the
// table through it.
func (table *Table) Lookup(name string) (*Type, error) {
	i, ok := table.byName[name]
	if !ok {
		return nil, fmt.Errorf("no type named %q: %w", name, ErrUnknownType)
	}

	typ := table.types[i].clone()
	return &typ, nil
}

func (table *Table) Has(name string) bool {
	_, ok := table.byName[name]
	return ok
}

func (table *Table) Len() int {
	return len(table.types)
}

// Names lists every type name in dataset order.
func (table *Table) Names() []string {
	names := make([]string, len(table.types))
	for i := range table.types {
		names[i] = table.types[i].Name
	}

	return names
}

// Search returns up to limit names starting with prefix, ignoring case.
// A non-positive limit means no limit.
func (table *Table) Search(prefix string, limit int) []string {
	p := cases.Fold().String(prefix)

	names := make([]string, 0)
	for i, folded := range table.folded {
		if limit > 0 && len(names) == limit {
			break
		}
		if strings.HasPrefix(folded, p) {
			names = append(names, table.types[i].Name)
		}
	}

	return names
}
