package model

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

//go:embed data/types.json
var defaultDataset []byte

const DefaultSource = "embedded:types.json"

var ErrSchemaMismatch = errors.New("dataset does not match the type record schema")

// DatasetLoadError is returned for any failure to read or decode a dataset.
// Callers are expected to treat it as fatal.
type DatasetLoadError struct {
	Source string
	Err    error
}

func (e *DatasetLoadError) Error() string {
	return fmt.Sprintf("failed to load type dataset from %q: %v", e.Source, e.Err)
}

func (e *DatasetLoadError) Unwrap() error {
	return e.Err
}

// record accepts both the six-field schema and the older
// strengths/weaknesses/immunes one.
type record struct {
	Type

	ID         *int     `json:"id"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Immunes    []string `json:"immunes"`
}

func (rec *record) legacy() bool {
	return rec.Strengths != nil || rec.Weaknesses != nil || rec.Immunes != nil
}

func (rec *record) full() bool {
	return rec.OffenseSuperEffective != nil || rec.OffenseNotVeryEffective != nil || rec.OffenseNoEffect != nil ||
		rec.DefenseWeakTo != nil || rec.DefenseResists != nil || rec.DefenseImmuneTo != nil
}

func Default() (*Table, error) {
	return decode(DefaultSource, bytes.NewReader(defaultDataset))
}

func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DatasetLoadError{Source: path, Err: err}
	}
	defer f.Close()

	return decode(path, f)
}

func Decode(r io.Reader) (*Table, error) {
	return decode("reader", r)
}

func decode(source string, r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var recs []record
	err := dec.Decode(&recs)
	if err != nil {
		return nil, &DatasetLoadError{
			Source: source,
			Err:    fmt.Errorf("%w: %v", ErrSchemaMismatch, err),
		}
	}

	var extra json.RawMessage
	err = dec.Decode(&extra)
	if !errors.Is(err, io.EOF) {
		return nil, &DatasetLoadError{
			Source: source,
			Err:    fmt.Errorf("%w: trailing data", ErrSchemaMismatch),
		}
	}

	types, err := fromRecords(recs)
	if err != nil {
		return nil, &DatasetLoadError{Source: source, Err: err}
	}

	table, err := NewTable(types)
	if err != nil {
		return nil, &DatasetLoadError{Source: source, Err: err}
	}

	return table, nil
}

func fromRecords(recs []record) ([]Type, error) {
	var legacy, full int
	for i := range recs {
		rec := &recs[i]
		if rec.legacy() && rec.full() {
			return nil, fmt.Errorf("record %q mixes both schemas: %w", rec.Name, ErrSchemaMismatch)
		}
		if rec.legacy() {
			legacy++
		} else {
			full++
		}
	}
	if legacy > 0 && full > 0 {
		return nil, fmt.Errorf("dataset mixes both schemas: %w", ErrSchemaMismatch)
	}

	types := make([]Type, len(recs))
	for i := range recs {
		if legacy > 0 {
			types[i] = Type{
				Name:                    recs[i].Name,
				OffenseSuperEffective:   recs[i].Strengths,
				OffenseNotVeryEffective: recs[i].Weaknesses,
				OffenseNoEffect:         recs[i].Immunes,
			}
		} else {
			types[i] = recs[i].Type
		}
	}
	if legacy > 0 {
		deriveDefense(types)
	}

	return types, nil
}

// deriveDefense fills every record's defense lists by inverting the offense
// lists of the whole set, in set order.
func deriveDefense(types []Type) {
	for i := range types {
		def := &types[i]
		def.DefenseWeakTo = make([]string, 0)
		def.DefenseResists = make([]string, 0)
		def.DefenseImmuneTo = make([]string, 0)

		for j := range types {
			atk := &types[j]
			switch {
			case contains(atk.OffenseSuperEffective, def.Name):
				def.DefenseWeakTo = append(def.DefenseWeakTo, atk.Name)
			case contains(atk.OffenseNotVeryEffective, def.Name):
				def.DefenseResists = append(def.DefenseResists, atk.Name)
			case contains(atk.OffenseNoEffect, def.Name):
				def.DefenseImmuneTo = append(def.DefenseImmuneTo, atk.Name)
			}
		}
	}
}
