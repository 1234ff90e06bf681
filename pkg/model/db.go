package model

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type dbType struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type TypeEfficacy struct {
	DamageFactor int `db:"damage_factor"`
	DamageTypeID int `db:"damage_type_id"`
	TargetTypeID int `db:"target_type_id"`
}

func (te *TypeEfficacy) EfficacyLevel() EfficacyLevel {
	return EfficacyLevel(te.DamageFactor)
}

// LoadDB builds a table from a PokeAPI-shaped SQLite database. Types that
// have no efficacy rows at all (such as "unknown" and "shadow") are left out.
func LoadDB(ctx context.Context, dbPath string) (*Table, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return nil, &DatasetLoadError{Source: dbPath, Err: fmt.Errorf("failed to open database: %w", err)}
	}
	defer db.Close()

	err = db.PingContext(ctx)
	if err != nil {
		return nil, &DatasetLoadError{Source: dbPath, Err: fmt.Errorf("unable to read from database: %w", err)}
	}

	types, err := queryTypes(ctx, db)
	if err != nil {
		return nil, &DatasetLoadError{Source: dbPath, Err: err}
	}

	table, err := NewTable(types)
	if err != nil {
		return nil, &DatasetLoadError{Source: dbPath, Err: err}
	}

	return table, nil
}

func queryTypes(ctx context.Context, db *sqlx.DB) ([]Type, error) {
	var rows []dbType
	err := db.SelectContext(ctx, &rows,
		/* sql */ `
		SELECT t.id, t.name
		FROM pokemon_v2_type t
		WHERE EXISTS (
			SELECT 1
			FROM pokemon_v2_typeefficacy e
			WHERE e.damage_type_id = t.id
		)
		ORDER BY t.id
	`)
	if err != nil {
		return nil, fmt.Errorf("error while getting types: %w", err)
	}

	var effs []TypeEfficacy
	err = db.SelectContext(ctx, &effs,
		/* sql */ `
		SELECT damage_factor, damage_type_id, target_type_id
		FROM pokemon_v2_typeefficacy
		ORDER BY damage_type_id, target_type_id
	`)
	if err != nil {
		return nil, fmt.Errorf("error while getting type efficacies: %w", err)
	}

	return fromEfficacies(rows, effs)
}

func fromEfficacies(rows []dbType, effs []TypeEfficacy) ([]Type, error) {
	title := cases.Title(language.English)

	types := make([]Type, len(rows))
	index := make(map[int]int, len(rows))
	for i, row := range rows {
		types[i] = Type{
			Name:                    title.String(row.Name),
			OffenseSuperEffective:   make([]string, 0),
			OffenseNotVeryEffective: make([]string, 0),
			OffenseNoEffect:         make([]string, 0),
		}
		index[row.ID] = i
	}

	for _, te := range effs {
		atk, ok := index[te.DamageTypeID]
		if !ok {
			continue
		}
		def, ok := index[te.TargetTypeID]
		if !ok {
			continue
		}

		target := types[def].Name
		switch te.EfficacyLevel() {
		case SuperEffective:
			types[atk].OffenseSuperEffective = append(types[atk].OffenseSuperEffective, target)
		case NotVeryEffective:
			types[atk].OffenseNotVeryEffective = append(types[atk].OffenseNotVeryEffective, target)
		case Immune:
			types[atk].OffenseNoEffect = append(types[atk].OffenseNoEffect, target)
		case NormalEffective:
		default:
			return nil, fmt.Errorf("unexpected damage factor %d for %q against %q: %w",
				te.DamageFactor, types[atk].Name, target, ErrSchemaMismatch)
		}
	}
	deriveDefense(types)

	return types, nil
}
