package matchup

import (
	"fmt"

	"github.com/notjagan/typechart/pkg/model"
)

type Offense struct {
	SuperEffective   []string `json:"superEffective"`
	NotVeryEffective []string `json:"notVeryEffective"`
	NoEffect         []string `json:"noEffect"`
}

type Defense struct {
	WeakTo   []string `json:"weakTo"`
	Resists  []string `json:"resists"`
	ImmuneTo []string `json:"immuneTo"`

	// Factors holds the combined damage factor of every listed type.
	Factors map[string]model.EfficacyLevel `json:"factors"`
}

type Result struct {
	Selection Selection `json:"-"`
	Offense   Offense   `json:"offense"`
	Defense   Defense   `json:"defense"`
}

func (res *Result) List(cat model.Category) []string {
	switch cat {
	case model.CategorySuperEffective:
		return res.Offense.SuperEffective
	case model.CategoryNotVeryEffective:
		return res.Offense.NotVeryEffective
	case model.CategoryNoEffect:
		return res.Offense.NoEffect
	case model.CategoryWeakTo:
		return res.Defense.WeakTo
	case model.CategoryResists:
		return res.Defense.Resists
	case model.CategoryImmuneTo:
		return res.Defense.ImmuneTo
	default:
		return nil
	}
}

func emptyOffense() Offense {
	return Offense{
		SuperEffective:   []string{},
		NotVeryEffective: []string{},
		NoEffect:         []string{},
	}
}

func emptyDefense() Defense {
	return Defense{
		WeakTo:   []string{},
		Resists:  []string{},
		ImmuneTo: []string{},
		Factors:  map[string]model.EfficacyLevel{},
	}
}

// Resolver classifies opposing types against a selection. It holds no
// mutable state.
type Resolver struct {
	table *model.Table
}

func New(table *model.Table) *Resolver {
	return &Resolver{table: table}
}

func (r *Resolver) Table() *model.Table {
	return r.table
}

func (r *Resolver) TypeNames() []string {
	return r.table.Names()
}

// types validates the selection and looks up its records. It returns zero,
// one or two records.
func (r *Resolver) types(sel Selection) ([]*model.Type, error) {
	err := sel.Validate()
	if err != nil {
		return nil, err
	}

	names := sel.Names()
	types := make([]*model.Type, len(names))
	for i, name := range names {
		typ, err := r.table.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("could not resolve selection %s: %w", sel, err)
		}
		types[i] = typ
	}

	return types, nil
}

func (r *Resolver) ResolveOffense(sel Selection) (Offense, error) {
	types, err := r.types(sel)
	if err != nil {
		return Offense{}, err
	}

	return offense(types), nil
}

func (r *Resolver) ResolveDefense(sel Selection) (Defense, error) {
	types, err := r.types(sel)
	if err != nil {
		return Defense{}, err
	}

	return r.defense(types), nil
}

func (r *Resolver) Resolve(sel Selection) (*Result, error) {
	types, err := r.types(sel)
	if err != nil {
		return nil, err
	}

	return &Result{
		Selection: sel,
		Offense:   offense(types),
		Defense:   r.defense(types),
	}, nil
}

func offense(types []*model.Type) Offense {
	switch len(types) {
	case 0:
		return emptyOffense()
	case 1:
		t := types[0]
		return Offense{
			SuperEffective:   newNameSet().add(t.OffenseSuperEffective...).list(),
			NotVeryEffective: newNameSet().add(t.OffenseNotVeryEffective...).list(),
			NoEffect:         newNameSet().add(t.OffenseNoEffect...).list(),
		}
	}

	a, b := types[0], types[1]

	super := newNameSet().
		add(a.OffenseSuperEffective...).
		add(b.OffenseSuperEffective...)

	// Blocked only when both types are blocked.
	none := newNameSet()
	for _, x := range a.OffenseNoEffect {
		if has(b.OffenseNoEffect, x) && !super.has(x) {
			none.add(x)
		}
	}

	// Reduced when one side is reduced and the other is reduced or blocked.
	weak := newNameSet()
	for _, pair := range [][2]*model.Type{{a, b}, {b, a}} {
		this, other := pair[0], pair[1]
		for _, x := range this.OffenseNotVeryEffective {
			if super.has(x) || none.has(x) {
				continue
			}
			if has(other.OffenseNotVeryEffective, x) || has(other.OffenseNoEffect, x) {
				weak.add(x)
			}
		}
	}

	return Offense{
		SuperEffective:   super.list(),
		NotVeryEffective: weak.list(),
		NoEffect:         none.list(),
	}
}

func (r *Resolver) defense(types []*model.Type) Defense {
	switch len(types) {
	case 0:
		return emptyDefense()
	case 1:
		t := types[0]
		def := Defense{
			WeakTo:   newNameSet().add(t.DefenseWeakTo...).list(),
			Resists:  newNameSet().add(t.DefenseResists...).list(),
			ImmuneTo: newNameSet().add(t.DefenseImmuneTo...).list(),
			Factors:  map[string]model.EfficacyLevel{},
		}
		for _, x := range def.WeakTo {
			def.Factors[x] = model.SuperEffective
		}
		for _, x := range def.Resists {
			def.Factors[x] = model.NotVeryEffective
		}
		for _, x := range def.ImmuneTo {
			def.Factors[x] = model.Immune
		}
		return def
	}

	a, b := types[0], types[1]

	attackers := newNameSet().add(r.table.Names()...)
	for _, t := range types {
		attackers.add(t.DefenseWeakTo...).add(t.DefenseResists...).add(t.DefenseImmuneTo...)
	}

	def := emptyDefense()
	for _, x := range attackers.list() {
		lvl := a.DefendingLevel(x).Combine(b.DefendingLevel(x))
		switch {
		case lvl == model.Immune:
			def.ImmuneTo = append(def.ImmuneTo, x)
		case lvl > model.NormalEffective:
			def.WeakTo = append(def.WeakTo, x)
		case lvl < model.NormalEffective:
			def.Resists = append(def.Resists, x)
		default:
			continue
		}
		def.Factors[x] = lvl
	}

	return def
}

// nameSet keeps names in insertion order without duplicates.
type nameSet struct {
	names []string
	seen  map[string]struct{}
}

func newNameSet() *nameSet {
	return &nameSet{
		names: make([]string, 0),
		seen:  make(map[string]struct{}),
	}
}

func (s *nameSet) add(names ...string) *nameSet {
	for _, name := range names {
		if _, ok := s.seen[name]; ok {
			continue
		}
		s.seen[name] = struct{}{}
		s.names = append(s.names, name)
	}

	return s
}

func (s *nameSet) has(name string) bool {
	_, ok := s.seen[name]
	return ok
}

func (s *nameSet) list() []string {
	return s.names
}

func has(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
