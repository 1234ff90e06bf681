package model

type Type struct {
	Name string `json:"name"`

	OffenseSuperEffective   []string `json:"offenseSuperEffective"`
	OffenseNotVeryEffective []string `json:"offenseNotVeryEffective"`
	OffenseNoEffect         []string `json:"offenseNoEffect"`

	DefenseWeakTo   []string `json:"defenseWeakTo"`
	DefenseResists  []string `json:"defenseResists"`
	DefenseImmuneTo []string `json:"defenseImmuneTo"`
}

// List returns the record's own list for a category. The slice is shared
// with the table and must not be modified.
func (typ *Type) List(cat Category) []string {
	switch cat {
	case CategorySuperEffective:
		return typ.OffenseSuperEffective
	case CategoryNotVeryEffective:
		return typ.OffenseNotVeryEffective
	case CategoryNoEffect:
		return typ.OffenseNoEffect
	case CategoryWeakTo:
		return typ.DefenseWeakTo
	case CategoryResists:
		return typ.DefenseResists
	case CategoryImmuneTo:
		return typ.DefenseImmuneTo
	default:
		return nil
	}
}

// DefendingLevel is the damage factor an attack of the named type deals to
// this type, read from the defense lists only. Immunity wins over weakness,
// weakness over resistance.
func (typ *Type) DefendingLevel(attacker string) EfficacyLevel {
	switch {
	case contains(typ.DefenseImmuneTo, attacker):
		return Immune
	case contains(typ.DefenseWeakTo, attacker):
		return SuperEffective
	case contains(typ.DefenseResists, attacker):
		return NotVeryEffective
	default:
		return NormalEffective
	}
}

func (typ *Type) clone() Type {
	return Type{
		Name:                    typ.Name,
		OffenseSuperEffective:   cloneNames(typ.OffenseSuperEffective),
		OffenseNotVeryEffective: cloneNames(typ.OffenseNotVeryEffective),
		OffenseNoEffect:         cloneNames(typ.OffenseNoEffect),
		DefenseWeakTo:           cloneNames(typ.DefenseWeakTo),
		DefenseResists:          cloneNames(typ.DefenseResists),
		DefenseImmuneTo:         cloneNames(typ.DefenseImmuneTo),
	}
}

func cloneNames(names []string) []string {
	c := make([]string, len(names))
	copy(c, names)
	return c
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
