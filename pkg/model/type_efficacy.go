package model

//go:generate enumer -type=Category -trimprefix=Category -transform=kebab -json
//go:generate enumer -type=Axis -trimprefix=Axis -transform=kebab -json

type EfficacyLevel int

const (
	DoubleSuperEffective   EfficacyLevel = 400
	SuperEffective         EfficacyLevel = 200
	NormalEffective        EfficacyLevel = 100
	NotVeryEffective       EfficacyLevel = 50
	DoubleNotVeryEffective EfficacyLevel = 25
	Immune                 EfficacyLevel = 0
)

// Combine multiplies two damage factors the way a dual-typed defender takes
// a hit.
func (lvl EfficacyLevel) Combine(other EfficacyLevel) EfficacyLevel {
	return lvl * other / NormalEffective
}

func (lvl EfficacyLevel) String() string {
	switch lvl {
	case DoubleSuperEffective:
		return "4x"
	case SuperEffective:
		return "2x"
	case NormalEffective:
		return "1x"
	case NotVeryEffective:
		return "0.5x"
	case DoubleNotVeryEffective:
		return "0.25x"
	case Immune:
		return "0x"
	default:
		return "unknown"
	}
}

type Axis int

const (
	AxisOffense Axis = iota
	AxisDefense
)

type Category int

const (
	CategorySuperEffective Category = iota
	CategoryNotVeryEffective
	CategoryNoEffect
	CategoryWeakTo
	CategoryResists
	CategoryImmuneTo
)

func (cat Category) Axis() Axis {
	if cat >= CategoryWeakTo {
		return AxisDefense
	}

	return AxisOffense
}

// Title is the heading shown above a category's list.
func (cat Category) Title() string {
	switch cat {
	case CategorySuperEffective:
		return "Super effective"
	case CategoryNotVeryEffective:
		return "Not very effective"
	case CategoryNoEffect:
		return "No effect"
	case CategoryWeakTo:
		return "Weaknesses"
	case CategoryResists:
		return "Resistances"
	case CategoryImmuneTo:
		return "Immunities"
	default:
		return cat.String()
	}
}
