package matchup

import (
	"errors"
	"fmt"
	"strings"
)

// NoneName is the picker entry meaning "no type chosen".
const NoneName = "None"

var ErrInvalidSelection = errors.New("invalid type combination")

// Selection is zero, one or two type names. An empty string means the slot
// is unset. The zero value is the empty selection.
type Selection struct {
	Primary   string
	Secondary string
}

func normalize(name string) string {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, NoneName) {
		return ""
	}

	return name
}

// NewSelection builds a selection from two picker slots and validates it.
func NewSelection(primary, secondary string) (Selection, error) {
	sel := Selection{
		Primary:   normalize(primary),
		Secondary: normalize(secondary),
	}

	err := sel.Validate()
	if err != nil {
		return Selection{}, err
	}

	return sel, nil
}

func (sel Selection) Validate() error {
	switch {
	case sel.Primary == "" && sel.Secondary != "":
		return fmt.Errorf("secondary type %q set without a primary type: %w", sel.Secondary, ErrInvalidSelection)
	case sel.Primary != "" && sel.Primary == sel.Secondary:
		return fmt.Errorf("type %q selected twice: %w", sel.Primary, ErrInvalidSelection)
	}

	return nil
}

func (sel Selection) Len() int {
	switch {
	case sel.Primary == "":
		return 0
	case sel.Secondary == "":
		return 1
	default:
		return 2
	}
}

func (sel Selection) IsEmpty() bool {
	return sel.Primary == "" && sel.Secondary == ""
}

func (sel Selection) Names() []string {
	names := make([]string, 0, 2)
	if sel.Primary != "" {
		names = append(names, sel.Primary)
	}
	if sel.Secondary != "" {
		names = append(names, sel.Secondary)
	}

	return names
}

func (sel Selection) Has(name string) bool {
	return name != "" && (sel.Primary == name || sel.Secondary == name)
}

// Key identifies the combination regardless of slot order.
func (sel Selection) Key() string {
	a, b := sel.Primary, sel.Secondary
	if b != "" && b < a {
		a, b = b, a
	}
	if b == "" {
		return a
	}

	return a + "/" + b
}

func (sel Selection) String() string {
	if sel.IsEmpty() {
		return NoneName
	}

	return strings.Join(sel.Names(), "/")
}

// ApplyTap returns the selection after the user presses the named type.
// Pressing a chosen type removes it, promoting the secondary if the primary
// was removed. Pressing a new type fills the first free slot, or replaces
// the secondary when both are taken.
func ApplyTap(sel Selection, name string) Selection {
	name = normalize(name)
	switch {
	case name == "":
		return Selection{}
	case sel.Primary == "":
		return Selection{Primary: name}
	case sel.Primary == name:
		return Selection{Primary: sel.Secondary}
	case sel.Secondary == name:
		return Selection{Primary: sel.Primary}
	default:
		return Selection{Primary: sel.Primary, Secondary: name}
	}
}
