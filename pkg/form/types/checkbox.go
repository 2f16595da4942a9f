package types

import "errors"

const MAX_CHECKBOX_BOXES = 32

// Checkbox is one selectable box inside a checkbox item.
type Checkbox struct {
	ID    CheckboxID `bson:"id" json:"id"`
	Label string     `bson:"label" json:"label"`
}

// CheckboxItem collects any number of checked boxes, optionally bounded by
// MinChecks/MaxChecks.
type CheckboxItem struct {
	Boxes     []Checkbox `bson:"boxes" json:"boxes"`
	MinChecks *int       `bson:"minChecks,omitempty" json:"minChecks,omitempty"`
	MaxChecks *int       `bson:"maxChecks,omitempty" json:"maxChecks,omitempty"`
}

var (
	errNoCheckboxBoxes         = errors.New("checkbox item: box list must not be empty")
	errTooManyCheckboxBoxes    = errors.New("checkbox item: too many boxes")
	errDuplicatedCheckboxBox   = errors.New("checkbox item: duplicated box id")
	errInconsistentCheckLimits = errors.New("checkbox item: min checks exceeds max checks")
	errCheckLimitExceedsBoxes  = errors.New("checkbox item: check limit exceeds number of boxes")
	errNegativeCheckboxLimit   = errors.New("checkbox item: check limits must not be negative")
)

func (c CheckboxItem) Validate() error {
	if len(c.Boxes) == 0 {
		return errNoCheckboxBoxes
	}
	if len(c.Boxes) > MAX_CHECKBOX_BOXES {
		return errTooManyCheckboxBoxes
	}
	seen := map[CheckboxID]struct{}{}
	for _, box := range c.Boxes {
		if _, ok := seen[box.ID]; ok {
			return errDuplicatedCheckboxBox
		}
		seen[box.ID] = struct{}{}
	}
	if (c.MinChecks != nil && *c.MinChecks < 0) || (c.MaxChecks != nil && *c.MaxChecks < 0) {
		return errNegativeCheckboxLimit
	}
	if c.MinChecks != nil && c.MaxChecks != nil && *c.MinChecks > *c.MaxChecks {
		return errInconsistentCheckLimits
	}
	if c.MinChecks != nil && *c.MinChecks > len(c.Boxes) {
		return errCheckLimitExceedsBoxes
	}
	if c.MaxChecks != nil && *c.MaxChecks > len(c.Boxes) {
		return errCheckLimitExceedsBoxes
	}
	return nil
}

func (c CheckboxItem) HasBox(id CheckboxID) bool {
	for _, box := range c.Boxes {
		if box.ID == id {
			return true
		}
	}
	return false
}
