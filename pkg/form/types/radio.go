package types

import "errors"

const MAX_RADIO_BUTTONS = 32

// Radio is one selectable button inside a radio item.
type Radio struct {
	ID    RadioID `bson:"id" json:"id"`
	Label string  `bson:"label" json:"label"`
}

// RadioItem collects at most one selected button.
type RadioItem struct {
	Buttons    []Radio `bson:"buttons" json:"buttons"`
	IsRequired bool    `bson:"isRequired" json:"isRequired"`
}

var (
	errNoRadioButtons        = errors.New("radio item: button list must not be empty")
	errTooManyRadioButtons   = errors.New("radio item: too many buttons")
	errDuplicatedRadioButton = errors.New("radio item: duplicated button id")
)

func (r RadioItem) Validate() error {
	if len(r.Buttons) == 0 {
		return errNoRadioButtons
	}
	if len(r.Buttons) > MAX_RADIO_BUTTONS {
		return errTooManyRadioButtons
	}
	seen := map[RadioID]struct{}{}
	for _, button := range r.Buttons {
		if _, ok := seen[button.ID]; ok {
			return errDuplicatedRadioButton
		}
		seen[button.ID] = struct{}{}
	}
	return nil
}

func (r RadioItem) HasButton(id RadioID) bool {
	for _, button := range r.Buttons {
		if button.ID == id {
			return true
		}
	}
	return false
}
