package types

import "errors"

// TextItem collects a free text answer, optionally length-bounded.
type TextItem struct {
	AcceptMultipleLines bool   `bson:"acceptMultipleLines" json:"acceptMultipleLines"`
	IsRequired          bool   `bson:"isRequired" json:"isRequired"`
	MaxLength           *int   `bson:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength           *int   `bson:"minLength,omitempty" json:"minLength,omitempty"`
	Placeholder         string `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
}

var (
	errInconsistentTextLengthLimits = errors.New("text item: min length exceeds max length")
	errNegativeTextLengthLimit      = errors.New("text item: length limits must not be negative")
)

func (t TextItem) Validate() error {
	if (t.MinLength != nil && *t.MinLength < 0) || (t.MaxLength != nil && *t.MaxLength < 0) {
		return errNegativeTextLengthLimit
	}
	if t.MinLength != nil && t.MaxLength != nil && *t.MinLength > *t.MaxLength {
		return errInconsistentTextLengthLimits
	}
	return nil
}
