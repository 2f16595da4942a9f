package types

import "errors"

// IntegerItem collects a single non-negative integer, optionally bounded.
type IntegerItem struct {
	IsRequired  bool   `bson:"isRequired" json:"isRequired"`
	Max         *int64 `bson:"max,omitempty" json:"max,omitempty"`
	Min         *int64 `bson:"min,omitempty" json:"min,omitempty"`
	Placeholder *int64 `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	Unit        string `bson:"unit,omitempty" json:"unit,omitempty"`
}

var (
	errInconsistentIntegerLimits = errors.New("integer item: min exceeds max")
	errNegativeIntegerLimit      = errors.New("integer item: limits must not be negative")
)

func (i IntegerItem) Validate() error {
	if (i.Min != nil && *i.Min < 0) || (i.Max != nil && *i.Max < 0) {
		return errNegativeIntegerLimit
	}
	if i.Min != nil && i.Max != nil && *i.Min > *i.Max {
		return errInconsistentIntegerLimits
	}
	return nil
}
