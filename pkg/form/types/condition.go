package types

import (
	"errors"
	"fmt"
)

const (
	CONDITION_TYPE_CHECKBOX_CHECKED     = "checkboxChecked"
	CONDITION_TYPE_RADIO_SELECTED       = "radioSelected"
	CONDITION_TYPE_GRID_COLUMN_SELECTED = "gridColumnSelected"
)

const (
	MAX_CONDITION_CONJUNCTIONS     = 16
	MAX_CONDITIONS_PER_CONJUNCTION = 16
)

// ConditionExpr decides whether an item is shown, as a disjunction of
// conjunctions over earlier items' answers: the expression holds if at least
// one conjunction holds, and a conjunction holds if all of its conditions do.
type ConditionExpr struct {
	Conjunctions [][]Condition `bson:"conjunctions" json:"conjunctions"`
}

// Condition is a closed tagged union of the atomic condition variants.
type Condition struct {
	Type               string                       `bson:"type" json:"type"`
	CheckboxChecked    *CheckboxCheckedCondition    `bson:"checkboxChecked,omitempty" json:"checkboxChecked,omitempty"`
	RadioSelected      *RadioSelectedCondition      `bson:"radioSelected,omitempty" json:"radioSelected,omitempty"`
	GridColumnSelected *GridColumnSelectedCondition `bson:"gridColumnSelected,omitempty" json:"gridColumnSelected,omitempty"`
}

// CheckboxCheckedCondition holds when the checked state of the referenced box
// equals Expected, covering both "is checked" and "is not checked" conditions.
type CheckboxCheckedCondition struct {
	ItemID     FormItemID `bson:"itemId" json:"itemId"`
	CheckboxID CheckboxID `bson:"checkboxId" json:"checkboxId"`
	Expected   bool       `bson:"expected" json:"expected"`
}

type RadioSelectedCondition struct {
	ItemID  FormItemID `bson:"itemId" json:"itemId"`
	RadioID RadioID    `bson:"radioId" json:"radioId"`
}

// GridColumnSelectedCondition holds when any row of the referenced grid item
// selected the column.
type GridColumnSelectedCondition struct {
	ItemID   FormItemID        `bson:"itemId" json:"itemId"`
	ColumnID GridRadioColumnID `bson:"columnId" json:"columnId"`
}

// TargetItemID returns the id of the form item the condition refers to.
func (c Condition) TargetItemID() (FormItemID, error) {
	switch c.Type {
	case CONDITION_TYPE_CHECKBOX_CHECKED:
		if c.CheckboxChecked == nil {
			return "", errMismatchedConditionVariant
		}
		return c.CheckboxChecked.ItemID, nil
	case CONDITION_TYPE_RADIO_SELECTED:
		if c.RadioSelected == nil {
			return "", errMismatchedConditionVariant
		}
		return c.RadioSelected.ItemID, nil
	case CONDITION_TYPE_GRID_COLUMN_SELECTED:
		if c.GridColumnSelected == nil {
			return "", errMismatchedConditionVariant
		}
		return c.GridColumnSelected.ItemID, nil
	default:
		return "", fmt.Errorf("unknown condition type %q", c.Type)
	}
}

var (
	errMismatchedConditionVariant = errors.New("condition variant does not match its type tag")
	errTooLongDisjunction         = errors.New("condition expression: too many conjunctions")
	errTooLongConjunction         = errors.New("condition expression: too many conditions in a conjunction")
)

func (e ConditionExpr) Validate() error {
	if len(e.Conjunctions) > MAX_CONDITION_CONJUNCTIONS {
		return errTooLongDisjunction
	}
	for _, conj := range e.Conjunctions {
		if len(conj) > MAX_CONDITIONS_PER_CONJUNCTION {
			return errTooLongConjunction
		}
		for _, condition := range conj {
			if _, err := condition.TargetItemID(); err != nil {
				return err
			}
		}
	}
	return nil
}
