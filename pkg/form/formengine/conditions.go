package formengine

import (
	"fmt"

	formTypes "github.com/sohosai/sos-backend/pkg/form/types"
)

// evalConditions decides whether an item is active given the answers of all
// items positioned before it. The expression holds if any conjunction holds.
// A condition referencing an item that is missing from knownAnswers, or whose
// answer body is absent, evaluates to false: the referenced item was itself
// inactive and thus unanswered.
//
// A resolved answer whose body variant does not match the condition variant is
// an internal invariant violation (ValidateItems rules it out), reported as an
// opaque error instead of a user-facing one.
func evalConditions(expr *formTypes.ConditionExpr, knownAnswers map[formTypes.FormItemID]formTypes.AnswerItem) (bool, error) {
	for _, conj := range expr.Conjunctions {
		matched := true
		for _, condition := range conj {
			ok, err := evalCondition(condition, knownAnswers)
			if err != nil {
				return false, err
			}
			if !ok {
				matched = false
				break
			}
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func evalCondition(condition formTypes.Condition, knownAnswers map[formTypes.FormItemID]formTypes.AnswerItem) (bool, error) {
	switch condition.Type {
	case formTypes.CONDITION_TYPE_CHECKBOX_CHECKED:
		cond := condition.CheckboxChecked
		answer, ok := knownAnswers[cond.ItemID]
		if !ok || answer.Body == nil {
			// Unchecked state of an unanswered item still fails the
			// condition, even with Expected == false.
			return false, nil
		}
		if answer.Body.Type != formTypes.ITEM_TYPE_CHECKBOX {
			return false, fmt.Errorf("answer body of item %s must be checkbox on a valid form", cond.ItemID)
		}
		return answer.Body.IsChecked(cond.CheckboxID) == cond.Expected, nil
	case formTypes.CONDITION_TYPE_RADIO_SELECTED:
		cond := condition.RadioSelected
		answer, ok := knownAnswers[cond.ItemID]
		if !ok || answer.Body == nil {
			return false, nil
		}
		if answer.Body.Type != formTypes.ITEM_TYPE_RADIO {
			return false, fmt.Errorf("answer body of item %s must be radio on a valid form", cond.ItemID)
		}
		return answer.Body.Radio != nil && *answer.Body.Radio == cond.RadioID, nil
	case formTypes.CONDITION_TYPE_GRID_COLUMN_SELECTED:
		cond := condition.GridColumnSelected
		answer, ok := knownAnswers[cond.ItemID]
		if !ok || answer.Body == nil {
			return false, nil
		}
		if answer.Body.Type != formTypes.ITEM_TYPE_GRID_RADIO {
			return false, fmt.Errorf("answer body of item %s must be grid radio on a valid form", cond.ItemID)
		}
		for _, row := range answer.Body.GridRadio {
			if row.Value != nil && *row.Value == cond.ColumnID {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("unknown condition type %q", condition.Type)
	}
}
