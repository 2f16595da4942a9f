package formengine

import (
	"unicode/utf8"

	formTypes "github.com/sohosai/sos-backend/pkg/form/types"
)

// CheckAnswers walks the form and a submitted answer list in lockstep and
// verifies every pair. Conditions only see answers of items positioned
// strictly before the current one; answers of inactive items are still
// recorded so later "is NOT checked" conditions observe them as unanswered.
//
// The returned error is either a *CheckAnswerError describing the first
// violation, or an opaque internal error when an invariant ValidateItems
// guarantees was broken (a bug, not bad input).
func (f *FormItems) CheckAnswers(answers []formTypes.AnswerItem) error {
	if f.Len() != len(answers) {
		return &CheckAnswerError{Kind: CHECK_ANSWER_ERROR_MISMATCHED_ITEMS_LENGTH}
	}

	knownAnswers := make(map[formTypes.FormItemID]formTypes.AnswerItem, len(answers))
	for i, item := range f.items {
		answer := answers[i]
		if item.ID != answer.ItemID {
			return &CheckAnswerError{
				Kind:     CHECK_ANSWER_ERROR_MISMATCHED_ITEM_ID,
				Expected: item.ID,
				Got:      answer.ItemID,
			}
		}

		itemErr, err := checkItemAnswer(item, knownAnswers, answer)
		if err != nil {
			return err
		}
		if itemErr != nil {
			return &CheckAnswerError{
				Kind:   CHECK_ANSWER_ERROR_ITEM,
				ItemID: item.ID,
				Item:   itemErr,
			}
		}

		knownAnswers[answer.ItemID] = answer
	}

	return nil
}

// checkItemAnswer resolves the item's active state and dispatches to the body
// check when an answer is both present and expected.
func checkItemAnswer(item formTypes.FormItem, knownAnswers map[formTypes.FormItemID]formTypes.AnswerItem, answer formTypes.AnswerItem) (*AnswerItemError, error) {
	var body *formTypes.AnswerBody
	if item.Conditions == nil {
		// Unconditional items are always active regardless of position.
		if answer.Body == nil {
			return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_NOT_ANSWERED_WITHOUT_CONDITION}, nil
		}
		body = answer.Body
	} else {
		matched, err := evalConditions(item.Conditions, knownAnswers)
		if err != nil {
			return nil, err
		}
		switch {
		case matched && answer.Body != nil:
			body = answer.Body
		case matched:
			return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_NOT_ANSWERED_WITH_CONDITION}, nil
		case answer.Body != nil:
			return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_UNEXPECTED_ANSWER}, nil
		default:
			// Inactive and unanswered: nothing more to check.
			return nil, nil
		}
	}

	return checkAnswerBody(item.Body, *body), nil
}

func checkAnswerBody(item formTypes.ItemBody, answer formTypes.AnswerBody) *AnswerItemError {
	if item.Type != answer.Type {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_MISMATCHED_ITEM_TYPE}
	}
	switch item.Type {
	case formTypes.ITEM_TYPE_TEXT:
		return checkTextAnswer(item.Text, answer.Text)
	case formTypes.ITEM_TYPE_INTEGER:
		return checkIntegerAnswer(item.Integer, answer.Integer)
	case formTypes.ITEM_TYPE_CHECKBOX:
		return checkCheckboxAnswer(item.Checkbox, answer.Checkbox)
	case formTypes.ITEM_TYPE_RADIO:
		return checkRadioAnswer(item.Radio, answer.Radio)
	case formTypes.ITEM_TYPE_GRID_RADIO:
		return checkGridRadioAnswer(item.GridRadio, answer.GridRadio)
	case formTypes.ITEM_TYPE_FILE:
		return checkFileAnswer(item.File, answer.File)
	default:
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_MISMATCHED_ITEM_TYPE}
	}
}

func checkTextAnswer(item *formTypes.TextItem, value *string) *AnswerItemError {
	if value == nil {
		if item.IsRequired {
			return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_NOT_ANSWERED_TEXT}
		}
		return nil
	}

	if !item.AcceptMultipleLines && containsLineBreak(*value) {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_NOT_ALLOWED_MULTIPLE_LINE_TEXT}
	}

	length := utf8.RuneCountInString(*value)
	if item.MaxLength != nil && length > *item.MaxLength {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_TOO_LONG_TEXT}
	}
	if item.MinLength != nil && length < *item.MinLength {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_TOO_SHORT_TEXT}
	}
	return nil
}

func containsLineBreak(s string) bool {
	for _, r := range s {
		if r == '\n' || r == '\r' {
			return true
		}
	}
	return false
}

func checkIntegerAnswer(item *formTypes.IntegerItem, value *int64) *AnswerItemError {
	if value == nil {
		if item.IsRequired {
			return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_NOT_ANSWERED_INTEGER}
		}
		return nil
	}

	// Values are non-negative regardless of an explicit lower bound.
	if *value < 0 {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_TOO_SMALL_INTEGER}
	}
	if item.Min != nil && *value < *item.Min {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_TOO_SMALL_INTEGER}
	}
	if item.Max != nil && *value > *item.Max {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_TOO_BIG_INTEGER}
	}
	return nil
}

func checkCheckboxAnswer(item *formTypes.CheckboxItem, checked []formTypes.CheckboxID) *AnswerItemError {
	if item.MinChecks != nil && len(checked) < *item.MinChecks {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_TOO_FEW_CHECKS}
	}
	if item.MaxChecks != nil && len(checked) > *item.MaxChecks {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_TOO_MANY_CHECKS}
	}
	for _, id := range checked {
		if !item.HasBox(id) {
			return &AnswerItemError{
				Kind:     ANSWER_ITEM_ERROR_UNKNOWN_CHECKBOX_ID,
				OptionID: string(id),
			}
		}
	}
	return nil
}

func checkRadioAnswer(item *formTypes.RadioItem, selected *formTypes.RadioID) *AnswerItemError {
	if selected == nil {
		if item.IsRequired {
			return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_NOT_ANSWERED_RADIO}
		}
		return nil
	}

	if !item.HasButton(*selected) {
		return &AnswerItemError{
			Kind:     ANSWER_ITEM_ERROR_UNKNOWN_RADIO_ID,
			OptionID: string(*selected),
		}
	}
	return nil
}

func checkGridRadioAnswer(item *formTypes.GridRadioItem, rows []formTypes.RowAnswer) *AnswerItemError {
	if len(rows) == 0 {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_NOT_ANSWERED_GRID_RADIO_ROWS}
	}
	if len(rows) != len(item.Rows) {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_MISMATCHED_GRID_RADIO_ROWS_LENGTH}
	}

	selectedColumns := map[formTypes.GridRadioColumnID]struct{}{}
	for i, row := range rows {
		// Row answers are positional: the i-th answer belongs to the i-th
		// declared row.
		if row.RowID != item.Rows[i].ID {
			return &AnswerItemError{
				Kind:          ANSWER_ITEM_ERROR_MISMATCHED_GRID_RADIO_ROW_ID,
				ExpectedRowID: item.Rows[i].ID,
				GotRowID:      row.RowID,
			}
		}
		if row.Value == nil {
			if item.Required {
				return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_NOT_ANSWERED_GRID_RADIO_ROWS}
			}
			continue
		}
		if !item.HasColumn(*row.Value) {
			return &AnswerItemError{
				Kind:     ANSWER_ITEM_ERROR_UNKNOWN_GRID_RADIO_COLUMN_ID,
				OptionID: string(*row.Value),
			}
		}
		if item.ExclusiveColumn {
			if _, ok := selectedColumns[*row.Value]; ok {
				return &AnswerItemError{
					Kind:     ANSWER_ITEM_ERROR_NOT_ALLOWED_DUPLICATED_GRID_RADIO_COLUMN,
					OptionID: string(*row.Value),
				}
			}
			selectedColumns[*row.Value] = struct{}{}
		}
	}
	return nil
}

func checkFileAnswer(item *formTypes.FileItem, files []formTypes.FileAnswer) *AnswerItemError {
	if len(files) > 1 && !item.AcceptMultipleFiles {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_NOT_ALLOWED_MULTIPLE_FILES}
	}
	if len(files) == 0 && item.IsRequired {
		return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_NOT_ANSWERED_FILE}
	}
	for _, file := range files {
		if !item.AcceptsType(file.Type) {
			return &AnswerItemError{Kind: ANSWER_ITEM_ERROR_NOT_ALLOWED_FILE_TYPE}
		}
	}
	return nil
}
