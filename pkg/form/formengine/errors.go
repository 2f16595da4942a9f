package formengine

import (
	"fmt"

	formTypes "github.com/sohosai/sos-backend/pkg/form/types"
)

// Definition-time error kinds. These are caller input errors: the form author
// sent an inconsistent item list and the first violation is reported verbatim.
const (
	VALIDATION_ERROR_EMPTY                           = "empty"
	VALIDATION_ERROR_TOO_LONG                        = "tooLong"
	VALIDATION_ERROR_DUPLICATED_ITEM_ID              = "duplicatedItemId"
	VALIDATION_ERROR_DUPLICATED_OPTION_ID            = "duplicatedOptionId"
	VALIDATION_ERROR_INVALID_ITEM                    = "invalidItem"
	VALIDATION_ERROR_UNKNOWN_ITEM_ID_IN_CONDITIONS   = "unknownItemIdInConditions"
	VALIDATION_ERROR_MISMATCHED_CONDITION_TYPE       = "mismatchedConditionType"
	VALIDATION_ERROR_UNKNOWN_OPTION_ID_IN_CONDITIONS = "unknownOptionIdInConditions"
)

// Option kinds used by option-scoped validation errors.
const (
	OPTION_KIND_CHECKBOX          = "checkbox"
	OPTION_KIND_RADIO_BUTTON      = "radioButton"
	OPTION_KIND_GRID_RADIO_ROW    = "gridRadioRow"
	OPTION_KIND_GRID_RADIO_COLUMN = "gridRadioColumn"
)

// ValidationError reports the first defect found while validating a form item
// list. Provenance is the item whose conditions triggered the error, set only
// for condition-related kinds.
type ValidationError struct {
	Kind       string
	ItemID     formTypes.FormItemID
	Provenance formTypes.FormItemID
	OptionKind string
	OptionID   string
	Err        error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case VALIDATION_ERROR_EMPTY:
		return "invalid form item list: empty"
	case VALIDATION_ERROR_TOO_LONG:
		return "invalid form item list: too many items"
	case VALIDATION_ERROR_DUPLICATED_ITEM_ID:
		return fmt.Sprintf("invalid form item list: duplicated item id %s", e.ItemID)
	case VALIDATION_ERROR_DUPLICATED_OPTION_ID:
		return fmt.Sprintf("invalid form item list: duplicated %s id %s in item %s", e.OptionKind, e.OptionID, e.ItemID)
	case VALIDATION_ERROR_INVALID_ITEM:
		return fmt.Sprintf("invalid form item %s: %v", e.ItemID, e.Err)
	case VALIDATION_ERROR_UNKNOWN_ITEM_ID_IN_CONDITIONS:
		return fmt.Sprintf("invalid form item list: conditions of item %s reference unknown item %s", e.Provenance, e.ItemID)
	case VALIDATION_ERROR_MISMATCHED_CONDITION_TYPE:
		return fmt.Sprintf("invalid form item list: conditions of item %s do not match the type of item %s", e.Provenance, e.ItemID)
	case VALIDATION_ERROR_UNKNOWN_OPTION_ID_IN_CONDITIONS:
		return fmt.Sprintf("invalid form item list: conditions of item %s reference unknown %s id %s", e.Provenance, e.OptionKind, e.OptionID)
	default:
		return "invalid form item list"
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Answer-time error kinds at the collection level.
const (
	CHECK_ANSWER_ERROR_MISMATCHED_ITEMS_LENGTH = "mismatchedItemsLength"
	CHECK_ANSWER_ERROR_MISMATCHED_ITEM_ID      = "mismatchedItemId"
	CHECK_ANSWER_ERROR_ITEM                    = "item"
)

// Answer-time error kinds for a single item.
const (
	ANSWER_ITEM_ERROR_NOT_ANSWERED_WITHOUT_CONDITION = "notAnsweredWithoutCondition"
	ANSWER_ITEM_ERROR_NOT_ANSWERED_WITH_CONDITION    = "notAnsweredWithCondition"
	ANSWER_ITEM_ERROR_UNEXPECTED_ANSWER              = "unexpectedAnswer"
	ANSWER_ITEM_ERROR_MISMATCHED_ITEM_TYPE           = "mismatchedItemType"

	ANSWER_ITEM_ERROR_NOT_ANSWERED_TEXT              = "notAnsweredText"
	ANSWER_ITEM_ERROR_TOO_LONG_TEXT                  = "tooLongText"
	ANSWER_ITEM_ERROR_TOO_SHORT_TEXT                 = "tooShortText"
	ANSWER_ITEM_ERROR_NOT_ALLOWED_MULTIPLE_LINE_TEXT = "notAllowedMultipleLineText"

	ANSWER_ITEM_ERROR_NOT_ANSWERED_INTEGER = "notAnsweredInteger"
	ANSWER_ITEM_ERROR_TOO_BIG_INTEGER      = "tooBigInteger"
	ANSWER_ITEM_ERROR_TOO_SMALL_INTEGER    = "tooSmallInteger"

	ANSWER_ITEM_ERROR_TOO_MANY_CHECKS     = "tooManyChecks"
	ANSWER_ITEM_ERROR_TOO_FEW_CHECKS      = "tooFewChecks"
	ANSWER_ITEM_ERROR_UNKNOWN_CHECKBOX_ID = "unknownCheckboxId"

	ANSWER_ITEM_ERROR_NOT_ANSWERED_RADIO = "notAnsweredRadio"
	ANSWER_ITEM_ERROR_UNKNOWN_RADIO_ID   = "unknownRadioId"

	ANSWER_ITEM_ERROR_NOT_ANSWERED_GRID_RADIO_ROWS             = "notAnsweredGridRadioRows"
	ANSWER_ITEM_ERROR_MISMATCHED_GRID_RADIO_ROWS_LENGTH        = "mismatchedGridRadioRowsLength"
	ANSWER_ITEM_ERROR_MISMATCHED_GRID_RADIO_ROW_ID             = "mismatchedGridRadioRowId"
	ANSWER_ITEM_ERROR_UNKNOWN_GRID_RADIO_COLUMN_ID             = "unknownGridRadioColumnId"
	ANSWER_ITEM_ERROR_NOT_ALLOWED_DUPLICATED_GRID_RADIO_COLUMN = "notAllowedDuplicatedGridRadioColumn"

	ANSWER_ITEM_ERROR_NOT_ANSWERED_FILE          = "notAnsweredFile"
	ANSWER_ITEM_ERROR_NOT_ALLOWED_MULTIPLE_FILES = "notAllowedMultipleFiles"
	ANSWER_ITEM_ERROR_NOT_ALLOWED_FILE_TYPE      = "notAllowedFileType"
)

// CheckAnswerError reports the first defect found while checking an answer set
// against a validated form. For Kind == CHECK_ANSWER_ERROR_ITEM, ItemID names
// the offending item and Item carries the per-item error.
type CheckAnswerError struct {
	Kind     string
	Expected formTypes.FormItemID
	Got      formTypes.FormItemID
	ItemID   formTypes.FormItemID
	Item     *AnswerItemError
}

func (e *CheckAnswerError) Error() string {
	switch e.Kind {
	case CHECK_ANSWER_ERROR_MISMATCHED_ITEMS_LENGTH:
		return "invalid form answer: mismatched items length"
	case CHECK_ANSWER_ERROR_MISMATCHED_ITEM_ID:
		return fmt.Sprintf("invalid form answer: expected item %s, got %s", e.Expected, e.Got)
	case CHECK_ANSWER_ERROR_ITEM:
		return fmt.Sprintf("invalid form answer at item %s: %v", e.ItemID, e.Item)
	default:
		return "invalid form answer"
	}
}

func (e *CheckAnswerError) Unwrap() error {
	if e.Item == nil {
		return nil
	}
	return e.Item
}

// AnswerItemError is the per-item part of a CheckAnswerError. OptionID is set
// for the unknown/duplicated option kinds; the row id pair is set for
// mismatched grid row ids.
type AnswerItemError struct {
	Kind          string
	OptionID      string
	ExpectedRowID formTypes.GridRadioRowID
	GotRowID      formTypes.GridRadioRowID
}

func (e *AnswerItemError) Error() string {
	switch e.Kind {
	case ANSWER_ITEM_ERROR_UNKNOWN_CHECKBOX_ID,
		ANSWER_ITEM_ERROR_UNKNOWN_RADIO_ID,
		ANSWER_ITEM_ERROR_UNKNOWN_GRID_RADIO_COLUMN_ID,
		ANSWER_ITEM_ERROR_NOT_ALLOWED_DUPLICATED_GRID_RADIO_COLUMN:
		return fmt.Sprintf("%s (%s)", e.Kind, e.OptionID)
	case ANSWER_ITEM_ERROR_MISMATCHED_GRID_RADIO_ROW_ID:
		return fmt.Sprintf("%s (expected %s, got %s)", e.Kind, e.ExpectedRowID, e.GotRowID)
	default:
		return e.Kind
	}
}
