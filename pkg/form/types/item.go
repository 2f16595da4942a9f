package types

import (
	"errors"
	"fmt"
)

const (
	ITEM_TYPE_TEXT       = "text"
	ITEM_TYPE_INTEGER    = "integer"
	ITEM_TYPE_CHECKBOX   = "checkbox"
	ITEM_TYPE_RADIO      = "radio"
	ITEM_TYPE_GRID_RADIO = "gridRadio"
	ITEM_TYPE_FILE       = "file"
)

// FormItem is one question in a form: identity, display metadata, an optional
// visibility condition over earlier items' answers, and a typed body.
type FormItem struct {
	ID          FormItemID     `bson:"id" json:"id"`
	Name        string         `bson:"name" json:"name"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Conditions  *ConditionExpr `bson:"conditions,omitempty" json:"conditions,omitempty"`
	Body        ItemBody       `bson:"body" json:"body"`
}

// ItemBody is a closed tagged union: Type selects which one of the variant
// pointers is set. Exactly one variant must be non-nil and must agree with Type.
type ItemBody struct {
	Type      string         `bson:"type" json:"type"`
	Text      *TextItem      `bson:"text,omitempty" json:"text,omitempty"`
	Integer   *IntegerItem   `bson:"integer,omitempty" json:"integer,omitempty"`
	Checkbox  *CheckboxItem  `bson:"checkbox,omitempty" json:"checkbox,omitempty"`
	Radio     *RadioItem     `bson:"radio,omitempty" json:"radio,omitempty"`
	GridRadio *GridRadioItem `bson:"gridRadio,omitempty" json:"gridRadio,omitempty"`
	File      *FileItem      `bson:"file,omitempty" json:"file,omitempty"`
}

func (b ItemBody) IsText() bool      { return b.Type == ITEM_TYPE_TEXT }
func (b ItemBody) IsInteger() bool   { return b.Type == ITEM_TYPE_INTEGER }
func (b ItemBody) IsCheckbox() bool  { return b.Type == ITEM_TYPE_CHECKBOX }
func (b ItemBody) IsRadio() bool     { return b.Type == ITEM_TYPE_RADIO }
func (b ItemBody) IsGridRadio() bool { return b.Type == ITEM_TYPE_GRID_RADIO }
func (b ItemBody) IsFile() bool      { return b.Type == ITEM_TYPE_FILE }

var errMismatchedBodyVariant = errors.New("item body variant does not match its type tag")

// Validate checks that the union is well formed and that the selected variant
// satisfies its own structural invariants.
func (b ItemBody) Validate() error {
	switch b.Type {
	case ITEM_TYPE_TEXT:
		if b.Text == nil {
			return errMismatchedBodyVariant
		}
		return b.Text.Validate()
	case ITEM_TYPE_INTEGER:
		if b.Integer == nil {
			return errMismatchedBodyVariant
		}
		return b.Integer.Validate()
	case ITEM_TYPE_CHECKBOX:
		if b.Checkbox == nil {
			return errMismatchedBodyVariant
		}
		return b.Checkbox.Validate()
	case ITEM_TYPE_RADIO:
		if b.Radio == nil {
			return errMismatchedBodyVariant
		}
		return b.Radio.Validate()
	case ITEM_TYPE_GRID_RADIO:
		if b.GridRadio == nil {
			return errMismatchedBodyVariant
		}
		return b.GridRadio.Validate()
	case ITEM_TYPE_FILE:
		if b.File == nil {
			return errMismatchedBodyVariant
		}
		return b.File.Validate()
	default:
		return fmt.Errorf("unknown item type %q", b.Type)
	}
}
