package types

import (
	"github.com/google/uuid"
)

// Identifier types used across a form. All of them are opaque 128-bit tokens
// rendered as UUID strings so they survive JSON and BSON round trips unchanged.
//
// Item ids are scoped to one form. Option ids (checkbox boxes, radio buttons,
// grid rows and columns) are unique across the whole form, not just within
// their owning item.

type FormItemID string

func NewFormItemID() FormItemID {
	return FormItemID(uuid.NewString())
}

type CheckboxID string

func NewCheckboxID() CheckboxID {
	return CheckboxID(uuid.NewString())
}

type RadioID string

func NewRadioID() RadioID {
	return RadioID(uuid.NewString())
}

type GridRadioRowID string

func NewGridRadioRowID() GridRadioRowID {
	return GridRadioRowID(uuid.NewString())
}

type GridRadioColumnID string

func NewGridRadioColumnID() GridRadioColumnID {
	return GridRadioColumnID(uuid.NewString())
}

// FileSharingID references an uploaded file through the file sharing system,
// which resolves and authorises it outside of this package.
type FileSharingID string

func NewFileSharingID() FileSharingID {
	return FileSharingID(uuid.NewString())
}
