package types

// AnswerItem is the respondent's submission for one form item, paired with the
// item by position and id. A nil Body means the item was left unanswered, which
// is only legal when the item's condition did not hold.
type AnswerItem struct {
	ItemID FormItemID  `bson:"itemId" json:"itemId"`
	Body   *AnswerBody `bson:"body,omitempty" json:"body,omitempty"`
}

// AnswerBody mirrors ItemBody variant for variant. Absence inside a variant
// (nil Text, nil Radio selection) is distinct from the whole body being nil:
// the former is an answered-but-empty value for a non-required item.
type AnswerBody struct {
	Type      string       `bson:"type" json:"type"`
	Text      *string      `bson:"text,omitempty" json:"text,omitempty"`
	Integer   *int64       `bson:"integer,omitempty" json:"integer,omitempty"`
	Checkbox  []CheckboxID `bson:"checkbox,omitempty" json:"checkbox,omitempty"`
	Radio     *RadioID     `bson:"radio,omitempty" json:"radio,omitempty"`
	GridRadio []RowAnswer  `bson:"gridRadio,omitempty" json:"gridRadio,omitempty"`
	File      []FileAnswer `bson:"file,omitempty" json:"file,omitempty"`
}

// RowAnswer is one grid row's selection; a nil Value means the row was left
// unselected.
type RowAnswer struct {
	RowID GridRadioRowID     `bson:"rowId" json:"rowId"`
	Value *GridRadioColumnID `bson:"value,omitempty" json:"value,omitempty"`
}

// FileAnswer references one shared file together with its declared type tag.
type FileAnswer struct {
	SharingID FileSharingID `bson:"sharingId" json:"sharingId"`
	Type      string        `bson:"type" json:"type"`
}

func (b AnswerBody) IsChecked(id CheckboxID) bool {
	for _, checked := range b.Checkbox {
		if checked == id {
			return true
		}
	}
	return false
}
