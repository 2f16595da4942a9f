package formengine

import (
	formTypes "github.com/sohosai/sos-backend/pkg/form/types"
)

func intPtr(v int) *int          { return &v }
func int64Ptr(v int64) *int64    { return &v }
func strPtr(v string) *string    { return &v }

func radioIDPtr(id formTypes.RadioID) *formTypes.RadioID { return &id }

func columnIDPtr(id formTypes.GridRadioColumnID) *formTypes.GridRadioColumnID { return &id }

func newTextFormItem() formTypes.FormItem {
	return formTypes.FormItem{
		ID:   formTypes.NewFormItemID(),
		Name: "text item",
		Body: formTypes.ItemBody{
			Type: formTypes.ITEM_TYPE_TEXT,
			Text: &formTypes.TextItem{
				AcceptMultipleLines: false,
				IsRequired:          true,
			},
		},
	}
}

func newRadioFormItem(buttons ...formTypes.Radio) formTypes.FormItem {
	if len(buttons) == 0 {
		buttons = []formTypes.Radio{{ID: formTypes.NewRadioID(), Label: "yes"}}
	}
	return formTypes.FormItem{
		ID:   formTypes.NewFormItemID(),
		Name: "radio item",
		Body: formTypes.ItemBody{
			Type: formTypes.ITEM_TYPE_RADIO,
			Radio: &formTypes.RadioItem{
				Buttons:    buttons,
				IsRequired: true,
			},
		},
	}
}

func newCheckboxFormItem(boxes ...formTypes.Checkbox) formTypes.FormItem {
	if len(boxes) == 0 {
		boxes = []formTypes.Checkbox{{ID: formTypes.NewCheckboxID(), Label: "option"}}
	}
	return formTypes.FormItem{
		ID:   formTypes.NewFormItemID(),
		Name: "checkbox item",
		Body: formTypes.ItemBody{
			Type: formTypes.ITEM_TYPE_CHECKBOX,
			Checkbox: &formTypes.CheckboxItem{
				Boxes: boxes,
			},
		},
	}
}

func newGridRadioFormItem(rows []formTypes.GridRadioRow, columns []formTypes.GridRadioColumn, exclusive bool) formTypes.FormItem {
	return formTypes.FormItem{
		ID:   formTypes.NewFormItemID(),
		Name: "grid radio item",
		Body: formTypes.ItemBody{
			Type: formTypes.ITEM_TYPE_GRID_RADIO,
			GridRadio: &formTypes.GridRadioItem{
				Rows:            rows,
				Columns:         columns,
				ExclusiveColumn: exclusive,
			},
		},
	}
}

func withConditions(item formTypes.FormItem, conditions ...formTypes.Condition) formTypes.FormItem {
	item.Conditions = &formTypes.ConditionExpr{
		Conjunctions: [][]formTypes.Condition{conditions},
	}
	return item
}

func radioSelectedCondition(itemID formTypes.FormItemID, radioID formTypes.RadioID) formTypes.Condition {
	return formTypes.Condition{
		Type: formTypes.CONDITION_TYPE_RADIO_SELECTED,
		RadioSelected: &formTypes.RadioSelectedCondition{
			ItemID:  itemID,
			RadioID: radioID,
		},
	}
}

func checkboxCheckedCondition(itemID formTypes.FormItemID, checkboxID formTypes.CheckboxID, expected bool) formTypes.Condition {
	return formTypes.Condition{
		Type: formTypes.CONDITION_TYPE_CHECKBOX_CHECKED,
		CheckboxChecked: &formTypes.CheckboxCheckedCondition{
			ItemID:     itemID,
			CheckboxID: checkboxID,
			Expected:   expected,
		},
	}
}

func gridColumnSelectedCondition(itemID formTypes.FormItemID, columnID formTypes.GridRadioColumnID) formTypes.Condition {
	return formTypes.Condition{
		Type: formTypes.CONDITION_TYPE_GRID_COLUMN_SELECTED,
		GridColumnSelected: &formTypes.GridColumnSelectedCondition{
			ItemID:   itemID,
			ColumnID: columnID,
		},
	}
}

func textAnswer(itemID formTypes.FormItemID, value *string) formTypes.AnswerItem {
	return formTypes.AnswerItem{
		ItemID: itemID,
		Body: &formTypes.AnswerBody{
			Type: formTypes.ITEM_TYPE_TEXT,
			Text: value,
		},
	}
}

func radioAnswer(itemID formTypes.FormItemID, selected *formTypes.RadioID) formTypes.AnswerItem {
	return formTypes.AnswerItem{
		ItemID: itemID,
		Body: &formTypes.AnswerBody{
			Type:  formTypes.ITEM_TYPE_RADIO,
			Radio: selected,
		},
	}
}

func checkboxAnswer(itemID formTypes.FormItemID, checked ...formTypes.CheckboxID) formTypes.AnswerItem {
	return formTypes.AnswerItem{
		ItemID: itemID,
		Body: &formTypes.AnswerBody{
			Type:     formTypes.ITEM_TYPE_CHECKBOX,
			Checkbox: checked,
		},
	}
}

func gridRadioAnswer(itemID formTypes.FormItemID, rows ...formTypes.RowAnswer) formTypes.AnswerItem {
	return formTypes.AnswerItem{
		ItemID: itemID,
		Body: &formTypes.AnswerBody{
			Type:      formTypes.ITEM_TYPE_GRID_RADIO,
			GridRadio: rows,
		},
	}
}

func emptyAnswer(itemID formTypes.FormItemID) formTypes.AnswerItem {
	return formTypes.AnswerItem{ItemID: itemID}
}
