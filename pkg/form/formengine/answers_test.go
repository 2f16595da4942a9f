package formengine

import (
	"errors"
	"testing"

	formTypes "github.com/sohosai/sos-backend/pkg/form/types"
)

func mustValidate(t *testing.T, items ...formTypes.FormItem) *FormItems {
	t.Helper()
	validated, err := ValidateItems(items)
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	return validated
}

func assertItemError(t *testing.T, err error, itemID formTypes.FormItemID, kind string) *AnswerItemError {
	t.Helper()
	if err == nil {
		t.Fatal("should produce error")
	}
	var cErr *CheckAnswerError
	if !errors.As(err, &cErr) {
		t.Fatalf("unexpected error type: %v", err)
	}
	if cErr.Kind != CHECK_ANSWER_ERROR_ITEM {
		t.Fatalf("unexpected error kind: %s", cErr.Kind)
	}
	if cErr.ItemID != itemID {
		t.Fatalf("unexpected item id: %s (want %s)", cErr.ItemID, itemID)
	}
	if cErr.Item == nil || cErr.Item.Kind != kind {
		t.Fatalf("unexpected item error: %v (want %s)", cErr.Item, kind)
	}
	return cErr.Item
}

func TestCheckAnswersCollection(t *testing.T) {
	t.Run("mismatched length", func(t *testing.T) {
		item := newTextFormItem()
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{
			textAnswer(item.ID, strPtr("a")),
			textAnswer(item.ID, strPtr("b")),
		})
		var cErr *CheckAnswerError
		if !errors.As(err, &cErr) || cErr.Kind != CHECK_ANSWER_ERROR_MISMATCHED_ITEMS_LENGTH {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("mismatched item id", func(t *testing.T) {
		item1 := newTextFormItem()
		item2 := newTextFormItem()
		form := mustValidate(t, item1, item2)
		err := form.CheckAnswers([]formTypes.AnswerItem{
			textAnswer(item1.ID, strPtr("a")),
			textAnswer(item1.ID, strPtr("b")),
		})
		var cErr *CheckAnswerError
		if !errors.As(err, &cErr) || cErr.Kind != CHECK_ANSWER_ERROR_MISMATCHED_ITEM_ID {
			t.Fatalf("unexpected error: %v", err)
		}
		if cErr.Expected != item2.ID || cErr.Got != item1.ID {
			t.Errorf("unexpected id pair: expected %s, got %s", cErr.Expected, cErr.Got)
		}
	})

	t.Run("unconditional item must be answered", func(t *testing.T) {
		item := newTextFormItem()
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{emptyAnswer(item.ID)})
		assertItemError(t, err, item.ID, ANSWER_ITEM_ERROR_NOT_ANSWERED_WITHOUT_CONDITION)
	})

	t.Run("mismatched answer body type", func(t *testing.T) {
		item := newTextFormItem()
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{radioAnswer(item.ID, nil)})
		assertItemError(t, err, item.ID, ANSWER_ITEM_ERROR_MISMATCHED_ITEM_TYPE)
	})
}

func TestCheckAnswersConditionalItems(t *testing.T) {
	buttonA := formTypes.Radio{ID: formTypes.NewRadioID(), Label: "A"}
	buttonB := formTypes.Radio{ID: formTypes.NewRadioID(), Label: "B"}

	newForm := func(t *testing.T) (*FormItems, formTypes.FormItem, formTypes.FormItem, formTypes.Checkbox) {
		radioItem := newRadioFormItem(buttonA, buttonB)
		box := formTypes.Checkbox{ID: formTypes.NewCheckboxID(), Label: "follow-up"}
		conditioned := withConditions(newCheckboxFormItem(box), radioSelectedCondition(radioItem.ID, buttonA.ID))
		return mustValidate(t, radioItem, conditioned), radioItem, conditioned, box
	}

	t.Run("active item answered", func(t *testing.T) {
		form, radioItem, conditioned, box := newForm(t)
		err := form.CheckAnswers([]formTypes.AnswerItem{
			radioAnswer(radioItem.ID, radioIDPtr(buttonA.ID)),
			checkboxAnswer(conditioned.ID, box.ID),
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("inactive item left unanswered", func(t *testing.T) {
		form, radioItem, conditioned, _ := newForm(t)
		err := form.CheckAnswers([]formTypes.AnswerItem{
			radioAnswer(radioItem.ID, radioIDPtr(buttonB.ID)),
			emptyAnswer(conditioned.ID),
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("inactive item answered anyway", func(t *testing.T) {
		form, radioItem, conditioned, box := newForm(t)
		err := form.CheckAnswers([]formTypes.AnswerItem{
			radioAnswer(radioItem.ID, radioIDPtr(buttonB.ID)),
			checkboxAnswer(conditioned.ID, box.ID),
		})
		assertItemError(t, err, conditioned.ID, ANSWER_ITEM_ERROR_UNEXPECTED_ANSWER)
	})

	t.Run("active item left unanswered", func(t *testing.T) {
		form, radioItem, conditioned, _ := newForm(t)
		err := form.CheckAnswers([]formTypes.AnswerItem{
			radioAnswer(radioItem.ID, radioIDPtr(buttonA.ID)),
			emptyAnswer(conditioned.ID),
		})
		assertItemError(t, err, conditioned.ID, ANSWER_ITEM_ERROR_NOT_ANSWERED_WITH_CONDITION)
	})
}

func TestCheckAnswersText(t *testing.T) {
	newTextForm := func(t *testing.T, configure func(*formTypes.TextItem)) (*FormItems, formTypes.FormItemID) {
		item := newTextFormItem()
		configure(item.Body.Text)
		return mustValidate(t, item), item.ID
	}

	t.Run("within bounds", func(t *testing.T) {
		form, id := newTextForm(t, func(item *formTypes.TextItem) {
			item.MinLength = intPtr(1)
			item.MaxLength = intPtr(10)
		})
		if err := form.CheckAnswers([]formTypes.AnswerItem{textAnswer(id, strPtr("hello"))}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("required but empty", func(t *testing.T) {
		form, id := newTextForm(t, func(item *formTypes.TextItem) {})
		err := form.CheckAnswers([]formTypes.AnswerItem{textAnswer(id, nil)})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_NOT_ANSWERED_TEXT)
	})

	t.Run("not required and empty", func(t *testing.T) {
		form, id := newTextForm(t, func(item *formTypes.TextItem) {
			item.IsRequired = false
		})
		if err := form.CheckAnswers([]formTypes.AnswerItem{textAnswer(id, nil)}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("too short", func(t *testing.T) {
		form, id := newTextForm(t, func(item *formTypes.TextItem) {
			item.MinLength = intPtr(3)
		})
		err := form.CheckAnswers([]formTypes.AnswerItem{textAnswer(id, strPtr("ab"))})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_TOO_SHORT_TEXT)
	})

	t.Run("too long counts runes not bytes", func(t *testing.T) {
		form, id := newTextForm(t, func(item *formTypes.TextItem) {
			item.MaxLength = intPtr(4)
		})
		err := form.CheckAnswers([]formTypes.AnswerItem{textAnswer(id, strPtr("あいうえお"))})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_TOO_LONG_TEXT)
	})

	t.Run("multi-line not accepted", func(t *testing.T) {
		form, id := newTextForm(t, func(item *formTypes.TextItem) {})
		err := form.CheckAnswers([]formTypes.AnswerItem{textAnswer(id, strPtr("line one\nline two"))})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_NOT_ALLOWED_MULTIPLE_LINE_TEXT)
	})

	t.Run("multi-line accepted", func(t *testing.T) {
		form, id := newTextForm(t, func(item *formTypes.TextItem) {
			item.AcceptMultipleLines = true
		})
		if err := form.CheckAnswers([]formTypes.AnswerItem{textAnswer(id, strPtr("line one\nline two"))}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestCheckAnswersInteger(t *testing.T) {
	newIntegerForm := func(t *testing.T, min, max *int64) (*FormItems, formTypes.FormItemID) {
		item := formTypes.FormItem{
			ID:   formTypes.NewFormItemID(),
			Name: "integer item",
			Body: formTypes.ItemBody{
				Type: formTypes.ITEM_TYPE_INTEGER,
				Integer: &formTypes.IntegerItem{
					IsRequired: true,
					Min:        min,
					Max:        max,
				},
			},
		}
		return mustValidate(t, item), item.ID
	}

	answer := func(id formTypes.FormItemID, value *int64) formTypes.AnswerItem {
		return formTypes.AnswerItem{
			ItemID: id,
			Body: &formTypes.AnswerBody{
				Type:    formTypes.ITEM_TYPE_INTEGER,
				Integer: value,
			},
		}
	}

	t.Run("within bounds", func(t *testing.T) {
		form, id := newIntegerForm(t, int64Ptr(1), int64Ptr(100))
		if err := form.CheckAnswers([]formTypes.AnswerItem{answer(id, int64Ptr(42))}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("required but empty", func(t *testing.T) {
		form, id := newIntegerForm(t, nil, nil)
		err := form.CheckAnswers([]formTypes.AnswerItem{answer(id, nil)})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_NOT_ANSWERED_INTEGER)
	})

	t.Run("negative value", func(t *testing.T) {
		form, id := newIntegerForm(t, nil, nil)
		err := form.CheckAnswers([]formTypes.AnswerItem{answer(id, int64Ptr(-1))})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_TOO_SMALL_INTEGER)
	})

	t.Run("too small", func(t *testing.T) {
		form, id := newIntegerForm(t, int64Ptr(10), nil)
		err := form.CheckAnswers([]formTypes.AnswerItem{answer(id, int64Ptr(9))})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_TOO_SMALL_INTEGER)
	})

	t.Run("too big", func(t *testing.T) {
		form, id := newIntegerForm(t, nil, int64Ptr(10))
		err := form.CheckAnswers([]formTypes.AnswerItem{answer(id, int64Ptr(11))})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_TOO_BIG_INTEGER)
	})
}

func TestCheckAnswersCheckbox(t *testing.T) {
	boxes := []formTypes.Checkbox{
		{ID: formTypes.NewCheckboxID(), Label: "one"},
		{ID: formTypes.NewCheckboxID(), Label: "two"},
		{ID: formTypes.NewCheckboxID(), Label: "three"},
	}

	newCheckboxForm := func(t *testing.T, minChecks, maxChecks *int) (*FormItems, formTypes.FormItemID) {
		item := newCheckboxFormItem(boxes...)
		item.Body.Checkbox.MinChecks = minChecks
		item.Body.Checkbox.MaxChecks = maxChecks
		return mustValidate(t, item), item.ID
	}

	t.Run("within limits", func(t *testing.T) {
		form, id := newCheckboxForm(t, intPtr(1), intPtr(2))
		if err := form.CheckAnswers([]formTypes.AnswerItem{checkboxAnswer(id, boxes[0].ID, boxes[2].ID)}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("too many checks", func(t *testing.T) {
		form, id := newCheckboxForm(t, intPtr(1), intPtr(2))
		err := form.CheckAnswers([]formTypes.AnswerItem{checkboxAnswer(id, boxes[0].ID, boxes[1].ID, boxes[2].ID)})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_TOO_MANY_CHECKS)
	})

	t.Run("too few checks", func(t *testing.T) {
		form, id := newCheckboxForm(t, intPtr(1), intPtr(2))
		err := form.CheckAnswers([]formTypes.AnswerItem{checkboxAnswer(id)})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_TOO_FEW_CHECKS)
	})

	t.Run("unknown checkbox id", func(t *testing.T) {
		form, id := newCheckboxForm(t, nil, nil)
		unknown := formTypes.NewCheckboxID()
		err := form.CheckAnswers([]formTypes.AnswerItem{checkboxAnswer(id, unknown)})
		itemErr := assertItemError(t, err, id, ANSWER_ITEM_ERROR_UNKNOWN_CHECKBOX_ID)
		if itemErr.OptionID != string(unknown) {
			t.Errorf("unexpected option id: %s", itemErr.OptionID)
		}
	})
}

func TestCheckAnswersRadio(t *testing.T) {
	buttons := []formTypes.Radio{
		{ID: formTypes.NewRadioID(), Label: "A"},
		{ID: formTypes.NewRadioID(), Label: "B"},
	}

	t.Run("selected", func(t *testing.T) {
		item := newRadioFormItem(buttons...)
		form := mustValidate(t, item)
		if err := form.CheckAnswers([]formTypes.AnswerItem{radioAnswer(item.ID, radioIDPtr(buttons[1].ID))}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("required but not selected", func(t *testing.T) {
		item := newRadioFormItem(buttons...)
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{radioAnswer(item.ID, nil)})
		assertItemError(t, err, item.ID, ANSWER_ITEM_ERROR_NOT_ANSWERED_RADIO)
	})

	t.Run("unknown radio id", func(t *testing.T) {
		item := newRadioFormItem(buttons...)
		form := mustValidate(t, item)
		unknown := formTypes.NewRadioID()
		err := form.CheckAnswers([]formTypes.AnswerItem{radioAnswer(item.ID, radioIDPtr(unknown))})
		itemErr := assertItemError(t, err, item.ID, ANSWER_ITEM_ERROR_UNKNOWN_RADIO_ID)
		if itemErr.OptionID != string(unknown) {
			t.Errorf("unexpected option id: %s", itemErr.OptionID)
		}
	})
}

func TestCheckAnswersGridRadio(t *testing.T) {
	rows := []formTypes.GridRadioRow{
		{ID: formTypes.NewGridRadioRowID(), Label: "first"},
		{ID: formTypes.NewGridRadioRowID(), Label: "second"},
	}
	columns := []formTypes.GridRadioColumn{
		{ID: formTypes.NewGridRadioColumnID(), Label: "left"},
		{ID: formTypes.NewGridRadioColumnID(), Label: "right"},
	}

	t.Run("distinct columns", func(t *testing.T) {
		item := newGridRadioFormItem(rows, columns, true)
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{gridRadioAnswer(item.ID,
			formTypes.RowAnswer{RowID: rows[0].ID, Value: columnIDPtr(columns[0].ID)},
			formTypes.RowAnswer{RowID: rows[1].ID, Value: columnIDPtr(columns[1].ID)},
		)})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("no rows answered", func(t *testing.T) {
		item := newGridRadioFormItem(rows, columns, false)
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{gridRadioAnswer(item.ID)})
		assertItemError(t, err, item.ID, ANSWER_ITEM_ERROR_NOT_ANSWERED_GRID_RADIO_ROWS)
	})

	t.Run("required with blank row", func(t *testing.T) {
		item := newGridRadioFormItem(rows, columns, false)
		item.Body.GridRadio.Required = true
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{gridRadioAnswer(item.ID,
			formTypes.RowAnswer{RowID: rows[0].ID, Value: columnIDPtr(columns[0].ID)},
			formTypes.RowAnswer{RowID: rows[1].ID},
		)})
		assertItemError(t, err, item.ID, ANSWER_ITEM_ERROR_NOT_ANSWERED_GRID_RADIO_ROWS)
	})

	t.Run("not required with blank rows", func(t *testing.T) {
		item := newGridRadioFormItem(rows, columns, false)
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{gridRadioAnswer(item.ID,
			formTypes.RowAnswer{RowID: rows[0].ID},
			formTypes.RowAnswer{RowID: rows[1].ID},
		)})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("mismatched rows length", func(t *testing.T) {
		item := newGridRadioFormItem(rows, columns, false)
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{gridRadioAnswer(item.ID,
			formTypes.RowAnswer{RowID: rows[0].ID},
		)})
		assertItemError(t, err, item.ID, ANSWER_ITEM_ERROR_MISMATCHED_GRID_RADIO_ROWS_LENGTH)
	})

	t.Run("mismatched row order", func(t *testing.T) {
		item := newGridRadioFormItem(rows, columns, false)
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{gridRadioAnswer(item.ID,
			formTypes.RowAnswer{RowID: rows[1].ID},
			formTypes.RowAnswer{RowID: rows[0].ID},
		)})
		itemErr := assertItemError(t, err, item.ID, ANSWER_ITEM_ERROR_MISMATCHED_GRID_RADIO_ROW_ID)
		if itemErr.ExpectedRowID != rows[0].ID || itemErr.GotRowID != rows[1].ID {
			t.Errorf("unexpected row id pair: %v", itemErr)
		}
	})

	t.Run("unknown column id", func(t *testing.T) {
		item := newGridRadioFormItem(rows, columns, false)
		form := mustValidate(t, item)
		unknown := formTypes.NewGridRadioColumnID()
		err := form.CheckAnswers([]formTypes.AnswerItem{gridRadioAnswer(item.ID,
			formTypes.RowAnswer{RowID: rows[0].ID, Value: columnIDPtr(unknown)},
			formTypes.RowAnswer{RowID: rows[1].ID},
		)})
		assertItemError(t, err, item.ID, ANSWER_ITEM_ERROR_UNKNOWN_GRID_RADIO_COLUMN_ID)
	})

	t.Run("duplicated column with exclusive column", func(t *testing.T) {
		item := newGridRadioFormItem(rows, columns, true)
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{gridRadioAnswer(item.ID,
			formTypes.RowAnswer{RowID: rows[0].ID, Value: columnIDPtr(columns[0].ID)},
			formTypes.RowAnswer{RowID: rows[1].ID, Value: columnIDPtr(columns[0].ID)},
		)})
		itemErr := assertItemError(t, err, item.ID, ANSWER_ITEM_ERROR_NOT_ALLOWED_DUPLICATED_GRID_RADIO_COLUMN)
		if itemErr.OptionID != string(columns[0].ID) {
			t.Errorf("unexpected option id: %s", itemErr.OptionID)
		}
	})

	t.Run("duplicated column without exclusive column", func(t *testing.T) {
		item := newGridRadioFormItem(rows, columns, false)
		form := mustValidate(t, item)
		err := form.CheckAnswers([]formTypes.AnswerItem{gridRadioAnswer(item.ID,
			formTypes.RowAnswer{RowID: rows[0].ID, Value: columnIDPtr(columns[0].ID)},
			formTypes.RowAnswer{RowID: rows[1].ID, Value: columnIDPtr(columns[0].ID)},
		)})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestCheckAnswersFile(t *testing.T) {
	newFileForm := func(t *testing.T, configure func(*formTypes.FileItem)) (*FormItems, formTypes.FormItemID) {
		item := formTypes.FormItem{
			ID:   formTypes.NewFormItemID(),
			Name: "file item",
			Body: formTypes.ItemBody{
				Type: formTypes.ITEM_TYPE_FILE,
				File: &formTypes.FileItem{IsRequired: true},
			},
		}
		configure(item.Body.File)
		return mustValidate(t, item), item.ID
	}

	answer := func(id formTypes.FormItemID, files ...formTypes.FileAnswer) formTypes.AnswerItem {
		return formTypes.AnswerItem{
			ItemID: id,
			Body: &formTypes.AnswerBody{
				Type: formTypes.ITEM_TYPE_FILE,
				File: files,
			},
		}
	}

	t.Run("single file accepted", func(t *testing.T) {
		form, id := newFileForm(t, func(item *formTypes.FileItem) {})
		err := form.CheckAnswers([]formTypes.AnswerItem{answer(id, formTypes.FileAnswer{SharingID: formTypes.NewFileSharingID(), Type: "application/pdf"})})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("required but no files", func(t *testing.T) {
		form, id := newFileForm(t, func(item *formTypes.FileItem) {})
		err := form.CheckAnswers([]formTypes.AnswerItem{answer(id)})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_NOT_ANSWERED_FILE)
	})

	t.Run("multiple files not accepted", func(t *testing.T) {
		form, id := newFileForm(t, func(item *formTypes.FileItem) {})
		err := form.CheckAnswers([]formTypes.AnswerItem{answer(id,
			formTypes.FileAnswer{SharingID: formTypes.NewFileSharingID(), Type: "application/pdf"},
			formTypes.FileAnswer{SharingID: formTypes.NewFileSharingID(), Type: "application/pdf"},
		)})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_NOT_ALLOWED_MULTIPLE_FILES)
	})

	t.Run("file type not accepted", func(t *testing.T) {
		form, id := newFileForm(t, func(item *formTypes.FileItem) {
			item.Types = []string{"application/pdf"}
		})
		err := form.CheckAnswers([]formTypes.AnswerItem{answer(id, formTypes.FileAnswer{SharingID: formTypes.NewFileSharingID(), Type: "image/png"})})
		assertItemError(t, err, id, ANSWER_ITEM_ERROR_NOT_ALLOWED_FILE_TYPE)
	})
}

// Conditions only observe answers of items positioned before the conditioned
// item; the same dependency placed after it is treated as unanswered.
func TestCheckAnswersForwardOnlyVisibility(t *testing.T) {
	button := formTypes.Radio{ID: formTypes.NewRadioID(), Label: "yes"}

	t.Run("dependency before the conditioned item", func(t *testing.T) {
		radioItem := newRadioFormItem(button)
		conditioned := withConditions(newTextFormItem(), radioSelectedCondition(radioItem.ID, button.ID))
		form := mustValidate(t, radioItem, conditioned)

		err := form.CheckAnswers([]formTypes.AnswerItem{
			radioAnswer(radioItem.ID, radioIDPtr(button.ID)),
			textAnswer(conditioned.ID, strPtr("visible")),
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("negated condition sees a prior inactive item as unanswered", func(t *testing.T) {
		box := formTypes.Checkbox{ID: formTypes.NewCheckboxID(), Label: "opt"}
		gate := newRadioFormItem(button)
		gate.Body.Radio.IsRequired = false
		conditionedCheckbox := withConditions(newCheckboxFormItem(box), radioSelectedCondition(gate.ID, button.ID))
		// Expects the box to be unchecked; an unanswered checkbox still fails
		// this condition.
		negated := withConditions(newTextFormItem(), checkboxCheckedCondition(conditionedCheckbox.ID, box.ID, false))
		form := mustValidate(t, gate, conditionedCheckbox, negated)

		err := form.CheckAnswers([]formTypes.AnswerItem{
			radioAnswer(gate.ID, nil),
			emptyAnswer(conditionedCheckbox.ID),
			emptyAnswer(negated.ID),
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
