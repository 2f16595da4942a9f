package types

import (
	"testing"
	"time"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestItemBodyValidate(t *testing.T) {
	boxes := func(n int) []Checkbox {
		out := make([]Checkbox, n)
		for i := range out {
			out[i] = Checkbox{ID: NewCheckboxID(), Label: "box"}
		}
		return out
	}
	buttons := func(n int) []Radio {
		out := make([]Radio, n)
		for i := range out {
			out[i] = Radio{ID: NewRadioID(), Label: "button"}
		}
		return out
	}
	rows := func(n int) []GridRadioRow {
		out := make([]GridRadioRow, n)
		for i := range out {
			out[i] = GridRadioRow{ID: NewGridRadioRowID(), Label: "row"}
		}
		return out
	}
	columns := func(n int) []GridRadioColumn {
		out := make([]GridRadioColumn, n)
		for i := range out {
			out[i] = GridRadioColumn{ID: NewGridRadioColumnID(), Label: "column"}
		}
		return out
	}

	sharedCheckboxID := NewCheckboxID()
	sharedRadioID := NewRadioID()
	sharedRowID := NewGridRadioRowID()

	testCases := []struct {
		name      string
		body      ItemBody
		wantError bool
	}{
		{
			name: "text_valid",
			body: ItemBody{Type: ITEM_TYPE_TEXT, Text: &TextItem{MinLength: intPtr(1), MaxLength: intPtr(10)}},
		},
		{
			name:      "text_min_exceeds_max",
			body:      ItemBody{Type: ITEM_TYPE_TEXT, Text: &TextItem{MinLength: intPtr(5), MaxLength: intPtr(2)}},
			wantError: true,
		},
		{
			name:      "text_negative_limit",
			body:      ItemBody{Type: ITEM_TYPE_TEXT, Text: &TextItem{MinLength: intPtr(-1)}},
			wantError: true,
		},
		{
			name: "integer_valid",
			body: ItemBody{Type: ITEM_TYPE_INTEGER, Integer: &IntegerItem{Min: int64Ptr(0), Max: int64Ptr(100)}},
		},
		{
			name:      "integer_min_exceeds_max",
			body:      ItemBody{Type: ITEM_TYPE_INTEGER, Integer: &IntegerItem{Min: int64Ptr(10), Max: int64Ptr(1)}},
			wantError: true,
		},
		{
			name:      "integer_negative_limit",
			body:      ItemBody{Type: ITEM_TYPE_INTEGER, Integer: &IntegerItem{Min: int64Ptr(-1)}},
			wantError: true,
		},
		{
			name: "checkbox_valid",
			body: ItemBody{Type: ITEM_TYPE_CHECKBOX, Checkbox: &CheckboxItem{Boxes: boxes(3), MinChecks: intPtr(1), MaxChecks: intPtr(2)}},
		},
		{
			name:      "checkbox_no_boxes",
			body:      ItemBody{Type: ITEM_TYPE_CHECKBOX, Checkbox: &CheckboxItem{}},
			wantError: true,
		},
		{
			name:      "checkbox_too_many_boxes",
			body:      ItemBody{Type: ITEM_TYPE_CHECKBOX, Checkbox: &CheckboxItem{Boxes: boxes(MAX_CHECKBOX_BOXES + 1)}},
			wantError: true,
		},
		{
			name: "checkbox_duplicated_box",
			body: ItemBody{Type: ITEM_TYPE_CHECKBOX, Checkbox: &CheckboxItem{Boxes: []Checkbox{
				{ID: sharedCheckboxID}, {ID: sharedCheckboxID},
			}}},
			wantError: true,
		},
		{
			name:      "checkbox_min_exceeds_max",
			body:      ItemBody{Type: ITEM_TYPE_CHECKBOX, Checkbox: &CheckboxItem{Boxes: boxes(3), MinChecks: intPtr(3), MaxChecks: intPtr(1)}},
			wantError: true,
		},
		{
			name:      "checkbox_limit_exceeds_boxes",
			body:      ItemBody{Type: ITEM_TYPE_CHECKBOX, Checkbox: &CheckboxItem{Boxes: boxes(2), MaxChecks: intPtr(3)}},
			wantError: true,
		},
		{
			name: "radio_valid",
			body: ItemBody{Type: ITEM_TYPE_RADIO, Radio: &RadioItem{Buttons: buttons(2)}},
		},
		{
			name:      "radio_no_buttons",
			body:      ItemBody{Type: ITEM_TYPE_RADIO, Radio: &RadioItem{}},
			wantError: true,
		},
		{
			name: "radio_duplicated_button",
			body: ItemBody{Type: ITEM_TYPE_RADIO, Radio: &RadioItem{Buttons: []Radio{
				{ID: sharedRadioID}, {ID: sharedRadioID},
			}}},
			wantError: true,
		},
		{
			name: "grid_radio_valid",
			body: ItemBody{Type: ITEM_TYPE_GRID_RADIO, GridRadio: &GridRadioItem{Rows: rows(2), Columns: columns(3)}},
		},
		{
			name:      "grid_radio_no_columns",
			body:      ItemBody{Type: ITEM_TYPE_GRID_RADIO, GridRadio: &GridRadioItem{Rows: rows(2)}},
			wantError: true,
		},
		{
			name: "grid_radio_duplicated_row",
			body: ItemBody{Type: ITEM_TYPE_GRID_RADIO, GridRadio: &GridRadioItem{Rows: []GridRadioRow{
				{ID: sharedRowID}, {ID: sharedRowID},
			}, Columns: columns(2)}},
			wantError: true,
		},
		{
			name: "grid_radio_exclusive_required_enough_columns",
			body: ItemBody{Type: ITEM_TYPE_GRID_RADIO, GridRadio: &GridRadioItem{
				Rows: rows(3), Columns: columns(3), ExclusiveColumn: true, Required: true,
			}},
		},
		{
			name: "grid_radio_exclusive_required_too_few_columns",
			body: ItemBody{Type: ITEM_TYPE_GRID_RADIO, GridRadio: &GridRadioItem{
				Rows: rows(3), Columns: columns(2), ExclusiveColumn: true, Required: true,
			}},
			wantError: true,
		},
		{
			name: "file_valid",
			body: ItemBody{Type: ITEM_TYPE_FILE, File: &FileItem{Types: []string{"application/pdf"}}},
		},
		{
			name:      "missing_variant",
			body:      ItemBody{Type: ITEM_TYPE_TEXT},
			wantError: true,
		},
		{
			name:      "wrong_variant_for_type",
			body:      ItemBody{Type: ITEM_TYPE_RADIO, Text: &TextItem{}},
			wantError: true,
		},
		{
			name:      "unknown_type",
			body:      ItemBody{Type: "dropdown"},
			wantError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.body.Validate()
			if tc.wantError && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConditionTargetItemID(t *testing.T) {
	itemID := NewFormItemID()

	cond := Condition{
		Type:            CONDITION_TYPE_CHECKBOX_CHECKED,
		CheckboxChecked: &CheckboxCheckedCondition{ItemID: itemID, CheckboxID: NewCheckboxID(), Expected: true},
	}
	got, err := cond.TargetItemID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != itemID {
		t.Errorf("expected %s, got %s", itemID, got)
	}

	mismatched := Condition{
		Type:          CONDITION_TYPE_CHECKBOX_CHECKED,
		RadioSelected: &RadioSelectedCondition{ItemID: itemID, RadioID: NewRadioID()},
	}
	if _, err := mismatched.TargetItemID(); err == nil {
		t.Error("expected error for variant not matching its type tag")
	}

	unknown := Condition{Type: "dateBefore"}
	if _, err := unknown.TargetItemID(); err == nil {
		t.Error("expected error for unknown condition type")
	}
}

func TestConditionExprValidate(t *testing.T) {
	valid := ConditionExpr{Conjunctions: [][]Condition{
		{
			{Type: CONDITION_TYPE_RADIO_SELECTED, RadioSelected: &RadioSelectedCondition{ItemID: NewFormItemID(), RadioID: NewRadioID()}},
		},
	}}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	tooManyConjunctions := ConditionExpr{Conjunctions: make([][]Condition, MAX_CONDITION_CONJUNCTIONS+1)}
	if err := tooManyConjunctions.Validate(); err == nil {
		t.Error("expected error for too many conjunctions")
	}

	tooLongConjunction := ConditionExpr{Conjunctions: [][]Condition{
		make([]Condition, MAX_CONDITIONS_PER_CONJUNCTION+1),
	}}
	if err := tooLongConjunction.Validate(); err == nil {
		t.Error("expected error for too many conditions in a conjunction")
	}
}

func TestAnswerPeriodContains(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name     string
		period   AnswerPeriod
		at       time.Time
		expected bool
	}{
		{name: "always_open", period: AnswerPeriod{}, at: now, expected: true},
		{name: "inside", period: AnswerPeriod{StartsAt: now.Add(-time.Hour).Unix(), EndsAt: now.Add(time.Hour).Unix()}, at: now, expected: true},
		{name: "before_start", period: AnswerPeriod{StartsAt: now.Add(time.Hour).Unix()}, at: now, expected: false},
		{name: "after_end", period: AnswerPeriod{EndsAt: now.Add(-time.Hour).Unix()}, at: now, expected: false},
		{name: "open_ended", period: AnswerPeriod{StartsAt: now.Add(-time.Hour).Unix()}, at: now, expected: true},
		{name: "at_boundary", period: AnswerPeriod{StartsAt: now.Unix(), EndsAt: now.Unix()}, at: time.Unix(now.Unix(), 0), expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.period.Contains(tc.at); got != tc.expected {
				t.Errorf("expected %t, got %t", tc.expected, got)
			}
		})
	}
}
