package formengine

import (
	formTypes "github.com/sohosai/sos-backend/pkg/form/types"
)

const MAX_FORM_ITEMS = 64

// FormItems is an ordered, non-empty, immutable collection of form items that
// passed ValidateItems. All invariants the answer checker relies on (unique
// item and option ids, resolvable condition references with matching target
// types) hold for every value of this type.
type FormItems struct {
	items []formTypes.FormItem
}

// ValidateItems checks a client-submitted item list in a single left-to-right
// pass and wraps it into an immutable collection. It fails fast: the reported
// error is the first violation in iteration order. Condition targets must
// appear strictly before the item declaring the condition; in particular an
// item cannot reference itself.
func ValidateItems(items []formTypes.FormItem) (*FormItems, error) {
	checker := newItemsChecker()
	for _, item := range items {
		if err := checker.checkItem(item); err != nil {
			return nil, err
		}
	}

	if len(items) == 0 {
		return nil, &ValidationError{Kind: VALIDATION_ERROR_EMPTY}
	}
	if len(items) > MAX_FORM_ITEMS {
		return nil, &ValidationError{Kind: VALIDATION_ERROR_TOO_LONG}
	}

	owned := make([]formTypes.FormItem, len(items))
	copy(owned, items)
	return &FormItems{items: owned}, nil
}

// Len is always > 0.
func (f *FormItems) Len() int {
	return len(f.items)
}

// Items returns a copy of the underlying item list.
func (f *FormItems) Items() []formTypes.FormItem {
	items := make([]formTypes.FormItem, len(f.items))
	copy(items, f.items)
	return items
}

// itemsChecker is the builder state of one validation pass: the items seen so
// far and the option id sets that enforce form-wide option uniqueness. It is
// local to one ValidateItems call.
type itemsChecker struct {
	items     map[formTypes.FormItemID]formTypes.FormItem
	boxIDs    map[formTypes.CheckboxID]struct{}
	buttonIDs map[formTypes.RadioID]struct{}
	rowIDs    map[formTypes.GridRadioRowID]struct{}
	columnIDs map[formTypes.GridRadioColumnID]struct{}
}

func newItemsChecker() *itemsChecker {
	return &itemsChecker{
		items:     map[formTypes.FormItemID]formTypes.FormItem{},
		boxIDs:    map[formTypes.CheckboxID]struct{}{},
		buttonIDs: map[formTypes.RadioID]struct{}{},
		rowIDs:    map[formTypes.GridRadioRowID]struct{}{},
		columnIDs: map[formTypes.GridRadioColumnID]struct{}{},
	}
}

func (c *itemsChecker) checkItem(item formTypes.FormItem) error {
	if _, ok := c.items[item.ID]; ok {
		return &ValidationError{
			Kind:   VALIDATION_ERROR_DUPLICATED_ITEM_ID,
			ItemID: item.ID,
		}
	}

	if err := item.Body.Validate(); err != nil {
		return &ValidationError{
			Kind:   VALIDATION_ERROR_INVALID_ITEM,
			ItemID: item.ID,
			Err:    err,
		}
	}

	if item.Conditions != nil {
		if err := item.Conditions.Validate(); err != nil {
			return &ValidationError{
				Kind:   VALIDATION_ERROR_INVALID_ITEM,
				ItemID: item.ID,
				Err:    err,
			}
		}
		for _, conj := range item.Conditions.Conjunctions {
			for _, condition := range conj {
				if err := c.checkCondition(item.ID, condition); err != nil {
					return err
				}
			}
		}
	}

	// The item joins the lookup state only after its own conditions passed,
	// so conditions can never reach the declaring item or anything after it.
	c.items[item.ID] = item
	return c.registerOptions(item)
}

func (c *itemsChecker) checkCondition(provenance formTypes.FormItemID, condition formTypes.Condition) error {
	switch condition.Type {
	case formTypes.CONDITION_TYPE_CHECKBOX_CHECKED:
		target, err := c.lookupTarget(provenance, condition.CheckboxChecked.ItemID)
		if err != nil {
			return err
		}
		if !target.Body.IsCheckbox() {
			return c.mismatchedType(provenance, target.ID)
		}
		if !target.Body.Checkbox.HasBox(condition.CheckboxChecked.CheckboxID) {
			return &ValidationError{
				Kind:       VALIDATION_ERROR_UNKNOWN_OPTION_ID_IN_CONDITIONS,
				Provenance: provenance,
				ItemID:     target.ID,
				OptionKind: OPTION_KIND_CHECKBOX,
				OptionID:   string(condition.CheckboxChecked.CheckboxID),
			}
		}
	case formTypes.CONDITION_TYPE_RADIO_SELECTED:
		target, err := c.lookupTarget(provenance, condition.RadioSelected.ItemID)
		if err != nil {
			return err
		}
		if !target.Body.IsRadio() {
			return c.mismatchedType(provenance, target.ID)
		}
		if !target.Body.Radio.HasButton(condition.RadioSelected.RadioID) {
			return &ValidationError{
				Kind:       VALIDATION_ERROR_UNKNOWN_OPTION_ID_IN_CONDITIONS,
				Provenance: provenance,
				ItemID:     target.ID,
				OptionKind: OPTION_KIND_RADIO_BUTTON,
				OptionID:   string(condition.RadioSelected.RadioID),
			}
		}
	case formTypes.CONDITION_TYPE_GRID_COLUMN_SELECTED:
		target, err := c.lookupTarget(provenance, condition.GridColumnSelected.ItemID)
		if err != nil {
			return err
		}
		if !target.Body.IsGridRadio() {
			return c.mismatchedType(provenance, target.ID)
		}
		if !target.Body.GridRadio.HasColumn(condition.GridColumnSelected.ColumnID) {
			return &ValidationError{
				Kind:       VALIDATION_ERROR_UNKNOWN_OPTION_ID_IN_CONDITIONS,
				Provenance: provenance,
				ItemID:     target.ID,
				OptionKind: OPTION_KIND_GRID_RADIO_COLUMN,
				OptionID:   string(condition.GridColumnSelected.ColumnID),
			}
		}
	}
	return nil
}

func (c *itemsChecker) lookupTarget(provenance, targetID formTypes.FormItemID) (formTypes.FormItem, error) {
	target, ok := c.items[targetID]
	if !ok {
		return formTypes.FormItem{}, &ValidationError{
			Kind:       VALIDATION_ERROR_UNKNOWN_ITEM_ID_IN_CONDITIONS,
			Provenance: provenance,
			ItemID:     targetID,
		}
	}
	return target, nil
}

func (c *itemsChecker) mismatchedType(provenance, targetID formTypes.FormItemID) error {
	return &ValidationError{
		Kind:       VALIDATION_ERROR_MISMATCHED_CONDITION_TYPE,
		Provenance: provenance,
		ItemID:     targetID,
	}
}

// registerOptions records the item's own option ids into the form-wide sets.
// Option ids are unique across the whole form, not only within one item.
func (c *itemsChecker) registerOptions(item formTypes.FormItem) error {
	switch item.Body.Type {
	case formTypes.ITEM_TYPE_CHECKBOX:
		for _, box := range item.Body.Checkbox.Boxes {
			if _, ok := c.boxIDs[box.ID]; ok {
				return c.duplicatedOption(item.ID, OPTION_KIND_CHECKBOX, string(box.ID))
			}
			c.boxIDs[box.ID] = struct{}{}
		}
	case formTypes.ITEM_TYPE_RADIO:
		for _, button := range item.Body.Radio.Buttons {
			if _, ok := c.buttonIDs[button.ID]; ok {
				return c.duplicatedOption(item.ID, OPTION_KIND_RADIO_BUTTON, string(button.ID))
			}
			c.buttonIDs[button.ID] = struct{}{}
		}
	case formTypes.ITEM_TYPE_GRID_RADIO:
		for _, row := range item.Body.GridRadio.Rows {
			if _, ok := c.rowIDs[row.ID]; ok {
				return c.duplicatedOption(item.ID, OPTION_KIND_GRID_RADIO_ROW, string(row.ID))
			}
			c.rowIDs[row.ID] = struct{}{}
		}
		for _, column := range item.Body.GridRadio.Columns {
			if _, ok := c.columnIDs[column.ID]; ok {
				return c.duplicatedOption(item.ID, OPTION_KIND_GRID_RADIO_COLUMN, string(column.ID))
			}
			c.columnIDs[column.ID] = struct{}{}
		}
	}
	return nil
}

func (c *itemsChecker) duplicatedOption(itemID formTypes.FormItemID, optionKind, optionID string) error {
	return &ValidationError{
		Kind:       VALIDATION_ERROR_DUPLICATED_OPTION_ID,
		ItemID:     itemID,
		OptionKind: optionKind,
		OptionID:   optionID,
	}
}
