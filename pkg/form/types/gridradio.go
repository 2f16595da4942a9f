package types

import "errors"

const (
	MAX_GRID_RADIO_ROWS    = 32
	MAX_GRID_RADIO_COLUMNS = 32
)

type GridRadioRow struct {
	ID    GridRadioRowID `bson:"id" json:"id"`
	Label string         `bson:"label" json:"label"`
}

type GridRadioColumn struct {
	ID    GridRadioColumnID `bson:"id" json:"id"`
	Label string            `bson:"label" json:"label"`
}

// GridRadioItem collects one column selection per row. With ExclusiveColumn
// set, a column may be selected by at most one row.
type GridRadioItem struct {
	Rows            []GridRadioRow    `bson:"rows" json:"rows"`
	Columns         []GridRadioColumn `bson:"columns" json:"columns"`
	ExclusiveColumn bool              `bson:"exclusiveColumn" json:"exclusiveColumn"`
	Required        bool              `bson:"required" json:"required"`
}

var (
	errNoGridRadioRows           = errors.New("grid radio item: row list must not be empty")
	errNoGridRadioColumns        = errors.New("grid radio item: column list must not be empty")
	errTooManyGridRadioRows      = errors.New("grid radio item: too many rows")
	errTooManyGridRadioColumns   = errors.New("grid radio item: too many columns")
	errDuplicatedGridRadioRow    = errors.New("grid radio item: duplicated row id")
	errDuplicatedGridRadioColumn = errors.New("grid radio item: duplicated column id")
	errNotEnoughGridRadioColumns = errors.New("grid radio item: exclusive required grid needs at least as many columns as rows")
)

func (g GridRadioItem) Validate() error {
	if len(g.Rows) == 0 {
		return errNoGridRadioRows
	}
	if len(g.Rows) > MAX_GRID_RADIO_ROWS {
		return errTooManyGridRadioRows
	}
	if len(g.Columns) == 0 {
		return errNoGridRadioColumns
	}
	if len(g.Columns) > MAX_GRID_RADIO_COLUMNS {
		return errTooManyGridRadioColumns
	}
	seenRows := map[GridRadioRowID]struct{}{}
	for _, row := range g.Rows {
		if _, ok := seenRows[row.ID]; ok {
			return errDuplicatedGridRadioRow
		}
		seenRows[row.ID] = struct{}{}
	}
	seenColumns := map[GridRadioColumnID]struct{}{}
	for _, column := range g.Columns {
		if _, ok := seenColumns[column.ID]; ok {
			return errDuplicatedGridRadioColumn
		}
		seenColumns[column.ID] = struct{}{}
	}
	// When every row must be answered and no column can be shared, each row
	// needs a column of its own.
	if g.ExclusiveColumn && g.Required && len(g.Columns) < len(g.Rows) {
		return errNotEnoughGridRadioColumns
	}
	return nil
}

func (g GridRadioItem) HasColumn(id GridRadioColumnID) bool {
	for _, column := range g.Columns {
		if column.ID == id {
			return true
		}
	}
	return false
}
