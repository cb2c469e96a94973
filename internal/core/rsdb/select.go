package rsdb

import (
	"context"
	"errors"
)

var ErrNoMoreRows = errors.New("no more rows")

// Select returns a result whose Rows iterator yields every row in cell
// order and then ErrNoMoreRows. A fresh cursor backs each call to Select.
func (t *Table) Select(ctx context.Context) (StatementResult, error) {
	aCursor, err := t.SeekFirst(ctx)
	if err != nil {
		return StatementResult{}, err
	}

	t.logger.Sugar().With(
		"page_index", int(aCursor.PageIdx),
		"cell_index", int(aCursor.CellIdx),
	).Debug("fetching rows from")

	return StatementResult{
		Rows: func(ctx context.Context) (Row, error) {
			if aCursor.EndOfTable {
				return Row{}, ErrNoMoreRows
			}
			return aCursor.fetchRow(ctx)
		},
	}, nil
}
