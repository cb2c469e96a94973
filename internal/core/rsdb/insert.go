package rsdb

import (
	"context"
	"errors"
)

// ErrLeafFull is returned when the root leaf has no room for another cell.
// The table stays usable for reads, only inserts are rejected.
var ErrLeafFull = errors.New("leaf node full")

// Insert appends the row at the end of the root leaf's cell array. Keys are
// not searched or deduplicated, inserting an existing key creates a second
// cell with the same key.
func (t *Table) Insert(ctx context.Context, aRow Row) error {
	aPage, err := t.pager.GetPage(ctx, t.RootPageIdx)
	if err != nil {
		return err
	}
	if aPage.LeafNode.Header.Cells >= LeafMaxCells {
		return ErrLeafFull
	}

	aCursor, err := t.SeekEnd(ctx)
	if err != nil {
		return err
	}

	if err := aCursor.saveToCell(ctx, aRow.ID, aRow); err != nil {
		return err
	}

	t.logger.Sugar().With(
		"page_index", int(aCursor.PageIdx),
		"cell_index", int(aCursor.CellIdx),
		"key", int(aRow.ID),
	).Debug("inserted row")

	return nil
}
