package rsdb

import (
	"context"
)

// Cursor is a transient position within the root leaf's cell array. It only
// moves forward, one cell at a time.
type Cursor struct {
	Table      *Table
	PageIdx    uint32
	CellIdx    uint32
	EndOfTable bool
}

// fetchRow decodes the row under the cursor and advances to the next cell,
// setting EndOfTable once the cell count is reached.
func (c *Cursor) fetchRow(ctx context.Context) (Row, error) {
	aPage, err := c.Table.pager.GetPage(ctx, c.PageIdx)
	if err != nil {
		return Row{}, err
	}

	var aRow Row
	UnmarshalRow(aPage.LeafNode.Cells[c.CellIdx].Value[:], &aRow)

	c.CellIdx += 1
	if c.CellIdx >= aPage.LeafNode.Header.Cells {
		c.EndOfTable = true
	}

	return aRow, nil
}

// saveToCell writes key and row into the cell under the cursor and bumps
// the cell count. The capacity guard lives in Table.Insert.
func (c *Cursor) saveToCell(ctx context.Context, key uint32, aRow Row) error {
	aPage, err := c.Table.pager.GetPage(ctx, c.PageIdx)
	if err != nil {
		return err
	}

	cell := &aPage.LeafNode.Cells[c.CellIdx]
	cell.Key = key
	aRow.Marshal(cell.Value[:])
	aPage.LeafNode.Header.Cells += 1

	return nil
}
