package rsdb

import (
	"context"

	"go.uber.org/zap"
)

// Table binds a pager to a root page number. The root page is the single
// leaf holding all records until a multi level tree is added.
type Table struct {
	Name        string
	RootPageIdx uint32
	pager       Pager
	logger      *zap.Logger
}

func NewTable(logger *zap.Logger, name string, aPager Pager, rootPageIdx uint32) *Table {
	return &Table{
		Name:        name,
		RootPageIdx: rootPageIdx,
		pager:       aPager,
		logger:      logger,
	}
}

// SeekFirst returns a cursor at the first cell of the root page.
func (t *Table) SeekFirst(ctx context.Context) (*Cursor, error) {
	aPage, err := t.pager.GetPage(ctx, t.RootPageIdx)
	if err != nil {
		return nil, err
	}

	return &Cursor{
		Table:      t,
		PageIdx:    t.RootPageIdx,
		CellIdx:    0,
		EndOfTable: aPage.LeafNode.Header.Cells == 0,
	}, nil
}

// SeekEnd returns a cursor at the append position one past the last cell.
func (t *Table) SeekEnd(ctx context.Context) (*Cursor, error) {
	aPage, err := t.pager.GetPage(ctx, t.RootPageIdx)
	if err != nil {
		return nil, err
	}

	return &Cursor{
		Table:      t,
		PageIdx:    t.RootPageIdx,
		CellIdx:    aPage.LeafNode.Header.Cells,
		EndOfTable: true,
	}, nil
}

// CellKeys returns the keys of the root leaf in cell order.
func (t *Table) CellKeys(ctx context.Context) ([]uint32, error) {
	aPage, err := t.pager.GetPage(ctx, t.RootPageIdx)
	if err != nil {
		return nil, err
	}

	keys := make([]uint32, 0, aPage.LeafNode.Header.Cells)
	for i := uint32(0); i < aPage.LeafNode.Header.Cells; i++ {
		keys = append(keys, aPage.LeafNode.Cells[i].Key)
	}
	return keys, nil
}
