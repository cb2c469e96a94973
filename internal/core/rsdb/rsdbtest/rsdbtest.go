package rsdbtest

import (
	"math"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/xvca/rsdb/internal/core/rsdb"
)

type DataGen struct {
	*gofakeit.Faker
}

func NewDataGen(seed uint64) *DataGen {
	return &DataGen{
		Faker: gofakeit.New(seed),
	}
}

func (g *DataGen) Row() rsdb.Row {
	return rsdb.Row{
		ID:       uint32(g.IntRange(1, math.MaxInt32)),
		Username: truncate(g.Username(), rsdb.UsernameSize),
		Email:    truncate(g.Email(), rsdb.EmailSize),
	}
}

func (g *DataGen) Rows(number int) []rsdb.Row {
	// Make sure all rows will have unique ID, this is important in some tests
	idMap := map[uint32]struct{}{}
	rows := make([]rsdb.Row, 0, number)
	for i := 0; i < number; i++ {
		aRow := g.Row()
		_, ok := idMap[aRow.ID]
		for ok {
			aRow = g.Row()
			_, ok = idMap[aRow.ID]
		}
		rows = append(rows, aRow)
		idMap[aRow.ID] = struct{}{}
	}
	return rows
}

func (g *DataGen) NewRootLeafPageWithCells(cells int) *rsdb.Page {
	aRootLeaf := rsdb.NewLeafNode()
	aRootLeaf.Header.IsRoot = true
	aRootLeaf.Header.Cells = uint32(cells)

	for i := 0; i < cells; i++ {
		aRow := g.Row()
		aRootLeaf.Cells[i].Key = aRow.ID
		aRow.Marshal(aRootLeaf.Cells[i].Value[:])
	}

	return &rsdb.Page{LeafNode: aRootLeaf}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
