package rsdb

import (
	"math"
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testLogger = zap.NewNop()
	gen        = gofakeit.New(1)
)

func genRow() Row {
	username := gen.Username()
	if len(username) > UsernameSize {
		username = username[:UsernameSize]
	}
	return Row{
		ID:       uint32(gen.IntRange(1, math.MaxInt32)),
		Username: username,
		Email:    gen.Email(),
	}
}

func genRows(number int) []Row {
	idMap := map[uint32]struct{}{}
	rows := make([]Row, 0, number)
	for i := 0; i < number; i++ {
		aRow := genRow()
		_, ok := idMap[aRow.ID]
		for ok {
			aRow = genRow()
			_, ok = idMap[aRow.ID]
		}
		rows = append(rows, aRow)
		idMap[aRow.ID] = struct{}{}
	}
	return rows
}

func newTestPager(t *testing.T) (*pagerImpl, *os.File) {
	t.Helper()

	dbFile, err := os.CreateTemp("", "testdb")
	require.NoError(t, err)
	t.Cleanup(func() {
		dbFile.Close()
		os.Remove(dbFile.Name())
	})

	aPager, err := NewPager(dbFile, PageSize)
	require.NoError(t, err)

	return aPager, dbFile
}

func newTestTable(t *testing.T) (*Table, *os.File) {
	t.Helper()

	aPager, dbFile := newTestPager(t)
	return NewTable(testLogger, "users", aPager, 0), dbFile
}
