package rsdb

import (
	"context"
)

type StatementKind int

const (
	Insert StatementKind = iota + 1
	Select
)

type Statement struct {
	Kind StatementKind
	Row  Row // populated for Insert
}

type Iterator func(ctx context.Context) (Row, error)

type StatementResult struct {
	Rows         Iterator
	RowsAffected int
}
