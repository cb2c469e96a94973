package main

import (
	"context"
	"errors"
	"os"

	"github.com/xvca/rsdb/internal/core/database"
	"github.com/xvca/rsdb/internal/core/parser"
	"github.com/xvca/rsdb/internal/core/rsdb"
	"github.com/xvca/rsdb/internal/core/rsdb/rsdbtest"
	"github.com/xvca/rsdb/internal/pkg/logging"
)

const defaultDbFileName = "db"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, err := logging.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // flushes buffer, if any

	dbFileName := defaultDbFileName
	if len(os.Args) > 1 {
		dbFileName = os.Args[1]
	}

	dbFile, err := os.OpenFile(dbFileName, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		panic(err)
	}
	defer dbFile.Close()

	aPager, err := rsdb.NewPager(dbFile, rsdb.PageSize)
	if err != nil {
		panic(err)
	}
	aDatabase, err := database.New(ctx, logger, dbFileName, parser.New(), aPager)
	if err != nil {
		panic(err)
	}

	// Fill the remaining leaf capacity with fake rows
	gen := rsdbtest.NewDataGen(0)
	inserted := 0
	for _, aRow := range gen.Rows(rsdb.LeafMaxCells) {
		_, err := aDatabase.ExecuteStatement(ctx, rsdb.Statement{
			Kind: rsdb.Insert,
			Row:  aRow,
		})
		if errors.Is(err, rsdb.ErrLeafFull) {
			break
		}
		if err != nil {
			panic(err)
		}
		inserted += 1
	}

	logger.Sugar().With(
		"file", dbFileName,
		"rows", inserted,
	).Info("seeded test data")

	if err := aDatabase.Close(ctx); err != nil {
		panic(err)
	}
}
