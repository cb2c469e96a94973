package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xvca/rsdb/internal/core/rsdb"
)

var errUnrecognizedStatementType = fmt.Errorf("unrecognised statement type")

const (
	tableName   = "users"
	rootPageIdx = uint32(0)
)

type Parser interface {
	Parse(context.Context, string) (rsdb.Statement, error)
}

// Database binds the parser and the pager around the single users table.
type Database struct {
	Name   string
	parser Parser
	pager  rsdb.Pager
	table  *rsdb.Table
	logger *zap.Logger
}

// New creates a new database over an already opened pager. A zero page file
// gets page 0 materialized as an empty root leaf.
func New(ctx context.Context, logger *zap.Logger, name string, aParser Parser, aPager rsdb.Pager) (*Database, error) {
	aDatabase := &Database{
		Name:   name,
		parser: aParser,
		pager:  aPager,
		logger: logger,
	}

	totalPages := int(aPager.TotalPages())

	logger.Sugar().With(
		"name", name,
		"total_pages", totalPages,
	).Debug("initializing database")

	aDatabase.table = rsdb.NewTable(logger, tableName, aPager, rootPageIdx)

	if totalPages == 0 {
		aPage, err := aPager.GetPage(ctx, rootPageIdx)
		if err != nil {
			return nil, err
		}
		aPage.LeafNode.Header.IsRoot = true

		logger.Sugar().With(
			"name", tableName,
			"root_page", int(rootPageIdx),
		).Debug("initialized empty root leaf")
	}

	return aDatabase, nil
}

// Close flushes every page up to the pager's high-water mark in ascending
// order. It must be the last operation performed on the database.
func (d *Database) Close(ctx context.Context) error {
	for pageIdx := uint32(0); pageIdx < d.pager.TotalPages(); pageIdx++ {
		d.logger.Sugar().With(
			"page", int(pageIdx),
		).Debug("flushing page to disk")
		if err := d.pager.Flush(ctx, pageIdx); err != nil {
			return err
		}
	}

	return nil
}

// PrepareStatement parses input into a Statement struct
func (d *Database) PrepareStatement(ctx context.Context, input string) (rsdb.Statement, error) {
	return d.parser.Parse(ctx, input)
}

func (d *Database) ExecuteStatement(ctx context.Context, stmt rsdb.Statement) (rsdb.StatementResult, error) {
	switch stmt.Kind {
	case rsdb.Insert:
		return d.executeInsert(ctx, stmt)
	case rsdb.Select:
		return d.table.Select(ctx)
	}
	return rsdb.StatementResult{}, errUnrecognizedStatementType
}

func (d *Database) executeInsert(ctx context.Context, stmt rsdb.Statement) (rsdb.StatementResult, error) {
	if err := d.table.Insert(ctx, stmt.Row); err != nil {
		return rsdb.StatementResult{}, err
	}
	return rsdb.StatementResult{RowsAffected: 1}, nil
}

// Tree returns the root leaf keys in cell order, used by the .btree meta
// command.
func (d *Database) Tree(ctx context.Context) ([]uint32, error) {
	return d.table.CellKeys(ctx)
}
