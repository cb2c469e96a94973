package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/xvca/rsdb/internal/core/database"
	"github.com/xvca/rsdb/internal/core/parser"
	"github.com/xvca/rsdb/internal/core/rsdb"
	"github.com/xvca/rsdb/internal/pkg/logging"
	"github.com/xvca/rsdb/internal/pkg/util"
)

const (
	cliName string = "rsdb"
)

func printPrompt() {
	fmt.Print(cliName, "> ")
}

type metaCommand int

const (
	Unknown metaCommand = iota + 1
	Help
	Exit
	Constants
	Btree
)

func isMetaCommand(inputBuffer string) bool {
	return len(inputBuffer) > 0 && inputBuffer[:1] == "."
}

func doMetaCommand(inputBuffer string) metaCommand {
	switch inputBuffer {
	case "help":
		return Help
	case "exit":
		return Exit
	case "constants":
		return Constants
	case "btree":
		return Btree
	default:
		return Unknown
	}
}

var resultColumns = []util.Column{
	{Name: "id", Numeric: true},
	{Name: "username"},
	{Name: "email"},
}

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

	wg := new(sync.WaitGroup)
	wg.Add(1)
	doneChan := make(chan struct{})

	go func() {
		defer wg.Done()
		defer close(doneChan)
		reader := bufio.NewScanner(os.Stdin)
		printPrompt()

		// REPL (Read-eval-print loop) start
		for reader.Scan() {
			if ctx.Err() != nil {
				break
			}

			inputBuffer := strings.TrimSpace(reader.Text())
			if isMetaCommand(inputBuffer) {
				switch doMetaCommand(inputBuffer[1:]) {
				case Help:
					fmt.Println(".help       - Show available commands")
					fmt.Println(".exit       - Closes program")
					fmt.Println(".constants  - Print storage engine constants")
					fmt.Println(".btree      - Print the root leaf node")
				case Exit:
					return
				case Constants:
					printConstants()
				case Btree:
					printTree(ctx, aDatabase)
				case Unknown:
					fmt.Printf("Unrecognized meta command: %s\n", inputBuffer)
				}
			} else {
				stmt, err := aDatabase.PrepareStatement(ctx, inputBuffer)
				if err != nil {
					fmt.Printf("Error parsing statement: %s\n", err)
				} else {
					aResult, err := aDatabase.ExecuteStatement(ctx, stmt)
					if err != nil {
						fmt.Printf("Error executing statement: %s\n", err)
					} else if stmt.Kind == rsdb.Insert {
						fmt.Printf("Rows affected: %d\n", aResult.RowsAffected)
					} else if stmt.Kind == rsdb.Select {
						printRows(ctx, aResult)
					}
				}
			}
			printPrompt()
		}
		// Print an additional line if we encountered an EOF character
		fmt.Println()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
	case <-doneChan:
	}

	if err := aDatabase.Close(ctx); err != nil {
		fmt.Printf("error closing database: %s\n", err)
	}

	cancel()

	wg.Wait()
}

func printConstants() {
	fmt.Println("Constants:")
	fmt.Printf("PageSize: %d\n", rsdb.PageSize)
	fmt.Printf("MaxPages: %d\n", rsdb.MaxPages)
	fmt.Printf("RowSize: %d\n", rsdb.RowSize)
	fmt.Printf("CommonHeaderSize: %d\n", rsdb.CommonHeaderSize)
	fmt.Printf("LeafHeaderSize: %d\n", rsdb.LeafHeaderSize)
	fmt.Printf("CellSize: %d\n", rsdb.CellSize)
	fmt.Printf("LeafMaxCells: %d\n", rsdb.LeafMaxCells)
}

func printTree(ctx context.Context, aDatabase *database.Database) {
	keys, err := aDatabase.Tree(ctx)
	if err != nil {
		fmt.Printf("Error reading tree: %s\n", err)
		return
	}
	fmt.Println("Tree:")
	fmt.Printf("leaf (size %d)\n", len(keys))
	for i, key := range keys {
		fmt.Printf("  - %d : %d\n", i, key)
	}
}

func printRows(ctx context.Context, aResult rsdb.StatementResult) {
	util.PrintTableHeader(os.Stdout, resultColumns)
	aRow, err := aResult.Rows(ctx)
	for ; err == nil; aRow, err = aResult.Rows(ctx) {
		util.PrintTableRow(os.Stdout, resultColumns, []any{aRow.ID, aRow.Username, aRow.Email})
	}
	if !errors.Is(err, rsdb.ErrNoMoreRows) {
		fmt.Printf("Error fetching rows: %s\n", err)
	}
	util.PrintTableEnd(os.Stdout, resultColumns)
}
