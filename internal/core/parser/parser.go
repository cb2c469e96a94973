package parser

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xvca/rsdb/internal/core/rsdb"
)

var (
	ErrEmptyStatement        = errors.New("statement cannot be empty")
	ErrUnrecognizedStatement = errors.New("unrecognized statement")
	ErrSyntax                = errors.New("syntax error, could not parse statement")
	ErrIDMustBePositive      = errors.New("id must be positive")
	ErrStringTooLong         = errors.New("string is too long")
)

type parser struct{}

func New() *parser {
	return new(parser)
}

// Parse turns one line of input into a Statement. Supported statements are
// "insert <id> <username> <email>" and "select".
func (p *parser) Parse(ctx context.Context, input string) (rsdb.Statement, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return rsdb.Statement{}, ErrEmptyStatement
	}

	switch strings.ToLower(fields[0]) {
	case "insert":
		return parseInsert(fields)
	case "select":
		if len(fields) != 1 {
			return rsdb.Statement{}, ErrSyntax
		}
		return rsdb.Statement{Kind: rsdb.Select}, nil
	default:
		return rsdb.Statement{}, ErrUnrecognizedStatement
	}
}

func parseInsert(fields []string) (rsdb.Statement, error) {
	if len(fields) != 4 {
		return rsdb.Statement{}, ErrSyntax
	}

	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return rsdb.Statement{}, fmt.Errorf("%w: %s", ErrSyntax, fields[1])
	}
	if id < 0 {
		return rsdb.Statement{}, ErrIDMustBePositive
	}
	if id > math.MaxUint32 {
		return rsdb.Statement{}, fmt.Errorf("%w: id %d does not fit", ErrSyntax, id)
	}

	username, email := fields[2], fields[3]
	if len(username) > rsdb.UsernameSize {
		return rsdb.Statement{}, fmt.Errorf("username: %w", ErrStringTooLong)
	}
	if len(email) > rsdb.EmailSize {
		return rsdb.Statement{}, fmt.Errorf("email: %w", ErrStringTooLong)
	}

	return rsdb.Statement{
		Kind: rsdb.Insert,
		Row: rsdb.Row{
			ID:       uint32(id),
			Username: username,
			Email:    email,
		},
	}, nil
}
