package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvca/rsdb/internal/core/rsdb"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		Name     string
		Input    string
		Expected rsdb.Statement
		Err      error
	}{
		{
			Name:  "Valid insert",
			Input: "insert 1 alice alice@example.com",
			Expected: rsdb.Statement{
				Kind: rsdb.Insert,
				Row: rsdb.Row{
					ID:       1,
					Username: "alice",
					Email:    "alice@example.com",
				},
			},
		},
		{
			Name:  "Insert keyword is case insensitive",
			Input: "INSERT 2 bob bob@example.com",
			Expected: rsdb.Statement{
				Kind: rsdb.Insert,
				Row: rsdb.Row{
					ID:       2,
					Username: "bob",
					Email:    "bob@example.com",
				},
			},
		},
		{
			Name:  "Insert with maximum length strings",
			Input: "insert 3 " + strings.Repeat("u", rsdb.UsernameSize) + " " + strings.Repeat("e", rsdb.EmailSize),
			Expected: rsdb.Statement{
				Kind: rsdb.Insert,
				Row: rsdb.Row{
					ID:       3,
					Username: strings.Repeat("u", rsdb.UsernameSize),
					Email:    strings.Repeat("e", rsdb.EmailSize),
				},
			},
		},
		{
			Name:     "Valid select",
			Input:    "select",
			Expected: rsdb.Statement{Kind: rsdb.Select},
		},
		{
			Name:     "Select with surrounding whitespace",
			Input:    "  select  ",
			Expected: rsdb.Statement{Kind: rsdb.Select},
		},
		{
			Name:  "Empty input",
			Input: "",
			Err:   ErrEmptyStatement,
		},
		{
			Name:  "Whitespace only input",
			Input: "   ",
			Err:   ErrEmptyStatement,
		},
		{
			Name:  "Unrecognized statement",
			Input: "delete 1",
			Err:   ErrUnrecognizedStatement,
		},
		{
			Name:  "Insert with too few arguments",
			Input: "insert 1 alice",
			Err:   ErrSyntax,
		},
		{
			Name:  "Insert with too many arguments",
			Input: "insert 1 alice alice@example.com extra",
			Err:   ErrSyntax,
		},
		{
			Name:  "Insert with non numeric id",
			Input: "insert abc alice alice@example.com",
			Err:   ErrSyntax,
		},
		{
			Name:  "Insert with negative id",
			Input: "insert -5 alice alice@example.com",
			Err:   ErrIDMustBePositive,
		},
		{
			Name:  "Insert with id exceeding 32 bits",
			Input: "insert 99999999999 alice alice@example.com",
			Err:   ErrSyntax,
		},
		{
			Name:  "Insert with too long username",
			Input: "insert 1 " + strings.Repeat("u", rsdb.UsernameSize+1) + " alice@example.com",
			Err:   ErrStringTooLong,
		},
		{
			Name:  "Insert with too long email",
			Input: "insert 1 alice " + strings.Repeat("e", rsdb.EmailSize+1),
			Err:   ErrStringTooLong,
		},
		{
			Name:  "Select with arguments",
			Input: "select *",
			Err:   ErrSyntax,
		},
	}

	ctx := context.Background()
	aParser := New()

	for _, aTestCase := range testCases {
		t.Run(aTestCase.Name, func(t *testing.T) {
			stmt, err := aParser.Parse(ctx, aTestCase.Input)
			if aTestCase.Err != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, aTestCase.Err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, aTestCase.Expected, stmt)
		})
	}
}
