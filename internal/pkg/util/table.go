package util

import (
	"fmt"
	"io"
	"strings"
)

const (
	truncatedStringEnd = " ..."
	numericLength      = 20
	maxLength          = 40
)

// Column describes one column of a printed result table. Numeric columns
// get a narrower width than text columns.
type Column struct {
	Name    string
	Numeric bool
}

func PrintTableHeader(w io.Writer, columns []Column) {
	columnSize, tableWidth := computeTableSize(columns)

	// add top horizontal header
	fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", tableWidth-2))

	for i, aColumn := range columns {
		// pad with columnSize[i] spaces on the right rather than the left (left-justify the field)
		// an asterisk * in the format specifies that the padding size should be given as an argument
		fmt.Fprintf(w, "| %-*s ", columnSize[i], aColumn.Name)
		// new line after last cell in a row
		if i == len(columns)-1 {
			fmt.Fprintf(w, "|\n")
		}
	}

	// add horizontal border bellow the header row
	fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", tableWidth-2))
}

func PrintTableRow(w io.Writer, columns []Column, values []any) {
	columnSize, _ := computeTableSize(columns)

	for i, aValue := range values {
		aStringValue := fmt.Sprint(aValue)
		r := []rune(aStringValue)
		if len(r) >= maxLength-len(truncatedStringEnd) {
			aStringValue = string(r[0:maxLength-len(truncatedStringEnd)]) + truncatedStringEnd
		}
		fmt.Fprintf(w, "| %-*s ", columnSize[i], aStringValue)
	}
	fmt.Fprintf(w, "|\n")
}

func PrintTableEnd(w io.Writer, columns []Column) {
	_, tableWidth := computeTableSize(columns)

	fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", tableWidth-2))
}

func computeTableSize(columns []Column) ([]int, int) {
	// find max width for each column
	columnSize := make([]int, len(columns))
	for i, aColumn := range columns {
		if aColumn.Numeric {
			columnSize[i] = numericLength
		} else {
			columnSize[i] = maxLength
		}
	}

	// left border is | followed by a space, right border is space followed by | (2+2=4)
	// then between each column we have space, |, space (3)
	tableWidth := 4 + (len(columnSize)-1)*3
	for _, columnWidth := range columnSize {
		tableWidth += columnWidth
	}

	return columnSize, tableWidth
}
