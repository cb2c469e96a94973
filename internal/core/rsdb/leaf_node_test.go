package rsdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafNode_Constants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 291, RowSize)
	assert.Equal(t, 295, CellSize)
	assert.Equal(t, 10, LeafHeaderSize)
	assert.Equal(t, 13, LeafMaxCells)
	assert.LessOrEqual(t, LeafHeaderSize+LeafMaxCells*CellSize, PageSize)
}

func TestLeafNode_Marshal_Layout(t *testing.T) {
	t.Parallel()

	leaf := NewLeafNode()
	leaf.Header.IsRoot = true
	leaf.Header.Cells = 2

	rows := []Row{
		{ID: 0x0a0b0c0d, Username: "first", Email: "first@example.com"},
		{ID: 2, Username: "second", Email: "second@example.com"},
	}
	for i, aRow := range rows {
		leaf.Cells[i].Key = aRow.ID
		aRow.Marshal(leaf.Cells[i].Value[:])
	}

	buf := make([]byte, PageSize)
	_, err := leaf.Marshal(buf)
	require.NoError(t, err)

	// Byte 0 is the node kind, 1 for leaf
	assert.Equal(t, byte(NodeLeaf), buf[0])
	// Byte 1 is the root flag
	assert.Equal(t, byte(1), buf[1])
	// Bytes 2-5 are the parent pointer, always 0 while single level
	assert.Equal(t, []byte{0, 0, 0, 0}, buf[2:6])
	// Bytes 6-9 are the cell count, little endian
	assert.Equal(t, []byte{2, 0, 0, 0}, buf[6:10])

	// First cell starts right after the header, key little endian
	assert.Equal(t, []byte{0x0d, 0x0c, 0x0b, 0x0a}, buf[LeafHeaderSize:LeafHeaderSize+IDSize])
	assert.Equal(t, []byte("first"), buf[LeafHeaderSize+IDSize+IDSize:LeafHeaderSize+IDSize+IDSize+5])

	// Second cell is exactly CellSize bytes further
	secondCell := LeafHeaderSize + CellSize
	assert.Equal(t, []byte{2, 0, 0, 0}, buf[secondCell:secondCell+IDSize])
}

func TestLeafNode_MarshalUnmarshal(t *testing.T) {
	t.Parallel()

	leaf := NewLeafNode()
	leaf.Header.IsRoot = true

	rows := genRows(5)
	leaf.Header.Cells = uint32(len(rows))
	for i, aRow := range rows {
		leaf.Cells[i].Key = aRow.ID
		aRow.Marshal(leaf.Cells[i].Value[:])
	}

	buf := make([]byte, PageSize)
	_, err := leaf.Marshal(buf)
	require.NoError(t, err)

	decoded := NewLeafNode()
	_, err = decoded.Unmarshal(buf)
	require.NoError(t, err)

	assert.Equal(t, leaf.Header, decoded.Header)
	for i, aRow := range rows {
		assert.Equal(t, aRow.ID, decoded.Cells[i].Key)

		var decodedRow Row
		UnmarshalRow(decoded.Cells[i].Value[:], &decodedRow)
		assert.Equal(t, aRow, decodedRow)
	}
}

func TestLeafNode_Unmarshal_UnknownKind(t *testing.T) {
	t.Parallel()

	// A zero filled page has kind byte 0 which is not a leaf
	buf := make([]byte, PageSize)
	_, err := NewLeafNode().Unmarshal(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown node kind")
}

func TestLeafNode_Unmarshal_CellCountExceedsCapacity(t *testing.T) {
	t.Parallel()

	leaf := NewLeafNode()
	buf := make([]byte, PageSize)
	_, err := leaf.Marshal(buf)
	require.NoError(t, err)

	// Corrupt the cell count beyond what a page can hold
	buf[6] = byte(LeafMaxCells + 1)

	_, err = NewLeafNode().Unmarshal(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds capacity")
}
