package rsdb

import (
	"fmt"
)

type NodeKind byte

const (
	// NodeInternal is reserved for a future multi level tree, no internal
	// node is ever produced yet.
	NodeInternal NodeKind = iota
	NodeLeaf
)

const (
	CommonHeaderSize = 6
	LeafHeaderSize   = CommonHeaderSize + 4
	CellSize         = IDSize + RowSize
	LeafMaxCells     = (PageSize - LeafHeaderSize) / CellSize
)

// Header is the 6 byte prefix common to every node kind.
type Header struct {
	Kind   NodeKind
	IsRoot bool
	Parent uint32 // unused until internal nodes exist, always 0 on disk
}

func (h *Header) Size() uint64 {
	return CommonHeaderSize
}

func (h *Header) Marshal(buf []byte) ([]byte, error) {
	size := h.Size()
	if uint64(cap(buf)) >= size {
		buf = buf[:size]
	} else {
		buf = make([]byte, size)
	}

	buf[0] = byte(h.Kind)

	if h.IsRoot {
		buf[1] = 1
	} else {
		buf[1] = 0
	}

	buf[0+2] = byte(h.Parent >> 0)
	buf[1+2] = byte(h.Parent >> 8)
	buf[2+2] = byte(h.Parent >> 16)
	buf[3+2] = byte(h.Parent >> 24)

	return buf[:size], nil
}

func (h *Header) Unmarshal(buf []byte) (uint64, error) {
	h.Kind = NodeKind(buf[0])
	h.IsRoot = buf[1] == 1
	h.Parent = 0 |
		(uint32(buf[0+2]) << 0) |
		(uint32(buf[1+2]) << 8) |
		(uint32(buf[2+2]) << 16) |
		(uint32(buf[3+2]) << 24)

	return h.Size(), nil
}

type LeafNodeHeader struct {
	Header
	Cells uint32
}

func (h *LeafNodeHeader) Size() uint64 {
	return LeafHeaderSize
}

func (h *LeafNodeHeader) Marshal(buf []byte) ([]byte, error) {
	size := h.Size()
	if uint64(cap(buf)) >= size {
		buf = buf[:size]
	} else {
		buf = make([]byte, size)
	}

	i := uint64(0)

	hbuf, err := h.Header.Marshal(buf[i:])
	if err != nil {
		return nil, err
	}
	i += uint64(len(hbuf))

	buf[i+0] = byte(h.Cells >> 0)
	buf[i+1] = byte(h.Cells >> 8)
	buf[i+2] = byte(h.Cells >> 16)
	buf[i+3] = byte(h.Cells >> 24)

	return buf[:size], nil
}

func (h *LeafNodeHeader) Unmarshal(buf []byte) (uint64, error) {
	i := uint64(0)

	hi, err := h.Header.Unmarshal(buf[i:])
	if err != nil {
		return 0, err
	}
	i += hi

	h.Cells = 0 |
		(uint32(buf[i+0]) << 0) |
		(uint32(buf[i+1]) << 8) |
		(uint32(buf[i+2]) << 16) |
		(uint32(buf[i+3]) << 24)

	return h.Size(), nil
}

// Cell is one stored record, a key plus its encoded row.
type Cell struct {
	Key   uint32
	Value [RowSize]byte
}

func (c *Cell) Size() uint64 {
	return CellSize
}

func (c *Cell) Marshal(buf []byte) ([]byte, error) {
	size := c.Size()
	if uint64(cap(buf)) >= size {
		buf = buf[:size]
	} else {
		buf = make([]byte, size)
	}

	buf[0] = byte(c.Key >> 0)
	buf[1] = byte(c.Key >> 8)
	buf[2] = byte(c.Key >> 16)
	buf[3] = byte(c.Key >> 24)

	copy(buf[IDSize:], c.Value[:])

	return buf[:size], nil
}

func (c *Cell) Unmarshal(buf []byte) (uint64, error) {
	c.Key = 0 |
		(uint32(buf[0]) << 0) |
		(uint32(buf[1]) << 8) |
		(uint32(buf[2]) << 16) |
		(uint32(buf[3]) << 24)

	copy(c.Value[:], buf[IDSize:CellSize])

	return c.Size(), nil
}

// LeafNode is the binary layout inside one page, a header followed by a
// packed array of cells in insertion order.
type LeafNode struct {
	Header LeafNodeHeader
	Cells  [LeafMaxCells]Cell
}

func NewLeafNode() *LeafNode {
	return &LeafNode{
		Header: LeafNodeHeader{
			Header: Header{Kind: NodeLeaf},
		},
	}
}

func (n *LeafNode) Size() uint64 {
	return n.Header.Size() + LeafMaxCells*CellSize
}

func (n *LeafNode) Marshal(buf []byte) ([]byte, error) {
	size := n.Size()
	if uint64(cap(buf)) >= size {
		buf = buf[:size]
	} else {
		buf = make([]byte, size)
	}

	i := uint64(0)

	hbuf, err := n.Header.Marshal(buf[i:])
	if err != nil {
		return nil, err
	}
	i += uint64(len(hbuf))

	for idx := range n.Cells {
		cbuf, err := n.Cells[idx].Marshal(buf[i:])
		if err != nil {
			return nil, err
		}
		i += uint64(len(cbuf))
	}

	return buf[:i], nil
}

func (n *LeafNode) Unmarshal(buf []byte) (uint64, error) {
	i := uint64(0)

	hi, err := n.Header.Unmarshal(buf[i:])
	if err != nil {
		return 0, err
	}
	i += hi

	if n.Header.Kind != NodeLeaf {
		return 0, fmt.Errorf("unknown node kind %d", buf[0])
	}
	if n.Header.Cells > LeafMaxCells {
		return 0, fmt.Errorf("leaf node cell count %d exceeds capacity %d", n.Header.Cells, LeafMaxCells)
	}

	for idx := 0; idx < int(n.Header.Cells); idx++ {
		ci, err := n.Cells[idx].Unmarshal(buf[i:])
		if err != nil {
			return 0, err
		}
		i += ci
	}

	return i, nil
}
