package rsdb

import (
	"context"
	"fmt"
	"io"
)

// DBFile is the subset of *os.File the pager needs.
type DBFile interface {
	io.ReadSeeker
	io.ReaderAt
	io.WriterAt
}

type Pager interface {
	GetPage(context.Context, uint32) (*Page, error)
	TotalPages() uint32
	Flush(context.Context, uint32) error
}

var errMaximumPagesReached = fmt.Errorf("maximum pages reached")

type pagerImpl struct {
	pageSize   int
	totalPages uint32 // total number of pages, high-water mark

	pages []*Page

	file     DBFile
	fileSize int64
}

// NewPager opens a pager over the database file.
func NewPager(file DBFile, pageSize int) (*pagerImpl, error) {
	aPager := &pagerImpl{
		pageSize: pageSize,
		file:     file,
		pages:    make([]*Page, 0, MaxPages),
	}

	fileSize, err := aPager.file.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	aPager.fileSize = fileSize

	// Basic check to verify file size is a multiple of page size (4096B)
	if fileSize%int64(pageSize) != 0 {
		return nil, fmt.Errorf("db file size is not divisible by page size: %d", fileSize)
	}

	aPager.totalPages = uint32(fileSize / int64(pageSize))

	return aPager, nil
}

func (p *pagerImpl) TotalPages() uint32 {
	return p.totalPages
}

// GetPage returns the cached page, materializing it first if needed. Pages
// within the file extent are read from disk as one whole PageSize block,
// a page one past the extent starts out as a fresh empty leaf.
func (p *pagerImpl) GetPage(ctx context.Context, pageIdx uint32) (*Page, error) {
	if pageIdx >= MaxPages {
		return nil, errMaximumPagesReached
	}

	if len(p.pages) > int(pageIdx) && p.pages[pageIdx] != nil {
		return p.pages[pageIdx], nil
	}

	if int(pageIdx) > int(p.totalPages) {
		return nil, fmt.Errorf("cannot skip index when getting page, index: %d, number of pages: %d", pageIdx, p.totalPages)
	}

	// Requesting a new page
	if int(pageIdx) == int(p.totalPages) {
		p.pages = append(p.pages, &Page{Index: pageIdx, LeafNode: NewLeafNode()})
		p.totalPages = pageIdx + 1
		return p.pages[pageIdx], nil
	}

	// Page should exist, load the page from file
	buf := make([]byte, p.pageSize)
	offset := int64(pageIdx) * int64(p.pageSize)
	if _, err := p.file.ReadAt(buf, offset); err != nil {
		return nil, err
	}

	leaf := NewLeafNode()
	if _, err := leaf.Unmarshal(buf); err != nil {
		return nil, fmt.Errorf("page %d: %w", pageIdx, err)
	}

	if len(p.pages) < int(pageIdx)+1 {
		// Extend pages slice so that slice index equals page index
		for i := len(p.pages); i < int(pageIdx)+1; i++ {
			p.pages = append(p.pages, nil)
		}
	}
	p.pages[pageIdx] = &Page{Index: pageIdx, LeafNode: leaf}

	return p.pages[pageIdx], nil
}

// Flush writes the cached page back to its file offset as one whole
// PageSize block. Flushing a page that was never materialized is a no-op.
func (p *pagerImpl) Flush(ctx context.Context, pageIdx uint32) error {
	if int(pageIdx) >= len(p.pages) || p.pages[pageIdx] == nil {
		return nil
	}

	buf := make([]byte, p.pageSize)
	if _, err := p.pages[pageIdx].LeafNode.Marshal(buf); err != nil {
		return err
	}

	_, err := p.file.WriteAt(buf, int64(pageIdx)*int64(p.pageSize))
	return err
}
