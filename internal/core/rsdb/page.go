package rsdb

const (
	PageSize = 4096 // 4 kilobytes
	MaxPages = 100
)

// Page is the unit of caching and disk I/O. Only leaf nodes exist for now,
// internal nodes are reserved for a future multi level tree.
type Page struct {
	Index    uint32
	LeafNode *LeafNode
}
