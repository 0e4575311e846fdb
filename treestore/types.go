package treestore

import "errors"

// NodeRecordBytes is the fixed byte width of a node record.
// See `noderecord.go` for the field layout.
const NodeRecordBytes = 32

// Ref is a node record index.
type Ref uint32

const NoRef = ^Ref(0)

type NodeKind uint8

const (
	KindLeaf     NodeKind = 1
	KindInternal NodeKind = 2
)

var (
	ErrEmptyStore         = errors.New("treestore: empty store")
	ErrNodeStoreBadSize   = errors.New("treestore: node store buffer size invalid")
	ErrInvalidNodeKind    = errors.New("treestore: invalid node kind")
	ErrInvalidRightSpan   = errors.New("treestore: invalid right span")
	ErrInvalidSubtreeSize = errors.New("treestore: invalid subtree size")
	ErrInvalidLeafOrdinal = errors.New("treestore: invalid leaf ordinal")
	ErrWeightMismatch     = errors.New("treestore: internal weight is not the sum of its children")
	ErrTooManyNodes       = errors.New("treestore: node count does not fit in uint32")
)
