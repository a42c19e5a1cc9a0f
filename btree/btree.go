// Package btree implements an in-memory B-tree with insertion, membership
// search and full deletion (sibling donation and merging on underflow).
//
// The tree is not safe for concurrent use; callers that share a tree across
// goroutines must serialize access themselves.
package btree

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Log receives structural tracing (splits, donations, merges, root
// growth/collapse) at debug level. Silent by default.
var Log = logrus.New()

func init() {
	Log.SetLevel(logrus.InfoLevel)
}

// ErrInvalidBranchFactor is returned by New when the branch factor would
// produce a degree smaller than 2.
var ErrInvalidBranchFactor = errors.New("btree: branch factor must be at least 1")

/*
props holds the per-tree configuration derived once from the branch factor.
It never changes after construction and is shared by every structural
operation, so none of it is duplicated per node.
*/
type props struct {
	degree      int // max children per internal node, 2 * branchFactor
	maxKeys     int // degree - 1
	minKeys     int // (degree - 1) / 2, lower bound for every non-root node
	midKeyIndex int // index of the key promoted on a split
}

func newProps(branchFactor int) props {
	degree := 2 * branchFactor
	return props{
		degree:      degree,
		maxKeys:     degree - 1,
		minKeys:     (degree - 1) / 2,
		midKeyIndex: (degree - 1) / 2,
	}
}
