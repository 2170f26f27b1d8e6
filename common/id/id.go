package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
// Calling it again is a no-op; the first node wins.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// NewString returns a new time-ordered ID in its decimal form, as sent in
// the X-Request-Id response header. Init must have been called.
func NewString() string {
	return node.Generate().String()
}
