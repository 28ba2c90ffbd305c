// Package ident issues identifiers for stored entities. Numeric ids stay
// millisecond-clock derived for compatibility with existing stored data, but
// are allocated monotonically so rapid successive creations never collide.
package ident

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	mu          sync.Mutex
	lastNumeric int64
)

// NextNumeric returns a unique, strictly increasing millisecond-resolution id.
func NextNumeric() int64 {
	mu.Lock()
	defer mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastNumeric {
		id = lastNumeric + 1
	}
	lastNumeric = id
	return id
}

// NewString returns a collision-resistant random string id.
func NewString() string {
	return uuid.NewString()
}
