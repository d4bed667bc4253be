package core

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns prefix_ULID, e.g. "evt_01G0EZ1XTM37C5X11SQTDNCTM1".
// IDs from one process sort in creation order, even within a millisecond.
func NewID(prefix string) (string, error) {
	cleanPrefix := strings.ToLower(strings.TrimSpace(prefix))
	if cleanPrefix == "" {
		return "", ErrEmptyIDPrefix
	}

	entropyMu.Lock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	entropyMu.Unlock()
	if err != nil {
		return "", fmt.Errorf("failed to generate %s id: %w", cleanPrefix, err)
	}

	return cleanPrefix + "_" + id.String(), nil
}

// MustNewID is NewID for constant prefixes.
func MustNewID(prefix string) string {
	id, err := NewID(prefix)
	if err != nil {
		panic(err)
	}
	return id
}
