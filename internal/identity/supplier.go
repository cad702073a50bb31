package identity

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"remapper/internal/symbol"
)

// Supplier mints fresh identities.
type Supplier interface {
	Mint(kind symbol.Kind) string
}

// Counter mints "<prefix><kind>_<n>" with one sequence per kind. It is
// safe for concurrent use and must not be copied after first use.
type Counter struct {
	prefix string
	next   [symbol.KindTotal + 1]atomic.Int64
}

// NewCounter returns a Counter whose sequences start at 1.
func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

// Seed makes the next identity of kind use last+1, so minting continues
// after identities already handed out.
func (c *Counter) Seed(kind symbol.Kind, last int64) {
	c.next[kind].Store(last)
}

// Mint implements Supplier.
func (c *Counter) Mint(kind symbol.Kind) string {
	n := c.next[kind].Add(1)
	return c.prefix + strings.ToLower(kind.String()) + "_" + strconv.FormatInt(n, 10)
}

// UUIDs mints random (version 4) UUIDs.
type UUIDs struct {
	Prefix string
	// Rand is the randomness source; nil uses crypto/rand.
	Rand io.Reader
}

// Mint implements Supplier.
func (u UUIDs) Mint(symbol.Kind) string {
	if u.Rand == nil {
		return u.Prefix + uuid.NewString()
	}

	id, err := uuid.NewRandomFromReader(u.Rand)
	if err != nil {
		panic(fmt.Sprintf("identity: reading randomness: %v", err))
	}

	return u.Prefix + id.String()
}
