// Package ident generates ledger entry identifiers in the wire format the
// platform has always used: an entity prefix followed by an uppercase base36
// millisecond timestamp. A process-wide counter is mixed in so two ids minted
// within the same millisecond never collide.
package ident

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const (
	PrefixTransaction  = "TX"
	PrefixImpactUpdate = "UP"
	PrefixImpactEntry  = "IM"
)

var seq uint64

type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock is for tests that need deterministic timestamps.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

func (g *Generator) Next(prefix string) string {
	ms := g.now().UnixMilli()
	n := atomic.AddUint64(&seq, 1)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(strings.ToUpper(strconv.FormatInt(ms, 36)))
	b.WriteString(strings.ToUpper(strconv.FormatUint(n, 36)))
	return b.String()
}
