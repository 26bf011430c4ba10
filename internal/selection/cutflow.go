package selection

import (
	"fmt"
	"strings"
)

// Cutflow counts events surviving each selection stage, in the order
// the stages were first seen.
type Cutflow struct {
	names  []string
	counts map[string]int64
}

// NewCutflow returns an empty cutflow.
func NewCutflow() *Cutflow {
	return &Cutflow{counts: make(map[string]int64)}
}

// Pass records one event surviving the named stage.
func (c *Cutflow) Pass(name string) {
	if _, ok := c.counts[name]; !ok {
		c.names = append(c.names, name)
	}
	c.counts[name]++
}

// Names returns the stage names in first-seen order.
func (c *Cutflow) Names() []string {
	return append([]string(nil), c.names...)
}

// Count returns the number of events that survived the named stage.
func (c *Cutflow) Count(name string) int64 {
	return c.counts[name]
}

// String renders the cutflow as a fixed-width table.
func (c *Cutflow) String() string {
	var b strings.Builder
	for _, name := range c.names {
		fmt.Fprintf(&b, "%-24s %12d\n", name, c.counts[name])
	}
	return b.String()
}
