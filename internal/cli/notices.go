package cli

import (
	"fmt"
	"io"
	"sync"
)

// Notices delivers exporter notices to the active surface. With an output
// set they are printed; without one they queue until Drain.
type Notices struct {
	mu      sync.Mutex
	out     io.Writer
	pending []string
}

func NewNotices(out io.Writer) *Notices {
	return &Notices{out: out}
}

func (n *Notices) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.out != nil {
		fmt.Fprintln(n.out, message)
		return
	}
	n.pending = append(n.pending, message)
}

// SetOutput redirects future notices. Nil switches to queueing.
func (n *Notices) SetOutput(out io.Writer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.out = out
}

// Drain returns and forgets the queued notices.
func (n *Notices) Drain() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	msgs := n.pending
	n.pending = nil
	return msgs
}
