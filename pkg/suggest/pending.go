package suggest

// Pending is a completion result that may still be computing. Exactly one
// candidate list is delivered per request; a Pending never yields partial
// results.
type Pending struct {
	done  chan struct{}
	items []Candidate
}

// resolved wraps a result that is already known.
func resolved(items []Candidate) *Pending {
	p := &Pending{done: make(chan struct{}), items: nonNil(items)}
	close(p.done)
	return p
}

// deferred runs fn on its own goroutine so the caller is not blocked while
// the document is scanned.
func deferred(fn func() []Candidate) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.items = nonNil(fn())
	}()
	return p
}

// Done is closed once the result is available.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the result is available and returns it.
func (p *Pending) Wait() []Candidate {
	<-p.done
	return p.items
}

func nonNil(items []Candidate) []Candidate {
	if items == nil {
		return []Candidate{}
	}
	return items
}
