package streambuf

import "strings"

// sink is an ordered sequence of chunks accumulated by a stack's push
// markers; a chunk is either a literal string or a reference to
// another sink (when a stack-out is materialized while nested inside
// an enclosing redirect, per Buffer.EmitRedirectedContent).
type sink struct {
	items []sinkItem
}

type sinkItem struct {
	text string
	ref  *sink
}

func (s *sink) appendText(text string) {
	if text == "" {
		return
	}
	s.items = append(s.items, sinkItem{text: text})
}

func (s *sink) appendRef(ref *sink) {
	s.items = append(s.items, sinkItem{ref: ref})
}

// flatten recursively resolves nested sink references into one string,
// matching complete()'s "recursively flattened" requirement for
// deferred chunks.
func (s *sink) flatten() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, it := range s.items {
		if it.ref != nil {
			b.WriteString(it.ref.flatten())
		} else {
			b.WriteString(it.text)
		}
	}
	return b.String()
}

// StackRegistry is the per-render, lazily populated map from stack
// identity to its accumulator sink, plus the bookkeeping needed to
// enforce "a stack identity appears in at most one stack-out per
// render".
type StackRegistry struct {
	sinks        map[any]*sink
	materialized map[any]bool
}

// NewStackRegistry creates an empty registry, to be shared by exactly
// one render's Buffer and its walker.
func NewStackRegistry() *StackRegistry {
	return &StackRegistry{
		sinks:        make(map[any]*sink),
		materialized: make(map[any]bool),
	}
}

func (r *StackRegistry) sinkFor(id any) *sink {
	s, ok := r.sinks[id]
	if !ok {
		s = &sink{}
		r.sinks[id] = s
	}
	return s
}

// tryMaterialize marks id as materialized and reports whether this was
// the first such call for id; a false return means the caller hit a
// second stack-out for the same identity.
func (r *StackRegistry) tryMaterialize(id any) bool {
	if r.materialized[id] {
		return false
	}
	r.materialized[id] = true
	return true
}
