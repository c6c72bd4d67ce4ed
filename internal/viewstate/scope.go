package viewstate

import "slices"

// Scope groups watches. Scopes form a tree rooted at Loop.Root; a digest walks
// the whole tree, so a change made by a child's task is seen by its parent's
// watches in the same cycle. All methods must be called on the loop.
type Scope struct {
	loop      *Loop
	parent    *Scope
	children  []*Scope
	watchers  []*watcher
	destroyed bool
}

type watcher struct {
	check func() bool // reports whether the listener fired
}

// New creates a child scope
func (s *Scope) New() *Scope {
	child := &Scope{loop: s.loop, parent: s}
	if !s.destroyed {
		s.children = append(s.children, child)
	} else {
		child.destroyed = true
	}
	return child
}

// Parent returns the parent scope, nil for the root
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Loop returns the loop the scope belongs to
func (s *Scope) Loop() *Loop {
	return s.loop
}

// Destroy detaches the scope and its children from the tree.
// Their watches stop being evaluated.
func (s *Scope) Destroy() {
	if s.destroyed {
		return
	}
	s.markDestroyed()
	if s.parent != nil {
		s.parent.children = slices.DeleteFunc(s.parent.children, func(c *Scope) bool {
			return c == s
		})
	}
}

// Destroyed returns true once Destroy has been called on the scope or an ancestor
func (s *Scope) Destroyed() bool {
	return s.destroyed
}

func (s *Scope) markDestroyed() {
	s.destroyed = true
	s.watchers = nil
	for _, c := range s.children {
		c.markDestroyed()
	}
	s.children = nil
}

func (s *Scope) digestOnce() bool {
	dirty := false
	for _, w := range slices.Clone(s.watchers) {
		if w.check() {
			dirty = true
		}
	}
	for _, c := range slices.Clone(s.children) {
		if c.digestOnce() {
			dirty = true
		}
	}
	return dirty
}

// Watch evaluates get on every digest and calls listener when the value
// differs from the last one seen. The first evaluation always fires, with
// oldValue equal to newValue. The returned func removes the watch.
func Watch[T comparable](s *Scope, get func() T, listener func(newValue, oldValue T)) func() {
	if s.destroyed {
		return func() {}
	}

	var (
		last        T
		initialized bool
	)
	w := &watcher{}
	w.check = func() bool {
		value := get()
		if initialized && value == last {
			return false
		}
		old := last
		if !initialized {
			old = value
		}
		initialized = true
		last = value
		listener(value, old)
		return true
	}

	s.watchers = append(s.watchers, w)
	return func() {
		s.watchers = slices.DeleteFunc(s.watchers, func(other *watcher) bool {
			return other == w
		})
	}
}
