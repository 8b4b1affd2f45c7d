package model

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/td0m/devbook/pkg/value"
)

// Named is anything the model stores, identified by its name
type Named interface {
	comparable
	Name() value.Name
}

type Predicate[T any] func(T) bool

// All is the predicate installed by the list commands
func All[T any](T) bool { return true }

// List is a full collection plus the view that is currently displayed.
// The view is recomputed from the predicate after every change, so an
// entity added while a filter is active only shows up if it matches.
type List[T Named] struct {
	items []T
	pred  Predicate[T]
	shown []T
}

func newList[T Named]() *List[T] {
	return &List[T]{pred: All[T], items: []T{}, shown: []T{}}
}

func (l *List[T]) All() []T {
	return copyOf(l.items)
}

func (l *List[T]) Filtered() []T {
	return copyOf(l.shown)
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) Get(name value.Name) (T, bool) {
	return slice.Find(l.items, func(src T) bool {
		return src.Name() == name
	})
}

func (l *List[T]) Contains(name value.Name) bool {
	_, ok := l.Get(name)
	return ok
}

func (l *List[T]) filter(p Predicate[T]) {
	if p == nil {
		p = All[T]
	}
	l.pred = p
	l.refresh()
}

func (l *List[T]) refresh() {
	l.shown = slice.FindAll(l.items, func(src T) bool {
		return l.pred(src)
	})
}

func (l *List[T]) indexOf(t T) int {
	for i, item := range l.items {
		if item == t {
			return i
		}
	}
	return -1
}

func (l *List[T]) add(t T) {
	l.items = append(l.items, t)
	l.refresh()
}

func (l *List[T]) remove(t T) error {
	i := l.indexOf(t)
	if i < 0 {
		return ErrNotFound
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.refresh()
	return nil
}

func (l *List[T]) replace(target, edited T) error {
	i := l.indexOf(target)
	if i < 0 {
		return ErrNotFound
	}
	l.items[i] = edited
	l.refresh()
	return nil
}

// clashes reports whether name is taken by an entity other than self
func (l *List[T]) clashes(self T, name value.Name) bool {
	other, ok := l.Get(name)
	return ok && other != self
}

func copyOf[T any](ts []T) []T {
	out := make([]T, len(ts))
	copy(out, ts)
	return out
}
