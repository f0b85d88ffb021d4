package hints

import (
	"slices"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/agiangrant/skinny/aspect"
)

// Entry is a stored hint together with the exact aspect it was stored under.
type Entry struct {
	Aspect aspect.Aspect
	Value  Value
}

// Table maps aspects to hint values and resolves queries to the most
// specific stored hint.
//
// Entries are kept in key order. For resolution every stateless aspect keeps
// the state masks it was stored with, sorted from the highest numeric value
// down, so the first mask that is a subset of the queried states is the best
// match.
type Table struct {
	mu         sync.RWMutex
	entries    *treemap.Map
	candidates map[aspect.Aspect][]aspect.State
}

func NewTable() *Table {
	return &Table{
		entries:    treemap.NewWith(utils.UInt64Comparator),
		candidates: make(map[aspect.Aspect][]aspect.State),
	}
}

// Set stores v under a, replacing any previous value. Setting a KindNone
// value removes the entry.
func (t *Table) Set(a aspect.Aspect, v Value) {
	if v.IsNone() {
		t.Remove(a)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := a.Value()
	if _, found := t.entries.Get(key); !found {
		base := a.Stateless()
		masks := t.candidates[base]
		i, _ := slices.BinarySearchFunc(masks, a.States(), descending)
		t.candidates[base] = slices.Insert(masks, i, a.States())
	}
	t.entries.Put(key, v)
}

// SetEntries stores every entry in order.
func (t *Table) SetEntries(entries []Entry) {
	for _, e := range entries {
		t.Set(e.Aspect, e.Value)
	}
}

// Remove deletes the entry stored exactly under a and reports whether one
// existed.
func (t *Table) Remove(a aspect.Aspect) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := a.Value()
	if _, found := t.entries.Get(key); !found {
		return false
	}
	t.entries.Remove(key)

	base := a.Stateless()
	masks := t.candidates[base]
	if i, found := slices.BinarySearchFunc(masks, a.States(), descending); found {
		masks = slices.Delete(masks, i, i+1)
	}
	if len(masks) == 0 {
		delete(t.candidates, base)
	} else {
		t.candidates[base] = masks
	}
	return true
}

// Clear removes every entry.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries.Clear()
	clear(t.candidates)
}

// Hint returns the value stored exactly under a, without any fallback.
func (t *Table) Hint(a aspect.Aspect) (Value, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.getLocked(a)
}

func (t *Table) Has(a aspect.Aspect) bool {
	_, ok := t.Hint(a)
	return ok
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.entries.Size()
}

func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// Range calls fn for every entry in ascending key order until fn returns
// false. fn must not modify the table.
func (t *Table) Range(fn func(Entry) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	it := t.entries.Iterator()
	for it.Next() {
		e := Entry{Aspect: aspect.FromValue(it.Key().(uint64)), Value: it.Value().(Value)}
		if !fn(e) {
			return
		}
	}
}

// Entries returns a snapshot of all entries in key order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, t.Len())
	t.Range(func(e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// StatelessAspects returns the distinct aspects the table holds hints for,
// with states cleared, in key order.
func (t *Table) StatelessAspects() []aspect.Aspect {
	t.mu.RLock()
	keys := lo.Keys(t.candidates)
	t.mu.RUnlock()

	slices.SortFunc(keys, aspect.Compare)
	return keys
}

// Resolve returns the best stored hint for q.
//
// Among the entries that share q's stateless part, it picks the one whose
// state mask is a subset of q's states, preferring the highest mask. An
// entry stored without states always qualifies. When nothing qualifies and
// q carries a placement, the lookup is repeated without the placement.
func (t *Table) Resolve(q aspect.Aspect) mo.Option[Entry] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if e, ok := t.resolveLocked(q); ok {
		return mo.Some(e)
	}
	if q.Placement() != aspect.NoPlacement {
		q.SetPlacement(aspect.NoPlacement)
		if e, ok := t.resolveLocked(q); ok {
			return mo.Some(e)
		}
	}
	return mo.None[Entry]()
}

// ResolveStates is Resolve without the placement fallback.
func (t *Table) ResolveStates(q aspect.Aspect) mo.Option[Entry] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if e, ok := t.resolveLocked(q); ok {
		return mo.Some(e)
	}
	return mo.None[Entry]()
}

// ResolveValue is Resolve returning only the value.
func (t *Table) ResolveValue(q aspect.Aspect) mo.Option[Value] {
	e, ok := t.Resolve(q).Get()
	if !ok {
		return mo.None[Value]()
	}
	return mo.Some(e.Value)
}

func (t *Table) resolveLocked(q aspect.Aspect) (Entry, bool) {
	base := q.Stateless()
	states := q.States()

	for _, mask := range t.candidates[base] {
		if mask&^states != 0 {
			continue
		}
		a := base.WithStates(mask)
		if v, ok := t.getLocked(a); ok {
			return Entry{Aspect: a, Value: v}, true
		}
	}
	return Entry{}, false
}

func (t *Table) getLocked(a aspect.Aspect) (Value, bool) {
	v, found := t.entries.Get(a.Value())
	if !found {
		return Value{}, false
	}
	return v.(Value), true
}

// ResolveChain resolves q against tables in priority order and returns the
// first hit. Nil tables are skipped.
func ResolveChain(q aspect.Aspect, tables ...*Table) mo.Option[Entry] {
	for _, t := range tables {
		if t == nil {
			continue
		}
		if e := t.Resolve(q); e.IsPresent() {
			return e
		}
	}
	return mo.None[Entry]()
}

func descending(a, b aspect.State) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
