package host

import (
	"sync"

	"github.com/pkg/errors"
	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/suborbital/extkit/native"
)

// FunctionTable is the host's table of registered methods and functions.
// Methods are keyed "Class::name" and free functions by name, so every method of a class shares a prefix.
type FunctionTable struct {
	lock sync.RWMutex
	tree art.Tree
}

// NewFunctionTable creates an empty table
func NewFunctionTable() *FunctionTable {
	t := &FunctionTable{
		tree: art.New(),
	}

	return t
}

// Add stores a populated entry, refusing to replace an existing one
func (t *FunctionTable) Add(entry *native.FunctionEntry) error {
	if entry == nil || entry.Handler == nil {
		return errors.New("entry has not been initialized")
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	key := art.Key(entry.Key())

	if _, exists := t.tree.Search(key); exists {
		return errors.Wrapf(ErrDuplicateEntry, "%s", entry.Key())
	}

	t.tree.Insert(key, entry)

	return nil
}

// AddAll stores every entry or none of them, refusing keys already in the table or repeated among entries
func (t *FunctionTable) AddAll(entries ...*native.FunctionEntry) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		if entry == nil || entry.Handler == nil {
			return errors.New("entry has not been initialized")
		}

		key := entry.Key()

		if _, exists := seen[key]; exists {
			return errors.Wrapf(ErrDuplicateEntry, "%s", key)
		}

		if _, exists := t.tree.Search(art.Key(key)); exists {
			return errors.Wrapf(ErrDuplicateEntry, "%s", key)
		}

		seen[key] = struct{}{}
	}

	for _, entry := range entries {
		t.tree.Insert(art.Key(entry.Key()), entry)
	}

	return nil
}

// Lookup finds the entry for a method of class, or a free function when class is empty
func (t *FunctionTable) Lookup(class, name string) (*native.FunctionEntry, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	val, ok := t.tree.Search(art.Key(native.EntryKey(class, name)))
	if !ok {
		return nil, false
	}

	return val.(*native.FunctionEntry), true
}

// Class returns every entry registered for class, ordered by method name
func (t *FunctionTable) Class(class string) []*native.FunctionEntry {
	t.lock.RLock()
	defer t.lock.RUnlock()

	entries := []*native.FunctionEntry{}

	t.tree.ForEachPrefix(art.Key(class+"::"), func(node art.Node) bool {
		entry := node.Value().(*native.FunctionEntry)

		// method names never contain "::", but class names might
		if entry.Class == class {
			entries = append(entries, entry)
		}

		return true
	})

	return entries
}

// Functions returns the free functions in the table, ordered by name
func (t *FunctionTable) Functions() []*native.FunctionEntry {
	entries := []*native.FunctionEntry{}

	for _, e := range t.Entries() {
		if e.Class == "" {
			entries = append(entries, e)
		}
	}

	return entries
}

// Entries returns every entry ordered by key
func (t *FunctionTable) Entries() []*native.FunctionEntry {
	t.lock.RLock()
	defer t.lock.RUnlock()

	entries := make([]*native.FunctionEntry, 0, t.tree.Size())

	t.tree.ForEach(func(node art.Node) bool {
		entries = append(entries, node.Value().(*native.FunctionEntry))
		return true
	})

	return entries
}

// Len returns the number of entries
func (t *FunctionTable) Len() int {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.Size()
}
