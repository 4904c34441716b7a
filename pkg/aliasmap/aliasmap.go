/*
Package aliasmap provides Map, an insertion-ordered container that stores each
value under a primary name and any number of aliases.

Every name, primary or alias, resolves to the stored value. Only primary names
are counted by Len and visited during iteration.
*/
package aliasmap

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidArgument is returned when a key, value or callback has the wrong shape.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNameConflict is returned when a name is already owned by another entry
// and the map's ConflictPolicy does not allow taking it over.
var ErrNameConflict = errors.New("name conflict")

// Key identifies an entry: its primary name plus the aliases it can also be found by.
type Key struct {
	Name    string
	Aliases []string
}

// Keyed is implemented by values that carry their own Key.
type Keyed interface {
	AliasKey() Key
}

// names validates k and returns the primary name followed by the distinct aliases.
func (k Key) names() ([]string, error) {
	if k.Name == "" {
		return nil, fmt.Errorf("%w: key name must not be empty", ErrInvalidArgument)
	}
	names := make([]string, 0, len(k.Aliases)+1)
	names = append(names, k.Name)
	for i, a := range k.Aliases {
		if a == "" {
			return nil, fmt.Errorf("%w: alias %d of %q must not be empty", ErrInvalidArgument, i, k.Name)
		}
		if !slices.Contains(names, a) {
			names = append(names, a)
		}
	}
	return names, nil
}

// AliasMap is implemented by every *Map, whatever its value type.
// Use Is to test an arbitrary value.
type AliasMap interface {
	Len() int
	Has(name string) bool
	Resolve(name string) (string, bool)
	Names() []string
	Clear()

	isAliasMap()
}

// Is reports whether x is an alias map.
func Is(x any) bool {
	_, ok := x.(AliasMap)
	return ok
}

type entry[V any] struct {
	value   V
	aliases []string
}

/*
Map stores values by primary name and aliases, remembering the order in which
primary names were first inserted.

The key of each entry is copied on insertion, so later changes to a caller's
alias slice, or to the key a Keyed value reports, do not affect the map.
Re-setting a primary name replaces its alias list: aliases missing from the
new key stop resolving.

The zero value is an empty map using LastWriterWins. A Map is not safe for
concurrent use.
*/
type Map[V any] struct {
	owners  map[string]string // every registered name -> primary name
	entries map[string]*entry[V]
	order   []string
	policy  ConflictPolicy
}

// New returns an empty Map configured by opts.
func New[V any](opts ...Option) *Map[V] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	m := &Map[V]{policy: s.policy}
	m.init()
	return m
}

func (m *Map[V]) init() {
	if m.owners == nil {
		m.owners = make(map[string]string)
		m.entries = make(map[string]*entry[V])
	}
}

func (m *Map[V]) isAliasMap() {}

// Len returns the number of primary names. Aliases are not counted.
func (m *Map[V]) Len() int {
	return len(m.order)
}

// Has reports whether name is a primary name or alias of a stored value.
func (m *Map[V]) Has(name string) bool {
	_, ok := m.owners[name]
	return ok
}

// Get returns the value stored under the primary name or alias name.
func (m *Map[V]) Get(name string) (V, bool) {
	if primary, ok := m.owners[name]; ok {
		return m.entries[primary].value, true
	}
	var zero V
	return zero, false
}

// Resolve returns the primary name that name refers to.
func (m *Map[V]) Resolve(name string) (string, bool) {
	primary, ok := m.owners[name]
	return primary, ok
}

// Aliases returns a copy of the aliases recorded for primary, or nil if primary is not stored.
func (m *Map[V]) Aliases(primary string) []string {
	e, ok := m.entries[primary]
	if !ok {
		return nil
	}
	return slices.Clone(e.aliases)
}

// Key returns the key recorded for primary.
func (m *Map[V]) Key(primary string) (Key, bool) {
	e, ok := m.entries[primary]
	if !ok {
		return Key{}, false
	}
	return Key{Name: primary, Aliases: slices.Clone(e.aliases)}, true
}

// Names returns the primary names in insertion order.
func (m *Map[V]) Names() []string {
	return slices.Clone(m.order)
}

/*
Set stores value under key.Name and every alias in key.Aliases.

If key.Name is already stored its value and alias list are replaced and its
position in the iteration order is kept. Names taken from other entries are
handled according to the map's ConflictPolicy. On error the map is unchanged.
*/
func (m *Map[V]) Set(key Key, value V) error {
	names, err := key.names()
	if err != nil {
		return err
	}
	if err := m.checkConflicts(names); err != nil {
		return err
	}
	m.init()

	primary, aliases := names[0], names[1:]
	if old, ok := m.entries[primary]; ok {
		for _, a := range old.aliases {
			if m.owners[a] == primary {
				delete(m.owners, a)
			}
		}
	} else {
		if owner, ok := m.owners[primary]; ok {
			m.dropAlias(owner, primary)
		}
		m.order = append(m.order, primary)
	}

	for _, a := range aliases {
		if owner, ok := m.owners[a]; ok && owner != primary {
			m.dropAlias(owner, a)
		}
		m.owners[a] = primary
	}
	m.owners[primary] = primary
	m.entries[primary] = &entry[V]{value: value, aliases: aliases}
	return nil
}

// Add stores value under the key it reports through Keyed.
func (m *Map[V]) Add(value V) error {
	k, ok := any(value).(Keyed)
	if !ok {
		return fmt.Errorf("%w: %T does not implement aliasmap.Keyed", ErrInvalidArgument, value)
	}
	return m.Set(k.AliasKey(), value)
}

// MustSet is like Set but panics on error. It returns m so calls can be chained.
func (m *Map[V]) MustSet(key Key, value V) *Map[V] {
	if err := m.Set(key, value); err != nil {
		panic(err)
	}
	return m
}

// MustAdd is like Add but panics on error. It returns m so calls can be chained.
func (m *Map[V]) MustAdd(value V) *Map[V] {
	if err := m.Add(value); err != nil {
		panic(err)
	}
	return m
}

// Delete removes the entry whose primary name is key.Name together with the
// aliases recorded when it was stored. key.Aliases is validated but not used.
// It reports whether the entry existed.
func (m *Map[V]) Delete(key Key) (bool, error) {
	if _, err := key.names(); err != nil {
		return false, err
	}
	return m.Remove(key.Name), nil
}

// Remove removes the entry with the given primary name and all its aliases.
// It reports whether the entry existed.
func (m *Map[V]) Remove(primary string) bool {
	e, ok := m.entries[primary]
	if !ok {
		return false
	}
	for _, a := range e.aliases {
		if m.owners[a] == primary {
			delete(m.owners, a)
		}
	}
	delete(m.owners, primary)
	delete(m.entries, primary)
	if i := slices.Index(m.order, primary); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	return true
}

// Clear removes all entries.
func (m *Map[V]) Clear() {
	clear(m.owners)
	clear(m.entries)
	m.order = nil
}

// dropAlias forgets that owner was reachable through alias.
func (m *Map[V]) dropAlias(owner, alias string) {
	if e, ok := m.entries[owner]; ok {
		e.aliases = slices.DeleteFunc(e.aliases, func(a string) bool { return a == alias })
	}
}
