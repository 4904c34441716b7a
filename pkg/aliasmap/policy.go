package aliasmap

import "fmt"

// ConflictPolicy decides what Set does when a name is already owned by another entry.
type ConflictPolicy int

const (
	// LastWriterWins lets a new entry take over aliases of other entries, and
	// lets a new primary name take over another entry's alias. The previous
	// owner's alias list is updated accordingly. A name that is the primary
	// name of another entry can never be claimed as an alias.
	LastWriterWins ConflictPolicy = iota

	// RejectConflicts makes Set fail with ErrNameConflict whenever one of the
	// key's names belongs to a different entry.
	RejectConflicts
)

func (p ConflictPolicy) String() string {
	switch p {
	case LastWriterWins:
		return "last-writer-wins"
	case RejectConflicts:
		return "reject-conflicts"
	default:
		return fmt.Sprintf("ConflictPolicy(%d)", int(p))
	}
}

// Option configures a Map created by New.
type Option func(*settings)

type settings struct {
	policy ConflictPolicy
}

// WithConflictPolicy sets the policy used for names shared between entries.
func WithConflictPolicy(p ConflictPolicy) Option {
	return func(s *settings) {
		s.policy = p
	}
}

// Policy returns the map's ConflictPolicy.
func (m *Map[V]) Policy() ConflictPolicy {
	return m.policy
}

// checkConflicts validates names (primary first) against the current owners.
func (m *Map[V]) checkConflicts(names []string) error {
	primary := names[0]
	for i, n := range names {
		owner, ok := m.owners[n]
		if !ok || owner == primary {
			continue
		}
		if i > 0 && owner == n {
			return fmt.Errorf("%w: alias %q of %q is the primary name of another entry", ErrNameConflict, n, primary)
		}
		if m.policy == RejectConflicts {
			return fmt.Errorf("%w: %q is already registered by %q", ErrNameConflict, n, owner)
		}
	}
	return nil
}
