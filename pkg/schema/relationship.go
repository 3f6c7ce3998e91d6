package schema

import "fmt"

// Relationship classifies the cardinality of a directed edge between two
// schema entities.
type Relationship int

const (
	// OneToOne relates exactly one source to exactly one target.
	OneToOne Relationship = iota
	// OneToMany relates one source to any number of targets.
	OneToMany
	// ManyToOne relates any number of sources to one target.
	ManyToOne
	// ManyToMany places no cardinality bound on either side.
	ManyToMany
)

// Symbolic names used in documents and DOT labels.
const (
	relOneToOne   = "one_to_one"
	relOneToMany  = "one_to_many"
	relManyToOne  = "many_to_one"
	relManyToMany = "many_to_many"
)

// Invert returns the relationship as seen when traversing the edge backward.
// It is a total involution: OneToMany and ManyToOne map to each other, the
// symmetric cardinalities are fixed points, and Invert(Invert(r)) == r.
func (r Relationship) Invert() Relationship {
	switch r {
	case OneToMany:
		return ManyToOne
	case ManyToOne:
		return OneToMany
	default:
		return r
	}
}

// String returns the symbolic name ("one_to_one", "one_to_many", ...).
func (r Relationship) String() string {
	switch r {
	case OneToOne:
		return relOneToOne
	case OneToMany:
		return relOneToMany
	case ManyToOne:
		return relManyToOne
	case ManyToMany:
		return relManyToMany
	default:
		return fmt.Sprintf("relationship(%d)", int(r))
	}
}

// ParseRelationship converts a symbolic name back to a Relationship.
// Returns an error for names that don't denote one of the four cardinalities.
func ParseRelationship(s string) (Relationship, error) {
	switch s {
	case relOneToOne:
		return OneToOne, nil
	case relOneToMany:
		return OneToMany, nil
	case relManyToOne:
		return ManyToOne, nil
	case relManyToMany:
		return ManyToMany, nil
	default:
		return 0, fmt.Errorf("unknown relationship %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so relationships serialize
// symbolically in JSON and TOML documents.
func (r Relationship) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Relationship) UnmarshalText(text []byte) error {
	parsed, err := ParseRelationship(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
