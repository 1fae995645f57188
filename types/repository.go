package types

import "strings"

// Repository is the insertion-ordered, deduplicated catalogue of type
// descriptors described in spec.md §4.4. It pre-populates exactly one
// descriptor per built-in kind at construction, and owns every
// descriptor it subsequently admits for the lifetime of one parse.
type Repository struct {
	// ordered holds every descriptor in insertion order. Iteration over
	// this slice is the only source of truth for output ordering —
	// spec.md §5 forbids iterating an unordered container for anything
	// that feeds the hint stream or the repository's own enumeration.
	ordered []*Type
	byName  map[string]*Type
}

// NewRepository constructs a Repository pre-populated with the built-in
// types, each discoverable both by kind and by its IDL keyword.
func NewRepository() *Repository {
	r := &Repository{byName: make(map[string]*Type)}
	for _, k := range AllBuiltinKinds {
		t := &Type{Kind: k}
		r.ordered = append(r.ordered, t)
	}
	return r
}

// Add appends t to the repository, taking ownership of it. The caller
// is responsible for having already checked name uniqueness (spec.md
// §4.4's "must not deduplicate user types silently"); Add itself never
// rejects a call.
func (r *Repository) Add(t *Type) {
	r.ordered = append(r.ordered, t)
	if t.Name != "" {
		r.byName[t.Name] = t
	}
}

// Find resolves name against the repository: built-in IDL keywords
// resolve to their canonical descriptor, and user type names resolve by
// exact fully qualified match. Returns nil if nothing matches.
func (r *Repository) Find(name string) *Type {
	if kind, ok := BuiltinKeyword[name]; ok {
		return r.findBuiltin(kind)
	}
	if t, ok := r.byName[name]; ok {
		return t
	}
	return nil
}

func (r *Repository) findBuiltin(kind Kind) *Type {
	for _, t := range r.ordered {
		if t.Kind == kind && t.Name == "" {
			return t
		}
	}
	return nil
}

// All returns every descriptor currently held, in insertion order. The
// returned slice is owned by the caller but its elements alias the
// repository's own Type values.
func (r *Repository) All() []*Type {
	out := make([]*Type, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// HasName reports whether name is already bound to some descriptor,
// including built-in keywords — used by the parser's duplicate-
// definition check (spec.md §4.5's "Duplicate-definition check").
func (r *Repository) HasName(name string) bool {
	return r.Find(name) != nil
}

// QualifiedName joins namespace segments and a leaf identifier into a
// fully qualified dotted name, the form every user type is stored
// under (spec.md §3).
func QualifiedName(namespace []string, name string) string {
	if len(namespace) == 0 {
		return name
	}
	return strings.Join(namespace, ".") + "." + name
}
