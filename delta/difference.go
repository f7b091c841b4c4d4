// Package delta implements the compatibility classifier and semantic
// version engine of spec.md §4.5 (component C5).
package delta

// Kind identifies which of the five tagged-union Difference variants a
// value holds.
type Kind int

const (
	KindAdd Kind = iota
	KindRemove
	KindChange
	KindCompatChange
	KindDeprecate
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "Add"
	case KindRemove:
		return "Remove"
	case KindChange:
		return "Change"
	case KindCompatChange:
		return "CompatChange"
	case KindDeprecate:
		return "Deprecate"
	default:
		return "Unknown"
	}
}

// EntityKind distinguishes the granularity a Difference was found at.
type EntityKind int

const (
	EntityClass EntityKind = iota
	EntityMethod
	EntityField
)

func (e EntityKind) ordinal() int { return int(e) }

// Difference is the tagged union spec.md §4.5 defines. Exactly one of
// OldInfo/NewInfo is nil for Add/Remove; both are set for
// Change/CompatChange/Deprecate.
type Difference struct {
	Kind     Kind
	Entity   EntityKind
	ClassID  string
	Name     string // member name (or class id again, for EntityClass) used for sort stability
	OldInfo  interface{}
	NewInfo  interface{}
}

// byOrder implements the deterministic ordering spec.md §4.5 requires:
// (classId, kindOrdinal, name). Entity only breaks remaining ties, since the
// spec's triple has no room for it and a field and a method can otherwise
// share a name.
type byOrder []Difference

func (b byOrder) Len() int      { return len(b) }
func (b byOrder) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b byOrder) Less(i, j int) bool {
	if b[i].ClassID != b[j].ClassID {
		return b[i].ClassID < b[j].ClassID
	}
	if b[i].Kind != b[j].Kind {
		return b[i].Kind < b[j].Kind
	}
	if b[i].Name != b[j].Name {
		return b[i].Name < b[j].Name
	}
	return b[i].Entity.ordinal() < b[j].Entity.ordinal()
}
