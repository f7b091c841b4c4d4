package delta

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bradleyfalzon/vmcfdiff/vmcferr"
)

// Version is (major, minor, patch, sep?, preRelease?) per spec.md §6's
// grammar: MAJOR.MINOR.PATCH(<sep><preRelease>)?.
type Version struct {
	Major, Minor, Patch int
	Sep                 string // delimiter before PreRelease, e.g. "-"; "" if PreRelease is absent
	PreRelease          string // "" means no pre-release
}

// IsDevelopment reports whether this is a pre-1.0 version (spec.md §4.5).
func (v *Version) IsDevelopment() bool { return v.Major == 0 }

func (v *Version) hasPreRelease() bool { return v.PreRelease != "" }

// Compare returns -1, 0 or 1 comparing v to o lexicographically on
// (major, minor, patch), with a pre-release strictly less than no
// pre-release at an equal triple, and pre-release strings compared
// lexicographically against each other (spec.md §4.5, §8 scenario 6).
func (v *Version) Compare(o *Version) int {
	if c := compareInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, o.Patch); c != 0 {
		return c
	}
	switch {
	case v.hasPreRelease() && !o.hasPreRelease():
		return -1
	case !v.hasPreRelease() && o.hasPreRelease():
		return 1
	case !v.hasPreRelease() && !o.hasPreRelease():
		return 0
	default:
		return strings.Compare(v.PreRelease, o.PreRelease)
	}
}

func (v *Version) GreaterThan(o *Version) bool { return v.Compare(o) > 0 }
func (v *Version) LessThan(o *Version) bool    { return v.Compare(o) < 0 }
func (v *Version) Equal(o *Version) bool       { return v.Compare(o) == 0 }

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (v *Version) String() string {
	base := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease == "" {
		return base
	}
	sep := v.Sep
	if sep == "" {
		sep = "-"
	}
	return base + sep + v.PreRelease
}

// MarshalYAML renders a Version as its plain string form, so a baseline
// file's version field reads as a scalar like "1.2.3-rc1" rather than a
// nested mapping.
func (v *Version) MarshalYAML() (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return v.String(), nil
}

// UnmarshalYAML parses a scalar version string using "-" as the
// pre-release separator, matching internal/config's default
// version_separator.
func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseVersion(s, "-")
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

// ParseVersion parses spec.md §6's grammar: MAJOR.MINOR.PATCH(<sep><preRelease>)?.
// sep is the single user-provided delimiter to look for before a
// pre-release (commonly "-"); pass "-" when the caller has no stronger
// preference.
func ParseVersion(s, sep string) (*Version, error) {
	core := s
	var pre string
	if sep != "" {
		if idx := strings.Index(s, sep); idx >= 0 {
			core = s[:idx]
			pre = s[idx+len(sep):]
		}
	}
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return nil, invalidArgument("ParseVersion", fmt.Sprintf("malformed version %q", s))
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, invalidArgument("ParseVersion", fmt.Sprintf("malformed version component %q in %q", p, s))
		}
		nums[i] = n
	}
	v := &Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}
	if pre != "" {
		v.Sep = sep
		v.PreRelease = pre
	}
	return v, nil
}

// InferNextVersion bumps baseline according to category, per spec.md §4.5
// "Inference".
func InferNextVersion(baseline *Version, category Category) (*Version, error) {
	if baseline == nil {
		return nil, invalidArgument("InferNextVersion", "baseline must not be nil")
	}
	if baseline.IsDevelopment() {
		return nil, invalidArgument("InferNextVersion", "baseline is a development (0.x) version and cannot be inferred from")
	}
	switch category {
	case NonBackwardCompatible:
		return &Version{Major: baseline.Major + 1}, nil
	case BackwardCompatibleUser:
		return &Version{Major: baseline.Major, Minor: baseline.Minor + 1}, nil
	case BackwardCompatibleImplementer:
		return &Version{Major: baseline.Major, Minor: baseline.Minor, Patch: baseline.Patch + 1}, nil
	default:
		return nil, invalidArgument("InferNextVersion", fmt.Sprintf("unknown category %v", category))
	}
}

// minimumAcceptable computes the floor a proposed next version must meet or
// exceed for Delta.Validate. Ordinarily this is just InferNextVersion, but a
// previous that is itself an unreleased pre-release of the target triple
// (e.g. 1.1.0-rc1) has not yet consumed its patch slot under
// BackwardCompatibleImplementer: the next acceptable candidate is anything
// greater than previous, not a further patch bump past it (spec.md §8
// scenario 6: validate(1.1.0-rc1, 1.1.0-rc2) with an empty Delta holds).
func minimumAcceptable(previous *Version, category Category) (*Version, error) {
	if category == BackwardCompatibleImplementer && previous.hasPreRelease() {
		return previous, nil
	}
	return InferNextVersion(previous, category)
}

func invalidArgument(op, msg string) *vmcferr.Error {
	return vmcferr.Invalid(op, fmt.Errorf("%s", msg))
}
