package deps

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/mcph/mcph/internal/errors"
)

// requirementKind discriminates how a Requirement matches versions.
type requirementKind int

const (
	kindAny requirementKind = iota
	kindExact
	kindMinimum
	kindCompatible  // ^  same major
	kindApproximate // ~  same major.minor
	kindCustom      // raw constraint expression
)

// Requirement is a parsed version requirement. The zero value matches any
// version.
type Requirement struct {
	kind    requirementKind
	version *semver.Version
	custom  *semver.Constraints
	raw     string
}

// ParseRequirement parses a requirement expression. Supported forms:
//
//	""  *  any        match every version
//	=1.2.3  1.2.3     exact match
//	>=1.2.3           minimum version
//	^1.2.3            any version with the same major
//	~1.2.3            any patch level within the same major.minor
//
// Anything else is handed to the constraint parser as-is, so compound
// expressions like ">1.0.0, <2.0.0" work too.
func ParseRequirement(input string) (Requirement, error) {
	input = strings.TrimSpace(input)
	if input == "" || input == "*" || input == "any" {
		return Requirement{kind: kindAny, raw: "*"}, nil
	}

	parseVersionArg := func(kind requirementKind, prefix string) (Requirement, error) {
		v, err := ParseVersion(strings.TrimPrefix(input, prefix))
		if err != nil {
			return Requirement{}, errors.Wrapf(err, "parsing version requirement %q", input)
		}
		return Requirement{kind: kind, version: v, raw: input}, nil
	}

	switch {
	case strings.HasPrefix(input, ">="):
		return parseVersionArg(kindMinimum, ">=")
	case strings.HasPrefix(input, "^"):
		return parseVersionArg(kindCompatible, "^")
	case strings.HasPrefix(input, "~"):
		return parseVersionArg(kindApproximate, "~")
	case strings.HasPrefix(input, "="):
		return parseVersionArg(kindExact, "=")
	}

	if v, err := semver.StrictNewVersion(input); err == nil {
		return Requirement{kind: kindExact, version: v, raw: input}, nil
	}

	c, err := semver.NewConstraint(input)
	if err != nil {
		return Requirement{}, errors.Wrapf(err, "parsing version requirement %q", input)
	}
	return Requirement{kind: kindCustom, custom: c, raw: input}, nil
}

// Matches reports whether v satisfies the requirement.
func (r Requirement) Matches(v *semver.Version) bool {
	switch r.kind {
	case kindAny:
		return true
	case kindExact:
		return v.Equal(r.version)
	case kindMinimum:
		return !v.LessThan(r.version)
	case kindCompatible:
		return v.Major() == r.version.Major() && !v.LessThan(r.version)
	case kindApproximate:
		return v.Major() == r.version.Major() &&
			v.Minor() == r.version.Minor() &&
			!v.LessThan(r.version)
	case kindCustom:
		return r.custom.Check(v)
	}
	return false
}

// String returns the canonical form of the requirement.
func (r Requirement) String() string {
	if r.raw == "" {
		return "*"
	}
	return r.raw
}

// ParseVersion parses a version string, tolerating a leading "v" and
// surrounding whitespace.
func ParseVersion(input string) (*semver.Version, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(input), "v")
	v, err := semver.StrictNewVersion(cleaned)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing version %q", input)
	}
	return v, nil
}

// Satisfies reports whether the version string meets the requirement
// expression.
func Satisfies(version, requirement string) (bool, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return false, err
	}
	req, err := ParseRequirement(requirement)
	if err != nil {
		return false, err
	}
	return req.Matches(v), nil
}

// CompareVersions returns -1, 0, or 1 ordering two version strings.
func CompareVersions(a, b string) (int, error) {
	va, err := ParseVersion(a)
	if err != nil {
		return 0, err
	}
	vb, err := ParseVersion(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}
