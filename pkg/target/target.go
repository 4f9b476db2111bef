package target

// Target identifies a deploy environment
type Target int

const (
	Unknown Target = iota
	Development
	Staging
	Production
)

var names = map[Target]string{
	Development: "development",
	Staging:     "staging",
	Production:  "production",
}

// Parse maps a deploy target label to a Target.
// Matching is exact and case-sensitive; anything else is Unknown.
func Parse(name string) Target {
	for t, n := range names {
		if n == name {
			return t
		}
	}
	return Unknown
}

// All returns the known targets in declaration order
func All() []Target {
	return []Target{Development, Staging, Production}
}

// Known reports whether t is one of the recognized targets
func (t Target) Known() bool {
	_, ok := names[t]
	return ok
}

func (t Target) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "unknown"
}
