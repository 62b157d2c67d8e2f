package importorder

// Group represents a section of the sorted import block
type Group int

const (
	BuiltinGroup Group = iota
	ThirdPartyGroup
	AliasGroup
	ScopeGroup
	RelativeGroup
	PathGroup
	StylesheetGroup
)

var groupNames = map[Group]string{
	BuiltinGroup:    "builtin",
	ThirdPartyGroup: "third-party",
	AliasGroup:      "alias",
	ScopeGroup:      "scope",
	RelativeGroup:   "relative",
	PathGroup:       "path",
	StylesheetGroup: "stylesheet",
}

func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return "unknown"
}

// Section is a group together with the patterns that select it
type Section struct {
	Group    Group
	Patterns []string
	// Separated reports whether an empty separator follows the section
	Separated bool
}
