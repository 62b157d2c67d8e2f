// Package importorder builds the importOrder pattern list read by
// @ianvs/prettier-plugin-sort-imports.
//
// Imports are matched top to bottom against the patterns and land in the
// first group that matches. An empty string between patterns starts a new
// blank-line separated section.
package importorder

import "strings"

const (
	BuiltinModules     = "<BUILT_IN_MODULES>"
	ThirdPartyModules  = "<THIRD_PARTY_MODULES>"
	RelativeImports    = "^[.]"
	NonStylesheetPaths = "^(?!.*[.]css$)[./].*$"
	Stylesheets        = ".css$"
	Separator          = ""
)

// AliasPattern matches any module path starting with alias
func AliasPattern(alias string) string {
	return "^" + alias + "(.*)"
}

// ScopePattern matches module paths under the @scope/ namespace
func ScopePattern(scope string) string {
	return "^@" + scope + "(/.*)"
}

// Filter drops empty and whitespace-only entries, keeping input order.
// The result never aliases values.
func Filter(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Sections returns the import groups in emission order. Alias and scope
// sections are omitted when they have no entries. A disabled ordering yields
// no sections at all.
func Sections(enabled bool, scopes, aliases []string) []Section {
	if !enabled {
		return []Section{}
	}

	sections := []Section{
		{Group: BuiltinGroup, Patterns: []string{BuiltinModules}, Separated: true},
		{Group: ThirdPartyGroup, Patterns: []string{ThirdPartyModules}, Separated: true},
	}

	if aliasPatterns := mapPatterns(Filter(aliases), AliasPattern); len(aliasPatterns) > 0 {
		sections = append(sections, Section{Group: AliasGroup, Patterns: aliasPatterns, Separated: true})
	}
	if scopePatterns := mapPatterns(Filter(scopes), ScopePattern); len(scopePatterns) > 0 {
		sections = append(sections, Section{Group: ScopeGroup, Patterns: scopePatterns, Separated: true})
	}

	// Non-stylesheet paths and stylesheets share one block so styles are
	// imported last without a blank line in between.
	return append(sections,
		Section{Group: RelativeGroup, Patterns: []string{RelativeImports}, Separated: true},
		Section{Group: PathGroup, Patterns: []string{NonStylesheetPaths}},
		Section{Group: StylesheetGroup, Patterns: []string{Stylesheets}},
	)
}

// Flatten turns sections into the flat pattern list
func Flatten(sections []Section) []string {
	patterns := []string{}
	for _, s := range sections {
		patterns = append(patterns, s.Patterns...)
		if s.Separated {
			patterns = append(patterns, Separator)
		}
	}
	return patterns
}

// Patterns returns the importOrder list for the given scopes and aliases,
// or an empty list when ordering is disabled
func Patterns(enabled bool, scopes, aliases []string) []string {
	return Flatten(Sections(enabled, scopes, aliases))
}

func mapPatterns(values []string, pattern func(string) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, pattern(v))
	}
	return out
}
