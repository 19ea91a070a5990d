package domain

import "strings"

// RuntimePackage is the distribution name of the stack runtime that every
// built artifact must carry. The resolver guarantees it is present in every
// resolved dependency set, either as a registry specifier or as an editable
// reference to a local source tree.
const RuntimePackage = "stackforge"

const editablePrefix = "-e "

// Specifier names an installable package, optionally version-qualified
// (e.g. "httpx", "uvicorn==0.29.0", "aiosqlite>=0.19"). An editable specifier
// references a local source tree instead of a registry distribution and is
// written in installer syntax as "-e <path>".
type Specifier string

// EditableSpecifier returns a specifier referencing the source tree at path.
func EditableSpecifier(path string) Specifier {
	return Specifier(editablePrefix + path)
}

// String returns the specifier in installer syntax.
func (s Specifier) String() string {
	return string(s)
}

// IsEditable reports whether the specifier references a local source tree.
func (s Specifier) IsEditable() bool {
	return strings.HasPrefix(string(s), editablePrefix)
}

// EditablePath returns the local source path of an editable specifier, or ""
// for registry specifiers.
func (s Specifier) EditablePath() string {
	if !s.IsEditable() {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(string(s), editablePrefix))
}

// Name returns the distribution name with version constraints and extras
// stripped ("uvicorn==0.29.0" -> "uvicorn", "httpx[http2]" -> "httpx").
// Editable specifiers have no distribution name and return "".
func (s Specifier) Name() string {
	if s.IsEditable() {
		return ""
	}
	raw := strings.TrimSpace(string(s))
	if i := strings.IndexAny(raw, "<>=!~[; "); i >= 0 {
		return raw[:i]
	}
	return raw
}

// ExactPin returns the version of an exact "==" pin and true, or "" and false
// for unpinned or range-constrained specifiers.
func (s Specifier) ExactPin() (string, bool) {
	raw := strings.TrimSpace(string(s))
	i := strings.Index(raw, "==")
	if i <= 0 {
		return "", false
	}
	// Reject operators that merely contain "==" (">=" cannot, but "!=" style
	// markers written as "x!==y" would; guard on the preceding byte).
	if strings.ContainsAny(raw[i-1:i], "<>!~=") {
		return "", false
	}
	version := strings.TrimSpace(raw[i+2:])
	if version == "" {
		return "", false
	}
	return version, true
}
