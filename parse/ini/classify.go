package ini

import "strings"

// =========================
// Line Classifiers
// =========================
//
// Each classifier is a total function: it either recognizes the line as
// its kind and returns the extracted substrings, or it reports false. A
// line recognized by no classifier is escalated to ErrMalformed by the
// parse driver, never by the classifiers themselves. Every classifier
// normalizes its input first, so they can be called on raw lines too.

// isSpace matches ASCII whitespace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isComment reports whether c starts a comment.
func isComment(c byte) bool {
	return c == '#' || c == ';'
}

// isAllowed reports whether c may appear in a key, section name or list
// value. Whitespace is acceptable only where wsAllowed is set, i.e. inside
// record values; it must never appear in a section name or key.
func isAllowed(c byte, wsAllowed bool) bool {
	switch c {
	case '.', '-', '_', '@', '/', '*', '?', '%', '&':
		return true
	}
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
		return true
	}
	return isSpace(c) && wsAllowed
}

// allowedRun returns the length of the maximal leading run of allowed
// non-whitespace characters in s.
func allowedRun(s string) int {
	i := 0
	for i < len(s) && isAllowed(s[i], false) {
		i++
	}
	return i
}

// trimLeftSpace strips leading ASCII whitespace.
func trimLeftSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// Normalize strips everything after (and including) the first comment
// symbol ('#' or ';') and trims leading and trailing whitespace.
// Idempotent: normalizing an already-normalized line is a no-op. An
// all-whitespace or comment-only line normalizes to the empty string.
func Normalize(line string) string {
	if i := strings.IndexAny(line, "#;"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// IsSection reports whether the line is a section title of the form
//
//	[section.subsection.subsubsection]
//
// and returns the extracted name. Whitespace between the brackets and the
// name is tolerated; whitespace or disallowed characters inside the name,
// an empty name, or trailing garbage after ']' all reject the line.
func IsSection(line string) (name string, ok bool) {
	line = Normalize(line)

	// first char must be the opening bracket
	if line == "" || line[0] != '[' {
		return "", false
	}
	line = trimLeftSpace(line[1:])

	// the name must be a non-empty run of allowed characters
	n := allowedRun(line)
	if n == 0 {
		return "", false
	}
	name = line[:n]
	line = line[n:]

	// the char right after the name must be whitespace or ']'
	if line == "" || (!isSpace(line[0]) && line[0] != ']') {
		return "", false
	}
	line = trimLeftSpace(line)
	if line == "" || line[0] != ']' {
		return "", false
	}

	// nothing may follow the closing bracket
	if line[1:] != "" {
		return "", false
	}
	return name, true
}

// IsRecord reports whether the line is a key=value entry and returns the
// key and value. The '=' sign must not be part of either the key or the
// value; it can only be the single separator between them. The value may
// contain embedded whitespace, the key may not.
func IsRecord(line string) (key, value string, ok bool) {
	line = Normalize(line)

	n := allowedRun(line)
	if n == 0 {
		return "", "", false
	}
	key = line[:n]
	line = line[n:]
	if line == "" {
		return "", "", false
	}

	// intervening whitespace around '=' is allowed
	line = trimLeftSpace(line)
	if line == "" || line[0] != '=' {
		return "", "", false
	}
	line = trimLeftSpace(line[1:])
	if line == "" || !isAllowed(line[0], false) {
		return "", "", false
	}

	// value runs to end of line; whitespace is legal inside it
	i := 0
	for i < len(line) && isAllowed(line[i], true) {
		i++
	}
	if i != len(line) {
		return "", "", false
	}
	return key, line, true
}

// IsListHead reports whether the line (or token) declares the head of a
// list, i.e. has the form
//
//	listTitle =
//
// with nothing after the '=', and returns the extracted key.
func IsListHead(line string) (key string, ok bool) {
	line = Normalize(line)

	n := allowedRun(line)
	if n == 0 {
		return "", false
	}
	key = line[:n]
	line = line[n:]
	if line == "" {
		return "", false
	}

	line = trimLeftSpace(line)
	if line == "" || line[0] != '=' {
		return "", false
	}
	if line[1:] != "" {
		return "", false
	}
	return key, true
}

// IsListEntry reports whether the token is a list entry and returns its
// value. An entry is a run of allowed characters optionally followed by a
// single comma; a comma-terminated entry is a regular item, one without a
// trailing comma is the final item of its list (last=true). Content after
// the comma, or a duplicated comma, rejects the token.
func IsListEntry(tok string) (value string, last, ok bool) {
	tok = Normalize(tok)

	n := allowedRun(tok)
	if n == 0 {
		return "", false, false
	}
	value = tok[:n]
	tok = trimLeftSpace(tok[n:])

	switch {
	case tok == "":
		return value, true, true
	case tok[0] == ',':
		if tok[1:] != "" {
			return "", false, false
		}
		return value, false, true
	}
	return "", false, false
}

// IsListStart reports whether the line is exactly the single opening
// bracket that begins a list body.
func IsListStart(line string, open byte) bool {
	line = Normalize(line)
	return len(line) == 1 && line[0] == open
}

// IsListEnd reports whether the line is exactly the single closing
// bracket that terminates a list.
func IsListEnd(line string, close byte) bool {
	line = Normalize(line)
	return len(line) == 1 && line[0] == close
}
