package ini

// =========================
// List Tokenizer
// =========================

// nextListToken carves the next list token out of line and returns it
// together with the remainder of the line. ok is false once the line is
// exhausted. A single physical line may hold an entire inline list
//
//	mylist = [ a, b, c ]
//
// so the driver calls this in a loop, re-classifying each token with the
// single-token classifiers. A token is one of: a list head ("key ="), a
// lone bracket, or a list item with or without its trailing comma. A
// stretch the tokenizer cannot attribute to any of these is returned
// whole, for the driver to reject.
func nextListToken(line string, open, close byte) (tok, rest string, ok bool) {
	line = Normalize(line)
	if line == "" {
		return "", "", false
	}

	// maximal run of allowed characters, then any gap of whitespace
	i := allowedRun(line)
	j := i
	for j < len(line) && isSpace(line[j]) {
		j++
	}

	switch {
	// equals sign, opening bracket, or comma closes the token
	case j < len(line) && (line[j] == '=' || line[j] == open || line[j] == ','):
		return line[:j+1], line[j+1:], true

	// another item begins; the current token ends before it
	case j < len(line) && isAllowed(line[j], false):
		return line[:j], line[j:], true

	// closing bracket: its own token unless an item precedes it
	case j < len(line) && line[j] == close:
		if isAllowed(line[0], false) {
			return line[:j], line[j:], true
		}
		return line[:j+1], line[j+1:], true

	// end of line, or a stretch no classifier will recognize
	default:
		return line, "", true
	}
}
