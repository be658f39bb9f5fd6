package ini

// =========================
// List State Machine
// =========================

// ListState tracks where the parser is inside a list declaration. Parsing
// is line-oriented: the parser cannot look ahead, so the legality of each
// list token is judged purely against the state left behind by the
// previous one. The head of a list sets ListHead, the opening bracket sets
// ListOpen, every entry but the last sets ListOngoing, the last entry sets
// ListLast, and the closing bracket resets back to NoList.
type ListState uint8

const (
	NoList ListState = iota
	ListHead
	ListOpen
	ListOngoing
	ListLast
)

var listStateNames = [...]string{
	NoList:      "nolist",
	ListHead:    "head",
	ListOpen:    "open",
	ListOngoing: "ongoing",
	ListLast:    "last",
}

func (s ListState) String() string {
	if int(s) >= len(listStateNames) {
		return "unknown"
	}
	return listStateNames[s]
}

// listTransition judges whether moving from prev to next is a legal list
// state transition. It returns ErrNone on success and the specific error
// kind otherwise. An empty list (open bracket immediately followed by the
// closing one) is legal only when allowEmpty is set.
func listTransition(prev, next ListState, allowEmpty bool) ErrKind {
	switch prev {

	case NoList:
		if next == ListHead {
			return ErrNone
		} else if next == NoList {
			return ErrRedundantBracket
		}
		return ErrNoList

	case ListHead:
		if next == ListOpen {
			return ErrNone
		} else if next == ListHead {
			return ErrMalformedList
		}
		return ErrListNotStarted

	case ListOpen:
		if next == ListOngoing || next == ListLast {
			return ErrNone
		} else if next == ListHead {
			return ErrNested
		} else if next == ListOpen {
			return ErrRedundantBracket
		} else if next == NoList {
			if allowEmpty {
				return ErrNone
			}
			return ErrEmptyList
		}
		return ErrMalformedList

	case ListOngoing:
		if next == ListOngoing || next == ListLast {
			return ErrNone
		} else if next == NoList {
			return ErrRedundantComma
		}
		return ErrListNotEnded

	case ListLast:
		if next == NoList {
			return ErrNone
		} else if next == ListHead {
			return ErrNested
		} else if next == ListOpen {
			return ErrMalformedList
		}
		return ErrMissingComma
	}

	return ErrNone
}
