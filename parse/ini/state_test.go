package ini

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allListStates = []ListState{NoList, ListHead, ListOpen, ListOngoing, ListLast}

// expected outcome of every (prev, next) pair with empty lists disallowed
var transitionTable = map[ListState]map[ListState]ErrKind{
	NoList: {
		NoList:      ErrRedundantBracket,
		ListHead:    ErrNone,
		ListOpen:    ErrNoList,
		ListOngoing: ErrNoList,
		ListLast:    ErrNoList,
	},
	ListHead: {
		NoList:      ErrListNotStarted,
		ListHead:    ErrMalformedList,
		ListOpen:    ErrNone,
		ListOngoing: ErrListNotStarted,
		ListLast:    ErrListNotStarted,
	},
	ListOpen: {
		NoList:      ErrEmptyList,
		ListHead:    ErrNested,
		ListOpen:    ErrRedundantBracket,
		ListOngoing: ErrNone,
		ListLast:    ErrNone,
	},
	ListOngoing: {
		NoList:      ErrRedundantComma,
		ListHead:    ErrListNotEnded,
		ListOpen:    ErrListNotEnded,
		ListOngoing: ErrNone,
		ListLast:    ErrNone,
	},
	ListLast: {
		NoList:      ErrNone,
		ListHead:    ErrNested,
		ListOpen:    ErrMalformedList,
		ListOngoing: ErrMissingComma,
		ListLast:    ErrMissingComma,
	},
}

func TestListTransitionTable(t *testing.T) {
	for _, prev := range allListStates {
		for _, next := range allListStates {
			want := transitionTable[prev][next]
			got := listTransition(prev, next, false)
			assert.Equal(t, want, got, "transition %s -> %s", prev, next)
		}
	}
}

func TestListTransitionAllowEmpty(t *testing.T) {
	// the open -> nolist transition is the only one the flag affects
	for _, prev := range allListStates {
		for _, next := range allListStates {
			want := transitionTable[prev][next]
			if prev == ListOpen && next == NoList {
				want = ErrNone
			}
			got := listTransition(prev, next, true)
			assert.Equal(t, want, got, "transition %s -> %s (empty lists allowed)", prev, next)
		}
	}
}

func TestErrKindStrings(t *testing.T) {
	for k := ErrNone; k < errSentinel; k++ {
		assert.NotEmpty(t, k.String(), "kind %d has no message", uint8(k))
	}
	assert.Equal(t, "entry without section", ErrNoSection.String())
	assert.Equal(t, fmt.Sprintf("line length exceeds maximum acceptable length(%d)", MaxLineLen), ErrTooLong.String())

	// out-of-range kinds must not index the table
	assert.Contains(t, errSentinel.String(), "invalid error kind")
	assert.Contains(t, ErrKind(200).String(), "invalid error kind")
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Line: 7, Kind: ErrRedundantComma}
	assert.Equal(t, "ini:7: malformed list entry (redundant comma?)", err.Error())
}

func TestListStateString(t *testing.T) {
	assert.Equal(t, "nolist", NoList.String())
	assert.Equal(t, "head", ListHead.String())
	assert.Equal(t, "last", ListLast.String())
	assert.Equal(t, "unknown", ListState(9).String())
}
