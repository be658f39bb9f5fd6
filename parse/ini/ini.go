package ini

// Package ini implements a line-oriented, callback-driven .ini parser
// with support for sections, nested section namespaces, and inline or
// multi-line lists.
//
// Scope:
// - Section headers, key=value records, bracketed comma-separated lists
// - One callback invocation per record / list entry, in input order
// - Exact, line-numbered diagnostics with typed error kinds
// - Configurable bracket pair, namespace delimiter, leniency flags
//
// Non-goals (by design):
// - Arbitrary-depth grammars or schema validation
// - Type coercion (all values are opaque strings)
// - Incremental or concurrent parsing of a single input
//
// The parser holds no state between runs; a Parser value is safe to reuse
// sequentially, and distinct Parser values are independent.

import (
	"bufio"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// MaxLineLen is the maximum acceptable raw line length, in bytes. Longer
// lines abort the parse with ErrTooLong.
const MaxLineLen = 1024

// =========================
// Configuration
// =========================

// Config customizes parsing behavior. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// AllowGlobalRecords permits key=value entries that precede any
	// section declaration. Off by default: such entries are ErrNoSection.
	AllowGlobalRecords bool

	// AllowEmptyLists permits lists without any entries. Off by default:
	// an empty list is ErrEmptyList. Empty lists never trigger the
	// callback either way.
	AllowEmptyLists bool

	// Delim is the namespace delimiter in section titles, e.g. the dots
	// in [sect.subsect.subsubsect]. Must be exactly one character. The
	// classifier treats it as a plain content character; only consumers
	// such as MapBuilder split on it.
	Delim string

	// Brackets holds the list opening and closing characters. The two
	// must differ and neither may be a legal content character.
	Brackets [2]byte
}

// DefaultConfig returns the default parser configuration: strict mode,
// '.' namespace delimiter, square-bracket lists.
func DefaultConfig() Config {
	return Config{
		Delim:    ".",
		Brackets: [2]byte{'[', ']'},
	}
}

// Validate checks the configuration. All failures wrap ErrConfig.
func (c Config) Validate() error {
	if len(c.Delim) != 1 {
		return errors.Wrapf(ErrConfig, "delimiter %q must be a single character", c.Delim)
	}
	open, close := c.Brackets[0], c.Brackets[1]
	if open == close {
		return errors.Wrapf(ErrConfig, "list brackets must be two distinct characters, got %q and %q", open, close)
	}
	for _, b := range [...]byte{open, close} {
		if isAllowed(b, true) || b == '=' || b == ',' || isComment(b) {
			return errors.Wrapf(ErrConfig, "list bracket %q collides with the content character set", b)
		}
	}
	return nil
}

// =========================
// Public API
// =========================

// Callback is invoked for every record and every list entry parsed.
//
// For a record, list is NoList and key/value are the record's pair. For a
// list entry, list is ListOngoing or ListLast, key is the list's name and
// value the entry. ln is the 1-based line number. The strings must not be
// assumed to outlive the call.
//
// A return value of 0 continues the parse; any other value stops it
// immediately and is propagated unchanged as the parse result.
type Callback func(ln uint32, list ListState, section, key, value string) int

// Parser drives line classification and list state tracking over a
// stream of lines.
type Parser struct {
	cfg Config
	log logr.Logger
}

// New returns a Parser for the given configuration, or an error wrapping
// ErrConfig if the configuration is invalid.
func New(cfg Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Parser{cfg: cfg, log: logr.Discard()}, nil
}

// WithLogger configures a trace logger and returns the parser.
func (p *Parser) WithLogger(log logr.Logger) *Parser {
	p.log = log
	return p
}

// ParseFile parses the .ini config file at path. See Parse.
func (p *Parser) ParseFile(path string, cb Callback) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open config file %q", path)
	}
	defer f.Close()
	return p.Parse(f, cb)
}

// Parse reads r line by line and invokes cb for every record and list
// entry. Empty lines and comment-only lines are skipped; section titles,
// list heads and lone brackets update parser state silently.
//
// On a fatal parse error the returned error is a *ParseError carrying the
// error kind and the offending 1-based line number; such errors are not
// recoverable and the input must be fixed instead. If cb returns nonzero
// the parse stops at once and that value is returned with a nil error.
// Running out of input is a clean end, not an error.
func (p *Parser) Parse(r io.Reader, cb Callback) (int, error) {
	d := &driver{
		cfg: p.cfg,
		log: p.log,
		cb:  cb,
	}
	return d.run(r)
}

// =========================
// Parse Driver
// =========================

// driver holds the context of one in-flight parse. It is created per
// Parse call and discarded when parsing ends.
type driver struct {
	cfg Config
	log logr.Logger
	cb  Callback

	ln      uint32    // line number, 1-based
	section string    // current section title
	key     string    // current list name while a list is open
	list    ListState // to assess list state transitions
}

func (d *driver) fail(kind ErrKind) error {
	return &ParseError{Line: d.ln, Kind: kind}
}

func (d *driver) run(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)

	for sc.Scan() {
		raw := sc.Text()
		d.ln++
		d.log.V(2).Info("read line", "line", d.ln, "text", raw)

		if len(raw) > MaxLineLen {
			return 0, d.fail(ErrTooLong)
		}

		line := Normalize(raw)
		if line == "" { // empty or comment-only
			continue
		}

		// section title line
		if name, ok := IsSection(line); ok {
			d.log.V(2).Info("section title", "line", d.ln, "section", name)
			if d.list != NoList {
				return 0, d.fail(ErrNested)
			}
			d.section = name
			continue
		}

		// key=value line
		if k, v, ok := IsRecord(line); ok {
			d.log.V(2).Info("record", "line", d.ln, "key", k)
			if d.section == "" && !d.cfg.AllowGlobalRecords {
				return 0, d.fail(ErrNoSection)
			}
			if d.list != NoList {
				return 0, d.fail(ErrNested)
			}
			if rc := d.cb(d.ln, NoList, d.section, k, v); rc != 0 {
				return rc, nil
			}
			continue
		}

		// else, try list token parsing
		code, err := d.parseListTokens(line)
		if err != nil || code != 0 {
			return code, err
		}
	}

	if err := sc.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return 0, &ParseError{Line: d.ln + 1, Kind: ErrTooLong}
		}
		return 0, errors.Wrap(err, "failed to read line")
	}
	return 0, nil
}

// advance validates the transition from the current list state to next
// and applies it.
func (d *driver) advance(next ListState) error {
	d.log.V(3).Info("list state transition", "line", d.ln, "prev", d.list, "next", next)
	if kind := listTransition(d.list, next, d.cfg.AllowEmptyLists); kind != ErrNone {
		return d.fail(kind)
	}
	d.list = next
	return nil
}

// parseListTokens splits one physical line into list tokens, validates
// each token's state transition, and invokes the callback for actual
// entries. Head, bracket and terminator tokens update state silently.
func (d *driver) parseListTokens(line string) (int, error) {
	open, close := d.cfg.Brackets[0], d.cfg.Brackets[1]

	rest := line
	for {
		tok, next, ok := nextListToken(rest, open, close)
		if !ok {
			break
		}
		rest = next
		d.log.V(3).Info("list token", "line", d.ln, "token", tok)

		// list head
		if k, ok := IsListHead(tok); ok {
			if err := d.advance(ListHead); err != nil {
				return 0, err
			}
			d.key = k
			continue
		}

		// opening bracket
		if IsListStart(tok, open) {
			if err := d.advance(ListOpen); err != nil {
				return 0, err
			}
			continue
		}

		// list entry
		if v, last, ok := IsListEntry(tok); ok {
			state := ListOngoing
			if last {
				state = ListLast
			}
			if err := d.advance(state); err != nil {
				return 0, err
			}
			if rc := d.cb(d.ln, d.list, d.section, d.key, v); rc != 0 {
				return rc, nil
			}
			continue
		}

		// closing bracket
		if IsListEnd(tok, close) {
			if err := d.advance(NoList); err != nil {
				return 0, err
			}
			continue
		}

		// a lone comma carries no entry: the comma is redundant
		if Normalize(tok) == "," {
			return 0, d.fail(ErrRedundantComma)
		}

		// not any kind of token recognized as valid
		return 0, d.fail(ErrMalformed)
	}

	return 0, nil
}
