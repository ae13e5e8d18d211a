package section

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/magicc/encoding"
	"github.com/arloliu/magicc/errs"
)

// Entry is one flattened key/value pair of a configuration block.
type Entry struct {
	Key   string
	Value Value
}

// ConfigBlock is a single namelist group with flattened keys. Entry order is
// preserved so that rendering is deterministic.
type ConfigBlock struct {
	group   string
	entries []Entry
}

// NewConfigBlock creates an empty block for group.
func NewConfigBlock(group string) *ConfigBlock {
	return &ConfigBlock{group: group}
}

// Group returns the namelist group name.
func (b *ConfigBlock) Group() string { return b.group }

// Len returns the number of entries.
func (b *ConfigBlock) Len() int { return len(b.entries) }

// LineCount returns the number of lines AppendTo writes: the group line, one per entry, and the end marker.
func (b *ConfigBlock) LineCount() int { return len(b.entries) + 2 }

// Set stores v under key, flattening the key first. An existing key keeps its position.
func (b *ConfigBlock) Set(key string, v Value) {
	key = FlattenKey(key)
	for i := range b.entries {
		if b.entries[i].Key == key {
			b.entries[i].Value = v
			return
		}
	}
	b.entries = append(b.entries, Entry{Key: key, Value: v})
}

// Get returns the value stored under key.
func (b *ConfigBlock) Get(key string) (Value, bool) {
	key = FlattenKey(key)
	for _, e := range b.entries {
		if e.Key == key {
			return e.Value, true
		}
	}

	return Value{}, false
}

// Entries returns a copy of the entries in block order.
func (b *ConfigBlock) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)

	return out
}

// Map returns the entries as a map keyed by flattened key.
func (b *ConfigBlock) Map() map[string]Value {
	m := make(map[string]Value, len(b.entries))
	for _, e := range b.entries {
		m[e.Key] = e.Value
	}

	return m
}

// AppendTo renders the block in namelist form:
//
//	&THISFILE_SPECIFICATIONS
//	    THISFILE_DATACOLUMNS = 2
//	/
func (b *ConfigBlock) AppendTo(dst []byte) []byte {
	prefix := groupPrefix(b.group)

	dst = append(dst, GroupStartMarker...)
	dst = append(dst, b.group...)
	dst = append(dst, '\n')
	for _, e := range b.entries {
		dst = append(dst, "    "...)
		dst = append(dst, prefix...)
		dst = append(dst, strings.ToUpper(e.Key)...)
		dst = append(dst, " = "...)
		dst = e.Value.appendLiteral(dst)
		dst = append(dst, '\n')
	}
	dst = append(dst, GroupEndMarker...)

	return append(dst, '\n')
}

// FlattenKey strips the group prefix (everything up to the first underscore)
// and lower-cases the remainder: THISFILE_FIRSTYEAR becomes "firstyear".
func FlattenKey(key string) string {
	if _, rest, ok := strings.Cut(key, "_"); ok && rest != "" {
		key = rest
	}

	return strings.ToLower(key)
}

func groupPrefix(group string) string {
	if i := strings.IndexByte(group, '_'); i >= 0 {
		return group[:i+1]
	}

	return ""
}

// LocateConfigBlock returns the indices of the first and last line of the
// configuration block: the last line starting with '&' and the last line
// starting with '/', after trimming.
func LocateConfigBlock(lines []string) (int, int, error) {
	start, end := -1, -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, GroupStartMarker) {
			start = i
		}
		if strings.HasPrefix(trimmed, GroupEndMarker) {
			end = i
		}
	}

	switch {
	case start < 0:
		return 0, 0, fmt.Errorf("%w: no line starts with %q", errs.ErrMalformedConfigBlock, GroupStartMarker)
	case end < 0:
		return 0, 0, fmt.Errorf("%w: no line starts with %q", errs.ErrMalformedConfigBlock, GroupEndMarker)
	case end < start:
		return 0, 0, fmt.Errorf("%w: end marker on line %d precedes start marker on line %d",
			errs.ErrMalformedConfigBlock, end+1, start+1)
	}

	return start, end, nil
}

// ParseConfigBlock parses the lines of a located block, markers included.
func ParseConfigBlock(lines []string) (*ConfigBlock, error) {
	toks, err := scanNamelist(strings.Join(lines, "\n"))
	if err != nil {
		return nil, err
	}

	if len(toks) == 0 || toks[0].kind != tokGroup {
		return nil, fmt.Errorf("%w: missing group name", errs.ErrMalformedConfigBlock)
	}

	block := NewConfigBlock(toks[0].text)
	i := 1
	for i < len(toks) {
		tok := toks[i]
		if tok.kind == tokEnd {
			return block, nil
		}
		if tok.kind != tokWord || i+1 >= len(toks) || toks[i+1].kind != tokEquals {
			return nil, fmt.Errorf("%w: expected key = value near %q", errs.ErrMalformedConfigBlock, tok.text)
		}

		key := tok.text
		i += 2

		var items []Value
		for i < len(toks) {
			t := toks[i]
			if t.kind == tokEnd || (t.kind == tokWord && i+1 < len(toks) && toks[i+1].kind == tokEquals) {
				break
			}
			switch t.kind {
			case tokComma:
			case tokString:
				items = append(items, StringValue(t.text))
			case tokWord:
				items = append(items, parseBareValue(t.text))
			default:
				return nil, fmt.Errorf("%w: unexpected %q in value of %s", errs.ErrMalformedConfigBlock, t.text, key)
			}
			i++
		}

		switch len(items) {
		case 0:
			return nil, fmt.Errorf("%w: %s has no value", errs.ErrMalformedConfigBlock, key)
		case 1:
			block.Set(key, items[0])
		default:
			block.Set(key, ListValue(items...))
		}
	}

	return nil, fmt.Errorf("%w: missing %q terminator", errs.ErrMalformedConfigBlock, GroupEndMarker)
}

func parseBareValue(text string) Value {
	if i, err := strconv.Atoi(text); err == nil {
		return IntValue(i)
	}
	if f, err := encoding.ParseValue(text); err == nil {
		return FloatValue(f)
	}

	switch strings.ToLower(text) {
	case ".true.", ".t.", "t", "true":
		return LogicalValue(true)
	case ".false.", ".f.", "f", "false":
		return LogicalValue(false)
	}

	return StringValue(text)
}

type tokKind uint8

const (
	tokGroup tokKind = iota + 1
	tokWord
	tokString
	tokEquals
	tokComma
	tokEnd
)

type token struct {
	kind tokKind
	text string
}

func scanNamelist(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '!':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '&':
			j := i + 1
			for j < len(src) && !isDelimiter(src[j]) {
				j++
			}
			toks = append(toks, token{kind: tokGroup, text: src[i+1 : j]})
			i = j
		case c == '/':
			toks = append(toks, token{kind: tokEnd, text: "/"})
			i++
		case c == '=':
			toks = append(toks, token{kind: tokEquals, text: "="})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, text: ","})
			i++
		case c == '\'' || c == '"':
			var sb strings.Builder
			j := i + 1
			closed := false
			for j < len(src) {
				if src[j] == c {
					if j+1 < len(src) && src[j+1] == c {
						sb.WriteByte(c)
						j += 2

						continue
					}
					closed = true
					j++

					break
				}
				sb.WriteByte(src[j])
				j++
			}
			if !closed {
				return nil, fmt.Errorf("%w: unterminated string", errs.ErrMalformedConfigBlock)
			}
			toks = append(toks, token{kind: tokString, text: sb.String()})
			i = j
		default:
			j := i
			for j < len(src) && !isDelimiter(src[j]) {
				j++
			}
			toks = append(toks, token{kind: tokWord, text: src[i:j]})
			i = j
		}
	}

	return toks, nil
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '=', ',', '/', '!', '\'', '"':
		return true
	}

	return false
}
