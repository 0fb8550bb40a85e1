// Package masm holds the MASM reference tables used for completion and hover,
// plus the text position helpers the language server needs.
package masm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var all []Entry

// names parallels all for fuzzy ranking.
var names []string

func init() {
	tables := []struct {
		entries []Entry
		kind    EntryKind
	}{
		{Instructions, KindInstruction},
		{Registers, KindRegister},
		{Directives, KindDirective},
		{Operators, KindOperator},
		{Types, KindType},
	}
	for _, table := range tables {
		for i := range table.entries {
			table.entries[i].Kind = table.kind
			all = append(all, table.entries[i])
			names = append(names, table.entries[i].Name)
		}
	}
}

// All returns every entry: instructions, registers, directives, operators
// and types, in that order.
func All() []Entry {
	return all
}

// Lookup finds the first entry whose name matches word, ignoring case.
func Lookup(word string) (Entry, bool) {
	for _, e := range all {
		if strings.EqualFold(e.Name, word) {
			return e, true
		}
	}
	return Entry{}, false
}

func HoverText(e Entry) string {
	return fmt.Sprintf("**%s**\n\n%s", e.Name, e.Documentation)
}

// OffsetAt converts a protocol position into a byte offset of text. Positions
// past the end of a line clamp to the line end, past the last line to len(text).
func OffsetAt(text string, pos TextPosition) int {
	if pos.Line < 0 {
		return 0
	}
	offset := 0
	for line := 0; line < pos.Line; line++ {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl == -1 {
			return len(text)
		}
		offset += nl + 1
	}

	units := 0
	for offset < len(text) && units < pos.Char {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if r == '\n' || (r == '\r' && strings.HasPrefix(text[offset:], "\r\n")) {
			break
		}
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
		offset += size
	}
	return offset
}

// words include '.' so that directives like .CODE are found whole
var wordPattern = regexp.MustCompile(`[\w.]+`)

// WordAt returns the word touching pos, or "" when there is none.
func WordAt(text string, pos TextPosition) string {
	offset := OffsetAt(text, pos)
	for _, m := range wordPattern.FindAllStringIndex(text, -1) {
		if m[0] > offset {
			break
		}
		if offset <= m[1] {
			return text[m[0]:m[1]]
		}
	}
	return ""
}
