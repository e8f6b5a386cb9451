package affine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokInt
	tokIdent
	tokOp
)

type token struct {
	kind tokenKind
	text string
	val  int
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

var twoCharOps = map[string]bool{
	"->": true,
	"<=": true,
	">=": true,
	"==": true,
}

const oneCharOps = "+-*/%()[],:<>{};"

func tokenize(src string) ([]token, error) {
	var toks []token
	runes := []rune(src)

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			text := string(runes[start:i])
			v, err := strconv.Atoi(text)
			if err != nil {
				return nil, fmt.Errorf("%w: bad integer %q at %d", ErrSyntax, text, start)
			}
			toks = append(toks, token{kind: tokInt, text: text, val: v, pos: start})

		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) &&
				(unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(runes[start:i]), pos: start})

		default:
			if i+1 < len(runes) && twoCharOps[string(runes[i:i+2])] {
				toks = append(toks, token{kind: tokOp, text: string(runes[i : i+2]), pos: i})
				i += 2
				continue
			}
			if strings.ContainsRune(oneCharOps, r) {
				toks = append(toks, token{kind: tokOp, text: string(r), pos: i})
				i++
				continue
			}
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, i)
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(runes)}), nil
}
