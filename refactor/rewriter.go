package refactor

import (
	"strings"

	"github.com/pkg/errors"

	"littlecalc/parser"
)

type opKind int

const (
	opInsertBefore opKind = iota
	opReplace             // also delete, with empty text
)

type operation struct {
	kind   opKind
	index  int // first token
	last   int // last token, replace only
	text   string
	delete bool
}

// Rewriter records edits against an immutable token stream. Edits are
// grouped in named programs and only resolved when text is rendered, so
// every edit refers to the original token indexes no matter how many came
// before it.
type Rewriter struct {
	tokens   *parser.TokenStream
	programs map[string][]operation
}

// NewRewriter creates a Rewriter over tokens
func NewRewriter(tokens *parser.TokenStream) *Rewriter {
	return &Rewriter{
		tokens:   tokens,
		programs: make(map[string][]operation),
	}
}

// InsertBefore inserts text before token index
func (r *Rewriter) InsertBefore(program string, index int, text string) {
	r.programs[program] = append(r.programs[program], operation{kind: opInsertBefore, index: index, text: text})
}

// InsertAfter inserts text after token index
func (r *Rewriter) InsertAfter(program string, index int, text string) {
	r.InsertBefore(program, index+1, text)
}

// Replace replaces tokens first through last with text
func (r *Rewriter) Replace(program string, first, last int, text string) {
	r.programs[program] = append(r.programs[program], operation{kind: opReplace, index: first, last: last, text: text})
}

// Delete removes tokens first through last
func (r *Rewriter) Delete(program string, first, last int) {
	r.programs[program] = append(r.programs[program], operation{kind: opReplace, index: first, last: last, delete: true})
}

// Text renders tokens first through last with program's edits applied.
func (r *Rewriter) Text(program string, first, last int) (string, error) {
	byIndex, err := reduce(r.programs[program])
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := first; i <= last; {
		tok := r.tokens.Get(i)
		op, ok := byIndex[i]
		switch {
		case !ok:
			if tok.Type != parser.TOKEN_EOF {
				sb.WriteString(tok.Value)
			}
			i++
		case op.kind == opInsertBefore:
			sb.WriteString(op.text)
			if tok.Type != parser.TOKEN_EOF {
				sb.WriteString(tok.Value)
			}
			i++
		default:
			sb.WriteString(op.text)
			i = op.last + 1
		}
	}
	return sb.String(), nil
}

// reduce resolves a program to at most one operation per token index:
//   - a replace swallows earlier replaces it contains and earlier inserts
//     inside its range; an insert at its first token is prepended to it
//   - overlapping deletes merge
//   - inserts at the same index combine, the later one first
//   - an insert at the first token of an earlier replace is prepended to it
func reduce(program []operation) (map[int]*operation, error) {
	ops := make([]*operation, len(program))
	for i := range program {
		op := program[i]
		ops[i] = &op
	}

	for i, op := range ops {
		if op == nil || op.kind != opReplace {
			continue
		}
		for j := 0; j < i; j++ {
			prev := ops[j]
			if prev == nil {
				continue
			}
			if prev.kind == opInsertBefore {
				if prev.index == op.index {
					op.text = prev.text + op.text
					op.delete = false
					ops[j] = nil
				} else if prev.index > op.index && prev.index <= op.last {
					ops[j] = nil
				}
				continue
			}
			if prev.index >= op.index && prev.last <= op.last {
				ops[j] = nil
				continue
			}
			disjoint := prev.last < op.index || prev.index > op.last
			if disjoint {
				continue
			}
			if prev.delete && op.delete {
				ops[j] = nil
				op.index = min(op.index, prev.index)
				op.last = max(op.last, prev.last)
				continue
			}
			return nil, errors.Errorf("replace of tokens %d..%d overlaps replace of tokens %d..%d",
				op.index, op.last, prev.index, prev.last)
		}
	}

	for i, op := range ops {
		if op == nil || op.kind != opInsertBefore {
			continue
		}
		for j := 0; j < i; j++ {
			prev := ops[j]
			if prev == nil {
				continue
			}
			if prev.kind == opInsertBefore {
				if prev.index == op.index {
					op.text = op.text + prev.text
					ops[j] = nil
				}
				continue
			}
			if op.index == prev.index {
				prev.text = op.text + prev.text
				prev.delete = false
				ops[i] = nil
				break
			}
			if op.index > prev.index && op.index <= prev.last {
				// The token it precedes is being replaced anyway
				ops[i] = nil
				break
			}
		}
	}

	byIndex := make(map[int]*operation)
	for _, op := range ops {
		if op != nil {
			byIndex[op.index] = op
		}
	}
	return byIndex, nil
}
