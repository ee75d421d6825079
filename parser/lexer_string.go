package parser

// readString reads a single- or double-quoted string literal. A backslash
// before a quote character yields the quote; any other backslash pair is
// kept as written.
func (l *Lexer) readString() Token {
	tok := Token{
		Type:     TOKEN_STRING,
		Position: l.here(),
	}

	quote := l.ch
	start := l.position
	l.readChar() // skip opening quote

	var result []byte
	for l.ch != quote && !l.atEnd() {
		if l.ch == '\\' {
			l.readChar() // skip backslash
			if l.atEnd() {
				break
			}
			if l.ch == '"' || l.ch == '\'' {
				result = append(result, l.ch)
			} else {
				result = append(result, '\\', l.ch)
			}
			l.readChar()
		} else {
			result = append(result, l.ch)
			l.readChar()
		}
	}

	if l.atEnd() {
		// An unterminated string can still be completed by more input
		l.report(&SyntaxError{
			Pos:   tok.Position,
			Msg:   "token recognition error at: '" + l.input[start:] + "'",
			AtEOF: true,
		})
	} else {
		l.readChar() // skip closing quote
	}

	tok.Value = l.input[start:l.position]
	tok.Literal = string(result)
	return tok
}
