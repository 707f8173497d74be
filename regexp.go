package rdn

// parseRegExpLiteral consumes a slash-delimited regular expression literal:
// scan bytes until an unescaped '/' (backslash escapes the next byte,
// including '/'), then zero or more flag bytes from {d,g,i,m,s,u,v,y}. The
// core never compiles the pattern; it stores (source, flags) verbatim.
func (p *parser) parseRegExpLiteral() (Value, error) {
	if err := p.expect('/'); err != nil {
		return Value{}, err
	}
	start := p.pos
	for {
		if p.eof() {
			return Value{}, p.errf(SyntaxError, "unterminated regular expression")
		}
		switch p.src[p.pos] {
		case '\\':
			p.pos += 2
		case '/':
			goto done
		default:
			p.pos++
		}
	}
done:
	if p.pos > len(p.src) {
		return Value{}, p.errf(SyntaxError, "unterminated regular expression")
	}
	source := string(p.src[start:p.pos])
	if err := p.expect('/'); err != nil {
		return Value{}, err
	}

	flagsStart := p.pos
	seen := [256]bool{}
	for !p.eof() && isRegExpFlag(p.src[p.pos]) {
		c := p.src[p.pos]
		if seen[c] {
			return Value{}, p.errf(SyntaxError, "duplicate regular expression flag %q", string(c))
		}
		seen[c] = true
		p.pos++
	}
	flags := string(p.src[flagsStart:p.pos])
	return RegExp(source, flags), nil
}

func isRegExpFlag(b byte) bool {
	switch b {
	case 'd', 'g', 'i', 'm', 's', 'u', 'v', 'y':
		return true
	default:
		return false
	}
}
