package lib

import "strings"

// Tokenize splits an expression into tokens. The returned reader is lazy: the
// lexer only advances when the reader needs another token, and the sequence
// can be read once.
func Tokenize(expression string) TokenReader {
	buffer := newTokenBuffer()
	l := newLexer(expression, buffer.write)
	buffer.source = l.next
	return buffer
}

// Tokens drains Tokenize into a slice.
func Tokens(expression string) []Token {
	reader := Tokenize(expression)
	tokens := []Token{}
	for {
		tok, done := reader.Next()
		if done {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	tokenStartIndex  int
	emitCallback     func(Token)
}

func newLexer(expression string, emit func(Token)) *lexer {
	expr := []rune(expression)
	return &lexer{
		expr:             expr,
		length:           len(expr),
		currentCharIndex: 0,
		tokenStartIndex:  0,
		emitCallback:     emit,
	}
}

func (l *lexer) emit(tok Token) {
	l.endWord()
	l.emitCallback(tok)
	l.resetToken()
}

func (l *lexer) peek(offset int) (rune, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return 0, false
	}
	return l.expr[i], true
}

func (l *lexer) advance() (rune, bool) {
	ch, ok := l.peek(0)
	l.currentCharIndex++
	return ch, ok
}

// next consumes one character and reports whether there may be more input.
func (l *lexer) next() bool {
	if l.currentCharIndex > l.length {
		return false
	}
	ch, ok := l.advance()
	if !ok {
		l.endWord()
		return false
	}

	if tok, isOp := operatorToken(ch); isOp {
		l.emit(tok)
	}
	// anything else keeps going with the current word; whitespace is
	// trimmed off the ends when the word finishes

	return true
}

func (l *lexer) isFirstCharOfToken() bool {
	return l.currentCharIndex-1 == l.tokenStartIndex
}

func (l *lexer) endWord() {
	if !l.isFirstCharOfToken() {
		end := l.currentCharIndex - 1
		if end > l.length {
			end = l.length
		}
		word := strings.TrimSpace(string(l.expr[l.tokenStartIndex:end]))
		if word != "" {
			l.emitCallback(wordToken(word))
		}
	}
	l.resetToken()
}

func (l *lexer) resetToken() {
	l.tokenStartIndex = l.currentCharIndex
}
