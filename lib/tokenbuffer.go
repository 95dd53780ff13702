package lib

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

type peekResult struct {
	tok  Token
	done bool
}

// tokenBuffer queues tokens between the lexer and whoever reads them. When the
// queue runs dry it pulls from source until a token shows up or source reports
// that the input is exhausted.
type tokenBuffer struct {
	queue        *linkedlistqueue.Queue
	source       func() bool
	peeked       *peekResult
	doneReceived bool
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		queue:        linkedlistqueue.New(),
		source:       nil,
		peeked:       nil,
		doneReceived: false,
	}
}

// NewTokenSlice wraps already tokenized input so it can be fed to ToPostfix.
func NewTokenSlice(tokens []Token) TokenReader {
	tb := newTokenBuffer()
	for _, tok := range tokens {
		tb.write(tok)
	}
	tb.done()
	return tb
}

func (tb *tokenBuffer) Next() (tok Token, done bool) {
	if tb.peeked != nil {
		res := tb.peeked
		tb.peeked = nil
		return res.tok, res.done
	}

	for tb.queue.Empty() && !tb.doneReceived {
		if tb.source == nil || !tb.source() {
			tb.doneReceived = true
		}
	}

	value, ok := tb.queue.Dequeue()
	if !ok {
		return Token{}, true
	}
	return value.(Token), false
}

func (tb *tokenBuffer) Peek() (Token, bool) {
	if tb.peeked != nil {
		return tb.peeked.tok, tb.peeked.done
	}
	tok, done := tb.Next()
	tb.peeked = &peekResult{tok: tok, done: done}
	return tok, done
}

func (tb *tokenBuffer) write(tok Token) {
	tb.queue.Enqueue(tok)
}

func (tb *tokenBuffer) done() {
	tb.doneReceived = true
}
