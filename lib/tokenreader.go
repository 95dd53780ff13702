package lib

// TokenReader is a one-shot sequence of tokens. done is true once the
// sequence is exhausted and stays true on every later call.
type TokenReader interface {
	Next() (tok Token, done bool)
	Peek() (tok Token, done bool)
}
