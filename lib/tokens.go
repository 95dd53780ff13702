package lib

import "strings"

type tokenType int

const (
	tokenTypeWord tokenType = iota
	tokenTypeNumber
	tokenTypeLParen
	tokenTypeRParen
	tokenTypePlus
	tokenTypeMinus
	tokenTypeSlash
	tokenTypeAsterisk
	tokenTypePercent
)

// Token is a single piece of an expression. Value is the trimmed text exactly
// as it appeared in the input.
type Token struct {
	tokType tokenType
	Value   string
}

func (t Token) String() string {
	return t.Value
}

func (t Token) IsOperator() bool {
	switch t.tokType {
	case tokenTypePlus, tokenTypeMinus, tokenTypeSlash, tokenTypeAsterisk, tokenTypePercent:
		return true
	}
	return false
}

func (t Token) IsLiteral() bool {
	return t.tokType == tokenTypeNumber
}

// FormatTokens renders a token list as "[3, +, 4]".
func FormatTokens(tokens []Token) string {
	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}
	return "[" + strings.Join(values, ", ") + "]"
}

func operatorToken(ch rune) (Token, bool) {
	switch ch {
	case '+':
		return Token{tokType: tokenTypePlus, Value: "+"}, true
	case '-':
		return Token{tokType: tokenTypeMinus, Value: "-"}, true
	case '/':
		return Token{tokType: tokenTypeSlash, Value: "/"}, true
	case '*':
		return Token{tokType: tokenTypeAsterisk, Value: "*"}, true
	case '%':
		return Token{tokType: tokenTypePercent, Value: "%"}, true
	case '(':
		return Token{tokType: tokenTypeLParen, Value: "("}, true
	case ')':
		return Token{tokType: tokenTypeRParen, Value: ")"}, true
	}
	return Token{}, false
}

// wordToken classifies a fragment found between operators. Anything that is
// not made only of digits stays a word and gets rejected by the converter.
func wordToken(value string) Token {
	if value != "" && isNumber(value) {
		return Token{tokType: tokenTypeNumber, Value: value}
	}
	return Token{tokType: tokenTypeWord, Value: value}
}

func isNumber(s string) bool {
	for _, ch := range s {
		if !isDigit(ch) {
			return false
		}
	}
	return true
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
