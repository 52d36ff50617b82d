package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// Kind identifies the type of a [Token].
type Kind uint8

// Token kinds.
const (
	TokenInvalid    Kind = iota // invalid
	TokenLet                    // let
	TokenInclude                // include
	TokenHexColor               // hex color
	TokenIdentifier             // identifier
	TokenInt                    // integer
	TokenAssign                 // =
	TokenLeftParen              // (
	TokenRightParen             // )
	TokenComma                  // ,
)

// Token is a lexical unit of a statement.
type Token struct {
	Text  string // Identifier name or the source text of the token
	Pos   int    // Byte offset in the statement
	Color Color  // Valid for TokenHexColor
	Int   uint8  // Valid for TokenInt
	Kind  Kind
}

// String returns a short description of the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case TokenIdentifier, TokenInt:
		return t.Kind.String() + " " + strconv.Quote(t.Text)
	case TokenHexColor:
		return t.Kind.String() + " " + t.Color.String()
	default:
		return strconv.Quote(t.Kind.String())
	}
}

// Lex splits a single statement into tokens.
//
// Line comments starting with "//" are removed first. A hex color is '#'
// followed by exactly six hexadecimal digits. A word is a run of characters
// up to the next whitespace, '#', '=', '(', ')' or ','; words are the
// keywords "let" and "include", decimal integers in [0, 255] with an
// optional leading '+', or identifiers.
func Lex(src string) ([]Token, error) {
	src = StripComments(src)

	var tokens []Token

	for pos := 0; pos < len(src); {
		ch := src[pos]

		switch {
		case isSpace(ch):
			pos++

		case ch == '#':
			if len(src)-pos < 7 {
				return nil, ErrMalformedHex.With(
					slog.String("text", src[pos:]),
					slog.Int("offset", pos),
				)
			}

			text := src[pos : pos+7]

			c, err := ParseHex(text)
			if err != nil {
				return nil, ErrMalformedHex.With(
					slog.String("text", text),
					slog.Int("offset", pos),
				)
			}

			tokens = append(tokens, Token{
				Kind:  TokenHexColor,
				Text:  text,
				Pos:   pos,
				Color: c,
			})
			pos += len(text)

		case isPunct(ch):
			tokens = append(tokens, Token{
				Kind: punctKind(ch),
				Text: src[pos : pos+1],
				Pos:  pos,
			})
			pos++

		default:
			end := pos + 1
			for end < len(src) && !isDelim(src[end]) {
				end++
			}

			tokens = append(tokens, word(src[pos:end], pos))
			pos = end
		}
	}

	return tokens, nil
}

// StripComments removes every "//" line comment from src. The newline
// terminating a comment is kept; a single '/' is ordinary text.
func StripComments(src string) string {
	if !strings.Contains(src, "//") {
		return src
	}

	var sb strings.Builder

	sb.Grow(len(src))

	for len(src) > 0 {
		i := strings.Index(src, "//")
		if i < 0 {
			sb.WriteString(src)

			break
		}

		sb.WriteString(src[:i])

		src = src[i:]
		if j := strings.IndexByte(src, '\n'); j >= 0 {
			src = src[j:]
		} else {
			src = ""
		}
	}

	return sb.String()
}

func word(text string, pos int) Token {
	switch text {
	case "let":
		return Token{Kind: TokenLet, Text: text, Pos: pos}
	case "include":
		return Token{Kind: TokenInclude, Text: text, Pos: pos}
	}

	// A single leading '+' is allowed; '-' is not, since integers are
	// unsigned.
	if n, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 8); err == nil {
		return Token{Kind: TokenInt, Text: text, Pos: pos, Int: uint8(n)}
	}

	return Token{Kind: TokenIdentifier, Text: text, Pos: pos}
}

func punctKind(ch byte) Kind {
	switch ch {
	case '=':
		return TokenAssign
	case '(':
		return TokenLeftParen
	case ')':
		return TokenRightParen
	case ',':
		return TokenComma
	default:
		return TokenInvalid
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isPunct(ch byte) bool {
	return ch == '=' || ch == '(' || ch == ')' || ch == ','
}

func isDelim(ch byte) bool {
	return isSpace(ch) || isPunct(ch) || ch == '#'
}
