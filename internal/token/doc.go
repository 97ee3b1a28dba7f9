// Package token defines the lexical token kinds of the ryl language,
// along with trivia (whitespace and comments) attached to tokens.
package token
