package parser

import (
	"strings"

	"github.com/dispa-lang/dispa/pkg/types"
)

// Keyword is the closed set of statement keywords. Every alias maps onto one
// of these so dispatch can switch exhaustively instead of comparing strings.
type Keyword int

const (
	KwObject Keyword = iota
	KwWait
	KwTranslate
	KwRotate
	KwScale
	KwSpawn
	KwItem
	KwBlock
	KwText
	KwTeleport
	KwEnd
)

// LookupKeyword resolves a (case-insensitive) keyword or alias.
func LookupKeyword(word string) (Keyword, error) {
	switch strings.ToLower(word) {
	case "object", "anim":
		return KwObject, nil
	case "wait":
		return KwWait, nil
	case "translate", "move", "m":
		return KwTranslate, nil
	case "rotate", "turn", "r":
		return KwRotate, nil
	case "scale", "size", "s":
		return KwScale, nil
	case "spawn":
		return KwSpawn, nil
	case "item":
		return KwItem, nil
	case "block":
		return KwBlock, nil
	case "text":
		return KwText, nil
	case "teleport", "tp":
		return KwTeleport, nil
	case "end":
		return KwEnd, nil
	}
	return 0, &types.InvalidKeywordError{Keyword: word}
}
