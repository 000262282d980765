package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedLocationKey is returned for location keys that do not decode
// into block, decorator, and leaf coordinates.
var ErrMalformedLocationKey = errors.New("document: malformed location key")

// LocationKey addresses one leaf of a block's decorator/leaf tree. Its
// encoded form tags surface nodes so mutations can be mapped back.
type LocationKey struct {
	BlockKey  string
	Decorator int
	Leaf      int
}

// Encode returns "<block>-<decorator>-<leaf>".
func (k LocationKey) Encode() string {
	return k.BlockKey + "-" + strconv.Itoa(k.Decorator) + "-" + strconv.Itoa(k.Leaf)
}

func (k LocationKey) String() string { return k.Encode() }

// DecodeLocationKey parses an encoded key. The decorator and leaf indices
// are the last two '-' separated fields; everything before is the block key.
func DecodeLocationKey(s string) (LocationKey, error) {
	li := strings.LastIndexByte(s, '-')
	if li <= 0 {
		return LocationKey{}, fmt.Errorf("%w: %q", ErrMalformedLocationKey, s)
	}
	di := strings.LastIndexByte(s[:li], '-')
	if di <= 0 {
		return LocationKey{}, fmt.Errorf("%w: %q", ErrMalformedLocationKey, s)
	}
	deco, err := strconv.Atoi(s[di+1 : li])
	if err != nil || deco < 0 {
		return LocationKey{}, fmt.Errorf("%w: %q: bad decorator index", ErrMalformedLocationKey, s)
	}
	leaf, err := strconv.Atoi(s[li+1:])
	if err != nil || leaf < 0 {
		return LocationKey{}, fmt.Errorf("%w: %q: bad leaf index", ErrMalformedLocationKey, s)
	}
	return LocationKey{BlockKey: s[:di], Decorator: deco, Leaf: leaf}, nil
}
