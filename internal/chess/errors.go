package chess

import "errors"

// ErrInvalidPosition is the one exceptional signal in the public
// interface, raised only by NewSquare on an out-of-range coordinate.
// Every other rejection (illegal move, malformed FEN) is carried as a
// nullable/option return instead of an error.
var ErrInvalidPosition = errors.New("chess: rank/file out of range 0..7")
