package quotegen

import "errors"

// The pipeline fails as a whole or not at all; every error wraps one of
// these sentinels so callers can tell a bad avatar from a bad font from a
// configuration that could never produce a visible card. Match with
// errors.Is.
var (
	// ErrBadImage covers undecodable or degenerate avatar sources.
	ErrBadImage = errors.New("quotegen: bad avatar image")
	// ErrBadFont covers font data that truetype cannot parse.
	ErrBadFont = errors.New("quotegen: bad font")
	// ErrBadConfig covers geometry and configuration that cannot render,
	// such as an avatar as wide as the whole canvas.
	ErrBadConfig = errors.New("quotegen: bad configuration")
	// ErrEncode covers failures serializing the finished canvas.
	ErrEncode = errors.New("quotegen: image encoding failed")
)
