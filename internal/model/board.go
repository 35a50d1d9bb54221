package model

// PathLength is the length of the shared main loop.
const PathLength = 52

// Each color enters the main loop a quarter turn apart.
var startOffsets = map[PlayerColor]int{
	ColorRed:    0,
	ColorGreen:  13,
	ColorYellow: 26,
	ColorBlue:   39,
}

// Entry and star squares in relative-position form. Tokens sitting on these
// cannot be captured.
var safeSquares = map[int]bool{
	0:  true,
	8:  true,
	13: true,
	21: true,
	26: true,
	34: true,
	39: true,
	47: true,
}

// AbsolutePosition maps a color's relative path position to the shared
// 0-51 board coordinate. Returns -1 for positions off the shared loop
// (home or home stretch); such tokens never collide with anything.
func AbsolutePosition(color PlayerColor, relative int) int {
	if relative < 0 || relative >= PathLength {
		return -1
	}
	return (relative + startOffsets[color]) % PathLength
}

func IsSafeSquare(relative int) bool {
	return safeSquares[relative]
}
