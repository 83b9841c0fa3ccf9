package rules

// Dither maps a value in [0,1) to an ordered stipple so smooth scalar fields
// render as binary textures. Bands get denser from always-dead below 0.1 to
// always-alive from 0.64 up. x and y are board coordinates (non-negative).
func Dither(x, y int, v float64) bool {
	switch {
	case v < 0.1:
		return false
	case v < 0.2:
		return x%3 == 0 && y%3 == 0
	case v < 0.3:
		return x%2 == 0 && y%2 == 0
	case v < 0.4:
		return (x+y)%2 == 0
	case v < 0.52:
		return !(x%2 == 0 && y%2 == 0)
	case v < 0.64:
		return !(x%3 == 0 && y%3 == 0)
	default:
		return true
	}
}
