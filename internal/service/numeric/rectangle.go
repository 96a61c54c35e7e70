package numeric

type Rectangle struct {
	Width  float64
	Height float64
}

func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Valid is true when both sides are strictly positive.
func (r Rectangle) Valid() bool {
	return r.Width > 0 && r.Height > 0
}
