package pxblit

// Filter is a stateless per-pixel transform. Filters read and rewrite
// only the color fields of a point; coordinates are never touched.
type Filter func(*Point)

// FilterChain is an ordered sequence of filters applied to every point a
// worker emits. Order matters: the chain is applied left to right and the
// transforms do not commute in general.
type FilterChain []Filter

// ParseFilters builds a chain from a string of single-character filter
// keys:
//
//	g  grayscale   r = g = b = (r+g+b)/3
//	i  invert      c = 255 - c
//	l  lighten     c = c + (255-c)*0.25
//	d  darken      c = c * 0.75
//
// Unknown characters are ignored. An empty string yields an empty chain.
func ParseFilters(keys string) FilterChain {
	var chain FilterChain
	for _, k := range keys {
		switch k {
		case 'g':
			chain = append(chain, Grayscale)
		case 'i':
			chain = append(chain, Invert)
		case 'l':
			chain = append(chain, Lighten)
		case 'd':
			chain = append(chain, Darken)
		}
	}
	return chain
}

// Apply runs the chain over p in order.
func (fc FilterChain) Apply(p *Point) {
	for _, f := range fc {
		f(p)
	}
}

// Grayscale replaces each channel with the truncating integer average of
// the three.
func Grayscale(p *Point) {
	avg := uint8((int(p.R) + int(p.G) + int(p.B)) / 3)
	p.R, p.G, p.B = avg, avg, avg
}

// Invert flips each channel.
func Invert(p *Point) {
	p.R = 0xff - p.R
	p.G = 0xff - p.G
	p.B = 0xff - p.B
}

// Lighten tints each channel a quarter of the way toward white,
// truncating the fractional part.
func Lighten(p *Point) {
	const tint = 0.25
	p.R = uint8(float32(p.R) + float32(0xff-p.R)*tint)
	p.G = uint8(float32(p.G) + float32(0xff-p.G)*tint)
	p.B = uint8(float32(p.B) + float32(0xff-p.B)*tint)
}

// Darken scales each channel to three quarters of its value, truncating
// the fractional part.
func Darken(p *Point) {
	const shade = 0.25
	p.R = uint8(float32(p.R) * (1 - shade))
	p.G = uint8(float32(p.G) * (1 - shade))
	p.B = uint8(float32(p.B) * (1 - shade))
}
