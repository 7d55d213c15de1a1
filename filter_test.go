package pxblit

import "testing"

func TestParseFilters(t *testing.T) {
	tests := []struct {
		keys string
		want int
	}{
		{"", 0},
		{"g", 1},
		{"gild", 4},
		{"xyz", 0},  // unknown keys are ignored, not rejected
		{"gxig", 3}, // unknown keys skipped mid-string
		{"iiii", 4}, // repeats allowed
	}

	for _, tt := range tests {
		t.Run("keys="+tt.keys, func(t *testing.T) {
			if got := len(ParseFilters(tt.keys)); got != tt.want {
				t.Errorf("len(ParseFilters(%q)) = %d, want %d", tt.keys, got, tt.want)
			}
		})
	}
}

func TestGrayscale(t *testing.T) {
	p := Point{R: 10, G: 20, B: 30}
	Grayscale(&p)
	// (10+20+30)/3 = 20, truncating.
	if p.R != 20 || p.G != 20 || p.B != 20 {
		t.Errorf("Grayscale(10,20,30) = (%d,%d,%d), want (20,20,20)", p.R, p.G, p.B)
	}

	p = Point{R: 1, G: 1, B: 0}
	Grayscale(&p)
	if p.R != 0 {
		t.Errorf("Grayscale(1,1,0) = %d, want 0 (integer average truncates)", p.R)
	}
}

func TestInvert(t *testing.T) {
	p := Point{R: 0, G: 128, B: 255}
	Invert(&p)
	if p.R != 255 || p.G != 127 || p.B != 0 {
		t.Errorf("Invert(0,128,255) = (%d,%d,%d), want (255,127,0)", p.R, p.G, p.B)
	}
}

func TestLighten(t *testing.T) {
	tests := []struct {
		in, want uint8
	}{
		{0, 63},    // 0 + 255*0.25 = 63.75, truncated
		{100, 138}, // 100 + 155*0.25 = 138.75
		{255, 255}, // white stays white
	}
	for _, tt := range tests {
		p := Point{R: tt.in, G: tt.in, B: tt.in}
		Lighten(&p)
		if p.R != tt.want {
			t.Errorf("Lighten(%d) = %d, want %d", tt.in, p.R, tt.want)
		}
	}
}

func TestDarken(t *testing.T) {
	tests := []struct {
		in, want uint8
	}{
		{0, 0},
		{100, 75},
		{255, 191}, // 255*0.75 = 191.25, truncated
	}
	for _, tt := range tests {
		p := Point{R: tt.in, G: tt.in, B: tt.in}
		Darken(&p)
		if p.R != tt.want {
			t.Errorf("Darken(%d) = %d, want %d", tt.in, p.R, tt.want)
		}
	}
}

func TestFilterChain_InvertTwiceRestores(t *testing.T) {
	chain := ParseFilters("ii")
	colors := []Point{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 10, G: 20, B: 30},
		{R: 128, G: 64, B: 32},
	}
	for _, orig := range colors {
		p := orig
		chain.Apply(&p)
		if p != orig {
			t.Errorf("ii chain on %+v = %+v, want unchanged", orig, p)
		}
	}
}

// TestFilterChain_OrderMatters pins the worked example from the filter
// table: grayscale-then-invert differs from invert-then-grayscale only by
// coincidence of the average, so both are computed explicitly.
func TestFilterChain_OrderMatters(t *testing.T) {
	gi := Point{R: 10, G: 20, B: 30}
	ParseFilters("gi").Apply(&gi)
	// gray = 20,20,20; invert = 235,235,235.
	if gi.R != 235 || gi.G != 235 || gi.B != 235 {
		t.Errorf("gi chain = (%d,%d,%d), want (235,235,235)", gi.R, gi.G, gi.B)
	}

	ig := Point{R: 10, G: 20, B: 30}
	ParseFilters("ig").Apply(&ig)
	// invert = 245,235,225; gray = (245+235+225)/3 = 235.
	if ig.R != 235 || ig.G != 235 || ig.B != 235 {
		t.Errorf("ig chain = (%d,%d,%d), want (235,235,235)", ig.R, ig.G, ig.B)
	}

	// On an input where the two orders do diverge, assert they differ.
	a := Point{R: 0, G: 0, B: 200}
	b := a
	ParseFilters("gd").Apply(&a)
	ParseFilters("dg").Apply(&b)
	// gd: gray 66 → darken 49. dg: darken (0,0,150) → gray 50.
	if a.R != 49 || b.R != 50 {
		t.Errorf("gd = %d, dg = %d, want 49 and 50", a.R, b.R)
	}
}

func TestFilterChain_CoordinatesUntouched(t *testing.T) {
	p := Point{X: 17, Y: 23, R: 1, G: 2, B: 3}
	ParseFilters("gild").Apply(&p)
	if p.X != 17 || p.Y != 23 {
		t.Errorf("filters moved point to (%d, %d), want (17, 23)", p.X, p.Y)
	}
}
