package geodesic

import "math"

const (
	digits  = 53
	epsilon = 1.0 / (1 << (digits - 1)) // 2^-52
	minreal = 0x1p-1022
	degree  = math.Pi / 180
)

func sq(x float64) float64 {
	return x * x
}

// hypot avoids underflow and overflow by scaling with the larger argument.
func hypot(x, y float64) float64 {
	x, y = math.Abs(x), math.Abs(y)
	a := math.Max(x, y)
	b := math.Min(x, y)
	if a != 0 {
		b /= a
	}
	return a * math.Sqrt(1+b*b)
}

// log1p is accurate near x = 0 (Goldberg, Theorem 4).
func log1p(x float64) float64 {
	y := 1 + x
	z := y - 1
	if z == 0 {
		return x
	}
	return x * math.Log(y) / z
}

// atanh enforces odd parity.
func atanh(x float64) float64 {
	y := math.Abs(x)
	y = log1p(2*y/(1-y)) / 2
	if x < 0 {
		return -y
	}
	return y
}

func copysign(x, y float64) float64 {
	return math.Copysign(x, y)
}

// cbrt returns the real cube root.
func cbrt(x float64) float64 {
	y := math.Pow(math.Abs(x), 1.0/3.0)
	if x < 0 {
		return -y
	}
	return y
}

func norm2(sinx, cosx float64) (float64, float64) {
	r := hypot(sinx, cosx)
	return sinx / r, cosx / r
}

// sumx is the error free transformation of a sum: u + v = s + t exactly
// with s = round(u + v).
func sumx(u, v float64) (s, t float64) {
	s = u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	t = -(up + vpp)
	return s, t
}

// polyval evaluates the polynomial of order n with coefficients
// p[s:s+n+1] at x using Horner's method. Returns 0 when n < 0.
func polyval(n int, p []float64, s int, x float64) float64 {
	if n < 0 {
		return 0
	}
	y := p[s]
	for ; n > 0; n-- {
		s++
		y = y*x + p[s]
	}
	return y
}

// angRound snaps tiny angles so that the smallest gap in x is 1/2^57
// degrees. Avoids near singular cases when x is non-zero but tiny.
func angRound(x float64) float64 {
	const z = 1.0 / 16
	if x == 0 {
		return 0
	}
	y := math.Abs(x)
	if y < z {
		y = z - (z - y)
	}
	if x < 0 {
		return -y
	}
	return y
}

// angNormalize reduces x to the range (-180, 180].
func angNormalize(x float64) float64 {
	x = math.Mod(x, 360)
	switch {
	case x <= -180:
		return x + 360
	case x <= 180:
		return x
	default:
		return x - 360
	}
}

// latFix replaces latitudes outside [-90, 90] with NaN.
func latFix(x float64) float64 {
	if math.Abs(x) > 90 {
		return math.NaN()
	}
	return x
}

// angDiff computes y - x exactly, reduced to (-180, 180], as the rounded
// difference d and its error e. If d is -180 then e > 0; if d is 180 then
// e <= 0.
func angDiff(x, y float64) (d, e float64) {
	d, t := sumx(angNormalize(-x), angNormalize(y))
	d = angNormalize(d)
	if d == 180 && t > 0 {
		d = -180
	}
	return sumx(d, t)
}

// sincosd returns sin(x) and cos(x) for x in degrees, preserving the
// elementary symmetries exactly, e.g. sin 9° = cos 81° = -sin(-9°).
func sincosd(x float64) (sinx, cosx float64) {
	r := math.Mod(x, 360)
	if math.IsNaN(r) {
		return math.NaN(), math.NaN()
	}
	q := int(math.Floor(r/90 + 0.5))
	r -= float64(90 * q)
	// now |r| <= 45
	r *= degree
	s, c := math.Sincos(r)
	switch q & 3 {
	case 0:
		sinx, cosx = s, c
	case 1:
		sinx, cosx = c, -s
	case 2:
		sinx, cosx = -s, -c
	default:
		sinx, cosx = -c, s
	}
	if x != 0 {
		sinx += 0.0
		cosx += 0.0
	}
	return sinx, cosx
}

// atan2d returns atan2(y, x) in degrees in the range (-180, 180].
// atan2d(±0, -1) = 180; atan2d(-ε, -1) = -180 for tiny positive ε.
func atan2d(y, x float64) float64 {
	q := 0
	if math.Abs(y) > math.Abs(x) {
		x, y = y, x
		q = 2
	}
	if x < 0 {
		x = -x
		q++
	}
	// x >= 0 and x >= |y|, so the angle is in [-45, 45]
	ang := math.Atan2(y, x) / degree
	switch q {
	case 1:
		if y >= 0 {
			ang = 180 - ang
		} else {
			ang = -180 - ang
		}
	case 2:
		ang = 90 - ang
	case 3:
		ang = -90 + ang
	}
	return ang
}

func isfinite(x float64) bool {
	return math.Abs(x) <= math.MaxFloat64
}

// sinCosSeries evaluates, using Clenshaw summation,
//
//	sinp:  sum(c[i] * sin(2*i*x), i, 1, n)
//	!sinp: sum(c[i] * cos((2*i+1)*x), i, 0, n-1)
//
// where n = len(c) for the cosine series and len(c)-1 for the sine series
// (c[0] is unused by the sine series).
func sinCosSeries(sinp bool, sinx, cosx float64, c []float64) float64 {
	k := len(c)
	n := k
	if sinp {
		n--
	}
	ar := 2 * (cosx - sinx) * (cosx + sinx) // 2 * cos(2 * x)
	var y0, y1 float64
	if n&1 != 0 {
		k--
		y0 = c[k]
	}
	for n /= 2; n > 0; n-- {
		k--
		y1 = ar*y0 - y1 + c[k]
		k--
		y0 = ar*y1 - y0 + c[k]
	}
	if sinp {
		return 2 * sinx * cosx * y0 // sin(2 * x) * y0
	}
	return cosx * (y0 - y1) // cos(x) * (y0 - y1)
}
