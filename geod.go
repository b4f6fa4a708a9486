package geodesic

import "math"

// Series are truncated at order 6 in the third flattening, which gives
// full double precision for |f| < 0.01.
const (
	geodOrder = 6
	nA1       = geodOrder
	nC1       = geodOrder
	nC1p      = geodOrder
	nA2       = geodOrder
	nC2       = geodOrder
	nA3       = geodOrder
	nA3x      = nA3
	nC3       = geodOrder
	nC3x      = (nC3 * (nC3 - 1)) / 2
	nC4       = geodOrder
	nC4x      = (nC4 * (nC4 + 1)) / 2

	maxit1 = 20
	maxit2 = maxit1 + digits + 10
)

var (
	tiny    = math.Sqrt(minreal)
	tol0    = epsilon
	tol1    = 200 * tol0
	tol2    = math.Sqrt(tol0)
	tolb    = tol0 * tol2 // check on bisection interval
	xthresh = 1000 * tol2
)

type geodGeodesic struct {
	a, f, f1, e2, ep2, n, b, c2, etol2 float64

	a3x [nA3x]float64
	c3x [nC3x]float64
	c4x [nC4x]float64
}

func geodInit(g *geodGeodesic, a, f float64) {
	g.a = a
	g.f = f
	g.f1 = 1 - f
	g.e2 = f * (2 - f)
	g.ep2 = g.e2 / sq(g.f1)
	g.n = f / (2 - f)
	g.b = a * g.f1
	// authalic radius squared
	var ea float64
	switch {
	case g.e2 == 0:
		ea = 1
	case g.e2 > 0:
		ea = atanh(math.Sqrt(g.e2)) / math.Sqrt(g.e2)
	default:
		ea = math.Atan(math.Sqrt(-g.e2)) / math.Sqrt(-g.e2)
	}
	g.c2 = (sq(g.a) + sq(g.b)*ea) / 2
	// The sig12 threshold for "really short". Using the auxiliary sphere
	// solution with dnm computed at (bet1 + bet2) / 2, the relative error in
	// the azimuth consistency check is sig12^2 * abs(f) * min(1, 1-f/2) / 2.
	// Setting this equal to epsilon gives sig12 = etol2. Here 0.1 is a
	// safety factor and max(0.001, abs(f)) stops etol2 getting too large in
	// the nearly spherical case.
	g.etol2 = 0.1 * tol2 /
		math.Sqrt(math.Max(0.001, math.Abs(f))*math.Min(1, 1-f/2)/2)
	g.a3coeff()
	g.c3coeff()
	g.c4coeff()
}

// a3coeff sets the coefficients of A3 as polynomials in n.
func (g *geodGeodesic) a3coeff() {
	coeff := [...]float64{
		-3, 128, // eps^5
		-2, -3, 64, // eps^4
		-1, -3, -1, 16, // eps^3
		3, -1, -2, 8, // eps^2
		1, -1, 2, // eps^1
		1, 1, // eps^0
	}
	o, k := 0, 0
	for j := nA3 - 1; j >= 0; j-- {
		m := min(nA3-j-1, j) // order of polynomial in n
		g.a3x[k] = polyval(m, coeff[:], o, g.n) / coeff[o+m+1]
		k++
		o += m + 2
	}
}

// c3coeff sets the coefficients of C3[l] as polynomials in n.
func (g *geodGeodesic) c3coeff() {
	coeff := [...]float64{
		// C3[1]
		3, 128,
		2, 5, 128,
		-1, 3, 3, 64,
		-1, 0, 1, 8,
		-1, 1, 4,
		// C3[2]
		5, 256,
		1, 3, 128,
		-3, -2, 3, 64,
		1, -3, 2, 32,
		// C3[3]
		7, 512,
		-10, 9, 384,
		5, -9, 5, 192,
		// C3[4]
		7, 512,
		-14, 7, 512,
		// C3[5]
		21, 2560,
	}
	o, k := 0, 0
	for l := 1; l < nC3; l++ {
		for j := nC3 - 1; j >= l; j-- {
			m := min(nC3-j-1, j)
			g.c3x[k] = polyval(m, coeff[:], o, g.n) / coeff[o+m+1]
			k++
			o += m + 2
		}
	}
}

// c4coeff sets the coefficients of C4[l] as polynomials in n.
func (g *geodGeodesic) c4coeff() {
	coeff := [...]float64{
		// C4[0]
		97, 15015,
		1088, 156, 45045,
		-224, -4784, 1573, 45045,
		-10656, 14144, -4576, -858, 45045,
		64, 624, -4576, 6864, -3003, 15015,
		100, 208, 572, 3432, -12012, 30030, 45045,
		// C4[1]
		1, 9009,
		-2944, 468, 135135,
		5792, 1040, -1287, 135135,
		5952, -11648, 9152, -2574, 135135,
		-64, -624, 4576, -6864, 3003, 135135,
		// C4[2]
		8, 10725,
		1856, -936, 225225,
		-8448, 4992, -1144, 225225,
		-1440, 4160, -4576, 1716, 225225,
		// C4[3]
		-136, 63063,
		1024, -208, 105105,
		3584, -3328, 1144, 315315,
		// C4[4]
		-128, 135135,
		-2560, 832, 405405,
		// C4[5]
		128, 99099,
	}
	o, k := 0, 0
	for l := 0; l < nC4; l++ {
		for j := nC4 - 1; j >= l; j-- {
			m := nC4 - j - 1
			g.c4x[k] = polyval(m, coeff[:], o, g.n) / coeff[o+m+1]
			k++
			o += m + 2
		}
	}
}

func (g *geodGeodesic) a3f(eps float64) float64 {
	return polyval(nA3-1, g.a3x[:], 0, eps)
}

// c3f sets c[1] through c[nC3-1].
func (g *geodGeodesic) c3f(eps float64, c []float64) {
	mult := 1.0
	o := 0
	for l := 1; l < nC3; l++ {
		m := nC3 - l - 1 // order of polynomial in eps
		mult *= eps
		c[l] = mult * polyval(m, g.c3x[:], o, eps)
		o += m + 1
	}
}

// c4f sets c[0] through c[nC4-1].
func (g *geodGeodesic) c4f(eps float64, c []float64) {
	mult := 1.0
	o := 0
	for l := 0; l < nC4; l++ {
		m := nC4 - l - 1
		c[l] = mult * polyval(m, g.c4x[:], o, eps)
		o += m + 1
		mult *= eps
	}
}

// a1m1f returns A1 - 1.
func a1m1f(eps float64) float64 {
	coeff := [...]float64{1, 4, 64, 0, 256}
	m := nA1 / 2
	t := polyval(m, coeff[:], 0, sq(eps)) / coeff[m+1]
	return (t + eps) / (1 - eps)
}

// c1f sets c[1] through c[nC1].
func c1f(eps float64, c []float64) {
	coeff := [...]float64{
		-1, 6, -16, 32,
		-9, 64, -128, 2048,
		9, -16, 768,
		3, -5, 512,
		-7, 1280,
		-7, 2048,
	}
	eps2 := sq(eps)
	d := eps
	o := 0
	for l := 1; l <= nC1; l++ {
		m := (nC1 - l) / 2 // order of polynomial in eps^2
		c[l] = d * polyval(m, coeff[:], o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// c1pf sets c[1] through c[nC1p], the coefficients of the reverted
// distance series.
func c1pf(eps float64, c []float64) {
	coeff := [...]float64{
		205, -432, 768, 1536,
		4005, -4736, 3840, 12288,
		-225, 116, 384,
		-7173, 2695, 7680,
		3467, 7680,
		38081, 61440,
	}
	eps2 := sq(eps)
	d := eps
	o := 0
	for l := 1; l <= nC1p; l++ {
		m := (nC1p - l) / 2
		c[l] = d * polyval(m, coeff[:], o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// a2m1f returns A2 - 1.
func a2m1f(eps float64) float64 {
	coeff := [...]float64{-11, -28, -192, 0, 256}
	m := nA2 / 2
	t := polyval(m, coeff[:], 0, sq(eps)) / coeff[m+1]
	return (t - eps) / (1 + eps)
}

// c2f sets c[1] through c[nC2].
func c2f(eps float64, c []float64) {
	coeff := [...]float64{
		1, 2, 16, 32,
		35, 64, 384, 2048,
		15, 80, 768,
		7, 35, 512,
		63, 1280,
		77, 2048,
	}
	eps2 := sq(eps)
	d := eps
	o := 0
	for l := 1; l <= nC2; l++ {
		m := (nC2 - l) / 2
		c[l] = d * polyval(m, coeff[:], o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// lengths returns s12b = distance/b, m12b = reduced length/b, m0 the
// coefficient of the secular term of the reduced length, and the geodesic
// scales M12 and M21. Only the quantities selected by outmask are
// computed; the others are NaN.
func (g *geodGeodesic) lengths(eps, sig12,
	ssig1, csig1, dn1, ssig2, csig2, dn2, cbet1, cbet2 float64,
	outmask Mask, c1a, c2a []float64,
) (s12b, m12b, m0, M12, M21 float64) {
	outmask = outmask.outputs()
	s12b, m12b, m0 = math.NaN(), math.NaN(), math.NaN()
	M12, M21 = math.NaN(), math.NaN()
	var a1, a2, m0x, j12 float64
	if outmask&(Distance|ReducedLength|GeodesicScale) != 0 {
		a1 = a1m1f(eps)
		c1f(eps, c1a)
		if outmask&(ReducedLength|GeodesicScale) != 0 {
			a2 = a2m1f(eps)
			c2f(eps, c2a)
			m0x = a1 - a2
			a2 = 1 + a2
		}
		a1 = 1 + a1
	}
	if outmask&Distance != 0 {
		b1 := sinCosSeries(true, ssig2, csig2, c1a) -
			sinCosSeries(true, ssig1, csig1, c1a)
		// Missing a factor of b
		s12b = a1 * (sig12 + b1)
		if outmask&(ReducedLength|GeodesicScale) != 0 {
			b2 := sinCosSeries(true, ssig2, csig2, c2a) -
				sinCosSeries(true, ssig1, csig1, c2a)
			j12 = m0x*sig12 + (a1*b1 - a2*b2)
		}
	} else if outmask&(ReducedLength|GeodesicScale) != 0 {
		// Assume here that nC1 >= nC2
		for l := 1; l <= nC2; l++ {
			c2a[l] = a1*c1a[l] - a2*c2a[l]
		}
		j12 = m0x*sig12 + (sinCosSeries(true, ssig2, csig2, c2a) -
			sinCosSeries(true, ssig1, csig1, c2a))
	}
	if outmask&ReducedLength != 0 {
		m0 = m0x
		// Missing a factor of b. Parens around (csig1 * ssig2) and
		// (ssig1 * csig2) ensure accurate cancellation for coincident points.
		m12b = dn2*(csig1*ssig2) - dn1*(ssig1*csig2) - csig1*csig2*j12
	}
	if outmask&GeodesicScale != 0 {
		csig12 := csig1*csig2 + ssig1*ssig2
		t := g.ep2 * (cbet1 - cbet2) * (cbet1 + cbet2) / (dn1 + dn2)
		M12 = csig12 + (t*ssig2-csig2*j12)*ssig1/dn1
		M21 = csig12 - (t*ssig1-csig1*j12)*ssig2/dn2
	}
	return s12b, m12b, m0, M12, M21
}

// astroid solves k^4+2*k^3-(x^2+y^2-1)*k^2-2*y^2*k-y^2 = 0 for the
// positive root k.
func astroid(x, y float64) float64 {
	p := sq(x)
	q := sq(y)
	r := (p + q - 1) / 6
	if q == 0 && r <= 0 {
		// y = 0 with |x| <= 1. For y small, the positive root is
		// k = abs(y)/sqrt(1-x^2).
		return 0
	}
	// Avoid possible division by zero when r = 0 by multiplying the
	// equations for s and t by r^3 and r.
	S := p * q / 4 // S = r^3 * s
	r2 := sq(r)
	r3 := r * r2
	// The discriminant of the quadratic equation for T3. This is zero on
	// the evolute curve p^(1/3)+q^(1/3) = 1.
	disc := S * (S + 2*r3)
	u := r
	if disc >= 0 {
		T3 := S + r3
		// Pick the sign on the sqrt to maximize abs(T3), minimizing loss of
		// precision due to cancellation.
		if T3 < 0 {
			T3 -= math.Sqrt(disc)
		} else {
			T3 += math.Sqrt(disc)
		}
		T := cbrt(T3) // T = r * t
		// T can be zero; but then r2 / T -> 0.
		u += T
		if T != 0 {
			u += r2 / T
		}
	} else {
		// T is complex, but the way u is defined the result is real.
		ang := math.Atan2(math.Sqrt(-disc), -(S + r3))
		// Of the three cube roots pick the one which avoids cancellation.
		// disc < 0 implies r < 0.
		u += 2 * r * math.Cos(ang/3)
	}
	v := math.Sqrt(sq(u) + q) // guaranteed positive
	// Avoid loss of accuracy when u < 0.
	var uv float64
	if u < 0 {
		uv = q / (v - u)
	} else {
		uv = u + v
	}
	w := (uv - q) / (2 * v)
	// Division by 0 not possible because uv > 0, w >= 0.
	return uv / (math.Sqrt(uv+sq(w)) + w)
}

// inverseStart returns a starting point for Newton's method in salp1,
// calp1 with sig12 = -1. If Newton's method is not needed, it also sets
// salp2, calp2, dnm and returns sig12 >= 0.
func (g *geodGeodesic) inverseStart(
	sbet1, cbet1, dn1, sbet2, cbet2, dn2, lam12, slam12, clam12 float64,
	c1a, c2a []float64,
) (sig12, salp1, calp1, salp2, calp2, dnm float64) {
	sig12 = -1
	salp2, calp2, dnm = math.NaN(), math.NaN(), math.NaN()
	// bet12 = bet2 - bet1 in [0, pi); bet12a = bet2 + bet1 in (-pi, 0]
	sbet12 := sbet2*cbet1 - cbet2*sbet1
	cbet12 := cbet2*cbet1 + sbet2*sbet1
	sbet12a := sbet2 * cbet1
	sbet12a += cbet2 * sbet1

	shortline := cbet12 >= 0 && sbet12 < 0.5 && cbet2*lam12 < 0.5
	var somg12, comg12 float64
	if shortline {
		sbetm2 := sq(sbet1 + sbet2)
		// sin((bet1+bet2)/2)^2
		// = (sbet1 + sbet2)^2 / ((sbet1 + sbet2)^2 + (cbet1 + cbet2)^2)
		sbetm2 /= sbetm2 + sq(cbet1+cbet2)
		dnm = math.Sqrt(1 + g.ep2*sbetm2)
		omg12 := lam12 / (g.f1 * dnm)
		somg12, comg12 = math.Sincos(omg12)
	} else {
		somg12, comg12 = slam12, clam12
	}

	salp1 = cbet2 * somg12
	if comg12 >= 0 {
		calp1 = sbet12 + cbet2*sbet1*sq(somg12)/(1+comg12)
	} else {
		calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
	}

	ssig12 := hypot(salp1, calp1)
	csig12 := sbet1*sbet2 + cbet1*cbet2*comg12

	switch {
	case shortline && ssig12 < g.etol2:
		// really short lines
		salp2 = cbet1 * somg12
		mult := 1 - comg12
		if comg12 >= 0 {
			mult = sq(somg12) / (1 + comg12)
		}
		calp2 = sbet12 - cbet1*sbet2*mult
		salp2, calp2 = norm2(salp2, calp2)
		sig12 = math.Atan2(ssig12, csig12)
	case math.Abs(g.n) > 0.1 || // no astroid calc if too eccentric
		csig12 >= 0 ||
		ssig12 >= 6*math.Abs(g.n)*math.Pi*sq(cbet1):
		// Zeroth order spherical approximation is OK
	default:
		// Scale lam12 and bet2 to x, y coordinate system where antipodal
		// point is at origin and singular point is at y = 0, x = -1.
		var x, y, lamscale, betscale float64
		lam12x := math.Atan2(-slam12, -clam12) // lam12 - pi
		if g.f >= 0 {
			// x = dlong, y = dlat
			k2 := sq(sbet1) * g.ep2
			eps := k2 / (2*(1+math.Sqrt(1+k2)) + k2)
			lamscale = g.f * cbet1 * g.a3f(eps) * math.Pi
			betscale = lamscale * cbet1
			x = lam12x / lamscale
			y = sbet12a / betscale
		} else {
			// x = dlat, y = dlong
			cbet12a := cbet2*cbet1 - sbet2*sbet1
			bet12a := math.Atan2(sbet12a, cbet12a)
			// In the case of lon12 = 180, this repeats a calculation made
			// in Inverse.
			_, m12b, m0, _, _ := g.lengths(g.n, math.Pi+bet12a,
				sbet1, -cbet1, dn1, sbet2, cbet2, dn2, cbet1, cbet2,
				ReducedLength, c1a, c2a)
			x = -1 + m12b/(cbet1*cbet2*m0*math.Pi)
			if x < -0.01 {
				betscale = sbet12a / x
			} else {
				betscale = -g.f * sq(cbet1) * math.Pi
			}
			lamscale = betscale / cbet1
			y = lam12x / lamscale
		}

		if y > -tol1 && x > -1-xthresh {
			// strip near cut
			if g.f >= 0 {
				salp1 = math.Min(1, -x)
				calp1 = -math.Sqrt(1 - sq(salp1))
			} else {
				if x > -tol1 {
					calp1 = math.Max(0, x)
				} else {
					calp1 = math.Max(-1, x)
				}
				salp1 = math.Sqrt(1 - sq(calp1))
			}
		} else {
			// Estimate alp1 by solving the astroid problem. Estimating
			// omg12 from the astroid and then using the spherical formula
			// for alp1 converges in fewer Newton iterations than
			// estimating alp1 directly. Because omg12 is near pi, work
			// with omg12a = pi - omg12.
			k := astroid(x, y)
			var omg12a float64
			if g.f >= 0 {
				omg12a = lamscale * (-x * k / (1 + k))
			} else {
				omg12a = lamscale * (-y * (1 + k) / k)
			}
			somg12, comg12 = math.Sincos(omg12a)
			comg12 = -comg12
			// Update spherical estimate of alp1 using omg12 instead of lam12
			salp1 = cbet2 * somg12
			calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
		}
	}
	// Sanity check on starting guess. Backwards check allows NaN through.
	if !(salp1 <= 0) {
		salp1, calp1 = norm2(salp1, calp1)
	} else {
		salp1, calp1 = 1, 0
	}
	return sig12, salp1, calp1, salp2, calp2, dnm
}

// lambda12 solves the hybrid problem: given the starting azimuth alp1,
// find the longitude difference lam12 (relative to lam120) reached at
// latitude bet2, together with its derivative with respect to alp1 when
// diffp is set.
func (g *geodGeodesic) lambda12(
	sbet1, cbet1, dn1, sbet2, cbet2, dn2, salp1, calp1, slam120, clam120 float64,
	diffp bool, c1a, c2a, c3a []float64,
) (lam12, salp2, calp2, sig12, ssig1, csig1, ssig2, csig2, eps, domg12, dlam12 float64) {
	if sbet1 == 0 && calp1 == 0 {
		// Break degeneracy of equatorial line. This case has already been
		// handled.
		calp1 = -tiny
	}

	// sin(alp1) * cos(bet1) = sin(alp0)
	salp0 := salp1 * cbet1
	calp0 := hypot(calp1, salp1*sbet1) // calp0 > 0

	// tan(bet1) = tan(sig1) * cos(alp1)
	// tan(omg1) = sin(alp0) * tan(sig1) = tan(omg1)=tan(alp1)*sin(bet1)
	ssig1 = sbet1
	somg1 := salp0 * sbet1
	csig1 = calp1 * cbet1
	comg1 := csig1
	ssig1, csig1 = norm2(ssig1, csig1)
	// somg1, comg1 need not be normalized

	// Enforce symmetries in the case abs(bet2) = -bet1. Need to be careful
	// about this case, since this can yield singularities in the Newton
	// iteration.
	// sin(alp2) * cos(bet2) = sin(alp0)
	if cbet2 != cbet1 {
		salp2 = salp0 / cbet2
	} else {
		salp2 = salp1
	}
	// calp2 = sqrt(1 - sq(salp2))
	//       = sqrt(sq(calp0) - sq(sbet2)) / cbet2
	// and subst for calp0 and rearrange to give (choose positive sqrt
	// to give alp2 in [0, pi/2]).
	if cbet2 != cbet1 || math.Abs(sbet2) != -sbet1 {
		var d float64
		if cbet1 < -sbet1 {
			d = (cbet2 - cbet1) * (cbet1 + cbet2)
		} else {
			d = (sbet1 - sbet2) * (sbet1 + sbet2)
		}
		calp2 = math.Sqrt(sq(calp1*cbet1)+d) / cbet2
	} else {
		calp2 = math.Abs(calp1)
	}
	// tan(bet2) = tan(sig2) * cos(alp2)
	// tan(omg2) = sin(alp0) * tan(sig2).
	ssig2 = sbet2
	somg2 := salp0 * sbet2
	csig2 = calp2 * cbet2
	comg2 := csig2
	ssig2, csig2 = norm2(ssig2, csig2)

	// sig12 = sig2 - sig1, limit to [0, pi]
	sig12 = math.Atan2(math.Max(0, csig1*ssig2-ssig1*csig2),
		csig1*csig2+ssig1*ssig2)

	// omg12 = omg2 - omg1, limit to [0, pi]
	somg12 := math.Max(0, comg1*somg2-somg1*comg2)
	comg12 := comg1*comg2 + somg1*somg2
	// eta = omg12 - lam120
	eta := math.Atan2(somg12*clam120-comg12*slam120,
		comg12*clam120+somg12*slam120)

	k2 := sq(calp0) * g.ep2
	eps = k2 / (2*(1+math.Sqrt(1+k2)) + k2)
	g.c3f(eps, c3a)
	b312 := sinCosSeries(true, ssig2, csig2, c3a) -
		sinCosSeries(true, ssig1, csig1, c3a)
	domg12 = -g.f * g.a3f(eps) * salp0 * (sig12 + b312)
	lam12 = eta + domg12

	dlam12 = math.NaN()
	if diffp {
		if calp2 == 0 {
			dlam12 = -2 * g.f1 * dn1 / sbet1
		} else {
			_, dlam12, _, _, _ = g.lengths(eps, sig12,
				ssig1, csig1, dn1, ssig2, csig2, dn2, cbet1, cbet2,
				ReducedLength, c1a, c2a)
			dlam12 *= g.f1 / (calp2 * cbet2)
		}
	}
	return lam12, salp2, calp2, sig12, ssig1, csig1, ssig2, csig2, eps, domg12, dlam12
}

// genInverse is the general inverse problem. It returns the arc length
// a12 (degrees) and the sines and cosines of the azimuths at both ends;
// s12, m12, M12, M21 and S12 are set only when selected by outmask.
func (g *geodGeodesic) genInverse(lat1, lon1, lat2, lon2 float64, outmask Mask) (
	a12, s12, salp1, calp1, salp2, calp2, m12, M12, M21, S12 float64,
) {
	a12, s12, m12 = math.NaN(), math.NaN(), math.NaN()
	M12, M21, S12 = math.NaN(), math.NaN(), math.NaN()
	outmask = outmask.outputs()

	// Compute longitude difference (angDiff does this carefully). Result is
	// in [-180, 180] but -180 is only for west-going geodesics. 180 is for
	// east-going and meridional geodesics.
	lon12, lon12s := angDiff(lon1, lon2)
	// Make longitude difference positive.
	lonsign := 1.0
	if !(lon12 >= 0) {
		lonsign = -1
	}
	// If very close to being on the same half-meridian, then make it so.
	lon12 = lonsign * angRound(lon12)
	lon12s = angRound((180 - lon12) - lonsign*lon12s)
	lam12 := lon12 * degree
	var slam12, clam12 float64
	if lon12 > 90 {
		slam12, clam12 = sincosd(lon12s)
		clam12 = -clam12
	} else {
		slam12, clam12 = sincosd(lon12)
	}

	// If really close to the equator, treat as on equator.
	lat1 = angRound(latFix(lat1))
	lat2 = angRound(latFix(lat2))
	// Swap points so that point with higher (abs) latitude is point 1.
	// If one latitude is a NaN, then it becomes lat1.
	swapp := 1.0
	if math.Abs(lat1) < math.Abs(lat2) {
		swapp = -1
		lonsign *= -1
		lat1, lat2 = lat2, lat1
	}
	// Make lat1 <= 0
	latsign := -1.0
	if lat1 < 0 {
		latsign = 1
	}
	lat1 *= latsign
	lat2 *= latsign
	// Now we have
	//
	//     0 <= lon12 <= 180
	//     -90 <= lat1 <= 0
	//     lat1 <= lat2 <= -lat1
	//
	// lonsign, swapp, latsign register the transformation to bring the
	// coordinates to this canonical form. In all cases, 1 means no change
	// was made. These transformations reduce the number of cases to check
	// and enforce symmetries in the results.

	sbet1, cbet1 := sincosd(lat1)
	sbet1 *= g.f1
	// Ensure cbet1 = +epsilon at poles
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)

	sbet2, cbet2 := sincosd(lat2)
	sbet2 *= g.f1
	sbet2, cbet2 = norm2(sbet2, cbet2)
	cbet2 = math.Max(tiny, cbet2)

	// If cbet1 < -sbet1, then cbet2 - cbet1 is a sensitive measure of
	// |bet1| - |bet2|. Alternatively (cbet1 >= -sbet1), abs(sbet2) + sbet1
	// is a better measure. This logic is used in assigning calp2 in
	// lambda12. Sometimes these quantities vanish and in that case we force
	// bet2 = +/- bet1 exactly.
	if cbet1 < -sbet1 {
		if cbet2 == cbet1 {
			if sbet2 < 0 {
				sbet2 = sbet1
			} else {
				sbet2 = -sbet1
			}
		}
	} else if math.Abs(sbet2) == -sbet1 {
		cbet2 = cbet1
	}

	dn1 := math.Sqrt(1 + g.ep2*sq(sbet1))
	dn2 := math.Sqrt(1 + g.ep2*sq(sbet2))

	// index zero elements of c1a, c2a and c3a are unused
	var c1a [nC1 + 1]float64
	var c2a [nC2 + 1]float64
	var c3a [nC3]float64

	var sig12, s12x, m12x float64
	// somg12 > 1 marks that it needs to be calculated
	somg12, comg12, omg12 := 2.0, 0.0, 0.0

	meridian := lat1 == -90 || slam12 == 0
	if meridian {
		// Endpoints are on a single full meridian, so the geodesic might
		// lie on a meridian.
		calp1, salp1 = clam12, slam12 // head to the target longitude
		calp2, salp2 = 1, 0           // at the target we're heading north

		// tan(bet) = tan(sig) * cos(alp)
		ssig1, csig1 := sbet1, calp1*cbet1
		ssig2, csig2 := sbet2, calp2*cbet2

		// sig12 = sig2 - sig1
		sig12 = math.Atan2(math.Max(0, csig1*ssig2-ssig1*csig2),
			csig1*csig2+ssig1*ssig2)
		s12x, m12x, _, M12, M21 = g.lengths(g.n, sig12,
			ssig1, csig1, dn1, ssig2, csig2, dn2, cbet1, cbet2,
			outmask|Distance|ReducedLength, c1a[:], c2a[:])
		// Add the check for sig12 since zero length geodesics might yield
		// m12 < 0. In fact, we will have sig12 > pi/2 for meridional
		// geodesic which is not a shortest path.
		if sig12 < 1 || m12x >= 0 {
			// Prevent negative s12 or m12 for short lines
			if sig12 < 3*tiny || (sig12 < tol0 && (s12x < 0 || m12x < 0)) {
				sig12, m12x, s12x = 0, 0, 0
			}
			m12x *= g.b
			s12x *= g.b
			a12 = sig12 / degree
		} else {
			// m12 < 0, i.e., prolate and too close to anti-podal
			meridian = false
		}
	}

	if !meridian && sbet1 == 0 && // and sbet2 == 0
		// Mimic the way lambda12 works with calp1 = 0
		(g.f <= 0 || lon12s >= g.f*180) {
		// Geodesic runs along equator
		calp1, calp2 = 0, 0
		salp1, salp2 = 1, 1
		s12x = g.a * lam12
		sig12 = lam12 / g.f1
		omg12 = sig12
		m12x = g.b * math.Sin(sig12)
		if outmask&GeodesicScale != 0 {
			M12 = math.Cos(sig12)
			M21 = M12
		}
		a12 = lon12 / g.f1
	} else if !meridian {
		// Now point1 and point2 belong within a hemisphere bounded by a
		// meridian and geodesic is neither meridional nor equatorial.

		// Figure a starting point for Newton's method
		var dnm float64
		sig12, salp1, calp1, salp2, calp2, dnm = g.inverseStart(
			sbet1, cbet1, dn1, sbet2, cbet2, dn2, lam12, slam12, clam12,
			c1a[:], c2a[:])

		if sig12 >= 0 {
			// Short lines (inverseStart sets salp2, calp2, dnm)
			s12x = sig12 * g.b * dnm
			m12x = sq(dnm) * g.b * math.Sin(sig12/dnm)
			if outmask&GeodesicScale != 0 {
				M12 = math.Cos(sig12 / dnm)
				M21 = M12
			}
			a12 = sig12 / degree
			omg12 = lam12 / (g.f1 * dnm)
		} else {
			// Newton's method. This is a straightforward solution of
			// f(alp1) = lambda12(alp1) - lam12 = 0 with one wrinkle. f(alp)
			// has exactly one root in the interval (0, pi) and its
			// derivative is positive at the root. Thus f(alp) is positive
			// for alp > alp1 and negative for alp < alp1. During the course
			// of the iteration, a range (alp1a, alp1b) is maintained which
			// brackets the root and with each evaluation of f(alp) the
			// range is shrunk if possible. Newton's method is restarted
			// whenever the derivative of f is negative (because the new
			// value of alp1 is then further from the solution) or if the
			// new estimate of alp1 lies outside (0,pi); in this case, the
			// new starting guess is taken to be (alp1a + alp1b) / 2.
			var ssig1, csig1, ssig2, csig2, eps, domg12 float64
			tripn, tripb := false, false
			// Bracketing range
			salp1a, calp1a := tiny, 1.0
			salp1b, calp1b := tiny, -1.0
			for numit := 0; numit < maxit2; numit++ {
				// the WGS84 test set: mean = 1.47, sd = 1.25, max = 16
				// WGS84 and random input: mean = 2.85, sd = 0.60
				var v, dv float64
				v, salp2, calp2, sig12, ssig1, csig1, ssig2, csig2,
					eps, domg12, dv = g.lambda12(
					sbet1, cbet1, dn1, sbet2, cbet2, dn2,
					salp1, calp1, slam12, clam12, numit < maxit1,
					c1a[:], c2a[:], c3a[:])
				// 2 * tol0 is approximately 1 ulp for a number in [0, pi].
				// Reversed test to allow escape with NaNs
				mult := 1.0
				if tripn {
					mult = 8
				}
				if tripb || !(math.Abs(v) >= mult*tol0) {
					break
				}
				// Update bracketing values
				if v > 0 && (numit > maxit1 || calp1/salp1 > calp1b/salp1b) {
					salp1b, calp1b = salp1, calp1
				} else if v < 0 && (numit > maxit1 || calp1/salp1 < calp1a/salp1a) {
					salp1a, calp1a = salp1, calp1
				}
				if numit < maxit1 && dv > 0 {
					dalp1 := -v / dv
					sdalp1, cdalp1 := math.Sincos(dalp1)
					nsalp1 := salp1*cdalp1 + calp1*sdalp1
					if nsalp1 > 0 && math.Abs(dalp1) < math.Pi {
						calp1 = calp1*cdalp1 - salp1*sdalp1
						salp1 = nsalp1
						salp1, calp1 = norm2(salp1, calp1)
						// In some regimes we don't get quadratic convergence
						// because slope -> 0. So use convergence conditions
						// based on epsilon instead of sqrt(epsilon).
						tripn = math.Abs(v) <= 16*tol0
						continue
					}
				}
				// Either dv was not positive or updated value was outside
				// legal range. Use the midpoint of the bracket as the next
				// estimate. This is not needed for the WGS84 ellipsoid,
				// but it does catch problems with more eccentric ellipsoids.
				salp1 = (salp1a + salp1b) / 2
				calp1 = (calp1a + calp1b) / 2
				salp1, calp1 = norm2(salp1, calp1)
				tripn = false
				tripb = math.Abs(salp1a-salp1)+(calp1a-calp1) < tolb ||
					math.Abs(salp1-salp1b)+(calp1-calp1b) < tolb
			}
			// Ensure that the reduced length and geodesic scale are
			// computed in a "canonical" way, with the I2 integral.
			lengthmask := outmask
			if outmask&(ReducedLength|GeodesicScale) != 0 {
				lengthmask |= Distance
			}
			s12x, m12x, _, M12, M21 = g.lengths(eps, sig12,
				ssig1, csig1, dn1, ssig2, csig2, dn2, cbet1, cbet2,
				lengthmask, c1a[:], c2a[:])
			m12x *= g.b
			s12x *= g.b
			a12 = sig12 / degree
			if outmask&Area != 0 {
				// omg12 = lam12 - domg12
				sdomg12, cdomg12 := math.Sincos(domg12)
				somg12 = slam12*cdomg12 - clam12*sdomg12
				comg12 = clam12*cdomg12 + slam12*sdomg12
			}
		}
	}

	if outmask&Distance != 0 {
		s12 = 0 + s12x // convert -0 to 0
	}
	if outmask&ReducedLength != 0 {
		m12 = 0 + m12x
	}

	if outmask&Area != 0 {
		// From lambda12: sin(alp1) * cos(bet1) = sin(alp0)
		salp0 := salp1 * cbet1
		calp0 := hypot(calp1, salp1*sbet1) // calp0 > 0
		if calp0 != 0 && salp0 != 0 {
			// From lambda12: tan(bet) = tan(sig) * cos(alp)
			ssig1, csig1 := norm2(sbet1, calp1*cbet1)
			ssig2, csig2 := norm2(sbet2, calp2*cbet2)
			k2 := sq(calp0) * g.ep2
			eps := k2 / (2*(1+math.Sqrt(1+k2)) + k2)
			// Multiplier = a^2 * e^2 * cos(alpha0) * sin(alpha0).
			a4 := sq(g.a) * calp0 * salp0 * g.e2
			var c4a [nC4]float64
			g.c4f(eps, c4a[:])
			b41 := sinCosSeries(false, ssig1, csig1, c4a[:])
			b42 := sinCosSeries(false, ssig2, csig2, c4a[:])
			S12 = a4 * (b42 - b41)
		} else {
			// Avoid problems with indeterminate sig1, sig2 on equator
			S12 = 0
		}
		if !meridian && somg12 > 1 {
			somg12, comg12 = math.Sincos(omg12)
		}

		var alp12 float64
		if !meridian &&
			// omg12 < 3/4 * pi
			comg12 > -0.7071 &&
			// Long difference not too big and lat difference not too big
			sbet2-sbet1 < 1.75 {
			// Use tan(Gamma/2) = tan(omg12/2)
			// * (tan(bet1/2)+tan(bet2/2))/(1+tan(bet1/2)*tan(bet2/2))
			// with tan(x/2) = sin(x)/(1+cos(x))
			domg12 := 1 + comg12
			dbet1 := 1 + cbet1
			dbet2 := 1 + cbet2
			alp12 = 2 * math.Atan2(somg12*(sbet1*dbet2+sbet2*dbet1),
				domg12*(sbet1*sbet2+dbet1*dbet2))
		} else {
			// alp12 = alp2 - alp1, used in atan2 so no need to normalize
			salp12 := salp2*calp1 - calp2*salp1
			calp12 := calp2*calp1 + salp2*salp1
			// The right thing appears to happen if alp1 = +/-180 and
			// alp2 = 0, viz salp12 = -0 and alp12 = -180. However this
			// depends on the sign being attached to 0 correctly. The
			// following ensures the correct behavior.
			if salp12 == 0 && calp12 < 0 {
				salp12 = tiny * calp1
				calp12 = -1
			}
			alp12 = math.Atan2(salp12, calp12)
		}
		S12 += g.c2 * alp12
		S12 *= swapp * lonsign * latsign
		// Convert -0 to 0
		S12 += 0
	}

	// Convert calp, salp to azimuth accounting for lonsign, swapp, latsign.
	if swapp < 0 {
		salp1, salp2 = salp2, salp1
		calp1, calp2 = calp2, calp1
		if outmask&GeodesicScale != 0 {
			M12, M21 = M21, M12
		}
	}
	salp1 *= swapp * lonsign
	calp1 *= swapp * latsign
	salp2 *= swapp * lonsign
	calp2 *= swapp * latsign

	return a12, s12, salp1, calp1, salp2, calp2, m12, M12, M21, S12
}

// inverse packages genInverse into a Result.
func (g *geodGeodesic) inverse(lat1, lon1, lat2, lon2 float64, mask Mask) Result {
	a12, s12, salp1, calp1, salp2, calp2, m12, M12, M21, S12 :=
		g.genInverse(lat1, lon1, lat2, lon2, mask)
	out := mask.outputs()
	r := nanResult()
	r.Lat1 = latFix(lat1)
	r.Lat2 = latFix(lat2)
	if out&LongUnroll != 0 {
		lon12, e := angDiff(lon1, lon2)
		r.Lon1 = lon1
		r.Lon2 = (lon1 + lon12) + e
	} else {
		r.Lon1 = angNormalize(lon1)
		r.Lon2 = angNormalize(lon2)
	}
	r.A12 = a12
	if out&Distance != 0 {
		r.S12 = s12
	}
	if out&Azimuth != 0 {
		r.Azi1 = atan2d(salp1, calp1)
		r.Azi2 = atan2d(salp2, calp2)
	}
	if out&ReducedLength != 0 {
		r.ReducedLength = m12
	}
	if out&GeodesicScale != 0 {
		r.M12 = M12
		r.M21 = M21
	}
	if out&Area != 0 {
		r.Area = S12
	}
	return r
}
