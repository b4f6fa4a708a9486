package geodesic

import "math"

// Line is a geodesic anchored at point 1 (lat1, lon1) with azimuth azi1.
// The series needed to locate points along it are computed once, so
// repeated calls to Position are cheaper than repeated calls to Direct.
//
// A Line may also carry a reference point 3, set with SetDistance or
// SetArc, at distance s13 (arc a13) from point 1. Lines returned by
// Ellipsoid.DirectLine, ArcDirectLine and InverseLine have point 3 set.
//
// A Line is safe for concurrent use by multiple goroutines as long as
// SetDistance and SetArc are not called concurrently.
type Line struct {
	lat1, lon1, azi1 float64
	a, f, b, c2, f1  float64

	salp1, calp1 float64
	salp0, calp0 float64
	k2           float64
	ssig1, csig1 float64
	dn1          float64
	stau1, ctau1 float64
	somg1, comg1 float64

	a1m1, a2m1, a3c, a4 float64
	b11, b21, b31, b41  float64
	c1a, c1pa, c2a      [nC1 + 1]float64
	c3a                 [nC3]float64
	c4a                 [nC4]float64
	s13, a13            float64
	caps                Mask
}

// newLine sets up a line from point 1 with azimuth azi1. caps selects
// which series to precompute; None means DistanceIn | Longitude.
func newLine(g *geodGeodesic, lat1, lon1, azi1 float64, caps Mask) *Line {
	azi1 = angNormalize(azi1)
	// Guard against underflow in salp0
	salp1, calp1 := sincosd(angRound(azi1))
	return newLineInt(g, lat1, lon1, azi1, salp1, calp1, caps)
}

func newLineInt(g *geodGeodesic, lat1, lon1, azi1, salp1, calp1 float64, caps Mask) *Line {
	l := &Line{}
	l.init(g, lat1, lon1, azi1, salp1, calp1, caps)
	return l
}

func (l *Line) init(g *geodGeodesic, lat1, lon1, azi1, salp1, calp1 float64, caps Mask) {
	l.a, l.f, l.b, l.c2, l.f1 = g.a, g.f, g.b, g.c2, g.f1
	if caps == None {
		caps = DistanceIn | Longitude
	}
	// always allow latitude and azimuth and unrolling of longitude
	l.caps = caps | Latitude | Azimuth | LongUnroll

	l.lat1 = latFix(lat1)
	l.lon1 = lon1
	l.azi1 = azi1
	l.salp1 = salp1
	l.calp1 = calp1

	sbet1, cbet1 := sincosd(angRound(l.lat1))
	sbet1 *= l.f1
	// Ensure cbet1 = +epsilon at poles
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)
	l.dn1 = math.Sqrt(1 + g.ep2*sq(sbet1))

	// Evaluate alp0 from sin(alp1) * cos(bet1) = sin(alp0),
	l.salp0 = l.salp1 * cbet1 // alp0 in [0, pi/2 - |bet1|]
	// Alt: calp0 = hypot(sbet1, calp1 * cbet1). The following is slightly
	// better (consider the case salp1 = 0).
	l.calp0 = hypot(l.calp1, l.salp1*sbet1)
	// Evaluate sig with tan(bet1) = tan(sig1) * cos(alp1).
	// sig = 0 is nearest northward crossing of equator.
	// With bet1 = 0, alp1 = pi/2, we have sig1 = 0 (equatorial line).
	// With bet1 =  pi/2, alp1 = -pi, sig1 =  pi/2
	// With bet1 = -pi/2, alp1 =  0 , sig1 = -pi/2
	// Evaluate omg1 with tan(omg1) = sin(alp0) * tan(sig1).
	// With alp0 in (0, pi/2], quadrants for sig and omg coincide.
	// No atan2(0,0) ambiguity at poles since cbet1 = +epsilon.
	// With alp0 = 0, omg1 = 0 for alp1 = 0, omg1 = pi for alp1 = pi.
	l.ssig1 = sbet1
	l.somg1 = l.salp0 * sbet1
	if sbet1 != 0 || l.calp1 != 0 {
		l.csig1 = cbet1 * l.calp1
	} else {
		l.csig1 = 1
	}
	l.comg1 = l.csig1
	l.ssig1, l.csig1 = norm2(l.ssig1, l.csig1) // sig1 in (-pi, pi]
	// norm2(somg1, comg1); -- don't need to normalize!

	l.k2 = sq(l.calp0) * g.ep2
	eps := l.k2 / (2*(1+math.Sqrt(1+l.k2)) + l.k2)

	if l.caps&capC1 != 0 {
		l.a1m1 = a1m1f(eps)
		c1f(eps, l.c1a[:])
		l.b11 = sinCosSeries(true, l.ssig1, l.csig1, l.c1a[:])
		s, c := math.Sincos(l.b11)
		// tau1 = sig1 + B11
		l.stau1 = l.ssig1*c + l.csig1*s
		l.ctau1 = l.csig1*c - l.ssig1*s
		// Not necessary because c1pa reverts c1a
		//    B11 = -sinCosSeries(true, stau1, ctau1, c1pa)
	}

	if l.caps&capC1p != 0 {
		c1pf(eps, l.c1pa[:])
	}

	if l.caps&capC2 != 0 {
		l.a2m1 = a2m1f(eps)
		c2f(eps, l.c2a[:])
		l.b21 = sinCosSeries(true, l.ssig1, l.csig1, l.c2a[:nC2+1])
	}

	if l.caps&capC3 != 0 {
		g.c3f(eps, l.c3a[:])
		l.a3c = -l.f * l.salp0 * g.a3f(eps)
		l.b31 = sinCosSeries(true, l.ssig1, l.csig1, l.c3a[:])
	}

	if l.caps&capC4 != 0 {
		g.c4f(eps, l.c4a[:])
		// Multiplier = a^2 * e^2 * cos(alpha0) * sin(alpha0)
		l.a4 = sq(l.a) * l.calp0 * l.salp0 * g.e2
		l.b41 = sinCosSeries(false, l.ssig1, l.csig1, l.c4a[:])
	}

	l.a13 = math.NaN()
	l.s13 = math.NaN()
}

// GenPosition is the general position function. Param arcmode selects
// whether s12a12 is a distance in meters (false) or an arc length in
// degrees (true). Param mask selects the outputs, which are further
// limited by the capabilities the line was constructed with. With
// LongUnroll in mask, Lon2 is unrolled.
func (l *Line) GenPosition(arcmode bool, s12a12 float64, mask Mask) Result {
	r := nanResult()
	unroll := mask&LongUnroll != 0
	outmask := mask & l.caps & outAll
	r.Lat1 = l.lat1
	r.Azi1 = l.azi1
	if unroll {
		r.Lon1 = l.lon1
	} else {
		r.Lon1 = angNormalize(l.lon1)
	}
	if !(arcmode || l.caps&DistanceIn&outMask != 0) {
		// Impossible distance calculation requested
		return r
	}

	var sig12, ssig12, csig12, b12, ab1 float64
	if arcmode {
		// Interpret s12a12 as spherical arc length
		sig12 = s12a12 * degree
		ssig12, csig12 = sincosd(s12a12)
	} else {
		// Interpret s12a12 as distance
		tau12 := s12a12 / (l.b * (1 + l.a1m1))
		s, c := math.Sincos(tau12)
		// tau2 = tau1 + tau12
		b12 = -sinCosSeries(true,
			l.stau1*c+l.ctau1*s,
			l.ctau1*c-l.stau1*s,
			l.c1pa[:])
		sig12 = tau12 - (b12 - l.b11)
		ssig12, csig12 = math.Sincos(sig12)
		if math.Abs(l.f) > 0.01 {
			// The reverted series loses accuracy for |f| > 1/100; one Newton
			// step on the forward series recovers it.
			ssig2 := l.ssig1*csig12 + l.csig1*ssig12
			csig2 := l.csig1*csig12 - l.ssig1*ssig12
			b12 = sinCosSeries(true, ssig2, csig2, l.c1a[:])
			serr := (1+l.a1m1)*(sig12+(b12-l.b11)) - s12a12/l.b
			sig12 -= serr / math.Sqrt(1+l.k2*sq(ssig2))
			ssig12, csig12 = math.Sincos(sig12)
			// Update b12 below
		}
	}

	// sig2 = sig1 + sig12
	ssig2 := l.ssig1*csig12 + l.csig1*ssig12
	csig2 := l.csig1*csig12 - l.ssig1*ssig12
	dn2 := math.Sqrt(1 + l.k2*sq(ssig2))
	if outmask&(Distance|ReducedLength|GeodesicScale) != 0 {
		if arcmode || math.Abs(l.f) > 0.01 {
			b12 = sinCosSeries(true, ssig2, csig2, l.c1a[:])
		}
		ab1 = (1 + l.a1m1) * (b12 - l.b11)
	}
	// sin(bet2) = cos(alp0) * sin(sig2)
	sbet2 := l.calp0 * ssig2
	// Alt: cbet2 = hypot(csig2, salp0 * ssig2)
	cbet2 := hypot(l.salp0, l.calp0*csig2)
	if cbet2 == 0 {
		// I.e., salp0 = 0, csig2 = 0. Break the degeneracy in this case
		cbet2 = tiny
		csig2 = tiny
	}
	// tan(alp0) = cos(sig2)*tan(alp2)
	salp2 := l.salp0
	calp2 := l.calp0 * csig2 // No need to normalize

	if outmask&Distance != 0 {
		if arcmode {
			r.S12 = l.b * ((1+l.a1m1)*sig12 + ab1)
		} else {
			r.S12 = s12a12
		}
	}

	if outmask&Longitude != 0 {
		// tan(omg2) = sin(alp0) * tan(sig2)
		somg2 := l.salp0 * ssig2
		comg2 := csig2 // No need to normalize
		E := copysign(1, l.salp0)
		var omg12 float64
		if unroll {
			// omg12 = omg2 - omg1
			omg12 = E * (sig12 -
				(math.Atan2(ssig2, csig2) - math.Atan2(l.ssig1, l.csig1)) +
				(math.Atan2(E*somg2, comg2) - math.Atan2(E*l.somg1, l.comg1)))
		} else {
			omg12 = math.Atan2(somg2*l.comg1-comg2*l.somg1,
				comg2*l.comg1+somg2*l.somg1)
		}
		lam12 := omg12 + l.a3c*
			(sig12+(sinCosSeries(true, ssig2, csig2, l.c3a[:])-l.b31))
		lon12 := lam12 / degree
		if unroll {
			r.Lon2 = l.lon1 + lon12
		} else {
			r.Lon2 = angNormalize(angNormalize(l.lon1) + angNormalize(lon12))
		}
	}

	if outmask&Latitude != 0 {
		r.Lat2 = atan2d(sbet2, l.f1*cbet2)
	}

	if outmask&Azimuth != 0 {
		r.Azi2 = atan2d(salp2, calp2)
	}

	if outmask&(ReducedLength|GeodesicScale) != 0 {
		b22 := sinCosSeries(true, ssig2, csig2, l.c2a[:nC2+1])
		ab2 := (1 + l.a2m1) * (b22 - l.b21)
		j12 := (l.a1m1-l.a2m1)*sig12 + (ab1 - ab2)
		if outmask&ReducedLength != 0 {
			// Add parens around (csig1 * ssig2) and (ssig1 * csig2) to
			// ensure accurate cancellation in the case of coincident points.
			r.ReducedLength = l.b * ((dn2*(l.csig1*ssig2) - l.dn1*(l.ssig1*csig2)) -
				l.csig1*csig2*j12)
		}
		if outmask&GeodesicScale != 0 {
			t := l.k2 * (ssig2 - l.ssig1) * (ssig2 + l.ssig1) / (l.dn1 + dn2)
			r.M12 = csig12 + (t*ssig2-csig2*j12)*l.ssig1/l.dn1
			r.M21 = csig12 - (t*l.ssig1-l.csig1*j12)*ssig2/dn2
		}
	}

	if outmask&Area != 0 {
		b42 := sinCosSeries(false, ssig2, csig2, l.c4a[:])
		var salp12, calp12 float64
		if l.calp0 == 0 || l.salp0 == 0 {
			// alp12 = alp2 - alp1, used in atan2 so no need to normalize
			salp12 = salp2*l.calp1 - calp2*l.salp1
			calp12 = calp2*l.calp1 + salp2*l.salp1
		} else {
			// tan(alp) = tan(alp0) * sec(sig)
			// tan(alp2-alp1) = (tan(alp2) -tan(alp1)) / (tan(alp2)*tan(alp1)+1)
			// = calp0 * salp0 * (csig1-csig2) / (salp0^2 + calp0^2 * csig1*csig2)
			// If csig12 > 0, write
			//   csig1 - csig2 = ssig12 * (csig1 * ssig12 / (1 + csig12) + ssig1)
			// else
			//   csig1 - csig2 = csig1 * (1 - csig12) + ssig12 * ssig1
			// No need to normalize
			if csig12 <= 0 {
				salp12 = l.csig1*(1-csig12) + ssig12*l.ssig1
			} else {
				salp12 = ssig12 * (l.csig1*ssig12/(1+csig12) + l.ssig1)
			}
			salp12 *= l.calp0 * l.salp0
			calp12 = sq(l.salp0) + sq(l.calp0)*l.csig1*csig2
		}
		r.Area = l.c2*math.Atan2(salp12, calp12) + l.a4*(b42-l.b41)
	}

	if arcmode {
		r.A12 = s12a12
	} else {
		r.A12 = sig12 / degree
	}
	return r
}

// Position returns the point at distance s12 meters from point 1. The
// line must have been constructed with DistanceIn.
func (l *Line) Position(s12 float64, mask Mask) Result {
	return l.GenPosition(false, s12, mask)
}

// ArcPosition returns the point at arc length a12 degrees from point 1.
func (l *Line) ArcPosition(a12 float64, mask Mask) Result {
	return l.GenPosition(true, a12, mask)
}

// SetDistance sets the distance from point 1 to point 3.
func (l *Line) SetDistance(s13 float64) {
	l.s13 = s13
	l.a13 = l.GenPosition(false, s13, None).A12
}

// SetArc sets the arc length from point 1 to point 3.
func (l *Line) SetArc(a13 float64) {
	l.a13 = a13
	l.s13 = l.GenPosition(true, a13, Distance).S12
}

// Distance returns the distance from point 1 to point 3, NaN if not set.
func (l *Line) Distance() float64 { return l.s13 }

// Arc returns the arc length from point 1 to point 3, NaN if not set.
func (l *Line) Arc() float64 { return l.a13 }

// Latitude returns the latitude of point 1.
func (l *Line) Latitude() float64 { return l.lat1 }

// Longitude returns the longitude of point 1 as given.
func (l *Line) Longitude() float64 { return l.lon1 }

// Azimuth returns the azimuth at point 1, reduced to (-180, 180].
func (l *Line) Azimuth() float64 { return l.azi1 }

// EquatorialAzimuth returns the azimuth at the northward equator crossing.
func (l *Line) EquatorialAzimuth() float64 {
	return atan2d(l.salp0, l.calp0)
}

// EquatorialArc returns the arc length from the northward equator
// crossing to point 1.
func (l *Line) EquatorialArc() float64 {
	return atan2d(l.ssig1, l.csig1)
}

// Capabilities returns the capabilities the line was constructed with.
func (l *Line) Capabilities() Mask { return l.caps }

// Has reports whether the line can compute every quantity in mask.
func (l *Line) Has(mask Mask) bool {
	return l.caps&mask == mask
}
