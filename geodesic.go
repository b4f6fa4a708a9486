package geodesic

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidEllipsoid is returned by NewEllipsoid and NewSpherical when the
// axes of the ellipsoid are not finite and positive.
var ErrInvalidEllipsoid = errors.New("geodesic: invalid ellipsoid")

// WGS84 conforming ellipsoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = MustEllipsoid(6378137, float64(1.)/298.257223563)

// Globe is a pre-initialized spherical representing Earth as a
// terrestrial globe.
var Globe = must(NewSpherical(6378137))

// Ellipsoid is an object for performing geodesic operations. It is
// immutable and safe for concurrent use.
type Ellipsoid struct {
	g          geodGeodesic
	radius     float64
	flattening float64
	spherical  bool
}

// NewEllipsoid initializes a new geodesic ellipsoid object.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid. Zero gives a
// sphere, a negative value a prolate ellipsoid.
//
// An error wrapping ErrInvalidEllipsoid is returned unless radius and the
// polar semi-axis radius*(1-flattening) are both finite and positive.
//
// The WGS84 package-level variable is a pre-initialized ellipsoid
// representing Earth.
func NewEllipsoid(radius, flattening float64) (*Ellipsoid, error) {
	if !(isfinite(radius) && radius > 0) {
		return nil, errors.Wrapf(ErrInvalidEllipsoid,
			"equatorial radius %v is not positive", radius)
	}
	if b := radius * (1 - flattening); !(isfinite(b) && b > 0) {
		return nil, errors.Wrapf(ErrInvalidEllipsoid,
			"polar semi-axis %v is not positive (flattening %v)", b, flattening)
	}
	e := &Ellipsoid{radius: radius, flattening: flattening}
	geodInit(&e.g, radius, flattening)
	return e, nil
}

// MustEllipsoid is like NewEllipsoid but panics on error.
func MustEllipsoid(radius, flattening float64) *Ellipsoid {
	return must(NewEllipsoid(radius, flattening))
}

func must(e *Ellipsoid, err error) *Ellipsoid {
	if err != nil {
		panic(err)
	}
	return e
}

// NewSpherical initializes a new geodesic ellipsoid object that uses
// simplified operations on a sphere.
//
// The Inverse and Direct operations will often be more computationally
// efficient than NewEllipsoid because it uses simplier great-circle
// calculations such as the Haversine formula. Requests for quantities
// beyond Standard, or for unrolled longitudes, use the full solver.
//
// Param radius is the equatorial radius (meters).
//
// The Globe package-level variable is a pre-initialized spherical
// representing Earth as a terrestrial globe.
func NewSpherical(radius float64) (*Ellipsoid, error) {
	e, err := NewEllipsoid(radius, 0)
	if err != nil {
		return nil, err
	}
	e.spherical = true
	return e, nil
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.radius
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.flattening
}

// MinorRadius returns the polar semi-axis (meters).
func (e *Ellipsoid) MinorRadius() float64 {
	return e.g.b
}

// EllipsoidArea returns the total area of the ellipsoid (meters-squared).
func (e *Ellipsoid) EllipsoidArea() float64 {
	return 4 * math.Pi * e.g.c2
}

// Spherical returns true if the ellipsoid was initialized using NewSpherical.
func (e *Ellipsoid) Spherical() bool {
	return e.spherical
}

// Inverse solve the inverse geodesic problem.
//
// Param lat1 is latitude of point 1 (degrees).
// Param lon1 is longitude of point 1 (degrees).
// Param lat2 is latitude of point 2 (degrees).
// Param lon2 is longitude of point 2 (degrees).
// Param mask selects the quantities to compute. With LongUnroll, Lon2 is
// returned as Lon1 plus the longitude difference in (-180, 180], otherwise
// both longitudes are reduced to (-180, 180].
//
// lat1 and lat2 should be in the range [-90,+90].
// The values of Azi1 and Azi2 returned are in the range (-180,+180].
// If any coordinate is not finite, every field of the result is NaN.
//
// The solution to the inverse problem is found using Newton's method. If
// this fails to converge (this is very unlikely in geodetic applications
// but does occur for very eccentric ellipsoids), then the bisection method
// is used to refine the solution.
func (e *Ellipsoid) Inverse(lat1, lon1, lat2, lon2 float64, mask Mask) Result {
	if !(isfinite(lat1) && isfinite(lon1) && isfinite(lat2) && isfinite(lon2)) {
		return nanResult()
	}
	if e.spherical && sphericalMask(mask) {
		return sphericalInverse(e.radius, lat1, lon1, lat2, lon2, mask)
	}
	return e.g.inverse(lat1, lon1, lat2, lon2, mask)
}

// Direct solves the direct geodesic problem.
//
// Param lat1 is the latitude of point 1 (degrees).
// Param lon1 is the longitude of point 1 (degrees).
// Param azi1 is the azimuth at point 1 (degrees).
// Param s12 is the distance from point 1 to point 2 (meters). negative is ok.
// Param mask selects the quantities to compute.
//
// lat1 should be in the range [-90,+90].
// The values of Lon2 and Azi2 returned are in the range (-180,+180] unless
// mask has LongUnroll.
func (e *Ellipsoid) Direct(lat1, lon1, azi1, s12 float64, mask Mask) Result {
	return e.GenDirect(lat1, lon1, azi1, false, s12, mask)
}

// ArcDirect solves the direct geodesic problem in terms of the arc length
// a12 (degrees) on the auxiliary sphere.
func (e *Ellipsoid) ArcDirect(lat1, lon1, azi1, a12 float64, mask Mask) Result {
	return e.GenDirect(lat1, lon1, azi1, true, a12, mask)
}

// GenDirect is the general direct problem. Param arcmode selects whether
// s12a12 is a distance in meters (false) or an arc length in degrees
// (true).
func (e *Ellipsoid) GenDirect(lat1, lon1, azi1 float64, arcmode bool, s12a12 float64, mask Mask) Result {
	if e.spherical && sphericalMask(mask) {
		return sphericalDirect(e.radius, lat1, lon1, azi1, arcmode, s12a12, mask)
	}
	return e.g.genDirect(lat1, lon1, azi1, arcmode, s12a12, mask)
}

func (g *geodGeodesic) genDirect(lat1, lon1, azi1 float64, arcmode bool, s12a12 float64, mask Mask) Result {
	caps := mask
	if !arcmode {
		// Automatically supply DistanceIn if necessary
		caps |= DistanceIn
	}
	l := newLine(g, lat1, lon1, azi1, caps)
	return l.GenPosition(arcmode, s12a12, mask)
}

// Line returns a geodesic line starting at (lat1, lon1) with azimuth
// azi1. The line can compute every quantity.
func (e *Ellipsoid) Line(lat1, lon1, azi1 float64) *Line {
	return newLine(&e.g, lat1, lon1, azi1, All)
}

// DirectLine returns a geodesic line starting at (lat1, lon1) with
// azimuth azi1 whose point 3 lies at distance s12.
func (e *Ellipsoid) DirectLine(lat1, lon1, azi1, s12 float64) *Line {
	l := e.Line(lat1, lon1, azi1)
	l.SetDistance(s12)
	return l
}

// ArcDirectLine returns a geodesic line starting at (lat1, lon1) with
// azimuth azi1 whose point 3 lies at arc length a12.
func (e *Ellipsoid) ArcDirectLine(lat1, lon1, azi1, a12 float64) *Line {
	l := e.Line(lat1, lon1, azi1)
	l.SetArc(a12)
	return l
}

// InverseLine returns the geodesic line through (lat1, lon1) and
// (lat2, lon2) with point 3 set at (lat2, lon2). This is more accurate
// than building a line from the azimuth reported by Inverse.
func (e *Ellipsoid) InverseLine(lat1, lon1, lat2, lon2 float64) *Line {
	a12, _, salp1, calp1, _, _, _, _, _, _ :=
		e.g.genInverse(lat1, lon1, lat2, lon2, None)
	azi1 := atan2d(salp1, calp1)
	l := newLineInt(&e.g, lat1, lon1, azi1, salp1, calp1, All)
	l.SetArc(a12)
	return l
}
