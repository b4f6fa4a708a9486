package geodesic

// Mask selects the quantities computed by Direct, Inverse and the Line
// methods. Masks are OR-combined. Fields of a Result that are not selected
// are set to NaN, except A12 which is always set.
//
// When used as the capabilities of a Line, a Mask also determines which
// series are precomputed for the line; asking a Line for a quantity it was
// not constructed for yields NaN.
type Mask uint32

const (
	capNone Mask = 0
	capC1   Mask = 1 << 0
	capC1p  Mask = 1 << 1
	capC2   Mask = 1 << 2
	capC3   Mask = 1 << 3
	capC4   Mask = 1 << 4
	capAll  Mask = 0x1f
	outAll  Mask = 0x7f80
	outMask Mask = 0xff80 // includes LongUnroll
)

const (
	// None computes nothing beyond the arc length.
	None Mask = 0
	// Latitude computes lat2.
	Latitude Mask = 1<<7 | capNone
	// Longitude computes lon2.
	Longitude Mask = 1<<8 | capC3
	// Azimuth computes azi1 and azi2.
	Azimuth Mask = 1<<9 | capNone
	// Distance computes s12.
	Distance Mask = 1<<10 | capC1
	// Standard is Latitude | Longitude | Azimuth | Distance.
	Standard Mask = Latitude | Longitude | Azimuth | Distance
	// DistanceIn allows a Line to be queried with a distance instead of
	// an arc length.
	DistanceIn Mask = 1<<11 | capC1 | capC1p
	// ReducedLength computes m12.
	ReducedLength Mask = 1<<12 | capC1 | capC2
	// GeodesicScale computes M12 and M21.
	GeodesicScale Mask = 1<<13 | capC1 | capC2
	// Area computes S12.
	Area Mask = 1<<14 | capC4
	// All computes everything; it does not include LongUnroll.
	All Mask = outAll | capAll
	// LongUnroll reports longitudes as unbounded values counting the
	// number of times the geodesic wraps around the ellipsoid, instead of
	// reducing them to (-180, 180].
	LongUnroll Mask = 1 << 15
)

// Has reports whether every output bit of flags is present in m.
func (m Mask) Has(flags Mask) bool {
	flags &= outMask
	return m&flags == flags
}

// outputs strips the capability bits so that output flags sharing a series
// do not alias each other.
func (m Mask) outputs() Mask {
	return m & outMask
}
