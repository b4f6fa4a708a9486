package geodesic

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// InverseLatLng solves the inverse problem between two s2 points given as
// latitude/longitude pairs.
// Returns the distance s12 (meters) and the azimuths at both ends.
func (e *Ellipsoid) InverseLatLng(p, q s2.LatLng) (s12 float64, azi1, azi2 s1.Angle) {
	r := e.Inverse(p.Lat.Degrees(), p.Lng.Degrees(), q.Lat.Degrees(), q.Lng.Degrees(),
		Distance|Azimuth)
	return r.S12, s1.Angle(r.Azi1) * s1.Degree, s1.Angle(r.Azi2) * s1.Degree
}

// DirectLatLng returns the point reached by travelling s12 meters from p
// with starting azimuth azi1.
func (e *Ellipsoid) DirectLatLng(p s2.LatLng, azi1 s1.Angle, s12 float64) s2.LatLng {
	r := e.Direct(p.Lat.Degrees(), p.Lng.Degrees(), azi1.Degrees(), s12,
		Latitude|Longitude)
	return s2.LatLngFromDegrees(r.Lat2, r.Lon2)
}

// DistancePoints returns the geodesic distance (meters) between two points
// on the unit sphere.
func (e *Ellipsoid) DistancePoints(p, q s2.Point) float64 {
	s12, _, _ := e.InverseLatLng(s2.LatLngFromPoint(p), s2.LatLngFromPoint(q))
	return s12
}
