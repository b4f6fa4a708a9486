package geodesic

import "math"

// Result holds the outcome of a geodesic calculation between point 1
// (Lat1, Lon1) and point 2 (Lat2, Lon2). Angles are in degrees, lengths in
// meters and areas in meters-squared. Fields not requested by the Mask are
// NaN; A12 is always set.
type Result struct {
	Lat1 float64 // latitude of point 1
	Lon1 float64 // longitude of point 1
	Azi1 float64 // azimuth at point 1
	Lat2 float64 // latitude of point 2
	Lon2 float64 // longitude of point 2
	Azi2 float64 // (forward) azimuth at point 2
	S12  float64 // distance from point 1 to point 2
	A12  float64 // arc length on the auxiliary sphere from point 1 to point 2

	ReducedLength float64 // m12, reduced length of the geodesic
	M12           float64 // geodesic scale of point 2 relative to point 1
	M21           float64 // geodesic scale of point 1 relative to point 2
	Area          float64 // S12, area under the geodesic
}

func nanResult() Result {
	nan := math.NaN()
	return Result{
		Lat1: nan, Lon1: nan, Azi1: nan,
		Lat2: nan, Lon2: nan, Azi2: nan,
		S12: nan, A12: nan,
		ReducedLength: nan, M12: nan, M21: nan, Area: nan,
	}
}

// PolygonResult is returned by Polygon.Compute.
type PolygonResult struct {
	Count     int     // number of vertices
	Perimeter float64 // perimeter of the polygon or length of the polyline
	Area      float64 // signed area of the polygon, NaN for polylines
}
