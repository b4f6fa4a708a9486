package geodesic

import "math"

// accumulator sums floating point values at twice the normal precision.
// The value is s + t with t the rounding error of s.
type accumulator struct {
	s, t float64
}

func (a *accumulator) Set(y float64) {
	a.s, a.t = y, 0
}

func (a *accumulator) Add(y float64) {
	var u float64
	y, u = sumx(y, a.t)
	a.s, a.t = sumx(y, a.s)
	// u holds the residual from the first sum. The two sums are combined
	// so that s remains the leading term; when s is zero the residual
	// moves up.
	if a.s == 0 {
		a.s = u
	} else {
		a.t += u
	}
}

// Sum returns the value of the accumulator plus y without changing it.
func (a accumulator) Sum(y float64) float64 {
	a.Add(y)
	return a.s
}

func (a *accumulator) Negate() {
	a.s, a.t = -a.s, -a.t
}

// Remainder reduces the accumulator to [-y/2, y/2].
func (a *accumulator) Remainder(y float64) {
	a.s = math.Remainder(a.s, y)
	a.Add(0)
}

// Polygon accumulates the perimeter and area of a polygon (or the length
// of a polyline) whose edges are geodesics. Create one with
// Ellipsoid.PolygonInit.
//
// A Polygon is not safe for concurrent use.
type Polygon struct {
	e          *Ellipsoid
	polyline   bool
	num        int
	lat0, lon0 float64 // first vertex
	lat, lon   float64 // current vertex
	perimeter  accumulator
	area       accumulator
	crossings  int
}

// PolygonInit initializes a polygon.
// Param polyline for polyline instead of a polygon.
//
// If polyline is not set, then the sequence of vertices and edges added by
// Polygon.AddPoint() and Polygon.AddEdge() define a polygon and
// the perimeter and area are returned by Polygon.Compute().
// If polyline is set, then the vertices and edges define a polyline and
// only the perimeter is returned by Polygon.Compute().
//
// The area and perimeter are accumulated at two times the standard floating
// point precision to guard against the loss of accuracy with many-sided
// polygons. At any point you can ask for the perimeter and area so far.
func (e *Ellipsoid) PolygonInit(polyline bool) Polygon {
	p := Polygon{e: e, polyline: polyline}
	p.Clear()
	return p
}

// Clear the polygon, allowing a new polygon to be started.
func (p *Polygon) Clear() {
	p.num = 0
	p.crossings = 0
	p.perimeter.Set(0)
	p.area.Set(0)
	nan := math.NaN()
	p.lat0, p.lon0, p.lat, p.lon = nan, nan, nan, nan
}

// Polyline reports whether the polygon was initialized as a polyline.
func (p *Polygon) Polyline() bool {
	return p.polyline
}

// Count returns the number of vertices added so far.
func (p *Polygon) Count() int {
	return p.num
}

// CurrentPoint returns the most recently added vertex, NaN if there is
// none.
func (p *Polygon) CurrentPoint() (lat, lon float64) {
	return p.lat, p.lon
}

func (p *Polygon) edgeMask() Mask {
	if p.polyline {
		return Distance
	}
	return Distance | Area
}

// AddPoint adds a point to the polygon or polyline.
//
// Param lat is the latitude of the point (degrees).
// Param lon is the longitude of the point (degrees).
func (p *Polygon) AddPoint(lat, lon float64) {
	lon = angNormalize(lon)
	if p.num == 0 {
		p.lat0, p.lat = lat, lat
		p.lon0, p.lon = lon, lon
	} else {
		_, s12, _, _, _, _, _, _, _, S12 :=
			p.e.g.genInverse(p.lat, p.lon, lat, lon, p.edgeMask())
		p.perimeter.Add(s12)
		if !p.polyline {
			p.area.Add(S12)
			p.crossings += transit(p.lon, lon)
		}
		p.lat, p.lon = lat, lon
	}
	p.num++
}

// AddEdge adds an edge to the polygon or polyline. It does nothing if no
// point has been added yet.
//
// Param azi is the azimuth at current point (degrees).
// Param s is the distance from current point to next point (meters).
func (p *Polygon) AddEdge(azi, s float64) {
	if p.num == 0 {
		return
	}
	r := p.e.g.genDirect(p.lat, p.lon, azi, false, s,
		Latitude|Longitude|p.edgeMask()|LongUnroll)
	p.perimeter.Add(s)
	if !p.polyline {
		p.area.Add(r.Area)
		p.crossings += transitDirect(p.lon, r.Lon2)
	}
	p.lat, p.lon = r.Lat2, angNormalize(r.Lon2)
	p.num++
}

// Compute the results for a polygon.
//
// Param reverse, if set then clockwise (instead of
// counter-clockwise) traversal counts as a positive area.
// Param sign, if set then return a signed result for the area if
// the polygon is traversed in the "wrong" direction instead of returning
// the area for the rest of the earth.
//
// Arbitrarily complex polygons are allowed. In the case of
// self-intersecting polygons the area is accumulated "algebraically", e.g.,
// the areas of the 2 loops in a figure-8 polygon will partially cancel.
// There's no need to "close" the polygon by repeating the first vertex.
// For a polyline the area is NaN.
//
// More points can be added to the polygon after this call.
func (p *Polygon) Compute(reverse, sign bool) PolygonResult {
	res := PolygonResult{Count: p.num}
	if p.polyline {
		res.Area = math.NaN()
	}
	if p.num < 2 {
		return res
	}
	if p.polyline {
		res.Perimeter = p.perimeter.Sum(0)
		return res
	}
	_, s12, _, _, _, _, _, _, _, S12 :=
		p.e.g.genInverse(p.lat, p.lon, p.lat0, p.lon0, Distance|Area)
	res.Perimeter = p.perimeter.Sum(s12)
	area := p.area
	area.Add(S12)
	crossings := p.crossings + transit(p.lon, p.lon0)
	res.Area = reduceAccArea(&area, p.e.EllipsoidArea(), crossings, reverse, sign)
	return res
}

// TestPoint returns the results of Compute as if a point were added at
// (lat, lon). The polygon is not modified.
func (p *Polygon) TestPoint(lat, lon float64, reverse, sign bool) PolygonResult {
	res := PolygonResult{Count: p.num + 1}
	if p.polyline {
		res.Area = math.NaN()
	}
	if p.num == 0 {
		return res
	}
	perimeter := p.perimeter.Sum(0)
	var tempsum float64
	if !p.polyline {
		tempsum = p.area.Sum(0)
	}
	crossings := p.crossings
	n := 2
	if p.polyline {
		n = 1
	}
	for i := 0; i < n; i++ {
		la1, lo1, la2, lo2 := p.lat, p.lon, lat, lon
		if i != 0 {
			la1, lo1, la2, lo2 = lat, lon, p.lat0, p.lon0
		}
		_, s12, _, _, _, _, _, _, _, S12 :=
			p.e.g.genInverse(la1, lo1, la2, lo2, p.edgeMask())
		perimeter += s12
		if !p.polyline {
			tempsum += S12
			crossings += transit(lo1, lo2)
		}
	}
	res.Perimeter = perimeter
	if !p.polyline {
		res.Area = reduceArea(tempsum, p.e.EllipsoidArea(), crossings, reverse, sign)
	}
	return res
}

// TestEdge returns the results of Compute as if an edge with azimuth azi
// and length s were added. The polygon is not modified. With no current
// point, both perimeter and area are NaN.
func (p *Polygon) TestEdge(azi, s float64, reverse, sign bool) PolygonResult {
	if p.num == 0 {
		return PolygonResult{Perimeter: math.NaN(), Area: math.NaN()}
	}
	res := PolygonResult{Count: p.num + 1}
	res.Perimeter = p.perimeter.Sum(s)
	if p.polyline {
		res.Area = math.NaN()
		return res
	}
	tempsum := p.area.Sum(0)
	crossings := p.crossings
	r := p.e.g.genDirect(p.lat, p.lon, azi, false, s,
		Latitude|Longitude|Area|LongUnroll)
	tempsum += r.Area
	crossings += transitDirect(p.lon, r.Lon2)
	lon := angNormalize(r.Lon2)
	_, s12, _, _, _, _, _, _, _, S12 :=
		p.e.g.genInverse(r.Lat2, lon, p.lat0, p.lon0, Distance|Area)
	res.Perimeter += s12
	tempsum += S12
	crossings += transit(lon, p.lon0)
	res.Area = reduceArea(tempsum, p.e.EllipsoidArea(), crossings, reverse, sign)
	return res
}

// transit returns 1 or -1 if the edge from lon1 to lon2 crosses the prime
// meridian going east or west, otherwise 0.
func transit(lon1, lon2 float64) int {
	// Compute lon12 the same way as Inverse.
	lon1 = angNormalize(lon1)
	lon2 = angNormalize(lon2)
	lon12, _ := angDiff(lon1, lon2)
	switch {
	case lon1 <= 0 && lon2 > 0 && lon12 > 0:
		return 1
	case lon2 <= 0 && lon1 > 0 && lon12 < 0:
		return -1
	}
	return 0
}

// transitDirect is transit for unrolled longitudes. It computes exactly
// the parity of ceil(lon2 / 360) - ceil(lon1 / 360).
func transitDirect(lon1, lon2 float64) int {
	lon1 = math.Remainder(lon1, 720)
	lon2 = math.Remainder(lon2, 720)
	return b2i(lon2 <= 0 && lon2 > -360) - b2i(lon1 <= 0 && lon1 > -360)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// reduceAccArea reduces the clockwise area sum held in area to the range
// selected by reverse and sign. area0 is the area of the whole ellipsoid.
func reduceAccArea(area *accumulator, area0 float64, crossings int, reverse, sign bool) float64 {
	area.Remainder(area0)
	if crossings&1 != 0 {
		if area.s < 0 {
			area.Add(area0 / 2)
		} else {
			area.Add(-area0 / 2)
		}
	}
	// area is with the clockwise sense. If !reverse convert to
	// counter-clockwise convention.
	if !reverse {
		area.Negate()
	}
	// If sign put area in (-area0/2, area0/2], else put area in [0, area0)
	if sign {
		if area.s > area0/2 {
			area.Add(-area0)
		} else if area.s <= -area0/2 {
			area.Add(area0)
		}
	} else {
		if area.s >= area0 {
			area.Add(-area0)
		} else if area.s < 0 {
			area.Add(area0)
		}
	}
	return 0 + area.s
}

// reduceArea is reduceAccArea for a plain sum.
func reduceArea(area, area0 float64, crossings int, reverse, sign bool) float64 {
	area = math.Remainder(area, area0)
	if crossings&1 != 0 {
		if area < 0 {
			area += area0 / 2
		} else {
			area -= area0 / 2
		}
	}
	if !reverse {
		area = -area
	}
	if sign {
		if area > area0/2 {
			area -= area0
		} else if area <= -area0/2 {
			area += area0
		}
	} else {
		if area >= area0 {
			area -= area0
		} else if area < 0 {
			area += area0
		}
	}
	return 0 + area
}
