package geodesic

import (
	"math"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// ErrUnsupportedGeometry is returned by Area and Length for geometry types
// they cannot measure.
var ErrUnsupportedGeometry = errors.New("geodesic: unsupported geometry")

// Area returns the area (meters-squared) of a Polygon or MultiPolygon whose
// coordinates are (longitude, latitude) in degrees. Each polygon counts its
// exterior ring minus its holes, independent of ring orientation.
//
// Since orientation is ignored, a ring is taken to bound the smaller of the
// two regions it separates: a ring enclosing more than half the ellipsoid
// yields the area of the complementary region.
func (e *Ellipsoid) Area(g geom.T) (float64, error) {
	switch g := g.(type) {
	case *geom.Polygon:
		return e.polygonArea(g), nil
	case *geom.MultiPolygon:
		var area float64
		for i := 0; i < g.NumPolygons(); i++ {
			area += e.polygonArea(g.Polygon(i))
		}
		return area, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedGeometry, "area of %T", g)
}

// Length returns the geodesic length (meters) of a line geometry, or the
// perimeter of a polygonal one. Polygon perimeters include holes.
func (e *Ellipsoid) Length(g geom.T) (float64, error) {
	switch g := g.(type) {
	case *geom.LineString:
		return e.ringResult(g.Coords(), true).Perimeter, nil
	case *geom.MultiLineString:
		var length float64
		for i := 0; i < g.NumLineStrings(); i++ {
			length += e.ringResult(g.LineString(i).Coords(), true).Perimeter
		}
		return length, nil
	case *geom.LinearRing:
		return e.ringResult(g.Coords(), false).Perimeter, nil
	case *geom.Polygon:
		return e.polygonPerimeter(g), nil
	case *geom.MultiPolygon:
		var length float64
		for i := 0; i < g.NumPolygons(); i++ {
			length += e.polygonPerimeter(g.Polygon(i))
		}
		return length, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedGeometry, "length of %T", g)
}

func (e *Ellipsoid) polygonArea(p *geom.Polygon) float64 {
	var area float64
	for i := 0; i < p.NumLinearRings(); i++ {
		a := math.Abs(e.ringResult(p.LinearRing(i).Coords(), false).Area)
		if i == 0 {
			area += a
		} else {
			area -= a
		}
	}
	return area
}

func (e *Ellipsoid) polygonPerimeter(p *geom.Polygon) float64 {
	var length float64
	for i := 0; i < p.NumLinearRings(); i++ {
		length += e.ringResult(p.LinearRing(i).Coords(), false).Perimeter
	}
	return length
}

// ringResult measures coords as a polyline or a ring. The closing vertex
// of a ring is dropped since Compute closes the polygon itself.
func (e *Ellipsoid) ringResult(coords []geom.Coord, polyline bool) PolygonResult {
	n := len(coords)
	if !polyline && n > 1 && coords[0].X() == coords[n-1].X() &&
		coords[0].Y() == coords[n-1].Y() {
		n--
	}
	p := e.PolygonInit(polyline)
	for _, c := range coords[:n] {
		p.AddPoint(c.Y(), c.X())
	}
	return p.Compute(false, true)
}
