package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/ellipsoid/geodesic"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

func (a *app) planimeterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planimeter",
		Short: "Compute the perimeter and area of a geodesic polygon",
		Long: `Reads vertices as "LAT LON" lines from stdin and prints
COUNT PERIMETER AREA (COUNT PERIMETER with --polyline). A blank line ends
the current polygon and starts a new one.

With --geojson FILE the Polygon, MultiPolygon, LineString and
MultiLineString geometries in FILE are measured instead, one
PERIMETER AREA line per geometry. Areas of GeoJSON polygons are unsigned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file := a.conf.GetString("geojson"); file != "" {
				return a.planimeterGeoJSON(cmd.OutOrStdout(), file)
			}
			return a.planimeterPoints(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolP("polyline", "l", false, "Treat the points as a polyline instead of a polygon.")
	cmd.Flags().BoolP("reverse", "r", false, "Count clockwise traversal as positive area.")
	cmd.Flags().BoolP("sign", "s", true, "Allow the area to be signed.")
	cmd.Flags().String("geojson", "", "Measure the geometries of a GeoJSON file.")
	return cmd
}

func (a *app) planimeterPoints(r io.Reader, w io.Writer) error {
	polyline := a.conf.GetBool("polyline")
	reverse := a.conf.GetBool("reverse")
	sign := a.conf.GetBool("sign")
	p := a.ell.PolygonInit(polyline)
	flush := func() {
		if p.Count() == 0 {
			return
		}
		res := p.Compute(reverse, sign)
		if polyline {
			fmt.Fprintf(w, "%d %.8f\n", res.Count, res.Perimeter)
		} else {
			fmt.Fprintf(w, "%d %.8f %.1f\n", res.Count, res.Perimeter, res.Area)
		}
		p.Clear()
	}
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.FieldsFunc(sc.Text(), func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		if len(fields) == 0 {
			flush()
			continue
		}
		if len(fields) != 2 {
			return errors.Errorf("line %d: want LAT LON, got %q", line, sc.Text())
		}
		v, err := parseFloats(fields)
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		p.AddPoint(v[0], v[1])
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "reading points")
	}
	flush()
	return nil
}

func (a *app) planimeterGeoJSON(w io.Writer, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "reading geojson")
	}
	geoms, err := decodeGeoJSON(data)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", file)
	}
	a.log.Debug("geojson", zap.String("file", file), zap.Int("geometries", len(geoms)))
	for _, g := range geoms {
		t, err := toGeom(g)
		if errors.Is(err, geodesic.ErrUnsupportedGeometry) {
			a.log.Warn("skipping geometry", zap.String("type", string(g.Type)))
			continue
		} else if err != nil {
			return errors.Wrapf(err, "%s in %s", g.Type, file)
		}
		length, err := a.ell.Length(t)
		if err != nil {
			return err
		}
		area, err := a.ell.Area(t)
		if errors.Is(err, geodesic.ErrUnsupportedGeometry) {
			area = math.NaN()
		} else if err != nil {
			return err
		}
		fmt.Fprintf(w, "%.8f %.1f\n", length, area)
	}
	return nil
}

// decodeGeoJSON returns the geometries of a FeatureCollection, a Feature
// or a bare geometry object.
func decodeGeoJSON(data []byte) ([]*geojson.Geometry, error) {
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && len(fc.Features) > 0 {
		var geoms []*geojson.Geometry
		for _, f := range fc.Features {
			if f.Geometry != nil {
				geoms = append(geoms, f.Geometry)
			}
		}
		return geoms, nil
	}
	if f, err := geojson.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		return []*geojson.Geometry{f.Geometry}, nil
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, err
	}
	if g.Type == geojson.GeometryCollection {
		return g.Geometries, nil
	}
	return []*geojson.Geometry{g}, nil
}

func toGeom(g *geojson.Geometry) (geom.T, error) {
	switch g.Type {
	case geojson.GeometryLineString:
		coords, err := toCoords(g.LineString)
		if err != nil {
			return nil, err
		}
		return geom.NewLineString(geom.XY).SetCoords(coords)
	case geojson.GeometryMultiLineString:
		lines, err := toRings(g.MultiLineString)
		if err != nil {
			return nil, err
		}
		return geom.NewMultiLineString(geom.XY).SetCoords(lines)
	case geojson.GeometryPolygon:
		rings, err := toRings(g.Polygon)
		if err != nil {
			return nil, err
		}
		return geom.NewPolygon(geom.XY).SetCoords(rings)
	case geojson.GeometryMultiPolygon:
		polys := make([][][]geom.Coord, len(g.MultiPolygon))
		for i, p := range g.MultiPolygon {
			rings, err := toRings(p)
			if err != nil {
				return nil, err
			}
			polys[i] = rings
		}
		return geom.NewMultiPolygon(geom.XY).SetCoords(polys)
	}
	return nil, errors.Wrapf(geodesic.ErrUnsupportedGeometry, "geojson %s", g.Type)
}

func toRings(rings [][][]float64) ([][]geom.Coord, error) {
	out := make([][]geom.Coord, len(rings))
	for i, r := range rings {
		coords, err := toCoords(r)
		if err != nil {
			return nil, err
		}
		out[i] = coords
	}
	return out, nil
}

// toCoords keeps (lon, lat) and drops any altitude.
func toCoords(pts [][]float64) ([]geom.Coord, error) {
	out := make([]geom.Coord, len(pts))
	for i, p := range pts {
		if len(p) < 2 {
			return nil, errors.Errorf("position %v needs longitude and latitude", p)
		}
		out[i] = geom.Coord{p[0], p[1]}
	}
	return out, nil
}
