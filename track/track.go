// Package track turns geographic tracks into relief profiles, with the distance along the track in kilometers as abscissa.
package track

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/tdewolff/relief"
	"github.com/wroge/wgs84/v2"
)

// WGS84 is the EPSG code of longitude/latitude coordinates.
const WGS84 = 4326

// Track is a line of longitude/latitude points with an elevation in meters per point.
type Track struct {
	Line       orb.LineString
	Elevations []float64
}

// New returns a track from points of the form [x, y, elevation] in the coordinate reference system given by its EPSG code. Points are reprojected to WGS84.
func New(points [][3]float64, epsg int) (Track, error) {
	t := Track{
		Line:       make(orb.LineString, len(points)),
		Elevations: make([]float64, len(points)),
	}
	for i, p := range points {
		t.Line[i] = orb.Point{p[0], p[1]}
		t.Elevations[i] = p[2]
	}
	if epsg != 0 && epsg != WGS84 {
		t.Line = Reproject(t.Line, epsg)
	}
	return t, t.validate()
}

func (t Track) validate() error {
	if len(t.Line) != len(t.Elevations) {
		return fmt.Errorf("%w: %d points but %d elevations", relief.ErrInvalidInput, len(t.Line), len(t.Elevations))
	}
	for _, p := range t.Line {
		if p.Lon() < -180.0 || 180.0 < p.Lon() || p.Lat() < -90.0 || 90.0 < p.Lat() {
			return fmt.Errorf("%w: coordinate %v out of range", relief.ErrInvalidInput, p)
		}
	}
	return nil
}

// Reproject transforms a line from the coordinate reference system given by its EPSG code to WGS84 longitude/latitude.
func Reproject(line orb.LineString, epsg int) orb.LineString {
	transform := wgs84.Transform(wgs84.EPSG(epsg), wgs84.EPSG(WGS84))
	out := make(orb.LineString, len(line))
	for i, p := range line {
		lon, lat, _ := transform(p[0], p[1], 0.0)
		out[i] = orb.Point{lon, lat}
	}
	return out
}

// Length returns the geodesic length of the track in kilometers.
func (t Track) Length() float64 {
	return geo.Length(t.Line) / 1000.0
}

// Profile returns the elevation profile of the track, pairing the cumulative distance along the track in kilometers with the elevation.
func (t Track) Profile() ([]relief.DataPoint, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	points := make([]relief.DataPoint, len(t.Line))
	dist := 0.0
	for i, p := range t.Line {
		if 0 < i {
			dist += geo.Distance(t.Line[i-1], p) / 1000.0
		}
		points[i] = relief.DataPoint{Time: dist, Elevation: t.Elevations[i]}
	}
	return points, nil
}

// ReadOSM decodes an OpenStreetMap XML document.
func ReadOSM(r io.Reader) (*osm.OSM, error) {
	o := &osm.OSM{}
	if err := xml.NewDecoder(r).Decode(o); err != nil {
		return nil, fmt.Errorf("decode osm: %w", err)
	}
	return o, nil
}

// FromOSM returns the track along the nodes of the first way in o. Every node needs an "ele" tag holding its elevation in meters, optionally suffixed with "m".
func FromOSM(o *osm.OSM) (Track, error) {
	if len(o.Ways) == 0 {
		return Track{}, fmt.Errorf("%w: no way in osm data", relief.ErrInvalidInput)
	}
	nodes := make(map[osm.NodeID]*osm.Node, len(o.Nodes))
	for _, node := range o.Nodes {
		nodes[node.ID] = node
	}

	way := o.Ways[0]
	t := Track{}
	for _, wn := range way.Nodes {
		node, ok := nodes[wn.ID]
		if !ok {
			return Track{}, fmt.Errorf("%w: way %d references missing node %d", relief.ErrInvalidInput, way.ID, wn.ID)
		}
		ele := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(node.Tags.Find("ele")), "m"))
		elevation, err := strconv.ParseFloat(ele, 64)
		if err != nil {
			return Track{}, fmt.Errorf("%w: node %d has no valid ele tag", relief.ErrInvalidInput, node.ID)
		}
		t.Line = append(t.Line, node.Point())
		t.Elevations = append(t.Elevations, elevation)
	}
	return t, t.validate()
}
