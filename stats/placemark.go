package stats

import (
	"encoding/xml"
	"fmt"
	"io"
	"reflect"
	"time"

	stgpsr "github.com/yuin/stagparser"

	"github.com/rnleach/satfire/cluster"
	"github.com/rnleach/satfire/internal/satkind"
)

// kmlPoint is one <ExtendedData><Data> entry: a display name plus a
// stringified value, driven by the `kml:"name=...,skip"` struct tags on
// PlacemarkMeta's fields (the same tag-driven-field-export mechanism the
// teacher used for TileDB attribute schemas, repurposed here for KML).
type kmlPoint struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// PlacemarkMeta is the metadata recorded alongside the biggest cluster's
// geometry in the placemark sink.
type PlacemarkMeta struct {
	Satellite string    `kml:"name=Satellite"`
	Sector    string    `kml:"name=Sector"`
	Start     time.Time `kml:"name=Scan Start"`
	End       time.Time `kml:"name=Scan End"`
	Power     float64   `kml:"name=Total Power (MW)"`
	Lat       float64   `kml:"name=Centroid Lat"`
	Lon       float64   `kml:"name=Centroid Lon"`
	PixelCnt  int       `kml:"name=Pixel Count"`
	// ClusterRef is carried for convenience by callers building the
	// polygon coordinates themselves; it has no place in ExtendedData.
	ClusterRef *cluster.Cluster `kml:"skip"`
}

// extendedDataFields walks meta's exported fields using the `kml` struct
// tag to decide the display name for each, skipping any field tagged
// "skip". Fields without a `kml:"name=..."` tag fall back to their Go
// field name.
func extendedDataFields(meta PlacemarkMeta) ([]kmlPoint, error) {
	defs, err := stgpsr.ParseStruct(&meta, "kml")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlacemarkTag, err)
	}

	v := reflect.ValueOf(meta)
	t := v.Type()

	points := make([]kmlPoint, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fieldDefs := make(map[string]stgpsr.Definition)
		for _, d := range defs[field.Name] {
			fieldDefs[d.Name()] = d
		}

		if _, skip := fieldDefs["skip"]; skip {
			continue
		}

		displayName := field.Name
		if nameDef, ok := fieldDefs["name"]; ok {
			if val, ok := nameDef.Attribute("name"); ok {
				displayName = val
			}
		}

		points = append(points, kmlPoint{
			Name:  displayName,
			Value: fmt.Sprintf("%v", v.Field(i).Interface()),
		})
	}

	return points, nil
}

// kmlPlacemark is the minimal KML document wrapper written by WritePlacemark.
type kmlPlacemark struct {
	XMLName xml.Name `xml:"kml"`
	Xmlns   string   `xml:"xmlns,attr"`
	Doc     kmlDocument
}

type kmlDocument struct {
	XMLName   xml.Name `xml:"Document"`
	Placemark kmlPlacemarkBody
}

type kmlPlacemarkBody struct {
	XMLName       xml.Name `xml:"Placemark"`
	Name          string   `xml:"name"`
	ExtendedData  []kmlPoint `xml:"ExtendedData>Data"`
	PolygonCoords []string   `xml:"MultiGeometry>Polygon>outerBoundaryIs>LinearRing>coordinates"`
}

// WritePlacemark writes one KML placemark for the biggest cluster observed
// by stats, containing all of its pixels as polygons plus the metadata
// recorded in PlacemarkMeta's tagged fields. Written next to the store
// file at <store>.kml per §6, but the destination is left to the caller.
func WritePlacemark(w io.Writer, sat satkind.Satellite, sector satkind.Sector, start, end time.Time, c *cluster.Cluster) error {
	centroid := c.Centroid()
	meta := PlacemarkMeta{
		Satellite: sat.String(),
		Sector:    sector.String(),
		Start:     start,
		End:       end,
		Power:     c.TotalPower(),
		Lat:       centroid.Lat,
		Lon:       centroid.Lon,
		PixelCnt:  c.PixelCount(),
		ClusterRef: c,
	}

	fields, err := extendedDataFields(meta)
	if err != nil {
		return err
	}

	coords := make([]string, 0, len(c.Pixels()))
	for _, p := range c.Pixels() {
		coords = append(coords, fmt.Sprintf(
			"%f,%f %f,%f %f,%f %f,%f %f,%f",
			p.UL.Lon, p.UL.Lat, p.UR.Lon, p.UR.Lat, p.LR.Lon, p.LR.Lat,
			p.LL.Lon, p.LL.Lat, p.UL.Lon, p.UL.Lat,
		))
	}

	doc := kmlPlacemark{
		Xmlns: "http://www.opengis.net/kml/2.2",
		Doc: kmlDocument{
			Placemark: kmlPlacemarkBody{
				Name:          fmt.Sprintf("Biggest cluster: %s %s", sat, sector),
				ExtendedData:  fields,
				PolygonCoords: coords,
			},
		},
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("%w: %v", ErrPlacemarkWrite, err)
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrPlacemarkWrite, err)
	}
	return nil
}
