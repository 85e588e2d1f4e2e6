package satfire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	pixelListMagic   uint32 = 0x50584C53 // "PXLS"
	pixelListVersion uint16 = 1
	pixelWireSize           = 8*8 + 4*8 // eight f64 corner components + four f64 attributes
	pixelListHeaderSize     = 4 + 2 + 4 // magic + version + count
)

// PixelList is a growable, ordered sequence of SatPixel. The zero value is
// an empty, usable list.
type PixelList []SatPixel

// Append adds a pixel to the end of the list.
func (pl *PixelList) Append(p SatPixel) {
	*pl = append(*pl, p)
}

// Clear drops all pixels but retains the underlying capacity.
func (pl *PixelList) Clear() {
	*pl = (*pl)[:0]
}

// Centroid returns the power-weighted mean of the per-pixel centroids. The
// zero Coord is returned for an empty list.
func (pl PixelList) Centroid() Coord {
	var lat, lon, totalPower float64
	for _, p := range pl {
		c := p.Centroid()
		lat += c.Lat * p.Power
		lon += c.Lon * p.Power
		totalPower += p.Power
	}
	if totalPower == 0 {
		return Coord{}
	}
	return Coord{Lat: lat / totalPower, Lon: lon / totalPower}
}

// TotalPower sums Power across all pixels.
func (pl PixelList) TotalPower() float64 {
	var total float64
	for _, p := range pl {
		total += p.Power
	}
	return total
}

// MaxTemperature returns the maximum Temperature across all pixels, or NaN
// for an empty list.
func (pl PixelList) MaxTemperature() float64 {
	if len(pl) == 0 {
		return math.NaN()
	}
	max := pl[0].Temperature
	for _, p := range pl[1:] {
		if p.Temperature > max {
			max = p.Temperature
		}
	}
	return max
}

// BoundingBox returns the union of the per-pixel bounding boxes. Panics on
// an empty list; callers should check len(pl) first.
func (pl PixelList) BoundingBox() BoundingBox {
	if len(pl) == 0 {
		panic("satfire: BoundingBox of an empty PixelList")
	}
	box := pl[0].BoundingBox()
	for _, p := range pl[1:] {
		box = box.Union(p.BoundingBox())
	}
	return box
}

// SerializeSize returns the exact number of bytes Serialize will write.
func (pl PixelList) SerializeSize() int {
	return pixelListHeaderSize + len(pl)*pixelWireSize
}

// Serialize encodes the pixel list into the self-describing little-endian
// binary layout documented in the package: a "PXLS" magic, a version, a
// count, then each pixel's eight corner components and four scalar
// attributes as float64.
func (pl PixelList) Serialize() []byte {
	buf := make([]byte, pl.SerializeSize())
	binary.LittleEndian.PutUint32(buf[0:4], pixelListMagic)
	binary.LittleEndian.PutUint16(buf[4:6], pixelListVersion)
	binary.LittleEndian.PutUint32(buf[6:10], uint32(len(pl)))

	off := pixelListHeaderSize
	for _, p := range pl {
		fields := [12]float64{
			p.UL.Lat, p.UL.Lon,
			p.UR.Lat, p.UR.Lon,
			p.LR.Lat, p.LR.Lon,
			p.LL.Lat, p.LL.Lon,
			p.Power, p.Temperature, p.Area, p.ScanAngle,
		}
		for _, f := range fields {
			binary.LittleEndian.PutUint64(buf[off:off+8], math.Float64bits(f))
			off += 8
		}
	}

	return buf
}

// ErrBadFormat is returned by DeserializePixelList when the magic, version, or
// declared count does not match the supplied buffer.
var ErrBadFormat = fmt.Errorf("satfire: malformed pixel list buffer")

// DeserializePixelList decodes a buffer written by Serialize. The round
// trip is bit-exact.
func DeserializePixelList(buf []byte) (PixelList, error) {
	if len(buf) < pixelListHeaderSize {
		return nil, ErrBadFormat
	}

	magic := binary.LittleEndian.Uint32(buf[0:4])
	version := binary.LittleEndian.Uint16(buf[4:6])
	count := binary.LittleEndian.Uint32(buf[6:10])

	if magic != pixelListMagic || version != pixelListVersion {
		return nil, ErrBadFormat
	}

	want := pixelListHeaderSize + int(count)*pixelWireSize
	if len(buf) != want {
		return nil, ErrBadFormat
	}

	r := bytes.NewReader(buf[pixelListHeaderSize:])
	pl := make(PixelList, count)
	for i := range pl {
		var fields [12]float64
		for j := range fields {
			var bits uint64
			if err := binary.Read(r, binary.LittleEndian, &bits); err != nil {
				return nil, ErrBadFormat
			}
			fields[j] = math.Float64frombits(bits)
		}
		pl[i] = SatPixel{
			UL:          Coord{Lat: fields[0], Lon: fields[1]},
			UR:          Coord{Lat: fields[2], Lon: fields[3]},
			LR:          Coord{Lat: fields[4], Lon: fields[5]},
			LL:          Coord{Lat: fields[6], Lon: fields[7]},
			Power:       fields[8],
			Temperature: fields[9],
			Area:        fields[10],
			ScanAngle:   fields[11],
		}
	}

	return pl, nil
}
