package satkind

import "strings"

// Sector identifies the scanning region of one scan.
type Sector uint8

const (
	SectorNone Sector = iota
	FullDisk
	CONUS
	Meso1
	Meso2
)

var sectorNames = map[Sector]string{
	SectorNone: "NONE",
	FullDisk:   "FullDisk",
	CONUS:      "CONUS",
	Meso1:      "Meso1",
	Meso2:      "Meso2",
}

// sectorPathTokens are the substrings product filenames/paths use for each
// sector; FDC product names embed these (e.g. "ABI-L2-FDCF" for Full Disk,
// "ABI-L2-FDCC" for CONUS, "ABI-L2-FDCM1"/"M2" for the two meso sectors).
var sectorPathTokens = map[Sector][]string{
	FullDisk: {"FDCF", "FullDisk"},
	CONUS:    {"FDCC", "CONUS"},
	Meso1:    {"FDCM1", "Meso1"},
	Meso2:    {"FDCM2", "Meso2"},
}

// String returns the display name of the sector.
func (s Sector) String() string {
	if name, ok := sectorNames[s]; ok {
		return name
	}
	return "NONE"
}

// IsMeso reports whether the sector is one of the two meso sectors.
func (s Sector) IsMeso() bool {
	return s == Meso1 || s == Meso2
}

// AllSectors lists every non-NONE sector.
func AllSectors() []Sector {
	return []Sector{FullDisk, CONUS, Meso1, Meso2}
}

// StringContainsSector scans path for a sector token.
func StringContainsSector(path string) Sector {
	for sector, tokens := range sectorPathTokens {
		for _, tok := range tokens {
			if strings.Contains(path, tok) {
				return sector
			}
		}
	}
	return SectorNone
}
