// Package satkind holds the closed Satellite and Sector enumerations used
// throughout satfire, modeled the way the teacher models its RecordID and
// SubRecordID tag enums: small typed constants plus a name-lookup table
// rather than an open string.
package satkind

import "strings"

// Satellite identifies the originating GOES (or compatible) platform.
type Satellite uint8

const (
	SatelliteNone Satellite = iota
	G16
	G17
	G18
	G19
)

var satelliteNames = map[Satellite]string{
	SatelliteNone: "NONE",
	G16:           "G16",
	G17:           "G17",
	G18:           "G18",
	G19:           "G19",
}

// String returns the display name of the satellite.
func (s Satellite) String() string {
	if name, ok := satelliteNames[s]; ok {
		return name
	}
	return "NONE"
}

// AllSatellites lists every non-NONE satellite, for iterating the full
// enum (e.g. the linker replays clusters per satellite).
func AllSatellites() []Satellite {
	return []Satellite{G16, G17, G18, G19}
}

// StringContainsSatellite scans path for a satellite name component, as
// found in archive paths shaped SATELLITE/SECTOR/YEAR/DOY/HOUR/file.nc.
func StringContainsSatellite(path string) Satellite {
	for sat, name := range satelliteNames {
		if sat == SatelliteNone {
			continue
		}
		if strings.Contains(path, name) {
			return sat
		}
	}
	return SatelliteNone
}
