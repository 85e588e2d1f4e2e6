package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// unixToTimeUTC converts a Unix-seconds timestamp to a UTC time.Time.
func unixToTimeUTC(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}

// scanTimeRE matches the GOES-R product naming convention's start/end
// timestamp fields, e.g. "..._s20202381500000_e20202381509000_...": a 'c'
// (calendar) field is not needed here, only 's' (scan start) and 'e'
// (scan end), each YYYYDDDHHMMSSt (t = tenths of a second).
var scanTimeRE = regexp.MustCompile(`_s(\d{14})\d?_e(\d{14})\d?_`)

// parseScanWindow extracts scan_start and scan_end from a scan filename,
// per §6 ("parsed by a helper on the file-name only, not content").
func parseScanWindow(name string) (start, end time.Time, err error) {
	m := scanTimeRE.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: no scan timestamps in %q", ErrBadFilename, name)
	}

	start, err = parseYDHMS(m[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = parseYDHMS(m[2])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// parseYDHMS parses a 14-digit YYYYDDDHHMMSSt timestamp (year, day-of-year,
// hour, minute, second, tenths) as UTC. The tenths digit is ignored.
func parseYDHMS(s string) (time.Time, error) {
	if len(s) != 14 {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q", ErrBadFilename, s)
	}

	year, err1 := strconv.Atoi(s[0:4])
	doy, err2 := strconv.Atoi(s[4:7])
	hour, err3 := strconv.Atoi(s[7:9])
	minute, err4 := strconv.Atoi(s[9:11])
	second, err5 := strconv.Atoi(s[11:13])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q", ErrBadFilename, s)
	}

	t := time.Date(year, time.January, 1, hour, minute, second, 0, time.UTC)
	return t.AddDate(0, 0, doy-1), nil
}
