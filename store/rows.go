package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rnleach/satfire"
	"github.com/rnleach/satfire/internal/satkind"
)

// ClusterRow is a transient view of one clusters-table row, loaned to the
// caller for the duration of one RowCursor.Next call. Callers must not
// retain a ClusterRow past the next call to Next.
type ClusterRow struct {
	RowID          int64
	Satellite      satkind.Satellite
	Sector         satkind.Sector
	ScanStart      time.Time
	ScanEnd        time.Time
	Centroid       satfire.Coord
	TotalPower     float64
	MaxTemperature float64
	PixelCount     int
	Pixels         satfire.PixelList
}

// RowCursor streams ClusterRow values ordered by scan_start ascending,
// then row_id, matching the order the temporal linker requires.
type RowCursor struct {
	rows *sql.Rows
	cur  ClusterRow
	err  error
}

// TimeRange bounds a query by scan_start, inclusive on both ends. A zero
// End means "no upper bound".
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// QueryRows returns a streaming cursor over cluster rows for the given
// satellite (and, if not SectorNone, sector), restricted to the time range
// and (if box is non-nil) to clusters whose centroid lies within the
// bounding box, ordered by scan_start ascending then row_id.
func (s *Store) QueryRows(sat satkind.Satellite, sector satkind.Sector, tr TimeRange, box *satfire.BoundingBox) (*RowCursor, error) {
	query := `SELECT row_id, satellite, sector, scan_start, scan_end, centroid_lat, centroid_lon,
			total_power, max_temperature, pixel_count, pixels
		FROM clusters
		WHERE satellite = ? AND scan_start >= ?`
	args := []interface{}{int(sat), tr.Start.Unix()}

	if sector != satkind.SectorNone {
		query += " AND sector = ?"
		args = append(args, int(sector))
	}
	if !tr.End.IsZero() {
		query += " AND scan_start <= ?"
		args = append(args, tr.End.Unix())
	}
	if box != nil {
		query += " AND centroid_lat BETWEEN ? AND ? AND centroid_lon BETWEEN ? AND ?"
		args = append(args, box.LL.Lat, box.UR.Lat, box.LL.Lon, box.UR.Lon)
	}
	query += " ORDER BY scan_start ASC, row_id ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreQuery, err)
	}
	return &RowCursor{rows: rows}, nil
}

// Next advances the cursor and reports whether a row was loaded.
func (c *RowCursor) Next() bool {
	if !c.rows.Next() {
		return false
	}

	var (
		sat, sector        int
		scanStart, scanEnd int64
		blob               []byte
	)

	err := c.rows.Scan(
		&c.cur.RowID, &sat, &sector, &scanStart, &scanEnd,
		&c.cur.Centroid.Lat, &c.cur.Centroid.Lon,
		&c.cur.TotalPower, &c.cur.MaxTemperature, &c.cur.PixelCount, &blob,
	)
	if err != nil {
		c.err = fmt.Errorf("%w: %v", ErrStoreQuery, err)
		return false
	}

	c.cur.Satellite = satkind.Satellite(sat)
	c.cur.Sector = satkind.Sector(sector)
	c.cur.ScanStart = time.Unix(scanStart, 0).UTC()
	c.cur.ScanEnd = time.Unix(scanEnd, 0).UTC()

	pixels, err := satfire.DeserializePixelList(blob)
	if err != nil {
		c.err = fmt.Errorf("%w: %v", ErrStoreQuery, err)
		return false
	}
	c.cur.Pixels = pixels

	return true
}

// Row returns the row loaded by the most recent call to Next. The returned
// value is only valid until the next call to Next.
func (c *RowCursor) Row() ClusterRow { return c.cur }

// Err returns any error encountered while iterating, including a Scan or
// PixelList-deserialize failure that caused Next to stop early (rows.Err
// alone cannot see those).
func (c *RowCursor) Err() error {
	if c.err != nil {
		return c.err
	}
	if err := c.rows.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreQuery, err)
	}
	return nil
}

// Close releases the cursor's resources.
func (c *RowCursor) Close() error {
	return c.rows.Close()
}
