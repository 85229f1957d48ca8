package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/nearpoint"
	"github.com/hupe1980/nearpoint/point"
)

// TableHeader is the column header of the report table.
const TableHeader = "#NumPoints Time(s) TimePerIter(s) ProblemSize(MB) Bandwidth(GB/s)"

// Report is the outcome of a benchmark run.
type Report struct {
	NumPoints int
	Repeat    int
	Elapsed   time.Duration
	Results   []nearpoint.Result // One per completed repetition
}

// Seconds returns the total elapsed wall-clock time.
func (r Report) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// SecondsPerIter returns the mean time per repetition, 0 without repetitions.
func (r Report) SecondsPerIter() float64 {
	if r.Repeat == 0 {
		return 0
	}
	return r.Seconds() / float64(r.Repeat)
}

// SizeMB returns the coordinate footprint in megabytes.
func (r Report) SizeMB() float64 {
	return 1e-6 * float64(r.NumPoints) * point.BytesPerPoint
}

// BandwidthGBs returns the coordinate bytes read per second in gigabytes,
// 0 if no time elapsed.
func (r Report) BandwidthGBs() float64 {
	s := r.Seconds()
	if s <= 0 {
		return 0
	}
	return 1e-9 * float64(r.NumPoints) * point.BytesPerPoint * float64(r.Repeat) / s
}

// WriteTable writes the header line and the data line.
func (r Report) WriteTable(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%d %f %e %f %f\n",
		TableHeader, r.NumPoints, r.Seconds(), r.SecondsPerIter(), r.SizeMB(), r.BandwidthGBs())
	return err
}
