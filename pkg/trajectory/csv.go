package trajectory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader matches the column layout of the historical exporter, so files
// written here stay loadable by downstream tooling.
var csvHeader = []string{
	"R00", "R01", "R02",
	"R10", "R11", "R12",
	"R20", "R21", "R22",
	"Tx", "Ty", "Tz",
	"FocalLength",
}

// eulerColumns are appended when CSVOptions.Euler is set.
var eulerColumns = []string{"YawDeg", "PitchDeg", "RollDeg"}

// CSVOptions controls the exported columns.
type CSVOptions struct {
	// Euler appends the yaw, pitch and roll of each rotation in degrees.
	Euler bool
}

// WriteCSV writes the cameras as CSV with a header row.
func WriteCSV(w io.Writer, cams []Camera, opts CSVOptions) error {
	cw := csv.NewWriter(w)

	header := csvHeader
	if opts.Euler {
		header = append(append([]string{}, csvHeader...), eulerColumns...)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	record := make([]string, 0, len(header))
	for _, cam := range cams {
		record = record[:0]
		for _, v := range cam.Rotation {
			record = append(record, formatFloat(v))
		}
		for _, v := range cam.Translation {
			record = append(record, formatFloat(v))
		}
		record = append(record, formatFloat(cam.FocalLength))

		if opts.Euler {
			yaw, pitch, roll := cam.EulerAngles()
			record = append(record, formatFloat(yaw), formatFloat(pitch), formatFloat(roll))
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the cameras as CSV to a file.
func WriteCSVFile(path string, cams []Camera, opts CSVOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(f, cams, opts)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
