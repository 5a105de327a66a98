// Package trajectory reads camera trajectories exported by
// structure-from-motion tools and re-exports them as CSV.
//
// The input is a plain-text file with one camera per line: the nine entries
// of the row-major 3×3 world rotation, the three translation components and
// the focal length, separated by whitespace. Lines starting with '#' and
// blank lines are ignored. Malformed lines are recorded and skipped rather
// than failing the whole file, since exports commonly carry trailing notes.
package trajectory

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// cameraFields is the number of values in one camera record: 9 rotation
// entries, 3 translation components and the focal length.
const cameraFields = 13

// Camera is one pose sample of a trajectory.
type Camera struct {
	Rotation    [9]float64 // row-major R00..R22
	Translation [3]float64
	FocalLength float64
}

// SkippedLine records an input line that did not parse as a camera.
type SkippedLine struct {
	Line   int // 1-based line number
	Reason string
}

// Trajectory is a parse result: the cameras in file order plus the lines
// that were skipped.
type Trajectory struct {
	Cameras []Camera
	Skipped []SkippedLine
}

// Parse reads a camera trajectory from r.
func Parse(r io.Reader) (*Trajectory, error) {
	traj := &Trajectory{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cam, err := parseCamera(line)
		if err != nil {
			traj.Skipped = append(traj.Skipped, SkippedLine{Line: lineNo, Reason: err.Error()})
			continue
		}
		traj.Cameras = append(traj.Cameras, cam)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trajectory: %w", err)
	}
	return traj, nil
}

// ParseFile reads a camera trajectory from disk.
func ParseFile(path string) (*Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trajectory: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func parseCamera(line string) (Camera, error) {
	parts := strings.Fields(line)
	if len(parts) != cameraFields {
		return Camera{}, fmt.Errorf("expected %d fields, got %d", cameraFields, len(parts))
	}

	vals := make([]float64, cameraFields)
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return Camera{}, fmt.Errorf("field %d: %v", i+1, err)
		}
		vals[i] = v
	}

	var cam Camera
	copy(cam.Rotation[:], vals[:9])
	copy(cam.Translation[:], vals[9:12])
	cam.FocalLength = vals[12]
	return cam, nil
}
