package trajectory

import (
	"bytes"
	gomath "math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	cams := []Camera{{
		Rotation:    [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		Translation: [3]float64{0.5, -0.25, 3},
		FocalLength: 1000,
	}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, cams, CSVOptions{}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "R00,R01,R02,R10,R11,R12,R20,R21,R22,Tx,Ty,Tz,FocalLength\n" +
		"1,0,0,0,1,0,0,0,1,0.5,-0.25,3,1000\n"
	if buf.String() != want {
		t.Errorf("WriteCSV output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteCSV_Euler(t *testing.T) {
	cams := []Camera{cameraFromAngles(90, 0, 0)}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, cams, CSVOptions{Euler: true}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	if !strings.HasSuffix(lines[0], "FocalLength,YawDeg,PitchDeg,RollDeg") {
		t.Errorf("header %q missing the euler columns", lines[0])
	}

	fields := strings.Split(lines[1], ",")
	if len(fields) != 16 {
		t.Fatalf("record has %d fields, want 16", len(fields))
	}

	yaw, err := strconv.ParseFloat(fields[13], 64)
	if err != nil {
		t.Fatalf("parsing yaw field %q: %v", fields[13], err)
	}
	if gomath.Abs(yaw-90) > 1e-9 {
		t.Errorf("yaw column = %v, want 90", yaw)
	}
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	cams := []Camera{
		{Rotation: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, FocalLength: 800},
		cameraFromAngles(45, 0, 0),
	}

	if err := WriteCSVFile(path, cams, CSVOptions{}); err != nil {
		t.Fatalf("WriteCSVFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("got %d lines, want header plus 2 records", len(lines))
	}
	if !strings.HasPrefix(lines[0], "R00,R01,R02") {
		t.Errorf("header %q should start with the rotation columns", lines[0])
	}
}

func TestWriteCSVFile_BadPath(t *testing.T) {
	err := WriteCSVFile(filepath.Join(t.TempDir(), "missing", "out.csv"), nil, CSVOptions{})
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}
