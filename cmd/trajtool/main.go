// trajtool is a CLI utility for working with camera trajectory files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pavelsg/panocube/pkg/trajectory"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "convert", "csv":
		cmdConvert(args)
	case "check":
		cmdCheck(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`trajtool - camera trajectory file utility

Usage:
  trajtool <command> [options]

Commands:
  info <cameras.txt>                 Show trajectory summary
  convert <cameras.txt> [options]    Convert to CSV
  check <cameras.txt> [options]      Validate rotation matrices

Examples:
  trajtool info cameras.txt
  trajtool convert cameras.txt -o camera_coordinates.csv -euler
  trajtool check cameras.txt -tol 1e-9`)
}

func loadTrajectory(path string) *trajectory.Trajectory {
	traj, err := trajectory.ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return traj
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: trajtool info <cameras.txt>")
		os.Exit(1)
	}

	traj := loadTrajectory(args[0])

	fmt.Printf("File:    %s\n", args[0])
	fmt.Printf("Cameras: %d\n", len(traj.Cameras))
	fmt.Printf("Skipped: %d\n", len(traj.Skipped))
	for _, s := range traj.Skipped {
		fmt.Printf("  line %d: %s\n", s.Line, s.Reason)
	}

	if len(traj.Cameras) > 0 {
		minFocal := traj.Cameras[0].FocalLength
		maxFocal := minFocal
		for _, cam := range traj.Cameras[1:] {
			minFocal = min(minFocal, cam.FocalLength)
			maxFocal = max(maxFocal, cam.FocalLength)
		}
		fmt.Printf("Focal:   %.2f - %.2f\n", minFocal, maxFocal)

		yaw, pitch, roll := traj.Cameras[0].EulerAngles()
		fmt.Printf("First:   yaw=%.2f pitch=%.2f roll=%.2f\n", yaw, pitch, roll)
	}
}

func cmdConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	out := fs.String("o", "camera_coordinates.csv", "Output CSV path")
	euler := fs.Bool("euler", false, "Append yaw/pitch/roll columns in degrees")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: trajtool convert <cameras.txt> [-o out.csv] [-euler]")
		os.Exit(1)
	}

	traj := loadTrajectory(fs.Arg(0))
	for _, s := range traj.Skipped {
		fmt.Fprintf(os.Stderr, "Skipped line %d: %s\n", s.Line, s.Reason)
	}
	if len(traj.Cameras) == 0 {
		fmt.Fprintln(os.Stderr, "No cameras found")
		os.Exit(1)
	}

	opts := trajectory.CSVOptions{Euler: *euler}
	if err := trajectory.WriteCSVFile(*out, traj.Cameras, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d cameras to %s\n", len(traj.Cameras), *out)
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	tol := fs.Float64("tol", trajectory.DefaultRigidTolerance, "Rigidity tolerance")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: trajtool check <cameras.txt> [-tol 1e-6]")
		os.Exit(1)
	}

	traj := loadTrajectory(fs.Arg(0))

	bad := 0
	for i, cam := range traj.Cameras {
		if cam.IsRigid(*tol) {
			continue
		}
		fmt.Printf("camera %d: orthonormality error %.3g, determinant %.9f\n",
			i, cam.OrthonormalityError(), cam.Determinant())
		bad++
	}

	if bad > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d cameras fail the rigidity check\n", bad, len(traj.Cameras))
		os.Exit(1)
	}
	fmt.Printf("All %d cameras are rigid within %g\n", len(traj.Cameras), *tol)
}
