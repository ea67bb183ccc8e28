package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Subeshan707/medexplain-ai/internal/report"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// splashLogoPath is the image whose top-left pixel is reported.
const splashLogoPath = "assets/images/splash_logo.jpg"

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("detect-color %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("detect-color - report the top-left pixel color of the splash logo")
			fmt.Println()
			fmt.Println("Usage: detect-color [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  DETECT_COLOR_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Printf("Reads %s and prints \"Color detected: #rrggbb\" or \"Error: ...\".\n", splashLogoPath)
			return
		}
	}

	run(os.Stdout, os.Stderr, os.Getenv("DETECT_COLOR_LOG_LEVEL"))
}

// run reports on splashLogoPath. Failures end up as an "Error:" line on
// stdout, so the process always exits 0.
func run(stdout, stderr io.Writer, logLevel string) {
	// Logging goes to stderr, stdout carries only the result line
	var logger *log.Logger
	if logLevel == "debug" {
		logger = log.New(stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
		logger.Printf("detect-color v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	report.New(logger).Run(stdout, splashLogoPath)
}
