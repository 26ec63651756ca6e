package main

import (
	"log"
	"os"

	"github.com/ironsheep/hue-invert/internal/cli"
	"github.com/ironsheep/hue-invert/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for command output and MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logger.FromEnv()
	if logger.IsVerbose() {
		log.Printf("hue-invert v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cli.SetVersionInfo(Version, BuildTime, GitCommit)
	cli.Execute()
}
