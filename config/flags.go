package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging and overlay")
	flagLogFile = flag.String("log-file", "", "Write logs to a rotating file")
	flagPhysics = flag.String("physics", "", "Physics realization: velocity or impulse")
	flagSeed    = flag.Int64("seed", 0, "Seed for treat placement")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

func applyFlags() {
	if *flagDebug {
		Logging.Level = "debug"
		Debug.Overlay = true
	}
	if *flagLogFile != "" {
		Logging.LogFile = *flagLogFile
	}
	if *flagPhysics != "" {
		Physics.Mode = *flagPhysics
	}
	if *flagSeed != 0 {
		Session.Seed = *flagSeed
	}
	if *flagWidth > 0 {
		C.Width = *flagWidth
	}
	if *flagHeight > 0 {
		C.Height = *flagHeight
	}
}
