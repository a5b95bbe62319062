package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clambin/blinkq/version"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Configuration structure
type Configuration struct {
	Debug        bool
	Port         int
	LedPath      string
	SerialDevice string
	ActiveLow    bool
	Capacity     int
	Interval     time.Duration
	PatternFile  string
	Message      string
}

// GetConfigFromArgs parses the command line arguments
func GetConfigFromArgs(args []string) (Configuration, error) {
	var cfg Configuration

	a := kingpin.New(filepath.Base(os.Args[0]), "blinkq")
	a.Version(version.BuildVersion)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&cfg.Debug)
	a.Flag("port", "API listener port").Default("8080").IntVar(&cfg.Port)
	a.Flag("led-path", "path name to the sysfs directory for the LED").Default("/sys/class/leds/led1").StringVar(&cfg.LedPath)
	a.Flag("serial-device", "drive the DTR line of this serial device instead of a sysfs LED").Default("").StringVar(&cfg.SerialDevice)
	a.Flag("active-low", "LED is wired active-low").Default("false").BoolVar(&cfg.ActiveLow)
	a.Flag("capacity", "maximum number of queued patterns").Default("8").IntVar(&cfg.Capacity)
	a.Flag("interval", "delay between two steps of a pattern").Default("250ms").DurationVar(&cfg.Interval)
	a.Flag("pattern-file", "TOML file with named patterns").Default("").StringVar(&cfg.PatternFile)
	a.Flag("message", "morse message to blink on startup").Default("").StringVar(&cfg.Message)

	if _, err := a.Parse(args); err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: %w", err)
	}
	if cfg.Capacity < 1 {
		return cfg, fmt.Errorf("invalid capacity: %d", cfg.Capacity)
	}
	if cfg.Interval <= 0 {
		return cfg, fmt.Errorf("invalid interval: %v", cfg.Interval)
	}
	return cfg, nil
}
