package testutils

import (
	"os"
	"path/filepath"
)

// InitLED populates path with the files of a sysfs LED directory
func InitLED(path string) error {
	if err := os.WriteFile(filepath.Join(path, "trigger"), []byte("none [timer] heartbeat"), 0644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(path, "max_brightness"), []byte("255"), 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(path, "brightness"), []byte("0"), 0644)
}
