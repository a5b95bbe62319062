// Package ledsetter drives a LED through the Linux sysfs LED class
// (/sys/class/leds/<led>).
package ledsetter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

// Setter drives the LED at LEDPath. The first call to SetLED switches the
// LED's trigger to "none" so the kernel doesn't fight us over it.
type Setter struct {
	LEDPath        string
	brightnessPath string
	lock           sync.Mutex
	initialized    bool
}

// SetLED switches the LED on or off
func (s *Setter) SetLED(state bool) error {
	if err := s.initialize(); err != nil {
		return err
	}
	data := "0"
	if state {
		data = "255"
	}
	return os.WriteFile(s.brightnessPath, []byte(data), 0640)
}

// GetLED reports the current state of the LED
func (s *Setter) GetLED() (state bool) {
	if err := s.initialize(); err != nil {
		return false
	}
	if content, err := os.ReadFile(s.brightnessPath); err == nil {
		state = string(content) != "0"
	}
	return state
}

func (s *Setter) initialize() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.initialized {
		return nil
	}
	if err := disableTrigger(filepath.Join(s.LEDPath, "trigger")); err != nil {
		return err
	}
	s.brightnessPath = filepath.Join(s.LEDPath, "brightness")
	s.initialized = true
	return nil
}

var activeTrigger = regexp.MustCompile(`\[(.+)]`)

func disableTrigger(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read trigger mode: %w", err)
	}
	if m := activeTrigger.FindSubmatch(content); m != nil && bytes.Equal(m[1], []byte("none")) {
		return nil
	}
	if err = os.WriteFile(path, []byte("none"), 0644); err != nil {
		return fmt.Errorf("failed to set trigger mode: %w", err)
	}
	return nil
}
