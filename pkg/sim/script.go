package sim

import (
	"fmt"
	"os"
	"sort"

	"github.com/cbodonnell/kangaroo/pkg/input"
	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of key presses replayed against a session.
type Script struct {
	// Frames is the number of ticks to run.
	Frames uint64        `yaml:"frames"`
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent presses and releases keys right before the given frame is ticked.
type ScriptEvent struct {
	Frame uint64   `yaml:"frame"`
	Down  []string `yaml:"down"`
	Up    []string `yaml:"up"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %v", path, err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	script := &Script{}
	if err := yaml.Unmarshal(data, script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %v", err)
	}
	if script.Frames == 0 {
		return nil, fmt.Errorf("script must run at least one frame")
	}
	sort.SliceStable(script.Events, func(i, j int) bool {
		return script.Events[i].Frame < script.Events[j].Frame
	})
	return script, nil
}

// apply pushes the key changes of event onto the queue, releases first.
func (e ScriptEvent) apply(events *input.EventQueue) error {
	for _, key := range e.Up {
		if err := events.KeyUp(input.Key(key)); err != nil {
			return err
		}
	}
	for _, key := range e.Down {
		if err := events.KeyDown(input.Key(key)); err != nil {
			return err
		}
	}
	return nil
}
