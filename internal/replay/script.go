package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EventEnter   = "enter"
	EventMove    = "move"
	EventLeave   = "leave"
	EventPointer = "pointer"
	EventOut     = "out"
)

// Event is one scripted pointer event. enter/leave name a shape directly;
// pointer hit-tests X,Y against the scene the way a browser would; out moves
// the pointer off the map. After advances the clock before the event fires.
// At optionally places the pointer for an enter event as [x, y].
type Event struct {
	Type     string        `yaml:"type"`
	Shape    string        `yaml:"shape"`
	X        float64       `yaml:"x"`
	Y        float64       `yaml:"y"`
	At       []float64     `yaml:"at"`
	After    time.Duration `yaml:"after"`
	Snapshot string        `yaml:"snapshot"`
}

type Script struct {
	Events []Event `yaml:"events"`
}

// LoadScript reads a YAML replay script from disk.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read replay script: %w", err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse replay script: %w", err)
	}
	for i := range s.Events {
		ev := &s.Events[i]
		ev.Type = strings.ToLower(strings.TrimSpace(ev.Type))
		switch ev.Type {
		case EventEnter, EventLeave:
			if ev.Shape == "" {
				return nil, fmt.Errorf("replay event %d: %s requires a shape", i, ev.Type)
			}
		case EventMove, EventPointer, EventOut:
		default:
			return nil, fmt.Errorf("replay event %d: unknown type %q", i, ev.Type)
		}
		if ev.At != nil && len(ev.At) != 2 {
			return nil, fmt.Errorf("replay event %d: at must be [x, y]", i)
		}
		if ev.After < 0 {
			return nil, fmt.Errorf("replay event %d: negative delay", i)
		}
	}
	return s, nil
}
