package lametric

import (
	"encoding/json"
	"fmt"
)

// Frame is one visual page of a notification. The concrete types are
// Simple, Goal and Chart; on the wire the variant is distinguished by
// shape, not by a discriminator field.
type Frame interface {
	frame()
}

// Simple is a plain icon-and-text frame. Icon is either an integer icon id
// or a string icon name; leave it nil for no icon.
type Simple struct {
	Icon any    `json:"icon,omitempty"`
	Text string `json:"text" validate:"required"`
}

func (Simple) frame() {}

// GoalData is the progress payload of a Goal frame.
type GoalData struct {
	Current int    `json:"current"`
	End     int    `json:"end"`
	Start   int    `json:"start"`
	Unit    string `json:"unit,omitempty"`
}

// Goal is a progress-indicator frame.
type Goal struct {
	Icon any      `json:"icon,omitempty"`
	Data GoalData `json:"goalData"`
}

func (Goal) frame() {}

// Chart is a line-chart frame plotting a series of integers.
type Chart struct {
	Data []int `json:"chartData" validate:"required,min=1"`
}

func (Chart) frame() {}

// decodeFrame picks the frame variant by inspecting which shape-defining
// key is present: chartData first, then goalData, then simple.
func decodeFrame(data []byte) (Frame, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	switch {
	case probe["chartData"] != nil:
		var chart Chart
		if err := json.Unmarshal(data, &chart); err != nil {
			return nil, fmt.Errorf("decode chart frame: %w", err)
		}
		return chart, nil
	case probe["goalData"] != nil:
		var goal Goal
		if err := json.Unmarshal(data, &goal); err != nil {
			return nil, fmt.Errorf("decode goal frame: %w", err)
		}
		return goal, nil
	default:
		var simple Simple
		if err := json.Unmarshal(data, &simple); err != nil {
			return nil, fmt.Errorf("decode simple frame: %w", err)
		}
		return simple, nil
	}
}

// Sound plays alongside a notification. When Category is left empty it is
// derived from the sound identifier; the alarm and notification
// enumerations are disjoint, so the derivation is unambiguous.
type Sound struct {
	Category SoundCategory `json:"category,omitempty"`
	Sound    SoundID       `json:"id" validate:"required"`
	Repeat   int           `json:"repeat,omitempty" validate:"min=0"`
}

// NewSound builds a Sound with its category inferred from the identifier.
// A repeat of 0 plays the sound once.
func NewSound(id SoundID, repeat int) *Sound {
	return &Sound{Category: id.Category(), Sound: id, Repeat: repeat}
}

// MarshalJSON emits the aliased wire form, deriving the category when it
// was never set and defaulting repeat to a single play.
func (s Sound) MarshalJSON() ([]byte, error) {
	type sound Sound
	out := sound(s)
	if out.Category == "" {
		out.Category = s.Sound.Category()
	}
	if out.Repeat == 0 {
		out.Repeat = 1
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the wire form and derives a missing category.
func (s *Sound) UnmarshalJSON(data []byte) error {
	type sound Sound
	var raw sound
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Sound(raw)
	if s.Category == "" {
		s.Category = s.Sound.Category()
	}
	return nil
}

// Model is the visual payload of a notification: an ordered frame sequence
// cycled Cycles times, with an optional sound. Frame order is preserved
// exactly as supplied; playback order on the device depends on it. A
// Cycles of 0 keeps the notification on screen until dismissed.
type Model struct {
	Cycles int     `json:"cycles"`
	Frames []Frame `json:"frames" validate:"min=1"`
	Sound  *Sound  `json:"sound,omitempty"`
}

// NewModel builds a single-cycle model from the given frames.
func NewModel(frames ...Frame) Model {
	return Model{Cycles: 1, Frames: frames}
}

// UnmarshalJSON decodes frames through the shape-based variant detection.
func (m *Model) UnmarshalJSON(data []byte) error {
	var raw struct {
		Cycles int               `json:"cycles"`
		Frames []json.RawMessage `json:"frames"`
		Sound  *Sound            `json:"sound"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Cycles = raw.Cycles
	m.Sound = raw.Sound
	m.Frames = nil
	for _, frameData := range raw.Frames {
		frame, err := decodeFrame(frameData)
		if err != nil {
			return err
		}
		m.Frames = append(m.Frames, frame)
	}
	return nil
}

// Notification is the envelope sent to, and reported by, the device
// notification queue. Unset optional fields are omitted on the wire.
type Notification struct {
	Created        *Timestamp           `json:"created,omitempty"`
	ExpirationDate *Timestamp           `json:"expiration_date,omitempty"`
	IconType       IconType             `json:"icon_type,omitempty"`
	LifeTime       *float64             `json:"life_time,omitempty"`
	Model          Model                `json:"model"`
	NotificationID *int                 `json:"id,omitempty"`
	Type           NotificationType     `json:"type,omitempty"`
	Priority       NotificationPriority `json:"priority,omitempty"`
}
