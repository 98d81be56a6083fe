// Package events defines the input events dispatched by the application
// runtime and the FIFO queue they travel through.
package events

import (
	"fmt"
	"time"
)

// Type identifies the kind of input event.
type Type int

const (
	// TypeUnknown is the zero value and never dispatched.
	TypeUnknown Type = iota

	// TypeTouchPress is a finger or stylus press on the panel.
	TypeTouchPress

	// TypeTouchMove is a drag while pressed.
	TypeTouchMove

	// TypeTouchRelease ends a touch sequence.
	TypeTouchRelease

	// TypeKeyPress is a hardware button or keyboard key press.
	TypeKeyPress

	// TypeWake asks the display to come out of blanking.
	TypeWake

	// TypeSleep asks the display to blank.
	TypeSleep

	// TypeCustom carries application-defined payloads in Data.
	TypeCustom
)

func (t Type) String() string {
	switch t {
	case TypeTouchPress:
		return "touch-press"
	case TypeTouchMove:
		return "touch-move"
	case TypeTouchRelease:
		return "touch-release"
	case TypeKeyPress:
		return "key-press"
	case TypeWake:
		return "wake"
	case TypeSleep:
		return "sleep"
	case TypeCustom:
		return "custom"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Event is a single input event. X/Y are panel coordinates for touch
// events, Key is set for key presses, Data carries custom payloads.
type Event struct {
	Type Type
	Time time.Time
	X, Y int
	Key  string
	Data any
}

// New returns an event of the given type stamped with the current time.
func New(t Type) *Event {
	return &Event{Type: t, Time: time.Now()}
}

// NewTouch returns a touch event at the given panel coordinates.
func NewTouch(t Type, x, y int) *Event {
	return &Event{Type: t, Time: time.Now(), X: x, Y: y}
}

// NewKey returns a key-press event for the given key name.
func NewKey(key string) *Event {
	return &Event{Type: TypeKeyPress, Time: time.Now(), Key: key}
}

// Filter is offered every event the runtime dispatches, before normal
// routing. Returning true consumes the event; no further filters run
// and the event is not routed.
type Filter interface {
	FilterEvent(ev *Event) bool
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(ev *Event) bool

func (f FilterFunc) FilterEvent(ev *Event) bool { return f(ev) }
