package event

import "time"

// Custom is a caller-defined event: a name plus free-form data, with an
// optional duration in milliseconds. It carries no logic of its own and is
// normalized through the generic record path.
type Custom struct {
	Name   string         `json:"name"`
	Data   map[string]any `json:"data"`
	TimeMS float64        `json:"time_ms"`
}

// CustomOption configures a Custom built by NewCustom.
type CustomOption func(*Custom)

// WithData attaches free-form payload data.
func WithData(data map[string]any) CustomOption {
	return func(c *Custom) { c.Data = data }
}

// WithTimeMS sets an already-measured duration in milliseconds.
func WithTimeMS(ms float64) CustomOption {
	return func(c *Custom) { c.TimeMS = ms }
}

// WithTimer resolves a running timer to elapsed milliseconds at
// construction time.
func WithTimer(t Timer) CustomOption {
	return func(c *Custom) { c.TimeMS = t.ElapsedMS() }
}

// NewCustom builds a Custom event from a name and options.
func NewCustom(name string, opts ...CustomOption) Custom {
	c := Custom{Name: name}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Timer measures wall-clock time between StartTimer and ElapsedMS.
type Timer struct {
	start time.Time
}

// StartTimer begins a measurement.
func StartTimer() Timer {
	return Timer{start: time.Now()}
}

// ElapsedMS returns the milliseconds elapsed since StartTimer.
func (t Timer) ElapsedMS() float64 {
	return float64(time.Since(t.start)) / float64(time.Millisecond)
}
