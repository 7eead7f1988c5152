package app

import (
	"quadgrid/hal"
	"quadgrid/metrics"
	"quadgrid/tasks/quadrant"
)

// Config selects optional behaviour of the application.
type Config struct {
	// X and Y pre-fill the form; when both are set the point is calculated at startup.
	X, Y string
	// Sound enables the error tone.
	Sound   bool
	Metrics *metrics.Metrics
}

type system struct {
	h    hal.HAL
	task *quadrant.Task
}

// New builds the application on h with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig builds the application on h and returns the step function
// runners call once per frame.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return s.step
}

func newSystem(h hal.HAL, cfg Config) *system {
	qcfg := quadrant.Config{
		Logger:  h.Logger(),
		Metrics: cfg.Metrics,
	}
	if cfg.Sound {
		qcfg.Audio = h.Audio()
	}
	task := quadrant.New(h.Display(), h.Input(), h.Time(), qcfg)

	if cfg.X != "" || cfg.Y != "" {
		task.SetFields(cfg.X, cfg.Y)
		if cfg.X != "" && cfg.Y != "" {
			task.Calculate()
		}
	}
	return &system{h: h, task: task}
}

func (s *system) step() (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = showPanic(s.h, v)
		}
	}()
	return s.task.Step()
}
