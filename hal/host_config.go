package hal

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int

	// Snapshot, when set, receives a PNG of the framebuffer after the last tick.
	Snapshot string
}

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	// Scale is the integer zoom applied to the framebuffer (1 = native size).
	Scale int
}

// TerminalConfig controls the tcell terminal runner.
type TerminalConfig struct {
	Enabled bool
	Hz      int
}
