// Package core provides the algorithm tier of the automaton engine.
// Options for configuring Converter and Simulator instances.
package core

// ConverterOption applies configuration to Converter via functional options pattern.
type ConverterOption func(*Converter)

// SimulatorOption applies configuration to Simulator via functional options pattern.
type SimulatorOption func(*Simulator)

// WithStageObserver configures the Converter with a StageObserver.
func WithStageObserver(o StageObserver) ConverterOption {
	return func(c *Converter) {
		c.observer = o
	}
}

// WithStepObserver configures the Simulator with a StepObserver.
func WithStepObserver(o StepObserver) SimulatorOption {
	return func(s *Simulator) {
		s.observer = o
	}
}
