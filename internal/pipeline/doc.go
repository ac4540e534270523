// Package pipeline runs the report analysis as an ordered list of steps.
//
// Each Step computes one view of a loaded purchase table and stores it in
// a model.Report. DefaultPipeline wires the nine standard views in report
// order. Steps run sequentially; the pipeline checks for cancellation
// between steps and converts a panicking step into an error wrapping
// ErrStepPanicked that names the step and carries its stack.
package pipeline
