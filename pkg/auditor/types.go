package auditor

import "context"

// Runner is the interface that wraps the Run method.
// Run executes one complete audit pass and returns the resulting report.
type Runner interface {
	Run(ctx context.Context) (*Report, error)
}
