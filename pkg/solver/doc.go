// Package solver runs the Tsukamoto inference pipeline end to end.
//
// A Solver is built once from validated domain bounds and is immutable
// afterwards, so a single value can be shared freely across goroutines:
//
//	s, err := solver.NewSolver(config.DefaultDomainBounds())
//	if err != nil {
//	    return err // bounds with min >= max fail here, never at call time
//	}
//	production := s.Infer(3000, 550) // 3500
//
// Explain returns the full trace (memberships, per-rule strengths and
// consequents, total strength) for reporting and metrics.
package solver
