// Package config defines the universe of discourse for the production planner.
//
// The planner reasons about three variables, each bounded by a closed range:
//
//   - Demand: units requested by the market (default 1000-5000)
//   - Stock: units currently on hand (default 100-1000)
//   - Production: units the plant may produce (default 1000-6000)
//
// DomainBounds groups the six scalars and is treated as an immutable value. It is
// validated once, when a solver is built, and never mutated afterwards:
//
//	bounds := config.DefaultDomainBounds()
//	bounds.ProductionMax = 8000
//	if err := bounds.Validate(); err != nil {
//	    return err
//	}
//
// Validation rejects any pair where min >= max, and any non-finite bound, since
// either would make a membership ramp divide by zero or produce NaN.
package config
