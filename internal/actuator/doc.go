// Package actuator emits production decisions to the operator.
//
// The actuator is the output boundary of the planner. It never changes a
// decision; it only renders what the planning engine produced.
//
// # Formats
//
// Three formats are supported, selected with --output:
//   - text: the console report
//   - json: a ProductionPlanList (api/v1alpha1) with one item per decision
//   - yaml: the same list encoded as YAML
//
// In text mode a banner with the configured bounds is printed once before
// interactive input, then each decision is printed as a result block:
//
//	=== CALCULATION RESULT ===
//	Demand: 5000 units
//	Stock: 100 units
//	Recommended Production: 6000 units
//
// With --explain the block also lists memberships and every rule with its
// firing strength and consequent.
//
// # Usage Example
//
//	act, err := actuator.NewActuator(actuator.Config{Format: "json", Out: os.Stdout})
//	if err != nil {
//	    return err
//	}
//	err = act.Emit(ctx, decisions)
//
// See also:
//   - internal/engines/planner: produces the decisions
//   - api/v1alpha1: the ProductionPlan document
package actuator
