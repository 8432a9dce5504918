// Package controller runs one planning pass.
//
// The controller wires the three stages of the planner together:
//
//	InputSource → Planner → Actuator
//
// # Reconciliation Flow
//
//  1. Collect requests from the configured InputSource (console, flags or
//     a YAML batch file). Every request is validated against the bounds of
//     its product before it leaves the collector.
//  2. Plan every request. Requests whose product has invalid bounds fail
//     individually; the rest are still planned.
//  3. Emit the decisions that were planned, then report the joined errors.
//
// A collection error aborts the pass before anything is planned.
//
// # Usage Example
//
//	c := controller.NewController(source, engine, act)
//	if _, err := c.Run(ctx); err != nil {
//	    return err
//	}
package controller
