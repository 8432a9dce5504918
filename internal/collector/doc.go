// Package collector supplies validated (demand, stock) inputs to the planner.
//
// The inference core never validates ranges; every InputSource does, against the
// effective bounds of the product being planned, before a request is handed on.
//
// # Sources
//
//   - ConsoleSource: interactive prompts that re-ask on non-numeric or
//     out-of-range answers until a valid value is entered or input ends.
//   - StaticSource: a single request from command-line flags.
//   - FileSource: a YAML batch of requests.
//
// Example usage:
//
//	src := collector.NewConsoleSource(os.Stdin, os.Stdout, boundsProvider, collector.ConsoleSourceConfig{})
//	requests, err := src.Collect(ctx)
//	if errors.Is(err, collector.ErrNoInput) {
//	    // stdin closed before both values were entered
//	}
package collector
