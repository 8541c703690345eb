// Package circuit decides whether a grid-drawn schematic forms a working
// circuit: a closed loop through a source that contains at least one load
// and one switch, with no component shorted by its own wiring.
//
// Analyze runs a fixed pipeline over a fresh gridgraph view of the input:
//
//  1. validation (invalid input is an error, never a verdict);
//  2. missing components: no source, no load or no switch;
//  3. short circuit: an element whose two terminals share a node-group;
//  4. loop search: for each source, a trail over node-groups where every
//     non-source element is an edge used at most once, running from the
//     source's second terminal back to its first.
//
// A negative verdict is a Result with Valid=false and a Reason. Errors are
// reserved for invalid input, option misuse, cancellation and
// ErrSearchBudgetExceeded.
//
// Example:
//
//	res, err := circuit.Analyze(ctx, s, circuit.WithMaxSteps(50_000))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Valid, res.Message(circuit.LangEN))
package circuit
