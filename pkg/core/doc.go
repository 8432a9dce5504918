// Package core implements the layers of a Tsukamoto fuzzy inference system that
// recommends a production quantity from demand and stock.
//
// The pipeline is a single stateless pass:
//
//  1. Membership: each crisp input is mapped onto two complementary linguistic
//     terms by linear ramps (demand low/high, stock scarce/plentiful).
//  2. Rules: four fixed IF-AND-THEN rules combine one demand term and one stock
//     term with the minimum T-norm, yielding a firing strength (alpha) per rule.
//  3. Consequents: each rule's monotonic consequent set (production decrease or
//     increase) is inverted to map alpha onto a crisp production value z.
//  4. Aggregation: the recommendation is the alpha-weighted average of all z.
//
// Example usage:
//
//	bounds := config.DefaultDomainBounds()
//	m := core.Fuzzify(bounds, 3000, 550)
//	activations := core.Fire(m, bounds.Production())
//	recommended, fallback := core.Aggregate(activations, bounds.Production())
//
// Every function here is pure and total: inputs outside the configured range
// saturate at membership 0 or 1 rather than being rejected. Range validation is
// the caller's concern.
//
// The rule table is fixed and intentionally not configurable.
package core
