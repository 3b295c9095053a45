// Package services provides stateless domain services that coordinate logic
// spanning multiple aggregates.
//
// CourierSuggester proposes a delivery person for an order awaiting dispatch,
// balancing work across the roster while excluding couriers whose identity
// documents have expired or who are already out on a delivery. The suggestion
// never commits anything: the operator
// confirms the courier, and the assignment command performs the actual
// push-then-persist transition.
package services
