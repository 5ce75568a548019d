// Package services provides domain services that implement business logic
// spanning multiple aggregates in the ongs-eats system.
//
// The package includes:
//   - Authorization: a pure predicate resolving an actor and a per-operation
//     role requirement into allow/deny
//   - Pricer: the pricing engine deriving order line and total cost from a
//     dish's option schema and a customer's selections
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root.
package services
