// Package order provides domain entities and business logic for order
// management in the ongs-eats system. It implements the Order aggregate root
// with lifecycle management, per-role transition rights, visibility rules,
// and the order-event types broadcast on the notification bus.
//
// The package includes:
//   - Order: The aggregate root holding customer, driver, restaurant and item
//     references together with the derived total and the lifecycle status
//   - Status: A state machine over Pending, Cooking, Cooked, PickedUp, and
//     Delivered with per-role transition rights
//   - Item: An immutable order line referencing a dish and the customer's
//     selected options
//   - Event: Order-state change notifications published per topic
//
// Key business rules:
//   - Orders start in Pending and end in Delivered
//   - Customers never transition orders; Owners may set Cooking or Cooked;
//     Delivery may set PickedUp or Delivered
//   - No ordering constraint beyond role membership is enforced, so
//     idempotent and backward transitions are allowed
//   - An actor may see or act on an order only as its customer, its assigned
//     driver, or the owner of its restaurant
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
