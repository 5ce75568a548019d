// Package user provides domain entities for identity and role management in
// the ongs-eats system. It implements the User aggregate root together with
// the Role enumeration and the email Verification entity.
//
// The package includes:
//   - User: The aggregate root holding identity, hashed credential, role, and
//     verified state
//   - Role: The closed set of concrete user roles (Customer, Owner, Delivery)
//   - Verification: A one-shot email verification code bound to a user
//
// Key business rules:
//   - A user's email is their identity and must be present
//   - The credential is stored hashed and is never exposed on reads
//   - Changing the email resets verified to false and requires a fresh
//     verification code
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package user
