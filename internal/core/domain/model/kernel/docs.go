// Package kernel provides shared building blocks for the domain model.
//
// It contains:
//   - OrderNumber: the human-facing, globally unique booking identifier that
//     also serves as the persistence key
//   - ConstructorGuard: a defensive pattern ensuring value objects and
//     entities are only created through their constructors
//
// These types carry no business process logic of their own; they exist to
// keep identity and construction invariants consistent across aggregates,
// commands, and adapters.
package kernel
