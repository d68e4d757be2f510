// Package order provides domain entities and business logic for inspection
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages booking identity, checklist
//     results, the synthesized report, and the order lifecycle
//   - Status: A state machine that enforces the monotonic
//     pending -> in_progress -> completed progression
//   - PointStatus / Results / Observations: the inspector's checklist answers
//   - Booking-time value structs (PersonalInfo, VehicleInfo, SellerInfo,
//     SelectedPackage) that are immutable once the order is created
//
// Key business rules:
//   - Orders are identified by their order number, assigned at creation
//   - Status transitions only move forward; completed is never reversed
//   - A report is present only on completed orders
//   - Resubmitting a completed checklist may regenerate the report but
//     never changes the status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
