// Package services contains the domain services of the inspection pipeline:
//
//   - InspectionValidator: the single place where "is this inspection done"
//     is decided. Pure and deterministic; no I/O.
//   - FallbackReportGenerator: the deterministic, rule-based report used when
//     the generative text service is unavailable or fails.
//   - ReportSynthesizer: builds the generative prompt, calls the external
//     text service, and absorbs any failure into the fallback generator.
//   - NotificationDispatcher: composes and sends the customer and inspector
//     messages for each booking/inspection event with the partial-failure
//     policy the pipeline depends on.
//
// Services coordinate domain objects and outbound ports; they hold no state
// of their own beyond injected collaborators and configuration.
package services
