// Package checklist provides the fixed inspection checklist catalog: the
// externally supplied, ordered set of categories and canonical point names
// that every inspection is answered against.
//
// The catalog is static data. It carries no answers; the inspector's answers
// live on the order aggregate, keyed by the canonical point names defined
// here. A built-in default catalog ships with the binary and a JSON loader
// supports overriding it per deployment.
package checklist
