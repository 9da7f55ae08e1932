// Package ports defines the interfaces between the console's orchestration
// layer and the outside world.
//
// Outbound ports abstract the remote delivery API (orders, deliveries,
// address lookup, authentication) and the durable token storage. Adapters in
// internal/adapters implement them; flows in internal/app depend on them.
//
// Hexagonal Architecture Boundaries:
//   - Ports import from: internal/domain, standard library
//   - Ports NEVER import concrete adapters or frameworks
//   - Error contracts are expressed with the sentinel errors in errors.go
package ports
