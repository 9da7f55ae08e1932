// Package adapters contains infrastructure implementations of port interfaces.
//
// This is the ADAPTER LAYER of the hexagonal architecture - it implements the
// interfaces defined in internal/ports using concrete technologies (the
// remote JSON API, the filesystem, the chi HTTP router). Adapters translate
// between the console's flows and the outside world.
//
// Hexagonal Architecture Boundaries:
//   - Adapters implement: internal/ports interfaces
//   - Adapters import from: internal/domain, internal/ports, internal/app,
//     external libraries, standard library
//   - Adapters are instantiated: by cmd/deliverydesk (composition root)
//   - Domain/App layers: NEVER import concrete adapters directly
//
// Layout:
//   - outbound/restapi: the HTTP gateway and the per-resource clients of the
//     remote delivery API
//   - outbound/tokenfile: durable bearer-token storage
//   - inbound/web: the browser-facing console (router, guard, views)
package adapters
