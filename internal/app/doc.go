// Package app contains the console's orchestration flows.
//
// This is the application layer of the hexagonal architecture: it composes
// the outbound ports (remote API services, token storage) into the flows the
// inbound adapters drive. No HTTP, no HTML, no file formats here -
// dependencies are injected via internal/ports.
//
// Flows
// -----------------------
//   - session.go: the process-wide session store. Explicit, injectable, two
//     mutators (Login, Logout) and a read accessor; backed by a TokenStore.
//   - bootstrap_auth.go: the authentication callback state machine reconciling the
//     three ways a login token can arrive (error param, direct token param,
//     cookie-backed login-success probe).
//   - lookup.go: the debounced postal-code lookup. Superseded inputs are
//     released immediately; only the last-scheduled quiet timer fires.
//   - orders.go, deliveries.go: thin request/response flows over the domain
//     services, validating write intents before any request is issued.
//   - application.go: Bootstrap, the composition root.
package app
