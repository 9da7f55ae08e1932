// Package restapi implements the outbound ports against the remote delivery
// API over JSON/HTTP.
//
// One Client wraps every outbound call: it centralizes the base URL and the
// fixed request timeout, injects the bearer token from the session on every
// request (absent token, no header), and observes authorization failures
// without transforming them - a 401 is logged and returned as
// ports.ErrUnauthorized, never auto-redirected.
//
// The per-resource services (Orders, Deliveries, Addresses, Auth) are thin
// request/response mappers over the client.
package restapi
