// Package domain contains the domain model for the delivery console.
//
// This package is the CORE of the hexagonal architecture - it defines the
// value objects the console works with (orders, deliveries, addresses,
// pages) with ZERO dependencies on transport, storage, or UI concerns.
// All entities are owned by the remote delivery API; the console only holds
// read-only or write-intent copies of them.
//
// Hexagonal Architecture Boundaries:
//   - Domain NEVER imports from: internal/adapters, internal/ports, internal/app
//   - Domain ONLY imports from: standard library, shopspring/decimal (money)
//   - Domain exposes: value objects, status enumerations, validation errors
//   - Domain does NOT: perform I/O, call the remote API, render views
//
// Files and types
// -----------------------
//   - order.go
//   - Order, OrderItem, OrderStatus: a customer purchase request composed of
//     line items, tracked through an eight-state fulfillment lifecycle.
//     Item validation (quantity, price) lives here; totals are computed with
//     exact decimal arithmetic for display only - the server-reported
//     TotalAmount is trusted, never recomputed onto the entity.
//
//   - delivery.go
//   - Delivery, DeliveryStatus, TrackingEvent: the logistics record
//     fulfilling one order. The delivery address may arrive in one of four
//     historical shapes; ResolveAddress reduces them to a single tagged
//     variant with a fixed precedence order.
//
//   - address.go
//   - Address, AddressInfo: a structured destination address, produced by
//     user entry or by the postal-code lookup.
//
//   - page.go
//   - Page[T]: a zero-based windowed result set with total-count metadata.
//
//   - errors.go
//   - Sentinel validation errors for order and delivery write intents.
package domain
