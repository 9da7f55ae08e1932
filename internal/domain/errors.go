package domain

import (
	"errors"
)

// Sentinel errors for domain validation failures
// Use with errors.Is() for checking and fmt.Errorf("%w", ...) for wrapping with context

var (
	// ErrMissingCustomer indicates an order write intent without a customer id
	ErrMissingCustomer = errors.New("customer id is required")

	// ErrNoItems indicates an order write intent with an empty item list
	ErrNoItems = errors.New("order must have at least one item")

	// ErrMissingProductName indicates an order item without a product name
	ErrMissingProductName = errors.New("product name is required")

	// ErrInvalidQuantity indicates an order item quantity below 1
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")

	// ErrInvalidPrice indicates an order item price below 0.01
	ErrInvalidPrice = errors.New("item price must be at least 0.01")

	// ErrUnknownOrderStatus indicates a status outside the order lifecycle
	ErrUnknownOrderStatus = errors.New("unknown order status")

	// ErrUnknownDeliveryStatus indicates a status outside the delivery lifecycle
	ErrUnknownDeliveryStatus = errors.New("unknown delivery status")

	// ErrMissingOrderID indicates a delivery write intent without an order id
	ErrMissingOrderID = errors.New("order id is required")

	// ErrIncompleteAddress indicates a destination address missing a required field
	ErrIncompleteAddress = errors.New("address must have street, city, state and zip code")

	// ErrMissingDeliveryPerson indicates an assignment without a delivery person id
	ErrMissingDeliveryPerson = errors.New("delivery person id is required")
)
