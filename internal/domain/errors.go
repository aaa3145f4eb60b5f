package domain

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrUnknownStatus     = errors.New("unknown shipment status")
	ErrUnknownPriority   = errors.New("unknown shipment priority")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDanglingReference = errors.New("reference does not resolve")
)
