package models

// SlipStatus is the state of a payment-slip purchase request.
// The empty string means no slip has been uploaded.
type SlipStatus string

const (
	SlipStatusPending  SlipStatus = "pending"
	SlipStatusApproved SlipStatus = "approved"
	SlipStatusRejected SlipStatus = "rejected"
)

// WithdrawalStatus is the state of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)
