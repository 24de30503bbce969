package services

import "errors"

// Every core operation reports failures through one of these sentinels so the
// transport layer can pick wording and status codes without inspecting state.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrOptimisticLock      = errors.New("account was modified concurrently, please retry")
	ErrAlreadyRegistered   = errors.New("account already registered")
	ErrAlreadyPending      = errors.New("a request is already awaiting approval")
	ErrNoPendingRequest    = errors.New("no pending request found")
	ErrAlreadyProcessed    = errors.New("request has already been processed")
	ErrLevelOutOfOrder     = errors.New("vip levels must be purchased one at a time, in order")
	ErrLevelCapReached     = errors.New("maximum vip level already reached")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("amount is below the minimum withdrawal")
	ErrNoPaymentDetails    = errors.New("bank account details are required before withdrawing")
	ErrWithdrawalNotFound  = errors.New("withdrawal request not found")
)
