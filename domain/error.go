// Package domain defines error types for the pharmacy sale engine and inventory.
package domain

import (
	"errors"
	"fmt"
)

// BlockReason says why a batch cannot be sold.
type BlockReason string

const (
	BlockExpired   BlockReason = "expired"
	BlockExhausted BlockReason = "exhausted"
)

// BlockedBatchError is returned when a sale of an expired or exhausted batch is attempted
type BlockedBatchError struct {
	ProductID   string
	ProductName string
	BatchID     string
	BatchNumber string
	ExpiryDate  Date
	Reason      BlockReason
}

// Error implements the error interface for BlockedBatchError
func (e *BlockedBatchError) Error() string {
	if e.Reason == BlockExpired {
		return fmt.Sprintf("CRITICAL WARNING: batch %s of %s expired on %s; sale blocked for safety",
			e.BatchNumber, e.ProductName, e.ExpiryDate)
	}
	return fmt.Sprintf("batch %s of %s is out of stock; sale blocked", e.BatchNumber, e.ProductName)
}

// Is allows proper error type checking with errors.Is()
func (e *BlockedBatchError) Is(target error) bool {
	_, ok := target.(*BlockedBatchError)
	return ok
}

// Expired reports whether the batch was blocked for being past its expiry date.
func (e *BlockedBatchError) Expired() bool {
	return e.Reason == BlockExpired
}

// StockLimitError is returned when adding one more unit would exceed the batch stock
type StockLimitError struct {
	BatchID     string
	BatchNumber string
	Limit       int
}

// Error implements the error interface for StockLimitError
func (e *StockLimitError) Error() string {
	return fmt.Sprintf("cannot add more: stock limit reached: batch=%s, limit=%d", e.BatchNumber, e.Limit)
}

// Is allows proper error type checking with errors.Is()
func (e *StockLimitError) Is(target error) bool {
	_, ok := target.(*StockLimitError)
	return ok
}

// EmptyCartError is returned when checkout is attempted with no cart lines
type EmptyCartError struct{}

// Error implements the error interface for EmptyCartError
func (e *EmptyCartError) Error() string {
	return "cannot complete sale: cart is empty"
}

// Is allows proper error type checking with errors.Is()
func (e *EmptyCartError) Is(target error) bool {
	_, ok := target.(*EmptyCartError)
	return ok
}

// ProductNotFoundError is returned when a catalog product with the given ID is not found
type ProductNotFoundError struct {
	ProductID string
}

// Error implements the error interface for ProductNotFoundError
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: id=%s", e.ProductID)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// BatchNotFoundError is returned when a product has no batch with the given ID
type BatchNotFoundError struct {
	ProductID string
	BatchID   string
}

func (e *BatchNotFoundError) Error() string {
	return fmt.Sprintf("batch not found: product=%s, batch=%s", e.ProductID, e.BatchID)
}

func (e *BatchNotFoundError) Is(target error) bool {
	_, ok := target.(*BatchNotFoundError)
	return ok
}

// ItemNotFoundError is returned when an inventory item with the given ID is not found
type ItemNotFoundError struct {
	ItemID string
}

// Error implements the error interface for ItemNotFoundError
func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("inventory item not found: id=%s", e.ItemID)
}

// Is allows proper error type checking with errors.Is()
func (e *ItemNotFoundError) Is(target error) bool {
	_, ok := target.(*ItemNotFoundError)
	return ok
}

// InvalidItemError is returned when validation of an inventory item or catalog entry fails
type InvalidItemError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidItemError
func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid item: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidItemError) Is(target error) bool {
	_, ok := target.(*InvalidItemError)
	return ok
}

// InvalidProductError is returned when a catalog product or one of its batches fails validation
type InvalidProductError struct {
	ProductID string
	Field     string
	Reason    string
	Value     interface{}
}

// Error implements the error interface for InvalidProductError
func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid catalog product: product=%s, field=%s, reason=%s, value=%v",
		e.ProductID, e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidProductError) Is(target error) bool {
	_, ok := target.(*InvalidProductError)
	return ok
}

// InvalidPaymentMethodError is returned for a payment method outside Cash, POS and Transfer
type InvalidPaymentMethodError struct {
	Method string
}

func (e *InvalidPaymentMethodError) Error() string {
	return fmt.Sprintf("unknown payment method %q: want Cash, POS or Transfer", e.Method)
}

func (e *InvalidPaymentMethodError) Is(target error) bool {
	_, ok := target.(*InvalidPaymentMethodError)
	return ok
}

// DuplicateItemError is returned when attempting to create an item with an existing ID
type DuplicateItemError struct {
	ItemID string
}

// Error implements the error interface for DuplicateItemError
func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("duplicate item: id=%s already exists", e.ItemID)
}

// Is allows proper error type checking with errors.Is()
func (e *DuplicateItemError) Is(target error) bool {
	_, ok := target.(*DuplicateItemError)
	return ok
}

// Helper functions for creating errors with context

// NewBlockedBatchError creates a BlockedBatchError for batch b of product p
func NewBlockedBatchError(p Product, b Batch, reason BlockReason) error {
	return &BlockedBatchError{
		ProductID:   p.ID,
		ProductName: p.Name,
		BatchID:     b.ID,
		BatchNumber: b.BatchNumber,
		ExpiryDate:  b.ExpiryDate,
		Reason:      reason,
	}
}

// NewStockLimitError creates a new StockLimitError
func NewStockLimitError(batchID, batchNumber string, limit int) error {
	return &StockLimitError{BatchID: batchID, BatchNumber: batchNumber, Limit: limit}
}

// NewEmptyCartError creates a new EmptyCartError
func NewEmptyCartError() error {
	return &EmptyCartError{}
}

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(productID string) error {
	return &ProductNotFoundError{ProductID: productID}
}

// NewBatchNotFoundError creates a new BatchNotFoundError
func NewBatchNotFoundError(productID, batchID string) error {
	return &BatchNotFoundError{ProductID: productID, BatchID: batchID}
}

// NewItemNotFoundError creates a new ItemNotFoundError
func NewItemNotFoundError(itemID string) error {
	return &ItemNotFoundError{ItemID: itemID}
}

// NewInvalidItemError creates a new InvalidItemError
func NewInvalidItemError(field, reason string, value interface{}) error {
	return &InvalidItemError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// NewInvalidProductError creates a new InvalidProductError
func NewInvalidProductError(productID, field, reason string, value interface{}) error {
	return &InvalidProductError{ProductID: productID, Field: field, Reason: reason, Value: value}
}

// NewInvalidPaymentMethodError creates a new InvalidPaymentMethodError
func NewInvalidPaymentMethodError(method string) error {
	return &InvalidPaymentMethodError{Method: method}
}

// NewDuplicateItemError creates a new DuplicateItemError
func NewDuplicateItemError(itemID string) error {
	return &DuplicateItemError{ItemID: itemID}
}

// Type assertion helpers for use with errors.As()

// IsBlockedBatchError checks if an error is a BlockedBatchError
func IsBlockedBatchError(err error) bool {
	var bbe *BlockedBatchError
	return errors.As(err, &bbe)
}

// IsStockLimitError checks if an error is a StockLimitError
func IsStockLimitError(err error) bool {
	var sle *StockLimitError
	return errors.As(err, &sle)
}

// IsEmptyCartError checks if an error is an EmptyCartError
func IsEmptyCartError(err error) bool {
	var ece *EmptyCartError
	return errors.As(err, &ece)
}

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var pnf *ProductNotFoundError
	return errors.As(err, &pnf)
}

// IsBatchNotFoundError checks if an error is a BatchNotFoundError
func IsBatchNotFoundError(err error) bool {
	var bnf *BatchNotFoundError
	return errors.As(err, &bnf)
}

// IsItemNotFoundError checks if an error is an ItemNotFoundError
func IsItemNotFoundError(err error) bool {
	var inf *ItemNotFoundError
	return errors.As(err, &inf)
}

// IsInvalidItemError checks if an error is an InvalidItemError
func IsInvalidItemError(err error) bool {
	var iie *InvalidItemError
	return errors.As(err, &iie)
}

// IsInvalidProductError checks if an error is an InvalidProductError
func IsInvalidProductError(err error) bool {
	var ipe *InvalidProductError
	return errors.As(err, &ipe)
}

// IsInvalidPaymentMethodError checks if an error is an InvalidPaymentMethodError
func IsInvalidPaymentMethodError(err error) bool {
	var ipm *InvalidPaymentMethodError
	return errors.As(err, &ipm)
}

// IsDuplicateItemError checks if an error is a DuplicateItemError
func IsDuplicateItemError(err error) bool {
	var die *DuplicateItemError
	return errors.As(err, &die)
}

// IsNotFoundError checks for any of the lookup failures
func IsNotFoundError(err error) bool {
	return IsProductNotFoundError(err) || IsBatchNotFoundError(err) || IsItemNotFoundError(err)
}
