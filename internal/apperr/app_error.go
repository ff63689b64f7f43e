package apperr

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kasirpos/kasirpos/pkg/zerror"
)

const (
	ValidationErrorCode        = "VALIDATION_FAILED"
	ProductNotFoundCode        = "PRODUCT_NOT_FOUND"
	TransactionNotFoundCode    = "TRANSACTION_NOT_FOUND"
	EmptyCartCode              = "EMPTY_CART"
	InsufficientStockCode      = "INSUFFICIENT_STOCK"
	PersistenceFailedCode      = "PERSISTENCE_FAILED"
	InvalidCredentialsCode     = "INVALID_CREDENTIALS"
	SessionNotFoundCode        = "SESSION_NOT_FOUND"
	InvalidPaymentMethodCode   = "INVALID_PAYMENT_METHOD"
	InvalidQuantityCode        = "INVALID_QUANTITY"
	InvalidDateRangeCode       = "INVALID_DATE_RANGE"
	StorageDriverUnknownCode   = "STORAGE_DRIVER_UNKNOWN"
	ReceiptRenderingFailedCode = "RECEIPT_RENDERING_FAILED"
)

var (
	ValidationErr          = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ProductNotFoundErr     = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	TransactionNotFoundErr = zerror.NewNotFound(TransactionNotFoundCode, "transaction not found")
	EmptyCartErr           = zerror.NewUnprocessableEntity(EmptyCartCode, "cart is empty")
	PersistenceErr         = zerror.NewInternalServerError(PersistenceFailedCode, "storage read or write failed")
	InvalidCredentialsErr  = zerror.NewUnauthorized(InvalidCredentialsCode, "invalid username or password")
	SessionNotFoundErr     = zerror.NewNotFound(SessionNotFoundCode, "no active session")
	InvalidDateRangeErr    = zerror.NewBadRequest(InvalidDateRangeCode, "invalid date range")
)

// InsufficientStockError carries the quantities a failed checkout observed.
// It always travels as the parent of the ZError built by NewInsufficientStock,
// so callers reach it with errors.As while the HTTP layer keeps its generic
// code/status mapping.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

// NewInsufficientStock builds the typed checkout failure for one cart line.
func NewInsufficientStock(productID uuid.UUID, available, requested int) error {
	parent := &InsufficientStockError{
		ProductID: productID,
		Available: available,
		Requested: requested,
	}
	zErr := zerror.NewUnprocessableEntity(InsufficientStockCode,
		fmt.Sprintf("only %d in stock, requested %d", available, requested)).
		WrapParent(parent)
	return zErr
}
