package apperr

import "github.com/pantrystack/pantry-tracker/pkg/zerror"

const (
	ValidationErrorCode          = "VALIDATION_FAILED"
	ProductNotFoundCode          = "PRODUCT_NOT_FOUND"
	ContainerNotFoundCode        = "CONTAINER_NOT_FOUND"
	ProductRefNotFoundCode       = "PRODUCT_REF_NOT_FOUND"
	DuplicateUPCCode             = "DUPLICATE_UPC"
	DuplicateIdentifierCode      = "DUPLICATE_IDENTIFIER"
	RemainingExceedsQuantityCode = "REMAINING_EXCEEDS_QUANTITY"
	QRCodeRenderFailedCode       = "QRCODE_RENDER_FAILED"
	StorageUnavailableCode       = "STORAGE_UNAVAILABLE"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	ProductNotFoundErr   = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	ContainerNotFoundErr = zerror.NewNotFound(ContainerNotFoundCode, "container not found")

	// ProductRefNotFoundErr signals a container pointing at a product that
	// does not resolve. It is a validation failure, not a not-found: the
	// container request itself is malformed.
	ProductRefNotFoundErr = zerror.NewValidationFailed(ProductRefNotFoundCode, "referenced product does not exist")

	DuplicateUPCErr        = zerror.NewConflict(DuplicateUPCCode, "a product with this upc already exists")
	DuplicateIdentifierErr = zerror.NewConflict(DuplicateIdentifierCode, "minted identifier already exists")

	RemainingExceedsQuantityErr = zerror.NewValidationFailed(RemainingExceedsQuantityCode, "remaining cannot exceed quantity")

	QRCodeRenderErr = zerror.NewInternalServerError(QRCodeRenderFailedCode, "failed to render qr code")

	StorageUnavailableErr = zerror.NewServiceUnavailable(StorageUnavailableCode, "storage is unavailable")
)
