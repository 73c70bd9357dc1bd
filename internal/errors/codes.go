package errors

// Error code constants, CATEGORY_SPECIFIC_DETAIL. Codes go into the
// structured logs; the user only ever sees the flash message.

const (
	// Authentication
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"       // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong username/password
	AuthSessionExpired     = "AUTH_SESSION_EXPIRED"    // session record gone
	AuthAccountExists      = "AUTH_ACCOUNT_EXISTS"     // duplicate username or email

	// Authorization
	AuthzOwnerOnly = "AUTHZ_OWNER_ONLY" // cart row belongs to another user

	// Validation
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// Resources
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// Cart / checkout
	CartItemNotFound = "CART_ITEM_NOT_FOUND"
	CartEmpty        = "CART_EMPTY"
	ProductNotFound  = "PRODUCT_NOT_FOUND"

	// Internal
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)
