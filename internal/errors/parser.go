package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a user-facing message.
type ErrorInfo struct {
	Code    string
	Message string
}

// Parse classifies an error into a code and a user-safe message. Database
// driver details never reach the user; the code goes into the logs and the
// message into the flash notice.
func Parse(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Something went wrong. Please try again.",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: notFoundMessage(context),
		}
	}

	// Unique constraint violation (postgres 23505, sqlite "UNIQUE constraint failed")
	if strings.Contains(errStrLower, "duplicate key") ||
		strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower)
	}

	// Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "The referenced item no longer exists.",
		}
	}

	// Not null constraint violation (23502)
	if strings.Contains(errStrLower, "null value") &&
		strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field was missing.",
		}
	}

	// Network / connection failures
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "A backing service is unreachable. Please try again shortly.",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: defaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "username") || strings.Contains(errLower, "idx_users_username") {
		return ErrorInfo{
			Code:    AuthAccountExists,
			Message: "That username is already taken.",
		}
	}
	if strings.Contains(errLower, "email") || strings.Contains(errLower, "idx_users_email") {
		return ErrorInfo{
			Code:    AuthAccountExists,
			Message: "That email is already registered.",
		}
	}
	// The cart's (user_id, product_id) index only trips if the upsert path
	// was bypassed; treat it as a conflict rather than a crash.
	if strings.Contains(errLower, "idx_cart_user_product") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "That item is already in your cart.",
		}
	}
	if strings.Contains(errLower, "categories") || strings.Contains(errLower, "idx_categories_name") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "A category with that name already exists.",
		}
	}
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "That already exists.",
	}
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "product") {
		return "Product not found."
	}
	if strings.Contains(contextLower, "cart") {
		return "Cart item not found."
	}
	if strings.Contains(contextLower, "user") {
		return "User not found."
	}
	if strings.Contains(contextLower, "category") {
		return "Category not found."
	}
	return "The requested item was not found."
}

func defaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "register") || strings.Contains(contextLower, "create") {
		return "Could not complete the registration. Please try again."
	}
	if strings.Contains(contextLower, "update") {
		return "Could not save the change. Please try again."
	}
	if strings.Contains(contextLower, "delete") || strings.Contains(contextLower, "remove") {
		return "Could not remove the item. Please try again."
	}
	return "Something went wrong. Please try again."
}
