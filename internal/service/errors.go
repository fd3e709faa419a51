package service

import "errors"

// Sentinel errors shared across services. Handlers map these to API codes
// with errors.Is.
var (
	ErrCartTokenRequired   = errors.New("cart token required")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductInvalid      = errors.New("product fields invalid")
	ErrProductNotAvailable = errors.New("product not available")
	ErrBottleOptionInvalid = errors.New("bottle option invalid")
	ErrGiftLineImmutable   = errors.New("gift line cannot be edited")
	ErrGiftLocked          = errors.New("free gift not unlocked")
	ErrGiftAlreadyClaimed  = errors.New("free gift already claimed")
	ErrGiftNotEligible     = errors.New("product not eligible as free gift")
	ErrSlugTaken           = errors.New("slug already in use")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrGiftTierInvalid     = errors.New("gift tier invalid")
	ErrQuizAnswerInvalid   = errors.New("quiz answers invalid")
	ErrCheckoutUnavailable = errors.New("checkout channel not configured")
)
