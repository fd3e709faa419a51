package constants

// Offer mode constants
const (
	OfferMode10Off2   = "10off2"
	OfferMode20Off3   = "20off3"
	OfferModeBuy3Get1 = "buy3-get1-free"
)

// Gift line-item origin constants
const (
	GiftSourceTier  = "tier"
	GiftSourceClaim = "claim"
)

// Free-gift promotion constants
const (
	EligibleGiftSize    = "50ml"
	DefaultFreeGiftGoal = 3
)

// Cart line-item key prefixes and separators
const (
	GiftKeyPrefix      = "gift-"
	BottleKeySeparator = "::bottle-"
)

// Tracking event type constants
const (
	EventAddToCart          = "add_to_cart"
	EventRemoveFromCart     = "remove_from_cart"
	EventUpdateCartQuantity = "update_cart_quantity"
)

// Product category constants
const (
	CategoryPerfume   = "perfume"
	CategoryKit       = "kit"
	CategoryAccessory = "accessory"
)

// Setting key constants
const (
	SettingKeyCartConfig = "cart_config"
)

// Queue and task name constants
const (
	QueueDefault      = "default"
	TaskTrackingEvent = "tracking:event"
)
