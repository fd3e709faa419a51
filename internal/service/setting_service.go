package service

import (
	"strings"

	"github.com/scentora-shop/internal/config"
	"github.com/scentora-shop/internal/constants"
	"github.com/scentora-shop/internal/models"
	"github.com/scentora-shop/internal/repository"

	"github.com/shopspring/decimal"
)

// CartSettings is the resolved storefront pricing configuration: config
// file defaults overridden by the cart_config settings row.
type CartSettings struct {
	FreeDeliveryThreshold models.Money `json:"free_delivery_threshold"`
	FlatDeliveryCharge    models.Money `json:"flat_delivery_charge"`
	FreeGiftGoal          int          `json:"free_gift_goal"`
	WhatsAppPhone         string       `json:"whatsapp_phone"`
}

// SettingService resolves runtime-editable storefront settings.
type SettingService struct {
	repo     repository.SettingRepository
	cartCfg  config.CartConfig
	whatsapp config.WhatsAppConfig
}

// NewSettingService creates a settings service.
func NewSettingService(repo repository.SettingRepository, cartCfg config.CartConfig, whatsapp config.WhatsAppConfig) *SettingService {
	return &SettingService{
		repo:     repo,
		cartCfg:  cartCfg,
		whatsapp: whatsapp,
	}
}

// CartSettings returns the effective cart configuration.
func (s *SettingService) CartSettings() (CartSettings, error) {
	resolved := CartSettings{
		FreeDeliveryThreshold: models.NewMoneyFromDecimal(decimal.NewFromFloat(s.cartCfg.FreeDeliveryThreshold)),
		FlatDeliveryCharge:    models.NewMoneyFromDecimal(decimal.NewFromFloat(s.cartCfg.FlatDeliveryCharge)),
		FreeGiftGoal:          s.cartCfg.FreeGiftGoal,
		WhatsAppPhone:         strings.TrimSpace(s.whatsapp.Phone),
	}
	if resolved.FreeGiftGoal <= 0 {
		resolved.FreeGiftGoal = constants.DefaultFreeGiftGoal
	}

	setting, err := s.repo.GetByKey(constants.SettingKeyCartConfig)
	if err != nil {
		return resolved, err
	}
	if setting == nil {
		return resolved, nil
	}

	if amount, ok := settingAmount(setting.ValueJSON, "free_delivery_threshold"); ok {
		resolved.FreeDeliveryThreshold = amount
	}
	if amount, ok := settingAmount(setting.ValueJSON, "flat_delivery_charge"); ok {
		resolved.FlatDeliveryCharge = amount
	}
	if goal, ok := settingInt(setting.ValueJSON, "free_gift_goal"); ok && goal > 0 {
		resolved.FreeGiftGoal = goal
	}
	if phone, ok := settingString(setting.ValueJSON, "whatsapp_phone"); ok && phone != "" {
		resolved.WhatsAppPhone = phone
	}
	return resolved, nil
}

// UpdateCartSettings replaces the cart_config settings row.
func (s *SettingService) UpdateCartSettings(value map[string]interface{}) (models.JSON, error) {
	setting, err := s.repo.Upsert(constants.SettingKeyCartConfig, models.JSON(value))
	if err != nil {
		return nil, err
	}
	return setting.ValueJSON, nil
}

func settingAmount(value models.JSON, key string) (models.Money, bool) {
	raw, ok := value[key]
	if !ok {
		return models.Money{}, false
	}
	switch v := raw.(type) {
	case float64:
		if v < 0 {
			return models.Money{}, false
		}
		return models.NewMoneyFromDecimal(decimal.NewFromFloat(v)), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil || d.IsNegative() {
			return models.Money{}, false
		}
		return models.NewMoneyFromDecimal(d), true
	default:
		return models.Money{}, false
	}
}

func settingInt(value models.JSON, key string) (int, bool) {
	raw, ok := value[key]
	if !ok {
		return 0, false
	}
	if v, ok := raw.(float64); ok {
		return int(v), true
	}
	return 0, false
}

func settingString(value models.JSON, key string) (string, bool) {
	raw, ok := value[key]
	if !ok {
		return "", false
	}
	if v, ok := raw.(string); ok {
		return strings.TrimSpace(v), true
	}
	return "", false
}
