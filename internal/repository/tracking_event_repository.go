package repository

import (
	"strings"

	"github.com/scentora-shop/internal/models"

	"gorm.io/gorm"
)

// TrackingEventRepository is the analytics event data access interface.
type TrackingEventRepository interface {
	Create(event *models.TrackingEvent) error
	List(filter TrackingEventListFilter) ([]models.TrackingEvent, int64, error)
}

// GormTrackingEventRepository is the GORM implementation.
type GormTrackingEventRepository struct {
	db *gorm.DB
}

// NewTrackingEventRepository creates a tracking event repository.
func NewTrackingEventRepository(db *gorm.DB) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{db: db}
}

// Create inserts an event.
func (r *GormTrackingEventRepository) Create(event *models.TrackingEvent) error {
	if event == nil {
		return nil
	}
	return r.db.Create(event).Error
}

// List returns an event page, newest first.
func (r *GormTrackingEventRepository) List(filter TrackingEventListFilter) ([]models.TrackingEvent, int64, error) {
	var events []models.TrackingEvent

	query := r.db.Model(&models.TrackingEvent{})
	if token := strings.TrimSpace(filter.CartToken); token != "" {
		query = query.Where("cart_token = ?", token)
	}
	if eventType := strings.TrimSpace(filter.EventType); eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at DESC, id DESC").Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
