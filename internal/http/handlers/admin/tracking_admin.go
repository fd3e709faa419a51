package admin

import (
	"strconv"

	handlershared "github.com/scentora-shop/internal/http/handlers/shared"
	"github.com/scentora-shop/internal/http/response"
	"github.com/scentora-shop/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListTrackingEvents returns the analytics event log, newest first.
func (h *Handler) ListTrackingEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	events, total, err := h.TrackingEventRepo.List(repository.TrackingEventListFilter{
		Page:      page,
		PageSize:  pageSize,
		CartToken: c.Query("cart_token"),
		EventType: c.Query("event_type"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "tracking event list failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"items": events}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: handlershared.TotalPages(total, pageSize),
	})
}
