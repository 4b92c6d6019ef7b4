package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest carries no end time: the slot length comes from the
// service's duration.
type CreateBookingRequest struct {
	TrainerID uuid.UUID `json:"trainer_id" binding:"required"`
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
}

type ListBookingsQuery struct {
	Status string `form:"status"`
	Role   string `form:"role"`
	Time   string `form:"time"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
}
