package response

import (
	"time"

	"coach-flow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID             uuid.UUID  `json:"id"`
	ClientID       uuid.UUID  `json:"clientId"`
	ClientEmail    string     `json:"clientEmail"`
	TrainerID      uuid.UUID  `json:"trainerId"`
	TrainerEmail   string     `json:"trainerEmail"`
	ServiceID      uuid.UUID  `json:"serviceId"`
	ServiceName    string     `json:"serviceName"`
	StartTime      time.Time  `json:"startTime"`
	EndTime        time.Time  `json:"endTime"`
	Status         string     `json:"status"`
	ReminderSentAt *time.Time `json:"reminderSentAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientID    uuid.UUID `json:"clientId"`
	TrainerID   uuid.UUID `json:"trainerId"`
	ServiceID   uuid.UUID `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListItemResponse {
	result := make([]*BookingListItemResponse, len(items))
	for i, item := range items {
		var resp BookingListItemResponse
		_ = copier.Copy(&resp, item)
		result[i] = &resp
	}
	return result
}
