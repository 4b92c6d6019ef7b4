package response

import (
	"time"

	"coach-flow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UnavailabilityResponse struct {
	ID        uuid.UUID `json:"id"`
	TrainerID uuid.UUID `json:"trainerId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromUnavailabilityView(view *queries.UnavailabilityView) *UnavailabilityResponse {
	var resp UnavailabilityResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromUnavailabilityList(views []*queries.UnavailabilityView) []*UnavailabilityResponse {
	result := make([]*UnavailabilityResponse, len(views))
	for i, view := range views {
		result[i] = FromUnavailabilityView(view)
	}
	return result
}
