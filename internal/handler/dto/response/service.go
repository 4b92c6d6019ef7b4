package response

import (
	"time"

	"coach-flow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	TrainerID       uuid.UUID `json:"trainerId"`
	Name            string    `json:"name"`
	DurationMinutes int32     `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromServiceList(views []*queries.ServiceView) []*ServiceResponse {
	result := make([]*ServiceResponse, len(views))
	for i, view := range views {
		result[i] = FromServiceView(view)
	}
	return result
}
