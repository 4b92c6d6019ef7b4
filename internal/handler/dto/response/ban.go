package response

import (
	"time"

	"coach-flow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BanResponse struct {
	ClientID    uuid.UUID `json:"clientId"`
	TrainerID   uuid.UUID `json:"trainerId"`
	BannedUntil time.Time `json:"bannedUntil"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromBanList(views []*queries.BanView) []*BanResponse {
	result := make([]*BanResponse, len(views))
	for i, view := range views {
		var resp BanResponse
		_ = copier.Copy(&resp, view)
		result[i] = &resp
	}
	return result
}
