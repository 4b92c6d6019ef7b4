package request

import (
	"time"

	"github.com/google/uuid"
)

type ImposeBanRequest struct {
	ClientID    uuid.UUID `json:"client_id" binding:"required"`
	TrainerID   uuid.UUID `json:"trainer_id" binding:"required"`
	BannedUntil time.Time `json:"banned_until" binding:"required"`
}
