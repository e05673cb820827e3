package request

import (
	"strings"

	"event-quote-sim/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitQuoteRequest struct {
	VenueID string `json:"venue_id" binding:"required,max=64"`
}

func (r SubmitQuoteRequest) ToCommand(idempotencyKey *uuid.UUID) commands.SubmitQuoteRequest {
	return commands.SubmitQuoteRequest{
		VenueID:        strings.TrimSpace(r.VenueID),
		IdempotencyKey: idempotencyKey,
	}
}
