package response

import (
	"event-quote-sim/internal/usecase/queries"
)

type VenueResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	ImageURL       string   `json:"image_url,omitempty"`
	EstimatedTotal int64    `json:"estimated_total"`
	Participants   int      `json:"participants"`
	PerPerson      int64    `json:"per_person"`
	Currency       string   `json:"currency"`
	Rating         *float64 `json:"rating,omitempty"`
	HasPricing     bool     `json:"has_pricing"`
}

func FromVenueView(v *queries.VenueView) *VenueResponse {
	return copyInto[VenueResponse](v)
}

func FromVenueList(items []*queries.VenueView) []*VenueResponse {
	res := make([]*VenueResponse, len(items))
	for i, it := range items {
		res[i] = FromVenueView(it)
	}
	return res
}
