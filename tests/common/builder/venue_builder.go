//go:build unit || e2e

package builder

import (
	"event-quote-sim/internal/domain/venue"
	"event-quote-sim/internal/pkg/ptr"
)

type VenueBuilder struct {
	ID             string
	Name           string
	Location       string
	ImageURL       string
	EstimatedTotal *int64
	Participants   *int
	Currency       string
	Rating         *float64
}

// NewVenueBuilder starts from the first catalog proposal.
func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:             "v1",
		Name:           "Château de la Roche",
		Location:       "Île-de-France, 30 min from Paris",
		ImageURL:       "/venues/venue1.png",
		EstimatedTotal: ptr.To(int64(4500)),
		Participants:   ptr.To(30),
		Currency:       "EUR",
		Rating:         ptr.To(4.2),
	}
}

func (v *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(v)
	return v
}

// Build methods
func (v *VenueBuilder) BuildAttributes() venue.Attributes {
	return venue.Attributes{
		ID:             v.ID,
		Name:           v.Name,
		Location:       v.Location,
		ImageURL:       v.ImageURL,
		EstimatedTotal: ptr.Clone(v.EstimatedTotal),
		Participants:   ptr.Clone(v.Participants),
		Currency:       v.Currency,
		Rating:         ptr.Clone(v.Rating),
	}
}

func (v *VenueBuilder) BuildDomain() (*venue.Venue, error) {
	return venue.NewVenue(v.BuildAttributes())
}

// MustBuildDomain is for fixtures whose validity is not under test.
func (v *VenueBuilder) MustBuildDomain() *venue.Venue {
	built, err := v.BuildDomain()
	if err != nil {
		panic(err)
	}
	return built
}

// Fluent builder methods
func (v *VenueBuilder) WithID(id string) *VenueBuilder {
	v.ID = id
	return v
}

func (v *VenueBuilder) WithName(name string) *VenueBuilder {
	v.Name = name
	return v
}

func (v *VenueBuilder) WithEstimatedTotal(total int64) *VenueBuilder {
	v.EstimatedTotal = &total
	return v
}

func (v *VenueBuilder) WithParticipants(n int) *VenueBuilder {
	v.Participants = &n
	return v
}

func (v *VenueBuilder) WithCurrency(currency string) *VenueBuilder {
	v.Currency = currency
	return v
}

func (v *VenueBuilder) WithRating(rating float64) *VenueBuilder {
	v.Rating = &rating
	return v
}

func (v *VenueBuilder) WithoutPricing() *VenueBuilder {
	v.EstimatedTotal = nil
	v.Participants = nil
	return v
}

func (v *VenueBuilder) AsDomaineDesSources() *VenueBuilder {
	v.ID = "v2"
	v.Name = "Domaine des Sources"
	v.Location = "Loire Valley"
	v.ImageURL = "/venues/venue2.png"
	v.EstimatedTotal = ptr.To(int64(5200))
	v.Participants = ptr.To(30)
	v.Rating = ptr.To(4.8)
	return v
}
