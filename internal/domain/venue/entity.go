package venue

import (
	"errors"
	"math"
	"strings"

	"event-quote-sim/internal/pkg/patch"
	"event-quote-sim/internal/pkg/ptr"
)

var (
	ErrEmptyVenueID        = errors.New("venue id cannot be empty")
	ErrEmptyVenueName      = errors.New("venue name cannot be empty")
	ErrVenueNameTooLong    = errors.New("venue name is too long (max 255 characters)")
	ErrNegativeTotal       = errors.New("estimated total cannot be negative")
	ErrInvalidParticipants = errors.New("participants must be positive")
	ErrInvalidRating       = errors.New("rating must be between 0 and 5")
	ErrInvalidCurrencyCode = errors.New("currency must be a 3-letter code")
)

const MaxVenueNameLength = 255

// Fallbacks used when a proposal omits pricing data.
const (
	DefaultEstimatedTotal int64 = 4500
	DefaultParticipants   int   = 30
	DefaultCurrency             = "EUR"
)

// Attributes holds the raw catalog fields of a venue proposal.
type Attributes struct {
	ID             string
	Name           string
	Location       string
	ImageURL       string
	EstimatedTotal *int64
	Participants   *int
	Currency       string
	Rating         *float64
}

type Venue struct {
	id             string
	name           string
	location       string
	imageURL       string
	estimatedTotal *int64
	participants   *int
	currency       string
	rating         *float64
}

func NewVenue(attrs Attributes) (*Venue, error) {
	id := strings.TrimSpace(attrs.ID)
	if id == "" {
		return nil, ErrEmptyVenueID
	}
	if err := validateVenueName(attrs.Name); err != nil {
		return nil, err
	}
	if attrs.EstimatedTotal != nil && *attrs.EstimatedTotal < 0 {
		return nil, ErrNegativeTotal
	}
	if attrs.Participants != nil && *attrs.Participants <= 0 {
		return nil, ErrInvalidParticipants
	}
	if attrs.Rating != nil && (*attrs.Rating < 0 || *attrs.Rating > 5) {
		return nil, ErrInvalidRating
	}
	currency := strings.ToUpper(strings.TrimSpace(attrs.Currency))
	if currency != "" && len(currency) != 3 {
		return nil, ErrInvalidCurrencyCode
	}

	return &Venue{
		id:             id,
		name:           strings.TrimSpace(attrs.Name),
		location:       strings.TrimSpace(attrs.Location),
		imageURL:       strings.TrimSpace(attrs.ImageURL),
		estimatedTotal: ptr.Clone(attrs.EstimatedTotal),
		participants:   ptr.Clone(attrs.Participants),
		currency:       patch.CoalesceString(currency, DefaultCurrency),
		rating:         ptr.Clone(attrs.Rating),
	}, nil
}

// PerPersonPrice is the estimated total split evenly across participants,
// rounded to the nearest whole unit.
func (v *Venue) PerPersonPrice() int64 {
	return int64(math.Round(float64(v.EstimatedTotal()) / float64(v.Participants())))
}

func (v *Venue) HasPricing() bool {
	return v.estimatedTotal != nil
}

func validateVenueName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyVenueName
	}
	if len([]rune(name)) > MaxVenueNameLength {
		return ErrVenueNameTooLong
	}
	return nil
}

func (v *Venue) ID() string        { return v.id }
func (v *Venue) Name() string      { return v.name }
func (v *Venue) Location() string  { return v.location }
func (v *Venue) ImageURL() string  { return v.imageURL }
func (v *Venue) Currency() string  { return v.currency }
func (v *Venue) Rating() *float64  { return ptr.Clone(v.rating) }
func (v *Venue) Participants() int { return patch.Coalesce(v.participants, DefaultParticipants) }
func (v *Venue) EstimatedTotal() int64 {
	return patch.Coalesce(v.estimatedTotal, DefaultEstimatedTotal)
}
