package db

import (
	"context"
	"errors"
	"slices"
	"sync"

	"event-quote-sim/internal/pkg/ptr"
)

var ErrNoRows = errors.New("no rows in result set")

// VenueRow is the stored shape of a venue proposal. Optional columns are
// pointers.
type VenueRow struct {
	ID             string
	Name           string
	Location       string
	ImageURL       string
	EstimatedTotal *int64
	Participants   *int
	Currency       string
	Rating         *float64
}

// Catalog is the in-memory venue table. Rows keep insertion order.
type Catalog struct {
	mu    sync.RWMutex
	rows  []VenueRow
	index map[string]int
}

func NewCatalog(rows ...VenueRow) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(rows))}
	for _, r := range rows {
		if _, dup := c.index[r.ID]; dup {
			return nil, errors.New("duplicate venue id " + r.ID)
		}
		c.index[r.ID] = len(c.rows)
		c.rows = append(c.rows, r)
	}
	return c, nil
}

func (c *Catalog) GetAllVenues(ctx context.Context) ([]VenueRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.rows), nil
}

func (c *Catalog) GetVenueByID(ctx context.Context, id string) (VenueRow, error) {
	if err := ctx.Err(); err != nil {
		return VenueRow{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return VenueRow{}, ErrNoRows
	}
	return c.rows[i], nil
}

func IsNoRows(err error) bool {
	return errors.Is(err, ErrNoRows)
}

// SeedVenues are the proposals shown on the event workspace.
func SeedVenues() []VenueRow {
	return []VenueRow{
		{
			ID:             "p1",
			Name:           "Château de la Roche",
			Location:       "Île-de-France, 30 min from Paris",
			ImageURL:       "/venues/venue1.png",
			EstimatedTotal: ptr.To(int64(4500)),
			Participants:   ptr.To(30),
			Currency:       "EUR",
			Rating:         ptr.To(4.2),
		},
		{
			ID:             "p2",
			Name:           "Domaine des Sources",
			Location:       "Loire Valley",
			ImageURL:       "/venues/venue2.png",
			EstimatedTotal: ptr.To(int64(5200)),
			Participants:   ptr.To(30),
			Currency:       "EUR",
			Rating:         ptr.To(4.8),
		},
		{
			ID:             "p3",
			Name:           "Manoir du Bois",
			Location:       "Normandy",
			ImageURL:       "/venues/venue3.png",
			EstimatedTotal: ptr.To(int64(3800)),
			Participants:   ptr.To(30),
			Currency:       "EUR",
			Rating:         ptr.To(4.5),
		},
	}
}

// NewSeededCatalog builds the catalog with SeedVenues.
func NewSeededCatalog() *Catalog {
	c, err := NewCatalog(SeedVenues()...)
	if err != nil {
		panic(err)
	}
	return c
}
