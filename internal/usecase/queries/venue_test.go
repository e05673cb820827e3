//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"event-quote-sim/internal/infra"
	"event-quote-sim/internal/usecase/queries"
	queriesmock "event-quote-sim/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVenueQueries(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		storeFn func(m *queriesmock.MockVenueReadStore)
		wantErr error
	}{
		{
			name: "found",
			storeFn: func(m *queriesmock.MockVenueReadStore) {
				m.EXPECT().FindByID(ctx, "p1").Return(&queries.VenueView{ID: "p1"}, nil)
			},
		},
		{
			name: "not found maps to sentinel",
			storeFn: func(m *queriesmock.MockVenueReadStore) {
				m.EXPECT().FindByID(ctx, "p1").
					Return(nil, infra.WrapRepoErr("venue not found", errors.New("no rows"), infra.KindNotFound))
			},
			wantErr: queries.ErrVenueNotFound,
		},
		{
			name: "store failure passes through",
			storeFn: func(m *queriesmock.MockVenueReadStore) {
				m.EXPECT().FindByID(ctx, "p1").Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := queriesmock.NewMockVenueReadStore(gomock.NewController(t))
			tt.storeFn(store)

			got, err := queries.NewVenueQueries(store).GetByID(ctx, "p1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "p1", got.ID)
		})
	}
}
