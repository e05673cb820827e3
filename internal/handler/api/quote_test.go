//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"event-quote-sim/internal/domain/quote"
	"event-quote-sim/internal/handler/api"
	resdto "event-quote-sim/internal/handler/dto/response"
	"event-quote-sim/internal/handler/middleware"
	"event-quote-sim/internal/pkg/errs"
	"event-quote-sim/internal/usecase/queries"
	"event-quote-sim/tests/common/httptest"
	"event-quote-sim/tests/common/testutil"
	queriesmock "event-quote-sim/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockQuoteQueries
	handler     *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQueries)

	s.router.GET("/api/quotes", s.handler.List)
	s.router.GET("/api/quotes/counters", s.handler.Counters)
	s.router.POST("/api/quotes/compare", middleware.RequireJSON(), s.handler.Compare)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func completedView(id string) *queries.CompletedQuoteView {
	return &queries.CompletedQuoteView{
		ID:             id,
		RequestID:      uuid.New(),
		VenueID:        "p2",
		VenueName:      "Domaine des Sources",
		EstimatedTotal: 5190,
		Participants:   30,
		PerPerson:      173,
		Currency:       "EUR",
		CompletedAt:    time.Date(2025, 6, 1, 10, 0, 5, 0, time.UTC),
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *QuoteHandlerTestSuite) TestList() {
	s.Run("first page with next cursor", func() {
		item := completedView("01JXAMPLE0000000000000000A")
		s.mockQueries.EXPECT().ListCompleted(gomock.Any(), (*queries.Cursor)(nil), 20).
			Return([]*queries.CompletedQuoteView{item}, &queries.Cursor{After: "next-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes", nil, nil)

		var res struct {
			Quotes     []resdto.CompletedQuoteResponse `json:"quotes"`
			NextCursor string                          `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Quotes, 1)
		s.Equal(item.RequestID.String(), res.Quotes[0].RequestID)
		s.Equal(item.CompletedAt.UnixMilli(), res.Quotes[0].CompletedAt)
		s.Equal("next-token", res.NextCursor)
	})

	s.Run("limit and cursor are forwarded, last page has no cursor", func() {
		s.mockQueries.EXPECT().ListCompleted(gomock.Any(), &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.CompletedQuoteView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes?limit=5&after=abc", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"quotes":[]}`, rec.Body.String())
	})

	s.Run("oversized limit is clamped", func() {
		s.mockQueries.EXPECT().ListCompleted(gomock.Any(), gomock.Nil(), queries.MaxListLimit).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes?limit=5000", nil, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("invalid cursor", func() {
		s.mockQueries.EXPECT().ListCompleted(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Wrap(queries.ErrInvalidCursor, "decode")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes?after=%21%21", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("store failure", func() {
		s.mockQueries.EXPECT().ListCompleted(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestCounters
// ================================================================================

func (s *QuoteHandlerTestSuite) TestCounters() {
	s.mockQueries.EXPECT().Counters(gomock.Any()).
		Return(&queries.CountersView{ReadyCount: 2, BadgePulse: true, Banner: "2 quotes ready"}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes/counters", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ready_count":2,"badge_pulse":true,"banner":"2 quotes ready"}`, rec.Body.String())
}

// ================================================================================
// TestCompare
// ================================================================================

func (s *QuoteHandlerTestSuite) TestCompare() {
	url := "/api/quotes/compare"
	inline := map[string]any{
		"id":                 "q1",
		"venue_name":         "Château de la Roche",
		"attendees":          30,
		"currency":           "€",
		"numeric_total":      4500,
		"numeric_per_person": 150,
		"not_included":       []string{"Catering"},
		"cancellation":       "Standard",
	}
	reqBody := map[string]any{
		"quotes":              []any{inline},
		"completed_quote_ids": []string{"01JXAMPLE0000000000000000A"},
	}
	view := &queries.ComparisonView{
		QuoteIDs:           []string{"q1", "01JXAMPLE0000000000000000A"},
		Summary:            "Château de la Roche is the most affordable option.",
		SuggestedQuestions: []string{"Is catering available as an add-on?"},
	}

	s.Run("success: inline display strings default to grouped amounts", func() {
		s.mockQueries.EXPECT().Compare(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in queries.CompareInput) (*queries.ComparisonView, error) {
				s.Require().Len(in.Quotes, 1)
				s.Equal("4 500", in.Quotes[0].TotalPrice)
				s.Equal("150", in.Quotes[0].PerPerson)
				s.Equal(quote.Cancellation("Standard"), in.Quotes[0].Cancellation)
				s.Equal([]string{"01JXAMPLE0000000000000000A"}, in.CompletedQuoteIDs)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var res resdto.ComparisonResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.Summary, res.Summary)
		s.Equal(view.QuoteIDs, res.QuoteIDs)
	})

	s.Run("validation: unknown cancellation policy", func() {
		bad := testutil.DtoMap(s.T(), inline, testutil.Field("cancellation", "Lenient"))
		body := map[string]any{"quotes": []any{bad, inline}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("validation: missing venue_name", func() {
		bad := testutil.DtoMap(s.T(), inline, testutil.Field("venue_name", nil))
		body := map[string]any{"quotes": []any{bad, inline}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("validation: negative amounts", func() {
		bad := testutil.DtoMap(s.T(), inline, testutil.Fields(map[string]any{"numeric_total": -1, "attendees": -5}))
		body := map[string]any{"quotes": []any{bad, inline}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("unknown completed quote", func() {
		s.mockQueries.EXPECT().Compare(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrCompletedQuoteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Completed quote not found")
	})

	s.Run("too few quotes", func() {
		s.mockQueries.EXPECT().Compare(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(queries.ErrInvalidComparison, "need at least 2 quotes")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"quotes": []any{inline}}, nil)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid quote selection")
		s.Contains(body.Detail, "need at least 2 quotes")
	})
}
