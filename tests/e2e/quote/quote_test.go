//go:build e2e

package quote_test

import (
	"net/http"
	"testing"
	"time"

	resdto "event-quote-sim/internal/handler/dto/response"
	"event-quote-sim/internal/pkg/random"
	"event-quote-sim/tests/common/httptest"
	"event-quote-sim/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type QuoteE2ETestSuite struct {
	e2e.SharedSuite
}

func TestQuoteE2ESuite(t *testing.T) {
	suite.Run(t, new(QuoteE2ETestSuite))
}

type quoteList struct {
	Quotes     []resdto.CompletedQuoteResponse `json:"quotes"`
	NextCursor string                          `json:"next_cursor"`
}

func (s *QuoteE2ETestSuite) submit(venueID string, headers map[string]string) resdto.SubmitQuoteResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/quote-requests", map[string]any{"venue_id": venueID}, headers)
	var res resdto.SubmitQuoteResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &res)
	return res
}

func (s *QuoteE2ETestSuite) getRequest(id string) (int, resdto.QuoteRequestResponse) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/quote-requests/"+id, nil, nil)
	var res resdto.QuoteRequestResponse
	if rec.Code == http.StatusOK {
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	}
	return rec.Code, res
}

func (s *QuoteE2ETestSuite) activeRequests() []resdto.QuoteRequestResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/quote-requests", nil, nil)
	var res struct {
		QuoteRequests []resdto.QuoteRequestResponse `json:"quote_requests"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	return res.QuoteRequests
}

func (s *QuoteE2ETestSuite) counters() resdto.CountersResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/quotes/counters", nil, nil)
	var res resdto.CountersResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	return res
}

func (s *QuoteE2ETestSuite) TestVenueCatalog() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/venues", nil, nil)

	var res struct {
		Venues []resdto.VenueResponse `json:"venues"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Require().Len(res.Venues, 3)
	s.Equal("p1", res.Venues[0].ID)
	s.Equal(int64(150), res.Venues[0].PerPerson)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/venues/p42", nil, nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
}

func (s *QuoteE2ETestSuite) TestQuoteRequestLifecycle() {
	submitted := s.submit("p1", nil)

	code, req := s.getRequest(submitted.ID)
	s.Require().Equal(http.StatusOK, code)
	s.Equal("typing", req.Status)
	s.Empty(req.RevealedWords)
	s.Equal("Château de la Roche", req.VenueName)
	s.Positive(req.TotalWords)
	s.Contains(s.counters().Banner, "Château de la Roche")

	// typewriter reveals the whole message, then contacting starts
	s.Advance(s.Config.Pipeline.TypewriterInterval * time.Duration(req.TotalWords))
	_, req = s.getRequest(submitted.ID)
	s.Equal("contacting", req.Status)
	s.Len(req.RevealedWords, req.TotalWords)

	s.Advance(s.Config.Pipeline.ContactingDelay)
	_, req = s.getRequest(submitted.ID)
	s.Equal("generating", req.Status)

	s.Advance(s.Config.Pipeline.GeneratingDelay)
	_, req = s.getRequest(submitted.ID)
	s.Equal("ready", req.Status)
	s.Require().NotNil(req.Preview)
	s.Equal(int64(4500), req.Preview.EstimatedTotal)
	s.Equal(int64(150), req.Preview.PerPerson)

	c := s.counters()
	s.Equal(1, c.ReadyCount)
	s.True(c.BadgePulse)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/quotes", nil, nil)
	var list quoteList
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
	s.Require().Len(list.Quotes, 1)
	s.Equal(submitted.ID, list.Quotes[0].RequestID)
	s.Empty(list.NextCursor)

	// Ready auto-dismisses after the success banner
	s.Advance(s.Config.Pipeline.SuccessBannerTTL)
	code, _ = s.getRequest(submitted.ID)
	s.Equal(http.StatusNotFound, code)
	s.False(s.counters().BadgePulse)
	s.Equal(1, s.counters().ReadyCount)
}

func (s *QuoteE2ETestSuite) TestDismissCancelsPendingSteps() {
	submitted := s.submit("p2", nil)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/quote-requests/"+submitted.ID, nil, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	// unknown ids are accepted too
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/quote-requests/"+uuid.NewString(), nil, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	s.Advance(s.TimeToReady(64))
	s.Zero(s.Scheduler.Pending())
	s.Equal(0, s.counters().ReadyCount)
}

func (s *QuoteE2ETestSuite) TestFailureAndRetry() {
	s.StartApp(random.Fixed(0))

	submitted := s.submit("p3", nil)
	_, req := s.getRequest(submitted.ID)
	s.Advance(s.TimeToReady(req.TotalWords))

	code, req := s.getRequest(submitted.ID)
	s.Require().Equal(http.StatusOK, code)
	s.Equal("error", req.Status)
	s.Equal("Couldn't get a quote from Manoir du Bois", req.Label)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/quote-requests/"+submitted.ID+"/retry", nil, nil)
	var retried resdto.SubmitQuoteResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &retried)
	s.NotEqual(submitted.ID, retried.ID)

	code, _ = s.getRequest(submitted.ID)
	s.Equal(http.StatusNotFound, code)
	code, req = s.getRequest(retried.ID)
	s.Require().Equal(http.StatusOK, code)
	s.Equal("typing", req.Status)
	s.Equal("p3", req.VenueID)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/quote-requests/"+submitted.ID+"/retry", nil, nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quote request not found")
	s.Len(s.activeRequests(), 1)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/quote-requests/"+uuid.NewString()+"/retry", nil, nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quote request not found")
}

func (s *QuoteE2ETestSuite) TestIdempotentSubmit() {
	key := uuid.NewString()
	headers := map[string]string{"Idempotency-Key": key}

	first := s.submit("p1", headers)
	s.False(first.Replayed)

	second := s.submit("p1", headers)
	s.True(second.Replayed)
	s.Equal(first.ID, second.ID)

	s.Len(s.activeRequests(), 1)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/quote-requests", map[string]any{"venue_id": "p2"}, headers)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "different venue")
}

func (s *QuoteE2ETestSuite) TestCompareCompletedQuotes() {
	s.submit("p1", nil)
	s.submit("p2", nil)
	s.Advance(s.TimeToReady(64))

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/quotes?limit=1", nil, nil)
	var page quoteList
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
	s.Require().Len(page.Quotes, 1)
	s.Require().NotEmpty(page.NextCursor)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/quotes?limit=1&after="+page.NextCursor, nil, nil)
	var next quoteList
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &next)
	s.Require().Len(next.Quotes, 1)
	s.Empty(next.NextCursor)

	ids := []string{page.Quotes[0].ID, next.Quotes[0].ID}
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/quotes/compare", map[string]any{"completed_quote_ids": ids}, nil)
	var cmp resdto.ComparisonResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cmp)
	s.Equal(ids, cmp.QuoteIDs)
	s.NotEmpty(cmp.Summary)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/quotes/compare", map[string]any{"completed_quote_ids": ids[:1]}, nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid quote selection")
}

func (s *QuoteE2ETestSuite) TestRejectsBadInput() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/quote-requests", nil, nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnsupportedMediaType, "application/json")

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/quote-requests", map[string]any{"venue_id": "p42"}, nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/quote-requests/42", nil, nil)
	body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	s.NotEmpty(body.RequestID)
	s.Equal(body.RequestID, rec.Header().Get("X-Request-ID"))

	// a client supplied request id is echoed back
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/quote-requests/42", nil, map[string]string{"X-Request-ID": "trace-123"})
	body = httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	s.Equal("trace-123", body.RequestID)
}
