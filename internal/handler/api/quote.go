package api

import (
	"log/slog"
	"net/http"
	"strconv"

	reqdto "event-quote-sim/internal/handler/dto/request"
	resdto "event-quote-sim/internal/handler/dto/response"
	"event-quote-sim/internal/handler/httperr"
	"event-quote-sim/internal/pkg/errs"
	"event-quote-sim/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q queries.QuoteQueries
}

func NewQuoteHandler(q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary List completed quotes
// @Description Quotes that reached Ready, oldest first, with keyset pagination
// @Tags quotes
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.CompletedQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListCompleted(c.Request.Context(), cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		slog.Error("list completed quotes failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp := gin.H{"quotes": resdto.FromCompletedQuoteList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Quote counters
// @Description Ready count, badge pulse and the banner line
// @Tags quotes
// @Produce json
// @Success 200 {object} resdto.CountersResponse
// @Failure 500 {object} httperr.Response
// @Router /api/quotes/counters [get]
func (h *QuoteHandler) Counters(c *gin.Context) {
	counters, err := h.q.Counters(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCountersView(counters))
}

// @Summary Compare quotes
// @Description Summary and suggested questions for 2 to 6 quotes
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.CompareQuotesRequest true "Quotes to compare"
// @Success 200 {object} resdto.ComparisonResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/quotes/compare [post]
func (h *QuoteHandler) Compare(c *gin.Context) {
	var req reqdto.CompareQuotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.Compare(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrCompletedQuoteNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Completed quote not found", nil)
		case errs.Is(err, queries.ErrInvalidComparison):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid quote selection", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromComparisonView(view))
}
