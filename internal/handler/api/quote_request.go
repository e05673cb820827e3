package api

import (
	"net/http"

	reqdto "event-quote-sim/internal/handler/dto/request"
	resdto "event-quote-sim/internal/handler/dto/response"
	"event-quote-sim/internal/handler/httperr"
	"event-quote-sim/internal/pkg/errs"
	"event-quote-sim/internal/usecase/commands"
	"event-quote-sim/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteRequestHandler struct {
	cmds commands.QuoteRequestCommands
	q    queries.QuoteRequestQueries
}

func NewQuoteRequestHandler(cmds commands.QuoteRequestCommands, q queries.QuoteRequestQueries) *QuoteRequestHandler {
	return &QuoteRequestHandler{cmds: cmds, q: q}
}

// @Summary Request a quote
// @Description Start the simulated quote flow for a catalog venue
// @Tags quote-requests
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replays the first result for a repeated submission"
// @Param request body reqdto.SubmitQuoteRequest true "Venue to request a quote from"
// @Success 202 {object} resdto.SubmitQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/quote-requests [post]
func (h *QuoteRequestHandler) Submit(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}
	var req reqdto.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.ToCommand(idempotencyKey))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrVenueNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
		case errs.Is(err, commands.ErrIdempotencyKeyReused):
			httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency-Key was used for a different venue", nil)
		case errs.Is(err, commands.ErrIdempotencyInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request with this Idempotency-Key is being processed", nil)
		case errs.Is(err, commands.ErrPipelineUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Quote service unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	respondAccepted(c, result)
}

// @Summary List active quote requests
// @Description Active requests in submission order
// @Tags quote-requests
// @Produce json
// @Success 200 {object} map[string][]resdto.QuoteRequestResponse
// @Failure 500 {object} httperr.Response
// @Router /api/quote-requests [get]
func (h *QuoteRequestHandler) List(c *gin.Context) {
	items, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote_requests": resdto.FromQuoteRequestList(items)})
}

// @Summary Get quote request
// @Tags quote-requests
// @Produce json
// @Param id path string true "Quote request ID"
// @Success 200 {object} resdto.QuoteRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/quote-requests/{id} [get]
func (h *QuoteRequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrQuoteRequestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Quote request not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteRequestView(view))
}

// @Summary Dismiss quote request
// @Description Removes the request and cancels its pending steps. Unknown ids are accepted.
// @Tags quote-requests
// @Param id path string true "Quote request ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/quote-requests/{id} [delete]
func (h *QuoteRequestHandler) Dismiss(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Dismiss(c.Request.Context(), id); err != nil {
		if errs.Is(err, commands.ErrPipelineUnavailable) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Quote service unavailable", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Retry quote request
// @Description Discards the request and starts a new one for the same venue
// @Tags quote-requests
// @Produce json
// @Param id path string true "Quote request ID"
// @Success 202 {object} resdto.SubmitQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/quote-requests/{id}/retry [post]
func (h *QuoteRequestHandler) Retry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	result, err := h.cmds.Retry(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrQuoteRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Quote request not found", nil)
		case errs.Is(err, commands.ErrPipelineUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Quote service unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	respondAccepted(c, result)
}

// @Summary Stream quote request events
// @Description Server-sent events. The first event is a snapshot of the active requests.
// @Tags quote-requests
// @Produce text/event-stream
// @Success 200 {object} resdto.QuoteRequestEventResponse
// @Failure 503 {object} httperr.Response
// @Router /api/quote-requests/events [get]
func (h *QuoteRequestHandler) Events(c *gin.Context) {
	ctx := c.Request.Context()
	events, err := h.q.Subscribe(ctx)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Event stream unavailable", nil)
		return
	}
	active, err := h.q.ListActive(ctx)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.SSEvent("snapshot", gin.H{"quote_requests": resdto.FromQuoteRequestList(active)})
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(string(ev.Kind), resdto.FromQuoteRequestEvent(ev))
			c.Writer.Flush()
		}
	}
}

func respondAccepted(c *gin.Context, result *commands.SubmitResult) {
	id := result.RequestID.String()
	c.Header("Location", "/api/quote-requests/"+id)
	c.JSON(http.StatusAccepted, resdto.SubmitQuoteResponse{ID: id, Replayed: result.IsReplayed})
}

// The header is optional; nil means no idempotency.
func getIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return nil, nil
	}
	key, err := uuid.Parse(keyStr)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
