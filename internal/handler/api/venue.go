package api

import (
	"net/http"

	resdto "event-quote-sim/internal/handler/dto/response"
	"event-quote-sim/internal/handler/httperr"
	"event-quote-sim/internal/pkg/errs"
	"event-quote-sim/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	q queries.VenueQueries
}

func NewVenueHandler(q queries.VenueQueries) *VenueHandler {
	return &VenueHandler{q: q}
}

// @Summary List venues
// @Tags venues
// @Produce json
// @Success 200 {object} map[string][]resdto.VenueResponse
// @Failure 500 {object} httperr.Response
// @Router /api/venues [get]
func (h *VenueHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": resdto.FromVenueList(items)})
}

// @Summary Get venue
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 404 {object} httperr.Response
// @Router /api/venues/{id} [get]
func (h *VenueHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, queries.ErrVenueNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}
