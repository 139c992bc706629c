package api

import (
	"errors"
	"net/http"

	reqdto "leftoversaver/internal/handler/dto/request"
	resdto "leftoversaver/internal/handler/dto/response"
	"leftoversaver/internal/handler/httperr"
	"leftoversaver/internal/handler/middleware"
	"leftoversaver/internal/pkg/errs"
	"leftoversaver/internal/usecase/commands"
	"leftoversaver/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	offerCommands commands.OfferCommands
	offerQueries  queries.OfferQueries
}

func NewOfferHandler(offerCommands commands.OfferCommands, offerQueries queries.OfferQueries) *OfferHandler {
	return &OfferHandler{
		offerCommands: offerCommands,
		offerQueries:  offerQueries,
	}
}

// @Summary List offers
// @Description List surplus food offers near a position, closest first
// @Tags offers
// @Produce json
// @Param lat query number false "Caller latitude"
// @Param lng query number false "Caller longitude"
// @Param max_km query number false "Maximum distance in kilometers"
// @Param pickup_after query string false "Only offers whose pickup window ends at or after this value"
// @Param category query string false "Category substring filter"
// @Success 200 {array} resdto.OfferListItemResponse
// @Router /offers [get]
func (h *OfferHandler) ListOffers(c *gin.Context) {
	var query reqdto.ListOffersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	items, err := h.offerQueries.List(c.Request.Context(), query.ToParams())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferListItems(items, requestLocale(c)))
}

// @Summary Get offer
// @Description Get offer details by ID
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.offerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOfferNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferView(view, requestLocale(c)))
}

// @Summary Create offer
// @Description Publish a new surplus food offer for the caller's store
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /offers [post]
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.offerCommands.CreateOffer(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid offer", nil)
		case errors.Is(err, errs.ErrTransientConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Please retry the request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOfferView(result.Offer, requestLocale(c)))
}
