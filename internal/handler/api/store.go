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

type StoreHandler struct {
	storeCommands commands.StoreCommands
	storeQueries  queries.StoreQueries
}

func NewStoreHandler(storeCommands commands.StoreCommands, storeQueries queries.StoreQueries) *StoreHandler {
	return &StoreHandler{
		storeCommands: storeCommands,
		storeQueries:  storeQueries,
	}
}

// @Summary Upsert own store
// @Description Create or update the caller's store profile
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertStoreRequest true "Store request"
// @Success 200 {object} resdto.StoreResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /stores/me [put]
func (h *StoreHandler) UpsertMyStore(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.UpsertStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.storeCommands.UpsertStore(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid store", nil)
		case errors.Is(err, errs.ErrTransientConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Please retry the request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStoreView(result.Store))
}

// @Summary Get store
// @Description Get a store profile by ID
// @Tags stores
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} resdto.StoreResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{id} [get]
func (h *StoreHandler) GetStore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.storeQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrStoreNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStoreView(view))
}
