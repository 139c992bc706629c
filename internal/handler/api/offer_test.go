//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"leftoversaver/internal/domain/user"
	"leftoversaver/internal/handler/api"
	resdto "leftoversaver/internal/handler/dto/response"
	"leftoversaver/internal/pkg/errs"
	"leftoversaver/internal/usecase/commands"
	"leftoversaver/internal/usecase/queries"
	"leftoversaver/tests/common/builder"
	"leftoversaver/tests/common/httptest"
	"leftoversaver/tests/common/testutil"
	commandsmock "leftoversaver/tests/mock/commands"
	queriesmock "leftoversaver/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	handler      *api.OfferHandler
	partnerID    uuid.UUID
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.handler = api.NewOfferHandler(s.mockCommands, s.mockQueries)
	s.partnerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.partnerID)
		c.Set("user_role", user.RolePartner)
		c.Next()
	}

	s.router.GET("/offers", s.handler.ListOffers)
	s.router.GET("/offers/:id", s.handler.GetOffer)
	s.router.POST("/offers", authMiddleware, s.handler.CreateOffer)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

// ================================================================================
// TestListOffers
// ================================================================================

func (s *OfferHandlerTestSuite) TestListOffers() {
	s.Run("success: returns 200 OK with the ranked feed", func() {
		near := builder.NewOfferBuilder().WithName("Near bag").BuildListItem()
		nearDist := 1.2
		near.DistanceKm = &nearDist
		far := builder.NewOfferBuilder().WithName("Far bag").BuildListItem()
		farDist := 8.7
		far.DistanceKm = &farDist

		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]*queries.OfferListItem{near, far}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?lat=52.52&lng=13.405", nil, "")

		var response []resdto.OfferListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Near bag", response[0].Name)
		s.NotNil(response[0].DistanceKm)
		s.InDelta(1.2, *response[0].DistanceKm, 1e-9)
		s.NotEmpty(response[0].PriceDisplay)
	})

	s.Run("success: forwards parsed filters to the query service", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params queries.ListOffersParams) ([]*queries.OfferListItem, error) {
				s.Require().NotNil(params.Origin)
				s.InDelta(52.52, params.Origin.Lat(), 1e-9)
				s.Require().NotNil(params.Filters.MaxDistanceKm)
				s.InDelta(5.0, *params.Filters.MaxDistanceKm, 1e-9)
				s.Require().NotNil(params.Filters.Category)
				s.Equal("bakery", *params.Filters.Category)
				return []*queries.OfferListItem{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/offers?lat=52.52&lng=13.405&max_km=5&category=bakery", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: malformed coordinates degrade to an unranked feed", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params queries.ListOffersParams) ([]*queries.OfferListItem, error) {
				s.Nil(params.Origin)
				return []*queries.OfferListItem{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?lat=abc&lng=13.405", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestGetOffer
// ================================================================================

func (s *OfferHandlerTestSuite) TestGetOffer() {
	offerID := uuid.New()
	url := "/offers/" + offerID.String()

	s.Run("success: returns 200 OK with OfferResponse", func() {
		returnView := builder.NewOfferBuilder().BuildView()
		returnView.ID = offerID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), offerID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(offerID, response.ID)
		s.Equal(returnView.Name, response.Name)
		s.NotEmpty(response.PriceDisplay)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing offer", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), offerID).
			Return(nil, errs.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestCreateOffer
// ================================================================================

func (s *OfferHandlerTestSuite) TestCreateOffer() {
	url := "/offers"

	bld := builder.NewOfferBuilder()
	reqBody := bld.BuildCreateRequestDTO()
	returnView := bld.BuildView()
	expectedResult := &commands.CreateOfferResult{Offer: returnView}

	s.Run("success: returns 201 Created with the offer", func() {
		s.mockCommands.EXPECT().CreateOffer(gomock.Any(), reqBody, s.partnerID).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Stock, response.Stock)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 201))},
			{name: "negative price", mutate: testutil.Field("price_cents", -1)},
			{name: "negative stock", mutate: testutil.Field("stock", -1)},
			{name: "bad currency length", mutate: testutil.Field("currency", "EURO")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid offer",
			},
			{
				name:           "transient conflict",
				commandsError:  errs.ErrTransientConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "retry",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateOffer(gomock.Any(), reqBody, s.partnerID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
