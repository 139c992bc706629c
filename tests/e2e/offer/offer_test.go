//go:build e2e

package offer_test

import (
	"fmt"
	"net/http"
	"testing"

	"leftoversaver/internal/domain/user"
	"leftoversaver/internal/handler/dto/response"
	"leftoversaver/tests/common/builder"
	"leftoversaver/tests/common/dbtest"
	"leftoversaver/tests/common/httptest"
	"leftoversaver/tests/e2e"
	"leftoversaver/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	offersURL = "/api/offers"
)

type OfferSuite struct {
	e2e.SharedSuite
	jwtHelper *helper.JWTTestHelper
}

func (s *OfferSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = helper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func TestOfferSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OfferSuite))
}

func (s *OfferSuite) seedStore(email string, lat, lng float64) uuid.UUID {
	t := s.T()
	partnerID := dbtest.CreateTestUser(t, s.DB, email, string(user.RolePartner))
	return dbtest.CreateTestStore(t, s.DB, partnerID, lat, lng)
}

// =============================================================================
// TestListOffers - Discovery feed API tests
// =============================================================================

func (s *OfferSuite) TestListOffers() {
	s.Run("Normal case: feed ranks offers by distance from the caller", func() {
		t := s.T()

		storeID := s.seedStore("feed-partner@example.com", 52.52, 13.405)
		// Roughly 0, 11 and 111 km north of the origin.
		nearID := dbtest.CreateTestOffer(t, s.DB, storeID, "Near bag", 3, 52.52, 13.405)
		midID := dbtest.CreateTestOffer(t, s.DB, storeID, "Mid bag", 3, 52.62, 13.405)
		farID := dbtest.CreateTestOffer(t, s.DB, storeID, "Far bag", 3, 53.52, 13.405)

		url := fmt.Sprintf("%s?lat=%f&lng=%f", offersURL, 52.52, 13.405)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []response.OfferListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 3)
		require.Equal(t, []uuid.UUID{nearID, midID, farID},
			[]uuid.UUID{items[0].ID, items[1].ID, items[2].ID})

		require.NotNil(t, items[0].DistanceKm)
		require.InDelta(t, 0.0, *items[0].DistanceKm, 0.01)
		require.NotNil(t, items[2].DistanceKm)
		require.InDelta(t, 111.19, *items[2].DistanceKm, 1.0)
	})

	s.Run("Normal case: max_km filter hides out-of-range offers", func() {
		t := s.T()

		storeID := s.seedStore("radius-partner@example.com", 52.52, 13.405)
		nearID := dbtest.CreateTestOffer(t, s.DB, storeID, "Near bag", 3, 52.52, 13.405)
		dbtest.CreateTestOffer(t, s.DB, storeID, "Far bag", 3, 53.52, 13.405)

		url := fmt.Sprintf("%s?lat=%f&lng=%f&max_km=50", offersURL, 52.52, 13.405)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []response.OfferListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)
		require.Equal(t, nearID, items[0].ID)
	})

	s.Run("Normal case: malformed coordinates degrade to an unranked feed", func() {
		t := s.T()

		storeID := s.seedStore("plain-partner@example.com", 52.52, 13.405)
		dbtest.CreateTestOffer(t, s.DB, storeID, "Any bag", 3, 52.52, 13.405)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, offersURL+"?lat=abc&lng=13.4", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []response.OfferListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)
		require.Nil(t, items[0].DistanceKm)
	})
}

// =============================================================================
// TestCreateOffer - Offer creation API tests
// =============================================================================

func (s *OfferSuite) TestCreateOffer() {
	s.Run("Normal case: partner creates an offer", func() {
		t := s.T()

		s.seedStore("creator@example.com", 52.52, 13.405)
		token := s.jwtHelper.LoginUser(t, s.Router, "creator@example.com", dbtest.TestPassword)

		reqBody := builder.NewOfferBuilder().WithName("Evening bag").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.OfferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "Evening bag", created.Name)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, offersURL+"/"+created.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, gw.Code, gw.Body.String())

		var fetched response.OfferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &fetched))
		require.Equal(t, "Evening bag", fetched.Name)
	})

	s.Run("Error case: plain user cannot create offers", func() {
		t := s.T()

		token := s.jwtHelper.CreateAndLogin(t, s.Router, "nobody@example.com", string(user.RoleUser))

		reqBody := builder.NewOfferBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
