//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"leftoversaver/internal/domain/user"
	reqdto "leftoversaver/internal/handler/dto/request"
	"leftoversaver/tests/common/dbtest"
	"leftoversaver/tests/common/httptest"
	"leftoversaver/tests/e2e"
	jwtHelper "leftoversaver/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	registerURL = "/api/auth/register"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleUser))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleUser))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "test@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "test@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := reqdto.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				access := httptest.ExtractCookie(w, "access_token")
				refresh := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(t, access)
				require.NotEmpty(t, access.Value)
				require.NotNil(t, refresh)
				require.NotEmpty(t, refresh.Value)
			}
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("Normal case: registered user can log in", func() {
		t := s.T()

		reqBody := reqdto.RegisterRequest{
			Email:       "fresh@example.com",
			Password:    "supersecret1",
			DisplayName: "Fresh User",
			Role:        "user",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		token := s.jwtHelper.LoginUser(t, s.Router, "fresh@example.com", "supersecret1")
		require.NotEmpty(t, token)
	})

	s.Run("Error case: duplicate email is rejected", func() {
		t := s.T()

		reqBody := reqdto.RegisterRequest{
			Email:       "test@example.com",
			Password:    "supersecret1",
			DisplayName: "Duplicate",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Email already registered")
	})
}

func (s *authSuite) TestMe() {
	s.Run("Normal case: returns the authenticated profile", func() {
		t := s.T()

		token := s.jwtHelper.LoginUser(t, s.Router, "test@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "test@example.com", me["email"])
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expired@example.com", string(user.RoleUser))
		token := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("Normal case: logout clears the token cookies", func() {
		t := s.T()

		token := s.jwtHelper.LoginUser(t, s.Router, "test@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		access := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, access)
		require.Empty(t, access.Value)
		require.Equal(t, -1, access.MaxAge)
	})
}
