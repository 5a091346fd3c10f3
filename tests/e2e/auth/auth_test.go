//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"lunchbox/internal/domain/user"
	"lunchbox/internal/handler/dto/request"
	"lunchbox/internal/handler/dto/response"
	"lunchbox/tests/common/authtest"
	"lunchbox/tests/common/dbtest"
	"lunchbox/tests/common/httptest"
	"lunchbox/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "staff@example.com", string(user.RoleStaff))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer))

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
		description    string
	}{
		{
			name:           "successful login",
			email:          "test@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "valid credentials should log in",
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "unknown users must not log in",
		},
		{
			name:           "wrong password",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "wrong password must be rejected",
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
			description:    "inactive accounts must not log in",
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "empty email must fail validation",
		},
		{
			name:           "empty password",
			email:          "test@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "empty password must fail validation",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken, "access token missing from body")
				require.NotNil(t, loginRes.User, "user view missing from body")
				require.Equal(t, tt.email, loginRes.User.Email)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie, "access token cookie not set")
				require.True(t, accessCookie.HttpOnly, "access token cookie must be HttpOnly")
				refreshCookie := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(t, refreshCookie, "refresh token cookie not set")

				var lastLogin interface{}
				err = s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name              string
		setupRefreshToken func() string
		expectedStatus    int
		description       string
	}{
		{
			name: "successful refresh",
			setupRefreshToken: func() string {
				reqBody := request.LoginRequest{
					Email:    "test@example.com",
					Password: "password123",
				}
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
				refreshCookie := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(s.T(), refreshCookie)
				return refreshCookie.Value
			},
			expectedStatus: http.StatusOK,
			description:    "a valid refresh token should mint new tokens",
		},
		{
			name: "invalid refresh token",
			setupRefreshToken: func() string {
				return "invalid-refresh-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "malformed refresh tokens must be rejected",
		},
		{
			name: "missing refresh token",
			setupRefreshToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "refresh without any token must be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			refreshToken := tt.setupRefreshToken()
			var body any
			if refreshToken != "" {
				body = request.RefreshRequest{RefreshToken: refreshToken}
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, body, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var refreshRes response.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &refreshRes)
				require.NoError(t, err)
				require.NotEmpty(t, refreshRes.AccessToken, "new access token missing")
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"), "new access token cookie not set")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("successful logout clears cookies", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "test@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie)
		require.Empty(t, accessCookie.Value, "access token cookie not cleared")
	})

	s.Run("logout without a token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
		description    string
	}{
		{
			name: "customer profile",
			setupUser: func() (string, string, string) {
				email := "customer2@example.com"
				role := string(user.RoleCustomer)
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "a customer should see their own profile",
		},
		{
			name: "staff profile",
			setupUser: func() (string, string, string) {
				email := "staff2@example.com"
				role := string(user.RoleStaff)
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "a staff member should see their own profile",
		},
		{
			name: "invalid token",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "garbage tokens must be rejected",
		},
		{
			name: "missing token",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "anonymous requests must be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email, "email missing from profile")
				require.Contains(t, responseBody, role, "role missing from profile")
				require.NotContains(t, responseBody, "password", "password material leaked into profile")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleCustomer))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "expired tokens must be rejected")
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints reject anonymous requests", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/lunches"},
			{http.MethodGet, "/api/schedules"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "anonymous request must be rejected: %s %s", endpoint.method, endpoint.path)
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("independent sessions stay valid", func() {
		t := s.T()

		email := "concurrent@example.com"
		dbtest.CreateTestUser(t, s.DB, email, string(user.RoleCustomer))

		token1 := authtest.LoginUser(t, s.Router, email, "password123")
		token2 := authtest.LoginUser(t, s.Router, email, "password123")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code, "first session token rejected")
		require.Equal(t, http.StatusOK, w2.Code, "second session token rejected")
	})
}
