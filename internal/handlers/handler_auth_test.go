package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/citruspartners/citrus_ledger_app/internal/apperrors"
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portssvc "github.com/citruspartners/citrus_ledger_app/internal/core/ports/services"
	"github.com/citruspartners/citrus_ledger_app/internal/dto"
	"github.com/citruspartners/citrus_ledger_app/internal/handlers"
	"github.com/citruspartners/citrus_ledger_app/internal/platform/config"
	"github.com/citruspartners/citrus_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PartnerService ---
type MockPartnerService struct {
	mock.Mock
}

func (m *MockPartnerService) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockPartnerService) Authenticate(ctx context.Context, email, password string) (*domain.Partner, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

var _ portssvc.PartnerSvcFacade = (*MockPartnerService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPartnerService *MockPartnerService
	jwtSecret          string
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockPartnerService = new(MockPartnerService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "cla-test",
		IsProduction:      true,
	}
	services := &portssvc.ServiceContainer{
		Partner: suite.mockPartnerService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AuthHandlerTestSuite) postLogin(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	partner := &domain.Partner{
		PartnerID: uuid.NewString(),
		Name:      "Amal",
		Email:     "amal@example.com",
	}

	suite.mockPartnerService.On("Authenticate", mock.Anything, partner.Email, "secret").
		Return(partner, nil).Once()

	w := suite.postLogin(dto.LoginRequest{Email: partner.Email, Password: "secret"})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(partner.PartnerID, resp.Partner.PartnerID)
	suite.NotEmpty(resp.Token)

	// The issued token carries the partner ID as subject.
	claims, err := utils.ParseAndValidateJWT(resp.Token, suite.jwtSecret)
	suite.Require().NoError(err)
	suite.Equal(partner.PartnerID, claims.Subject)

	suite.mockPartnerService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockPartnerService.On("Authenticate", mock.Anything, "amal@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postLogin(dto.LoginRequest{Email: "amal@example.com", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_MalformedBody() {
	w := suite.postLogin(map[string]string{"email": "not-an-email"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPartnerService.AssertNotCalled(suite.T(), "Authenticate")
}

// The login route is rate limited per client IP; the sixth attempt within a
// minute is turned away before reaching the service.
func (suite *AuthHandlerTestSuite) TestLogin_RateLimited() {
	suite.mockPartnerService.On("Authenticate", mock.Anything, "amal@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Times(5)

	for i := 0; i < 5; i++ {
		w := suite.postLogin(dto.LoginRequest{Email: "amal@example.com", Password: "wrong"})
		suite.Equal(http.StatusUnauthorized, w.Code)
	}

	w := suite.postLogin(dto.LoginRequest{Email: "amal@example.com", Password: "wrong"})
	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.mockPartnerService.AssertExpectations(suite.T())
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
