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
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorID string) (*domain.Order, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, orderID string, requested domain.OrderStatus, actorID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, requested, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrderHistory(ctx context.Context, orderID string) ([]domain.OrderStatusHistory, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderStatusHistory), args.Error(1)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Test Suite ---
type OrderHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOrderService *MockOrderService
	jwtSecret        string
}

func (suite *OrderHandlerTestSuite) generateTestToken(partnerID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cla-test",
		Subject:   partnerID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockOrderService = new(MockOrderService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "cla-test",
		IsProduction:      true, // skips swagger registration
	}
	services := &portssvc.ServiceContainer{
		Order: suite.mockOrderService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *OrderHandlerTestSuite) doRequest(method, url string, body any, partnerID string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(partnerID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *OrderHandlerTestSuite) TestCreateOrder_Success() {
	partnerID := uuid.NewString()
	sellPrice := int64(3250)
	body := dto.CreateOrderRequest{
		CustomerName:   "Fresh Basket GmbH",
		ProductVariant: "10kg",
		Quantity:       2,
		SellPrice:      &sellPrice,
	}
	created := &domain.Order{
		OrderID:        uuid.NewString(),
		CustomerName:   body.CustomerName,
		ProductVariant: domain.Variant10Kg,
		Quantity:       2,
		SellPrice:      3250,
		Status:         domain.OrderPending,
	}

	suite.mockOrderService.On("CreateOrder",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateOrderRequest) bool {
			return r.CustomerName == body.CustomerName && r.Quantity == 2
		}),
		partnerID,
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/orders", body, partnerID)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.OrderID, resp.OrderID)
	suite.Equal("pending", resp.Status)
	// Derived in the response: (3250 - 1720) * 2.
	suite.Equal(int64(3060), resp.NetMargin)

	suite.mockOrderService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_MissingAuth() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockOrderService.AssertNotCalled(suite.T(), "CreateOrder")
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_InvalidVariantRejectedByBinding() {
	partnerID := uuid.NewString()
	sellPrice := int64(1000)
	body := dto.CreateOrderRequest{
		CustomerName:   "Fresh Basket GmbH",
		ProductVariant: "25kg",
		Quantity:       1,
		SellPrice:      &sellPrice,
	}

	w := suite.doRequest(http.MethodPost, "/api/v1/orders", body, partnerID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOrderService.AssertNotCalled(suite.T(), "CreateOrder")
}

func (suite *OrderHandlerTestSuite) TestUpdateOrderStatus_InvalidTransitionMapsToConflict() {
	partnerID := uuid.NewString()
	orderID := uuid.NewString()
	body := dto.UpdateOrderStatusRequest{Status: "delivered"}

	suite.mockOrderService.On("UpdateOrderStatus",
		mock.Anything, orderID, domain.OrderDelivered, partnerID,
	).Return(nil, apperrors.ErrInvalidTransition).Once()

	w := suite.doRequest(http.MethodPatch, "/api/v1/orders/"+orderID+"/status", body, partnerID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockOrderService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestUpdateOrderStatus_ConcurrentConflict() {
	partnerID := uuid.NewString()
	orderID := uuid.NewString()
	body := dto.UpdateOrderStatusRequest{Status: "shipped"}

	suite.mockOrderService.On("UpdateOrderStatus",
		mock.Anything, orderID, domain.OrderShipped, partnerID,
	).Return(nil, apperrors.ErrConflict).Once()

	w := suite.doRequest(http.MethodPatch, "/api/v1/orders/"+orderID+"/status", body, partnerID)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *OrderHandlerTestSuite) TestUpdateOrderStatus_UnknownStatusRejectedByBinding() {
	partnerID := uuid.NewString()
	orderID := uuid.NewString()
	body := map[string]string{"status": "archived"}

	w := suite.doRequest(http.MethodPatch, "/api/v1/orders/"+orderID+"/status", body, partnerID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOrderService.AssertNotCalled(suite.T(), "UpdateOrderStatus")
}

func (suite *OrderHandlerTestSuite) TestGetOrder_NotFound() {
	partnerID := uuid.NewString()
	orderID := uuid.NewString()

	suite.mockOrderService.On("GetOrderByID", mock.Anything, orderID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/orders/"+orderID, nil, partnerID)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *OrderHandlerTestSuite) TestListOrders_StatusFilter() {
	partnerID := uuid.NewString()
	status := domain.OrderShipped
	expected := []domain.Order{{
		OrderID:        uuid.NewString(),
		ProductVariant: domain.Variant5Kg,
		Quantity:       1,
		SellPrice:      1200,
		Status:         domain.OrderShipped,
	}}

	suite.mockOrderService.On("ListOrders", mock.Anything, &status).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/orders?status=shipped", nil, partnerID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListOrdersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Orders, 1)
	suite.Equal(expected[0].OrderID, resp.Orders[0].OrderID)
}

func (suite *OrderHandlerTestSuite) TestListOrders_UnknownStatusFilter() {
	partnerID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/orders?status=archived", nil, partnerID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOrderService.AssertNotCalled(suite.T(), "ListOrders")
}

func (suite *OrderHandlerTestSuite) TestListOrderHistory_Success() {
	partnerID := uuid.NewString()
	orderID := uuid.NewString()
	history := []domain.OrderStatusHistory{
		{
			HistoryID: uuid.NewString(),
			OrderID:   orderID,
			OldStatus: domain.OrderPending,
			NewStatus: domain.OrderShipped,
			ChangedBy: partnerID,
			ChangedAt: time.Now(),
		},
	}

	suite.mockOrderService.On("ListOrderHistory", mock.Anything, orderID).Return(history, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/orders/"+orderID+"/history", nil, partnerID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListOrderHistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.History, 1)
	suite.Equal("pending", resp.History[0].OldStatus)
	suite.Equal("shipped", resp.History[0].NewStatus)
}

func TestOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
