package services_test

import (
	"context"
	"testing"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/citruspartners/citrus_ledger_app/internal/core/ports/services"
	"github.com/citruspartners/citrus_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Reuses the repository mocks defined in the sibling service test files.
type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockOrderRepo   *MockOrderRepository
	mockPartnerRepo *MockPartnerRepository
	service         portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockPartnerRepo = new(MockPartnerRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo, suite.mockOrderRepo, suite.mockPartnerRepo)
}

func (suite *ReportingServiceTestSuite) threePartners() []domain.Partner {
	return []domain.Partner{
		{PartnerID: "p-amal", Name: "Amal"},
		{PartnerID: "p-basim", Name: "Basim"},
		{PartnerID: "p-cyrus", Name: "Cyrus"},
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_SingleDeliveredOrder() {
	ctx := context.Background()

	orders := []domain.Order{
		{
			OrderID:        "o-1",
			ProductVariant: domain.Variant10Kg,
			Quantity:       2,
			SellPrice:      3250,
			Status:         domain.OrderDelivered,
		},
		{
			OrderID:        "o-2",
			ProductVariant: domain.Variant5Kg,
			Quantity:       1,
			SellPrice:      1500,
			Status:         domain.OrderPending,
		},
	}
	transactions := []domain.Transaction{
		{TransactionID: "t-1", PartnerID: "p-amal", Amount: 10000, Category: domain.CategoryCapitalInjection},
		{TransactionID: "t-2", PartnerID: "p-basim", Amount: 2000, Category: domain.CategoryMarketing},
	}

	suite.mockOrderRepo.On("ListOrders", ctx, (*domain.OrderStatus)(nil)).Return(orders, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{}).Return(transactions, nil).Once()
	suite.mockPartnerRepo.On("ListPartners", ctx).Return(suite.threePartners(), nil).Once()

	report, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)

	// Only the delivered order accrues revenue and fixed costs.
	suite.Equal(int64(6500), report.Stats.TotalRevenue)
	suite.Equal(int64(3440), report.Stats.TotalFixedCosts)
	suite.Equal(int64(2000), report.Stats.TotalExpenses)
	suite.Equal(int64(1060), report.Stats.Profit)
	suite.Equal(2, report.Stats.TotalOrders)
	suite.Equal(1, report.Stats.DeliveredOrders)
	suite.Equal(0, report.Stats.ReturnedOrders)

	// ROI = 1060 / 12000 * 100; capital pool includes the expense transaction.
	expectedROI := decimal.NewFromInt(1060).Div(decimal.NewFromInt(12000)).Mul(decimal.NewFromInt(100))
	suite.True(expectedROI.Equal(report.Stats.ROI), "ROI was %s", report.Stats.ROI)
	suite.True(report.Stats.ReturnRate.IsZero())

	suite.Require().Len(report.Payouts, 3)
	share := decimal.NewFromInt(1060).Div(decimal.NewFromInt(3))
	payoutByID := make(map[string]domain.PartnerPayout)
	for _, p := range report.Payouts {
		payoutByID[p.PartnerID] = p
		suite.True(share.Equal(p.ProfitShare), "share for %s was %s", p.PartnerID, p.ProfitShare)
	}
	suite.Equal(int64(10000), payoutByID["p-amal"].Contribution)
	suite.Equal(int64(2000), payoutByID["p-basim"].Contribution)
	suite.Equal(int64(0), payoutByID["p-cyrus"].Contribution)
	suite.True(decimal.NewFromInt(10000).Add(share).Equal(payoutByID["p-amal"].TotalPayout))

	// The profit shares of all partners sum back to the whole profit.
	total := decimal.Zero
	for _, p := range report.Payouts {
		total = total.Add(p.ProfitShare)
	}
	suite.True(decimal.NewFromInt(1060).Sub(total).Abs().LessThan(decimal.NewFromFloat(0.000001)))

	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockPartnerRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_ReturnedOrdersEarnNothing() {
	ctx := context.Background()

	orders := []domain.Order{
		{OrderID: "o-1", ProductVariant: domain.Variant10Kg, Quantity: 1, SellPrice: 3250, Status: domain.OrderDelivered},
		{OrderID: "o-2", ProductVariant: domain.Variant10Kg, Quantity: 1, SellPrice: 3250, Status: domain.OrderReturned},
		{OrderID: "o-3", ProductVariant: domain.Variant5Kg, Quantity: 1, SellPrice: 1200, Status: domain.OrderShipped},
	}

	suite.mockOrderRepo.On("ListOrders", ctx, (*domain.OrderStatus)(nil)).Return(orders, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{}).Return([]domain.Transaction{}, nil).Once()
	suite.mockPartnerRepo.On("ListPartners", ctx).Return(suite.threePartners(), nil).Once()

	report, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(3250), report.Stats.TotalRevenue)
	suite.Equal(int64(1720), report.Stats.TotalFixedCosts)
	suite.Equal(1, report.Stats.ReturnedOrders)

	// 1 of 3 orders returned.
	expectedRate := decimal.NewFromInt(1).Div(decimal.NewFromInt(3)).Mul(decimal.NewFromInt(100))
	suite.True(expectedRate.Equal(report.Stats.ReturnRate))

	// No capital contributed, so ROI reports zero instead of dividing.
	suite.True(report.Stats.ROI.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_EmptyData() {
	ctx := context.Background()

	suite.mockOrderRepo.On("ListOrders", ctx, (*domain.OrderStatus)(nil)).Return([]domain.Order{}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{}).Return([]domain.Transaction{}, nil).Once()
	suite.mockPartnerRepo.On("ListPartners", ctx).Return([]domain.Partner{}, nil).Once()

	report, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(0), report.Stats.Profit)
	suite.True(report.Stats.ROI.IsZero())
	suite.True(report.Stats.ReturnRate.IsZero())
	suite.Empty(report.Payouts)
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_ReadFailureAborts() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockOrderRepo.On("ListOrders", ctx, (*domain.OrderStatus)(nil)).Return(nil, expectedErr).Once()

	report, err := suite.service.GetDashboardStats(ctx)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, expectedErr)
	suite.mockPartnerRepo.AssertNotCalled(suite.T(), "ListPartners")
}

func (suite *ReportingServiceTestSuite) TestGetPartnerLedger_TotalsAndPercentages() {
	ctx := context.Background()

	transactions := []domain.Transaction{
		{TransactionID: "t-1", PartnerID: "p-amal", Amount: 6000, Category: domain.CategoryCapitalInjection},
		{TransactionID: "t-2", PartnerID: "p-amal", Amount: 1000, Category: domain.CategoryLogistics},
		{TransactionID: "t-3", PartnerID: "p-basim", Amount: 3000, Category: domain.CategoryFruitStock},
	}

	suite.mockPartnerRepo.On("ListPartners", ctx).Return(suite.threePartners(), nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{}).Return(transactions, nil).Once()

	entries, err := suite.service.GetPartnerLedger(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	byID := make(map[string]domain.PartnerLedgerEntry)
	for _, e := range entries {
		byID[e.Partner.PartnerID] = e
	}

	// Expense transactions count toward the contribution pool too.
	suite.Equal(int64(7000), byID["p-amal"].TotalContribution)
	suite.Equal(int64(1000), byID["p-amal"].TotalExpenses)
	suite.Equal(int64(3000), byID["p-basim"].TotalContribution)
	suite.Equal(int64(3000), byID["p-basim"].TotalExpenses)
	suite.Equal(int64(0), byID["p-cyrus"].TotalContribution)

	expectedAmal := decimal.NewFromInt(7000).Div(decimal.NewFromInt(10000)).Mul(decimal.NewFromInt(100))
	suite.True(expectedAmal.Equal(byID["p-amal"].ContributionPercentage))
	suite.True(byID["p-cyrus"].ContributionPercentage.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetPartnerLedger_ReadFailureAborts() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockPartnerRepo.On("ListPartners", ctx).Return(nil, expectedErr).Once()

	entries, err := suite.service.GetPartnerLedger(ctx)

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, expectedErr)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions")
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
