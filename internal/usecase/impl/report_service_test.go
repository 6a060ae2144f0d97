package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "menumaster/internal/domain/errors"
	"menumaster/internal/domain/repository"
	"menumaster/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	srv  usecase.ReportUsecase
	cart cartServiceFixtures
}

// newTestReportService shares one clock between the cart and the report service.
func newTestReportService(t *testing.T, txManager repository.TransactionManager) reportServiceFixtures {
	cart := newTestCartService(t, txManager)
	cart.notifier.EXPECT().OrderConfirmed(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	return reportServiceFixtures{
		srv: NewReportService(ReportServiceParams{
			TxManager: txManager,
			Clock:     cart.clock,
			Logger:    newDiscardLogger(),
		}),
		cart: cart,
	}
}

func placeOrder(t *testing.T, cart cartServiceFixtures, productIDs ...string) {
	t.Helper()

	ctx := context.Background()
	for _, id := range productIDs {
		_, err := cart.srv.AddToCart(ctx, id)
		require.NoError(t, err)
	}
	_, err := cart.srv.FinalizeOrder(ctx)
	require.NoError(t, err)
}

func TestReportService_FinalizeDay(t *testing.T) {
	fx := newTestReportService(t, newTestTxManager(t))
	ctx := context.Background()

	placeOrder(t, fx.cart, "1")
	placeOrder(t, fx.cart, "2", "4")

	report, err := fx.srv.FinalizeDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", report.Date)
	assert.True(t, decimal.RequireFromString("79.50").Equal(report.Total))

	finalized, err := fx.srv.IsDayFinalized(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.True(t, finalized)

	_, err = fx.srv.FinalizeDay(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDayAlreadyFinalized))
}

func TestReportService_FinalizeDay_OnlyToday(t *testing.T) {
	fx := newTestReportService(t, newTestTxManager(t))
	ctx := context.Background()

	placeOrder(t, fx.cart, "1")
	fx.cart.clock.Advance(24 * time.Hour)
	placeOrder(t, fx.cart, "4")

	report, err := fx.srv.FinalizeDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-16", report.Date)
	assert.True(t, decimal.RequireFromString("12").Equal(report.Total))
}

func TestReportService_FinalizeDay_EmptyDay(t *testing.T) {
	fx := newTestReportService(t, newTestTxManager(t))

	report, err := fx.srv.FinalizeDay(context.Background())

	require.NoError(t, err)
	assert.True(t, report.Total.IsZero())
}

func TestReportService_DayBoundaryUsesClockLocation(t *testing.T) {
	txManager := newTestTxManager(t)
	fx := newTestReportService(t, txManager)
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	fx.cart.clock.Loc = saoPaulo
	// 01:00 UTC on the 16th is still the 15th in BRT.
	fx.cart.clock.At = time.Date(2024, time.March, 16, 1, 0, 0, 0, time.UTC)

	placeOrder(t, fx.cart, "1")

	summary, err := fx.srv.TodaySummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", summary.Date)
	assert.Len(t, summary.Orders, 1)
	assert.False(t, summary.Finalized)
}

func TestReportService_GeneralReport_NewestFirst(t *testing.T) {
	fx := newTestReportService(t, newTestTxManager(t))
	ctx := context.Background()

	for _, productID := range []string{"1", "4", "5"} {
		placeOrder(t, fx.cart, productID)
		_, err := fx.srv.FinalizeDay(ctx)
		require.NoError(t, err)
		fx.cart.clock.Advance(24 * time.Hour)
	}

	general, err := fx.srv.GeneralReport(ctx)
	require.NoError(t, err)
	require.Len(t, general.Reports, 3)
	assert.Equal(t, "2024-03-17", general.Reports[0].Date)
	assert.Equal(t, "2024-03-15", general.Reports[2].Date)
	assert.True(t, decimal.RequireFromString("43.50").Equal(general.GrandTotal))
}

func TestReportService_DayDetail(t *testing.T) {
	fx := newTestReportService(t, newTestTxManager(t))
	ctx := context.Background()

	placeOrder(t, fx.cart, "9")

	detail, err := fx.srv.DayDetail(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.Nil(t, detail.Report)
	assert.Len(t, detail.Orders, 1)
	assert.True(t, decimal.NewFromInt(45).Equal(detail.Total))

	other, err := fx.srv.DayDetail(ctx, "2024-03-14")
	require.NoError(t, err)
	assert.Empty(t, other.Orders)

	_, err = fx.srv.DayDetail(ctx, "15/03/2024")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

