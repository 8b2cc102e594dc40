package service

import (
	"context"
	"testing"

	"github.com/dcamacho/barkeep-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettlement(products *memProductRepo) (*SettlementService, *LedgerService, *memSaleRepo) {
	ledgerSvc, _ := newTestLedgerService(products)
	sales := &memSaleRepo{}
	return NewSettlementService(sales, products, ledgerSvc), ledgerSvc, sales
}

func TestSettleTableRecordsSaleAndClearsLedger(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	shot := testProduct("Aguardiente", 1200, 5)
	products := newMemProductRepo(beer, shot)
	svc, ledgerSvc, sales := newTestSettlement(products)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := ledgerSvc.AddLine(ctx, 2, beer.ID)
		require.NoError(t, err)
	}
	_, err := ledgerSvc.AddLine(ctx, 2, shot.ID)
	require.NoError(t, err)

	result, err := svc.SettleTable(ctx, 2, userID)
	require.NoError(t, err)
	assert.True(t, result.SaleRecorded)
	assert.Empty(t, result.FailedStep)
	assert.Equal(t, int64(2700), result.Total)
	assert.Len(t, result.StockApplied, 2)
	assert.Len(t, result.Compensations, 2)

	require.Len(t, sales.sales, 1)
	sale := sales.sales[0]
	assert.Equal(t, result.SaleID, sale.ID)
	assert.Equal(t, userID, sale.UserID)
	assert.Equal(t, int64(2700), sale.Total)
	require.Len(t, sale.Items, 2)
	assert.Equal(t, "Cerveza", sale.Items[0].ProductName)
	assert.Equal(t, 3, sale.Items[0].Quantity)
	assert.Equal(t, int64(1500), sale.Items[0].Total)

	assert.Equal(t, 7, beer.Stock)
	assert.Equal(t, 4, shot.Stock)

	order, err := ledgerSvc.GetOrder(ctx, 2)
	require.NoError(t, err)
	assert.True(t, order.IsEmpty())
}

func TestSettleEmptyTableRejected(t *testing.T) {
	svc, _, _ := newTestSettlement(newMemProductRepo())

	_, err := svc.SettleTable(context.Background(), 1, uuid.New())
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSettleWithoutUserRejected(t *testing.T) {
	svc, _, _ := newTestSettlement(newMemProductRepo())

	_, err := svc.SettleTable(context.Background(), 1, uuid.Nil)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestSettleSaleInsertFailureKeepsLedgerAndStock(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	products := newMemProductRepo(beer)
	svc, ledgerSvc, sales := newTestSettlement(products)
	sales.createErr = assert.AnError
	ctx := context.Background()

	_, err := ledgerSvc.AddLine(ctx, 3, beer.ID)
	require.NoError(t, err)

	result, err := svc.SettleTable(ctx, 3, uuid.New())
	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.SaleRecorded)
	assert.Equal(t, StepRecordSale, result.FailedStep)
	assert.Equal(t, 10, beer.Stock)

	order, err := ledgerSvc.GetOrder(ctx, 3)
	require.NoError(t, err)
	assert.False(t, order.IsEmpty())
}

func TestSettleStockFailureAfterSaleIsReported(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	shot := testProduct("Aguardiente", 1200, 5)
	products := newMemProductRepo(beer, shot)
	products.decrementErr[shot.ID] = assert.AnError
	svc, ledgerSvc, sales := newTestSettlement(products)
	ctx := context.Background()

	_, err := ledgerSvc.AddLine(ctx, 4, beer.ID)
	require.NoError(t, err)
	_, err = ledgerSvc.AddLine(ctx, 4, shot.ID)
	require.NoError(t, err)

	result, err := svc.SettleTable(ctx, 4, uuid.New())
	require.Error(t, err)
	require.NotNil(t, result)
	assert.True(t, result.SaleRecorded)
	assert.Equal(t, StepDecrementStock, result.FailedStep)
	require.Len(t, sales.sales, 1)

	// The beer decrement landed; its compensation can undo it.
	require.Len(t, result.StockApplied, 1)
	assert.Equal(t, beer.ID, result.StockApplied[0])
	assert.Equal(t, 9, beer.Stock)
	require.Len(t, result.Compensations, 1)
	require.NoError(t, result.Compensations[0].Run(ctx))
	assert.Equal(t, 10, beer.Stock)

	order, err := ledgerSvc.GetOrder(ctx, 4)
	require.NoError(t, err)
	assert.False(t, order.IsEmpty())
}

func TestSettleCanDriveStockNegative(t *testing.T) {
	beer := testProduct("Cerveza", 500, 5)
	products := newMemProductRepo(beer)
	svc, ledgerSvc, _ := newTestSettlement(products)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := ledgerSvc.AddLine(ctx, 1, beer.ID)
		require.NoError(t, err)
	}
	// Another sale drains the shelf between cart building and settlement.
	beer.Stock = 2

	result, err := svc.SettleTable(ctx, 1, uuid.New())
	require.NoError(t, err)
	assert.True(t, result.SaleRecorded)
	assert.Equal(t, -2, beer.Stock)
}

func TestSettleBusyTableConflict(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	products := newMemProductRepo(beer)
	svc, ledgerSvc, _ := newTestSettlement(products)
	ctx := context.Background()

	_, err := ledgerSvc.AddLine(ctx, 5, beer.ID)
	require.NoError(t, err)

	require.True(t, svc.begin(5))
	_, err = svc.SettleTable(ctx, 5, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrTableBusy)
	svc.end(5)

	_, err = svc.SettleTable(ctx, 5, uuid.New())
	assert.NoError(t, err)
}

func TestSettleAllContinuesPastFailures(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	shot := testProduct("Aguardiente", 1200, 5)
	products := newMemProductRepo(beer, shot)
	products.decrementErr[shot.ID] = assert.AnError
	svc, ledgerSvc, sales := newTestSettlement(products)
	ctx := context.Background()

	_, err := ledgerSvc.AddLine(ctx, 2, beer.ID)
	require.NoError(t, err)
	_, err = ledgerSvc.AddLine(ctx, 5, shot.ID)
	require.NoError(t, err)

	result, err := svc.SettleAll(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 1, result.Settled)
	require.Contains(t, result.Failures, 5)

	// The failed table keeps its order for a retry.
	order, err := ledgerSvc.GetOrder(ctx, 5)
	require.NoError(t, err)
	assert.False(t, order.IsEmpty())

	settled, err := ledgerSvc.GetOrder(ctx, 2)
	require.NoError(t, err)
	assert.True(t, settled.IsEmpty())
	assert.Len(t, sales.sales, 2)
}

func TestSettleAllWithEmptyLedger(t *testing.T) {
	svc, _, _ := newTestSettlement(newMemProductRepo())

	result, err := svc.SettleAll(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, result.Attempted)
	assert.Zero(t, result.Settled)
	assert.Empty(t, result.Failures)
}
