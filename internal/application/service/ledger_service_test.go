package service

import (
	"context"
	"testing"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/internal/domain/enum"
	"github.com/dcamacho/barkeep-api/internal/domain/ledger"
	"github.com/dcamacho/barkeep-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(title string, price int64, stock int) *entity.Product {
	return &entity.Product{ID: uuid.New(), Title: title, Price: price, Stock: stock}
}

func TestAddLineAccumulatesQuantityAndTotal(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	svc, _ := newTestLedgerService(newMemProductRepo(beer))
	ctx := context.Background()

	var err error
	for i := 0; i < 4; i++ {
		_, err = svc.AddLine(ctx, 1, beer.ID)
		require.NoError(t, err)
	}

	order, err := svc.GetOrder(ctx, 1)
	require.NoError(t, err)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 4, order.Lines[0].Quantity)
	assert.Equal(t, int64(2000), order.Total)
}

func TestAddLineStopsSilentlyAtStock(t *testing.T) {
	beer := testProduct("Cerveza", 500, 2)
	svc, _ := newTestLedgerService(newMemProductRepo(beer))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.AddLine(ctx, 1, beer.ID)
		require.NoError(t, err)
	}

	order, err := svc.GetOrder(ctx, 1)
	require.NoError(t, err)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.Equal(t, int64(1000), order.Total)
}

func TestAddLineOutOfStockProductCreatesNoLine(t *testing.T) {
	soldOut := testProduct("Ron", 1500, 0)
	svc, _ := newTestLedgerService(newMemProductRepo(soldOut))
	ctx := context.Background()

	order, err := svc.AddLine(ctx, 1, soldOut.ID)
	require.NoError(t, err)
	assert.True(t, order.IsEmpty())
}

func TestAddLineUnknownProduct(t *testing.T) {
	svc, _ := newTestLedgerService(newMemProductRepo())

	_, err := svc.AddLine(context.Background(), 1, uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestSetLineQuantityRecomputesTotal(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	svc, _ := newTestLedgerService(newMemProductRepo(beer))
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := svc.AddLine(ctx, 1, beer.ID)
		require.NoError(t, err)
	}

	order, err := svc.SetLineQuantity(ctx, 1, beer.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.Equal(t, int64(1000), order.Total)
}

func TestSetLineQuantityZeroRemovesLine(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	svc, _ := newTestLedgerService(newMemProductRepo(beer))
	ctx := context.Background()

	_, err := svc.AddLine(ctx, 1, beer.ID)
	require.NoError(t, err)

	order, err := svc.SetLineQuantity(ctx, 1, beer.ID, 0)
	require.NoError(t, err)
	assert.True(t, order.IsEmpty())

	statuses := svc.TableStatuses(ctx, 0)
	assert.Equal(t, enum.TableStatusEmpty, statuses[0].Status)
}

func TestSetLineQuantityOnAbsentOrderIsNoOp(t *testing.T) {
	svc, store := newTestLedgerService(newMemProductRepo())

	order, err := svc.SetLineQuantity(context.Background(), 4, uuid.New(), 3)
	require.NoError(t, err)
	assert.True(t, order.IsEmpty())
	assert.Zero(t, store.saveCount)
}

func TestClearTableDropsOrder(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	svc, store := newTestLedgerService(newMemProductRepo(beer))
	ctx := context.Background()

	_, err := svc.AddLine(ctx, 2, beer.ID)
	require.NoError(t, err)
	require.NoError(t, svc.ClearTable(ctx, 2))

	order, err := svc.GetOrder(ctx, 2)
	require.NoError(t, err)
	assert.True(t, order.IsEmpty())
	assert.Empty(t, store.saved)
}

func TestTablesAreIndependent(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	shot := testProduct("Aguardiente", 1200, 5)
	svc, _ := newTestLedgerService(newMemProductRepo(beer, shot))
	ctx := context.Background()

	_, err := svc.AddLine(ctx, 1, beer.ID)
	require.NoError(t, err)
	_, err = svc.AddLine(ctx, 2, shot.ID)
	require.NoError(t, err)

	first, err := svc.GetOrder(ctx, 1)
	require.NoError(t, err)
	second, err := svc.GetOrder(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(500), first.Total)
	assert.Equal(t, int64(1200), second.Total)
}

func TestTableNumberOutOfRange(t *testing.T) {
	svc, _ := newTestLedgerService(newMemProductRepo())
	ctx := context.Background()

	for _, table := range []int{0, -1, entity.DefaultMaxTables + 1} {
		_, err := svc.GetOrder(ctx, table)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	}
}

func TestMaxTablesFromSettings(t *testing.T) {
	store := &memLedgerStore{}
	settings := &memSettingsRepo{settings: &entity.CompanySettings{MaxTables: 20}}
	svc, err := NewLedgerService(newMemProductRepo(), settings, store)
	require.NoError(t, err)
	ctx := context.Background()

	assert.Equal(t, 20, svc.MaxTables(ctx))
	assert.Len(t, svc.TableStatuses(ctx, 0), 20)

	_, err = svc.GetOrder(ctx, 20)
	assert.NoError(t, err)
}

func TestMaxTablesFallsBackOnSettingsError(t *testing.T) {
	store := &memLedgerStore{}
	settings := &memSettingsRepo{getErr: assert.AnError}
	svc, err := NewLedgerService(newMemProductRepo(), settings, store)
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultMaxTables, svc.MaxTables(context.Background()))
}

func TestTableStatusesProjection(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	svc, _ := newTestLedgerService(newMemProductRepo(beer))
	ctx := context.Background()

	_, err := svc.AddLine(ctx, 3, beer.ID)
	require.NoError(t, err)
	_, err = svc.AddLine(ctx, 3, beer.ID)
	require.NoError(t, err)

	statuses := svc.TableStatuses(ctx, 5)
	require.Len(t, statuses, entity.DefaultMaxTables)

	assert.Equal(t, enum.TableStatusPending, statuses[2].Status)
	assert.Equal(t, 2, statuses[2].ItemCount)
	assert.Equal(t, int64(1000), statuses[2].Total)
	assert.Equal(t, enum.TableStatusSelected, statuses[4].Status)
	assert.Equal(t, enum.TableStatusEmpty, statuses[0].Status)
}

func TestMutationsArePersisted(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	svc, store := newTestLedgerService(newMemProductRepo(beer))
	ctx := context.Background()

	_, err := svc.AddLine(ctx, 1, beer.ID)
	require.NoError(t, err)
	require.NotNil(t, store.saved[1])
	assert.Equal(t, int64(500), store.saved[1].Total)

	_, err = svc.RemoveLine(ctx, 1, beer.ID)
	require.NoError(t, err)
	assert.True(t, store.saved[1].IsEmpty())
}

func TestLedgerRestoredFromStore(t *testing.T) {
	beer := testProduct("Cerveza", 500, 10)
	store := &memLedgerStore{
		initial: map[int]*ledger.TableOrder{
			6: {
				TableNumber: 6,
				Lines: []ledger.CartLine{
					{Product: ledger.ProductSnapshot{ID: beer.ID, Title: beer.Title, Price: beer.Price, Stock: beer.Stock}, Quantity: 3},
				},
				Total: 1500,
			},
		},
	}
	svc, err := NewLedgerService(newMemProductRepo(beer), &memSettingsRepo{}, store)
	require.NoError(t, err)

	order, err := svc.GetOrder(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 3, order.Lines[0].Quantity)
	assert.Equal(t, int64(1500), order.Total)
}
