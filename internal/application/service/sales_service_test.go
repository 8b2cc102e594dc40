package service

import (
	"context"
	"testing"
	"time"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleAt(t time.Time, total int64, quantities ...int) *entity.Sale {
	sale := &entity.Sale{ID: uuid.New(), UserID: uuid.New(), Total: total, CreatedAt: t}
	for _, q := range quantities {
		sale.Items = append(sale.Items, entity.SaleItem{ID: uuid.New(), Quantity: q})
	}
	return sale
}

func TestReportForDayAggregates(t *testing.T) {
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)
	sales := &memSaleRepo{sales: []*entity.Sale{
		saleAt(day.Add(20*time.Hour), 2700, 3, 1),
		saleAt(day.Add(23*time.Hour), 500, 1),
		saleAt(day.AddDate(0, 0, 1), 9999, 2),
	}}
	svc := NewSalesService(sales, loc)

	report, err := svc.ReportForDay(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", report.Date)
	assert.Equal(t, 2, report.SaleCount)
	assert.Equal(t, 5, report.ItemCount)
	assert.Equal(t, int64(3200), report.Revenue)
}

func TestReportForEmptyDayIsZeroed(t *testing.T) {
	svc := NewSalesService(&memSaleRepo{}, time.UTC)

	report, err := svc.ReportForDay(context.Background(), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, report.SaleCount)
	assert.Zero(t, report.ItemCount)
	assert.Zero(t, report.Revenue)
}

func TestDayBucketUsesReportTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	// 02:00 UTC on May 2nd is still the evening of May 1st in Bogota.
	lateNight := time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC)
	sales := &memSaleRepo{sales: []*entity.Sale{saleAt(lateNight, 1200, 1)}}
	svc := NewSalesService(sales, loc)

	day, err := svc.ParseDay("2024-05-01")
	require.NoError(t, err)

	report, err := svc.ReportForDay(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 1, report.SaleCount)
	assert.Equal(t, int64(1200), report.Revenue)
}

func TestParseDayRejectsBadFormat(t *testing.T) {
	svc := NewSalesService(&memSaleRepo{}, time.UTC)

	_, err := svc.ParseDay("01/05/2024")
	assert.Error(t, err)
}

func TestListByDayNewestFirst(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	early := saleAt(day.Add(18*time.Hour), 500, 1)
	late := saleAt(day.Add(22*time.Hour), 1200, 1)
	svc := NewSalesService(&memSaleRepo{sales: []*entity.Sale{early, late}}, time.UTC)

	sales, err := svc.ListByDay(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, late.ID, sales[0].ID)
}

func TestGetSaleNotFound(t *testing.T) {
	svc := NewSalesService(&memSaleRepo{}, time.UTC)

	_, err := svc.GetSale(context.Background(), uuid.New())
	assert.Error(t, err)
}
