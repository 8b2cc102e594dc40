package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRecomputeTotal(t *testing.T) {
	order := &TableOrder{
		TableNumber: 1,
		Lines: []CartLine{
			{Product: ProductSnapshot{ID: uuid.New(), Title: "Cerveza", Price: 500}, Quantity: 4},
			{Product: ProductSnapshot{ID: uuid.New(), Title: "Empanada", Price: 325}, Quantity: 2},
		},
	}

	order.RecomputeTotal()
	assert.Equal(t, int64(2650), order.Total)

	order.Lines = order.Lines[:1]
	order.RecomputeTotal()
	assert.Equal(t, int64(2000), order.Total)

	order.Lines = nil
	order.RecomputeTotal()
	assert.Equal(t, int64(0), order.Total)
}

func TestIsEmpty(t *testing.T) {
	var nilOrder *TableOrder
	assert.True(t, nilOrder.IsEmpty())
	assert.True(t, (&TableOrder{TableNumber: 3}).IsEmpty())

	order := &TableOrder{
		Lines: []CartLine{{Product: ProductSnapshot{ID: uuid.New()}, Quantity: 1}},
	}
	assert.False(t, order.IsEmpty())
}

func TestItemCount(t *testing.T) {
	order := &TableOrder{
		Lines: []CartLine{
			{Product: ProductSnapshot{ID: uuid.New()}, Quantity: 3},
			{Product: ProductSnapshot{ID: uuid.New()}, Quantity: 1},
		},
	}
	assert.Equal(t, 4, order.ItemCount())

	var nilOrder *TableOrder
	assert.Equal(t, 0, nilOrder.ItemCount())
}

func TestCloneIsIndependent(t *testing.T) {
	productID := uuid.New()
	order := &TableOrder{
		TableNumber: 5,
		Lines:       []CartLine{{Product: ProductSnapshot{ID: productID, Price: 100}, Quantity: 1}},
		Total:       100,
	}

	cp := order.Clone()
	cp.Lines[0].Quantity = 9
	cp.RecomputeTotal()

	assert.Equal(t, 1, order.Lines[0].Quantity)
	assert.Equal(t, int64(100), order.Total)
}
