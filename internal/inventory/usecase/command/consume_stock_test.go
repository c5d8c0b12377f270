package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/inventory/domain"
)

// fakeItemRepo stubs just the calls the stock commands make.
type fakeItemRepo struct {
	domain.ItemRepository
	reduceOK     bool
	reduceErr    error
	reducedID    uint
	reducedAmt   int
	addedID      uint
	addedAmt     int
	existsResult bool
	setQuantity  int
}

func (f *fakeItemRepo) ReduceStock(id uint, amount int) (bool, error) {
	f.reducedID = id
	f.reducedAmt = amount
	return f.reduceOK, f.reduceErr
}

func (f *fakeItemRepo) AddStock(id uint, amount int) error {
	f.addedID = id
	f.addedAmt = amount
	return nil
}

func (f *fakeItemRepo) ExistsByID(id uint) (bool, error) {
	return f.existsResult, nil
}

func (f *fakeItemRepo) UpdateQuantity(id uint, quantity int) error {
	f.setQuantity = quantity
	return nil
}

func TestConsumeStockGranted(t *testing.T) {
	repo := &fakeItemRepo{reduceOK: true}
	h := NewConsumeStockHandler(repo)

	require.NoError(t, h.Handle(ConsumeStockCommand{ItemID: 7, Amount: 3}))
	assert.Equal(t, uint(7), repo.reducedID)
	assert.Equal(t, 3, repo.reducedAmt)
}

func TestConsumeStockDeclinedIsConflict(t *testing.T) {
	repo := &fakeItemRepo{reduceOK: false}
	h := NewConsumeStockHandler(repo)

	err := h.Handle(ConsumeStockCommand{ItemID: 7, Amount: 3})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestConsumeStockValidatesInput(t *testing.T) {
	h := NewConsumeStockHandler(&fakeItemRepo{})

	assert.ErrorIs(t, h.Handle(ConsumeStockCommand{ItemID: 0, Amount: 3}), apperr.ErrInvalidArgument)
	assert.ErrorIs(t, h.Handle(ConsumeStockCommand{ItemID: 7, Amount: 0}), apperr.ErrInvalidArgument)
}

func TestAdjustQuantityRejectsNegative(t *testing.T) {
	h := NewAdjustQuantityHandler(&fakeItemRepo{existsResult: true})

	assert.ErrorIs(t, h.Handle(AdjustQuantityCommand{ItemID: 7, Quantity: -1}), apperr.ErrInvalidArgument)
	require.NoError(t, h.Handle(AdjustQuantityCommand{ItemID: 7, Quantity: 0}))
}

func TestAdjustQuantityMissingItem(t *testing.T) {
	h := NewAdjustQuantityHandler(&fakeItemRepo{existsResult: false})

	assert.ErrorIs(t, h.Handle(AdjustQuantityCommand{ItemID: 7, Quantity: 5}), apperr.ErrNotFound)
}
