package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/pricing"
)

func catalogLine(sku string, unitGross, vatPct, qty float64) models.CartItem {
	return models.CartItem{
		LineID:        uuid.NewString(),
		ProductID:     "p-" + sku,
		VariantID:     "v-" + sku,
		SKU:           sku,
		Name:          "Item " + sku,
		Unit:          models.UnitPerItem,
		Quantity:      qty,
		SellingPrice:  pricing.SellingPriceExclTax(unitGross, vatPct),
		VAT:           pricing.VATAmount(unitGross, vatPct),
		VATPercentage: vatPct,
		Total:         pricing.Round2(unitGross * qty),
	}
}

func TestAddOrMergeSameSKU(t *testing.T) {
	s := NewStore(nil)

	first := catalogLine("SKU-1", 11.50, 15, 1)
	s.AddOrMergeItem(first)

	lineID, merged := s.AddOrMergeItem(catalogLine("SKU-1", 11.50, 15, 2))
	assert.True(t, merged)
	assert.Equal(t, first.LineID, lineID)
	assert.Equal(t, 1, s.Len())

	got := s.Items()[0]
	assert.Equal(t, 3.0, got.Quantity)
	assert.Equal(t, 34.50, got.Total)
}

func TestAddOrMergeOpenItemAlwaysAppends(t *testing.T) {
	s := NewStore(nil)

	open := catalogLine("OPEN", 5, 0, 1)
	open.Name = models.OpenItemName
	s.AddOrMergeItem(open)

	open2 := catalogLine("OPEN", 5, 0, 1)
	open2.Name = models.OpenItemName
	_, merged := s.AddOrMergeItem(open2)

	assert.False(t, merged)
	assert.Equal(t, 2, s.Len())
}

func TestAddOrMergeSpecialRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.CartItem)
	}{
		{"weight unit", func(it *models.CartItem) { it.Unit = models.UnitPerWeight }},
		{"open price", func(it *models.CartItem) { it.IsOpenPrice = true }},
		{"sent to kitchen", func(it *models.CartItem) { it.SentToKOT = true }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore(nil)
			existing := catalogLine("SKU-9", 10, 0, 1)
			tc.mutate(&existing)
			s.AddItem(existing)

			incoming := catalogLine("SKU-9", 10, 0, 1)
			tc.mutate(&incoming)
			_, merged := s.AddOrMergeItem(incoming)

			assert.False(t, merged)
			assert.Equal(t, 2, s.Len())
		})
	}
}

func TestUpdateAndRemoveByLineID(t *testing.T) {
	s := NewStore(nil)
	it := catalogLine("SKU-1", 10, 0, 1)
	s.AddItem(it)

	changed := it
	changed.Quantity = 4
	changed.Total = 40
	assert.True(t, s.UpdateItem(it.LineID, changed))
	assert.Equal(t, 4.0, s.Items()[0].Quantity)

	assert.False(t, s.UpdateItem("missing", changed))
	assert.False(t, s.RemoveItem("missing"))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.RemoveItem(it.LineID))
	assert.Equal(t, 0, s.Len())
}

func TestUpdateItemAtOutOfRange(t *testing.T) {
	s := NewStore(nil)
	s.AddItem(catalogLine("SKU-1", 10, 0, 1))

	assert.False(t, s.UpdateItemAt(-1, catalogLine("SKU-2", 5, 0, 1)))
	assert.False(t, s.UpdateItemAt(1, catalogLine("SKU-2", 5, 0, 1)))
	assert.False(t, s.RemoveItemAt(7))
	assert.Equal(t, 1, s.Len())
}

// Removing [1,3] in one call must equal removing 3 then 1 individually;
// ascending removal would shift index 3 onto the wrong line.
func TestBulkRemoveDescendingOrder(t *testing.T) {
	build := func() *Store {
		s := NewStore(nil)
		for _, sku := range []string{"A", "B", "C", "D", "E"} {
			s.AddItem(catalogLine(sku, 10, 0, 1))
		}
		return s
	}

	bulk := build()
	assert.Equal(t, 2, bulk.BulkRemoveItems([]int{1, 3}))

	oneByOne := build()
	assert.True(t, oneByOne.RemoveItemAt(3))
	assert.True(t, oneByOne.RemoveItemAt(1))

	skus := func(s *Store) []string {
		var out []string
		for _, it := range s.Items() {
			out = append(out, it.SKU)
		}
		return out
	}
	assert.Equal(t, []string{"A", "C", "E"}, skus(bulk))
	assert.Equal(t, skus(oneByOne), skus(bulk))
}

func TestBulkRemoveSkipsBadIndexes(t *testing.T) {
	s := NewStore(nil)
	s.AddItem(catalogLine("A", 10, 0, 1))
	s.AddItem(catalogLine("B", 10, 0, 1))

	assert.Equal(t, 1, s.BulkRemoveItems([]int{5, 1, 1, -2}))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "A", s.Items()[0].SKU)
}

// The observer must see the new state before the mutation returns.
func TestObserverRunsAfterMutationBeforeReturn(t *testing.T) {
	s := NewStore(nil)

	var seen []int
	var events []Event
	s.Subscribe(func(ev Event) {
		seen = append(seen, s.Len())
		events = append(events, ev)
	})

	s.AddItem(catalogLine("A", 10, 0, 1))
	s.AddItem(catalogLine("B", 10, 0, 1))
	s.Clear()

	assert.Equal(t, []int{1, 2, 0}, seen)
	assert.Equal(t, []Event{EventChanged, EventChanged, EventCleared}, events)
}

func TestClearIsIdempotent(t *testing.T) {
	s := NewStore(nil)
	s.AddItem(catalogLine("A", 10, 0, 1))
	s.ApplyDiscount(models.Discount{ID: "d1", Value: 10, ValueType: models.ValuePercentage})

	s.Clear()
	assert.NotPanics(t, func() { s.Clear() })
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Discounts())
	assert.Empty(t, s.Promotions())
	assert.Empty(t, s.Charges())
}

func TestVoidKeepsAuditAmount(t *testing.T) {
	s := NewStore(nil)
	it := catalogLine("A", 25, 0, 2)
	s.AddItem(it)

	assert.True(t, s.MarkVoid(it.LineID, "wrong order"))
	got := s.Items()[0]
	assert.True(t, got.Void)
	assert.Equal(t, "wrong order", got.VoidReason)
	assert.Equal(t, 50.00, got.AmountBeforeVoidComp)
}
