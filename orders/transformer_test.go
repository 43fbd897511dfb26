package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/pricing"
)

func distributedItem(total, vatPct, discountPct float64) models.CartItem {
	it := models.CartItem{
		LineID:        "line-1",
		SKU:           "SKU-1",
		Name:          "Burger",
		Unit:          models.UnitPerItem,
		Quantity:      1,
		SellingPrice:  pricing.SellingPriceExclTax(total, vatPct),
		VAT:           pricing.VATAmount(total, vatPct),
		VATPercentage: vatPct,
		Total:         total,
		KitchenRefs:   []string{"grill"},
	}
	out := pricing.DistributeDiscounts([]models.CartItem{it}, discountPct)
	return out[0]
}

func session(payments ...models.PaymentEntry) Session {
	return Session{
		OrderNumber: "ORD-1001",
		TokenNumber: 7,
		OrderType:   "dine-in",
		Channel:     "pos",
		Cashier:     "C-01",
		Payments:    payments,
	}
}

func TestBuildOrderDocumentEmptyCart(t *testing.T) {
	_, err := BuildOrderDocument(nil, pricing.Totals{}, session())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildOrderDocumentPaymentIncomplete(t *testing.T) {
	items := []models.CartItem{distributedItem(115, 15, 0)}
	totals := pricing.Aggregate(items, nil, 15)

	_, err := BuildOrderDocument(items, totals, session(models.PaymentEntry{Method: models.PaymentCash, Tendered: 100}))
	assert.ErrorIs(t, err, ErrPaymentIncomplete)
}

// Persisted selling price and VAT come off the post-discount total, not the
// pre-discount line.
func TestBuildOrderDocumentRecomputesVAT(t *testing.T) {
	items := []models.CartItem{distributedItem(115, 15, 10)}
	totals := pricing.Aggregate(items, nil, 15)

	doc, err := BuildOrderDocument(items, totals, session(models.PaymentEntry{Method: models.PaymentCash, Tendered: 110}))
	assert.NoError(t, err)

	it := doc.Items[0]
	assert.Equal(t, 103.50, it.Total)
	assert.Equal(t, pricing.SellingPriceExclTax(103.50, 15), it.SellingPrice)
	assert.Equal(t, pricing.VATAmount(103.50, 15), it.VAT)
	assert.Equal(t, it.Total, pricing.Round2(it.SellingPrice+it.VAT))
	assert.Equal(t, 115.00, it.GrossTotal)

	assert.Equal(t, 103.50, doc.Payment.GrandTotal)
	assert.Equal(t, 110.00, doc.Payment.Tendered)
	assert.Equal(t, 6.50, doc.Payment.Change)
}

func TestBuildOrderDocumentKOTIDAndOpenItemName(t *testing.T) {
	unnamed := distributedItem(10, 0, 0)
	unnamed.Name = ""
	items := []models.CartItem{unnamed}
	totals := pricing.Aggregate(items, nil, 0)

	sess := session(models.PaymentEntry{Method: models.PaymentCash, Tendered: 10})
	sess.TableLabel = "T4"
	sess.KOTSeq = 12

	doc, err := BuildOrderDocument(items, totals, sess)
	assert.NoError(t, err)
	assert.Equal(t, models.OpenItemName, doc.Items[0].Name)
	assert.Equal(t, "T4-12", doc.Items[0].KOTID)
}

func TestBuildOrderDocumentNoTableNoKOTID(t *testing.T) {
	items := []models.CartItem{distributedItem(10, 0, 0)}
	totals := pricing.Aggregate(items, nil, 0)

	doc, err := BuildOrderDocument(items, totals, session(models.PaymentEntry{Method: models.PaymentCard, Tendered: 10}))
	assert.NoError(t, err)
	assert.Equal(t, "", doc.Items[0].KOTID)
}

func TestBuildKOTDocumentsGroupsByKitchenRef(t *testing.T) {
	grill := distributedItem(10, 0, 0)
	grill.KitchenRefs = []string{"grill"}

	both := distributedItem(20, 0, 0)
	both.Name = "Combo"
	both.KitchenRefs = []string{"grill", "fryer"}

	retail := distributedItem(5, 0, 0)
	retail.Name = "Soda can"
	retail.KitchenRefs = nil

	items := []models.CartItem{grill, both, retail}
	totals := pricing.Aggregate(items, nil, 0)

	doc, err := BuildOrderDocument(items, totals, session(models.PaymentEntry{Method: models.PaymentCash, Tendered: 35}))
	assert.NoError(t, err)

	kots := BuildKOTDocuments(doc)
	assert.Len(t, kots, 2)

	byRef := map[string]models.KOTDocument{}
	for _, k := range kots {
		byRef[k.KitchenRef] = k
	}
	assert.Len(t, byRef["grill"].Items, 2)
	assert.Len(t, byRef["fryer"].Items, 1)
	assert.Equal(t, "Combo", byRef["fryer"].Items[0].Name)
	assert.Equal(t, "ORD-1001", byRef["grill"].OrderNumber)
	assert.Equal(t, 7, byRef["fryer"].TokenNumber)
}

func TestBuildReceiptDocumentMatchesOrderAmounts(t *testing.T) {
	items := []models.CartItem{distributedItem(115, 15, 10)}
	totals := pricing.Aggregate(items, nil, 15)

	doc, err := BuildOrderDocument(items, totals, session(models.PaymentEntry{Method: models.PaymentCash, Tendered: 120, Change: 16.50}))
	assert.NoError(t, err)

	rc := BuildReceiptDocument(doc, models.PrintTemplate{CompanyName: "Demo Cafe"})

	assert.Equal(t, doc.Payment.Subtotal, rc.Subtotal)
	assert.Equal(t, doc.Payment.Discount, rc.Discount)
	assert.Equal(t, doc.Payment.VAT, rc.VAT)
	assert.Equal(t, doc.Payment.GrandTotal, rc.GrandTotal)
	assert.Len(t, rc.Lines, 1)
	assert.Equal(t, doc.Items[0].Total, rc.Lines[0].Total)
	assert.Len(t, rc.Payments, 1)
	assert.Equal(t, "Demo Cafe", rc.Template.CompanyName)
}

func TestBuildReceiptDocumentSkipsVoidStruckFree(t *testing.T) {
	void := distributedItem(10, 0, 0)
	void.Void = true
	free := distributedItem(20, 0, 0)
	free.Name = "Birthday cake"
	free.FreeKind = models.FreeItem
	kept := distributedItem(30, 0, 0)

	items := pricing.DistributeDiscounts([]models.CartItem{void, free, kept}, 0)
	totals := pricing.Aggregate(items, nil, 0)

	doc, err := BuildOrderDocument(items, totals, session(models.PaymentEntry{Method: models.PaymentCash, Tendered: 30}))
	assert.NoError(t, err)

	rc := BuildReceiptDocument(doc, models.PrintTemplate{})
	assert.Len(t, rc.Lines, 2) // void dropped, free kept struck

	var struck, charged int
	for _, l := range rc.Lines {
		if l.Struck {
			struck++
			assert.Equal(t, 0.00, l.Total)
		} else {
			charged++
		}
	}
	assert.Equal(t, 1, struck)
	assert.Equal(t, 1, charged)
}
