package orders

import "github.com/yeremiapane/pos-engine/models"

// BuildKOTDocuments groups the order's items by kitchen reference, one ticket
// per station. An item carrying several kitchen refs appears on each matching
// ticket as its own copy. Items without any kitchen ref (retail lines) raise
// no ticket. Payment and money fields never reach the kitchen; order-level
// header fields carry into every group unchanged.
func BuildKOTDocuments(order *models.OrderDocument) []models.KOTDocument {
	grouped := make(map[string][]models.KOTItem)
	var refOrder []string

	for _, it := range order.Items {
		ki := models.KOTItem{
			Name:                it.Name,
			NameAlt:             it.NameAlt,
			VariantName:         it.VariantName,
			Quantity:            it.Quantity,
			Modifiers:           it.Modifiers,
			SpecialInstructions: it.SpecialInstructions,
			Void:                it.Void,
		}
		for _, ref := range it.KitchenRefs {
			if _, seen := grouped[ref]; !seen {
				refOrder = append(refOrder, ref)
			}
			grouped[ref] = append(grouped[ref], ki)
		}
	}

	var docs []models.KOTDocument
	for _, ref := range refOrder {
		docs = append(docs, models.KOTDocument{
			KitchenRef:          ref,
			OrderNumber:         order.OrderNumber,
			KOTID:               kotIDOf(order),
			TokenNumber:         order.TokenNumber,
			OrderType:           order.OrderType,
			Channel:             order.Channel,
			TableLabel:          order.TableLabel,
			CreatedAt:           order.CreatedAt,
			Items:               grouped[ref],
			SpecialInstructions: order.SpecialInstructions,
		})
	}
	return docs
}

func kotIDOf(order *models.OrderDocument) string {
	for _, it := range order.Items {
		if it.KOTID != "" {
			return it.KOTID
		}
	}
	return ""
}
