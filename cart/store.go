// Package cart owns the order-in-progress: the ordered line items plus the
// applied discounts, promotions and custom charges. One Store serves one
// register session; construct it with NewStore and inject it wherever totals
// are read, so tests get isolated carts instead of shared globals.
package cart

import (
	"sort"

	"github.com/yeremiapane/pos-engine/models"
)

// Event identifies what a notification is about.
type Event string

const (
	EventChanged Event = "cart_update"
	EventCleared Event = "cart_cleared"
)

// Observer receives cart events. Observers run synchronously, after the
// in-memory state is updated and before the mutation returns, so a read
// immediately after any mutation sees the new state.
type Observer func(Event)

// SnapshotStore is the best-effort local cache the store writes after every
// mutation. Failures are logged by the implementation and never surfaced to
// the mutation; the real persistence boundary is the backend order API.
type SnapshotStore interface {
	SaveItems(items []models.CartItem) error
	SaveDiscounts(discounts []models.Discount) error
	SavePromotions(promotions []models.Promotion) error
	SaveCharges(charges []models.CustomCharge) error
	LoadItems() ([]models.CartItem, error)
	LoadDiscounts() ([]models.Discount, error)
	LoadPromotions() ([]models.Promotion, error)
	LoadCharges() ([]models.CustomCharge, error)
}

// Store holds the mutable cart state. All mutations are synchronous calls
// from a single event-driven caller; there is no internal locking.
type Store struct {
	items      []models.CartItem
	discounts  []models.Discount
	promotions []models.Promotion
	charges    []models.CustomCharge

	observers []Observer
	snapshots SnapshotStore // may be nil
}

// NewStore builds an empty store. snapshots may be nil when no local cache is
// wanted (tests mostly run without one).
func NewStore(snapshots SnapshotStore) *Store {
	return &Store{snapshots: snapshots}
}

// Subscribe registers an observer for cart events.
func (s *Store) Subscribe(fn Observer) {
	s.observers = append(s.observers, fn)
}

func (s *Store) notify(ev Event) {
	for _, fn := range s.observers {
		fn(ev)
	}
}

func (s *Store) persistItems() {
	if s.snapshots != nil {
		_ = s.snapshots.SaveItems(s.items)
	}
}

// Items returns a copy of the line items in ring-up order.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of line items.
func (s *Store) Len() int { return len(s.items) }

// AddItem appends the line as-is. Merge-vs-append decisions belong to
// AddOrMergeItem; restore paths use this directly.
func (s *Store) AddItem(item models.CartItem) {
	s.items = append(s.items, item)
	s.notify(EventChanged)
	s.persistItems()
}

// AddItems bulk-appends, used when restoring a saved ticket.
func (s *Store) AddItems(items []models.CartItem) {
	s.items = append(s.items, items...)
	s.notify(EventChanged)
	s.persistItems()
}

// UpdateItem replaces the line with the given ID wholesale. Returns false
// when no line carries the ID; the cart is untouched in that case.
func (s *Store) UpdateItem(lineID string, item models.CartItem) bool {
	idx := s.indexOf(lineID)
	if idx < 0 {
		return false
	}
	item.LineID = lineID
	s.items[idx] = item
	s.notify(EventChanged)
	s.persistItems()
	return true
}

// UpdateItemAt replaces the line at the index. Out-of-range indexes are an
// explicit no-op returning false, never a write past the slice.
func (s *Store) UpdateItemAt(index int, item models.CartItem) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.items[index] = item
	s.notify(EventChanged)
	s.persistItems()
	return true
}

// RemoveItem removes the line with the given ID. Returns false when absent.
func (s *Store) RemoveItem(lineID string) bool {
	idx := s.indexOf(lineID)
	if idx < 0 {
		return false
	}
	s.removeAt(idx)
	s.notify(EventChanged)
	s.persistItems()
	return true
}

// RemoveItemAt removes exactly one line by index. Returns false when out of
// range.
func (s *Store) RemoveItemAt(index int) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.removeAt(index)
	s.notify(EventChanged)
	s.persistItems()
	return true
}

// BulkRemoveItems removes the lines at the given indexes in one mutation.
// Indexes are removed in descending order; removing ascending would shift
// later indexes onto the wrong lines. Out-of-range and duplicate indexes are
// skipped. Returns how many lines were removed.
func (s *Store) BulkRemoveItems(indexes []int) int {
	sorted := make([]int, len(indexes))
	copy(sorted, indexes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	removed := 0
	last := -1
	for _, idx := range sorted {
		if idx == last {
			continue
		}
		last = idx
		if idx < 0 || idx >= len(s.items) {
			continue
		}
		s.removeAt(idx)
		removed++
	}
	if removed > 0 {
		s.notify(EventChanged)
		s.persistItems()
	}
	return removed
}

func (s *Store) removeAt(idx int) {
	s.items = append(s.items[:idx], s.items[idx+1:]...)
}

func (s *Store) indexOf(lineID string) int {
	for i := range s.items {
		if s.items[i].LineID == lineID {
			return i
		}
	}
	return -1
}

// Clear empties all four collections. Idempotent: clearing an empty cart is
// a no-op apart from the cleared event, so backing out of payment twice is
// safe. The distinct cleared event lets customer/ticket state reset too.
func (s *Store) Clear() {
	s.items = nil
	s.discounts = nil
	s.promotions = nil
	s.charges = nil
	s.notify(EventCleared)
	if s.snapshots != nil {
		_ = s.snapshots.SaveItems(nil)
		_ = s.snapshots.SaveDiscounts(nil)
		_ = s.snapshots.SavePromotions(nil)
		_ = s.snapshots.SaveCharges(nil)
	}
}

// Restore rehydrates the store from the snapshot cache, replacing current
// state. Missing keys load as empty collections.
func (s *Store) Restore() error {
	if s.snapshots == nil {
		return nil
	}
	items, err := s.snapshots.LoadItems()
	if err != nil {
		return err
	}
	discounts, err := s.snapshots.LoadDiscounts()
	if err != nil {
		return err
	}
	promotions, err := s.snapshots.LoadPromotions()
	if err != nil {
		return err
	}
	charges, err := s.snapshots.LoadCharges()
	if err != nil {
		return err
	}
	s.items = items
	s.discounts = discounts
	s.promotions = promotions
	s.charges = charges
	s.notify(EventChanged)
	return nil
}
