package build

import (
	"growhub/pkg/models"
)

// Aggregator is the in-memory working state of one build in progress:
// category -> ordered list of selected components with quantities.
// It is owned by a single Session, whose lock serializes all access;
// the aggregator itself is not safe for concurrent use.
type Aggregator struct {
	selected map[string][]models.BuildComponentWithQuantity
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		selected: make(map[string][]models.BuildComponentWithQuantity),
	}
}

// Add appends the component to its category with quantity 1. Adding an
// id already present in that category is a no-op; the id-uniqueness
// invariant lives here, not in the UI.
func (a *Aggregator) Add(comp models.BuildComponent) bool {
	for _, it := range a.selected[comp.Category] {
		if it.ID == comp.ID {
			return false
		}
	}
	a.selected[comp.Category] = append(a.selected[comp.Category], models.BuildComponentWithQuantity{
		BuildComponent: comp,
		Quantity:       1,
	})
	return true
}

// Remove filters the id out of the category's list.
func (a *Aggregator) Remove(id, category string) bool {
	items, ok := a.selected[category]
	if !ok {
		return false
	}

	out := items[:0]
	removed := false
	for _, it := range items {
		if it.ID == id {
			removed = true
			continue
		}
		out = append(out, it)
	}

	if len(out) == 0 {
		delete(a.selected, category)
	} else {
		a.selected[category] = out
	}
	return removed
}

// SetQuantity updates a selected component's quantity in place.
// A quantity <= 0 removes the entry, same as Remove.
func (a *Aggregator) SetQuantity(id, category string, quantity int) bool {
	if quantity <= 0 {
		return a.Remove(id, category)
	}

	items, ok := a.selected[category]
	if !ok {
		return false
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// TotalCost sums price * quantity over the whole selection.
func (a *Aggregator) TotalCost() float64 {
	var total float64
	for _, items := range a.selected {
		for _, it := range items {
			total += it.Price * float64(it.Quantity)
		}
	}
	return total
}

// TotalPower sums watts * quantity over the whole selection.
func (a *Aggregator) TotalPower() int {
	var total int
	for _, items := range a.selected {
		for _, it := range items {
			total += it.PowerConsumption * it.Quantity
		}
	}
	return total
}

// Len is the number of selected entries across all categories.
func (a *Aggregator) Len() int {
	n := 0
	for _, items := range a.selected {
		n += len(items)
	}
	return n
}

// Items returns a copy of the selection keyed by category.
func (a *Aggregator) Items() map[string][]models.BuildComponentWithQuantity {
	out := make(map[string][]models.BuildComponentWithQuantity, len(a.selected))
	for cat, items := range a.selected {
		out[cat] = append([]models.BuildComponentWithQuantity(nil), items...)
	}
	return out
}

func (a *Aggregator) Clear() {
	a.selected = make(map[string][]models.BuildComponentWithQuantity)
}
