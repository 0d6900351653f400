package engine

import (
	"sort"
	"time"

	"github.com/onefitted/fitted/pkg/models"
)

// Outfit is a candidate combination: at most one item per slot, with a
// dress standing in for both the top and bottom slots.
type Outfit struct {
	Dress     *models.ClothingItem
	Outerwear *models.ClothingItem
	Top       *models.ClothingItem
	Bottom    *models.ClothingItem
	Shoes     *models.ClothingItem
	Accessory *models.ClothingItem
}

// Items returns the filled slots in a fixed order.
func (o *Outfit) Items() []*models.ClothingItem {
	var items []*models.ClothingItem
	for _, item := range []*models.ClothingItem{o.Dress, o.Outerwear, o.Top, o.Bottom, o.Shoes, o.Accessory} {
		if item != nil {
			items = append(items, item)
		}
	}
	return items
}

// ItemIDs returns the filled slots' item IDs in a fixed order.
func (o *Outfit) ItemIDs() []string {
	items := o.Items()
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// Complete reports whether the candidate fills the minimum slots: a top
// and a bottom, or a dress covering both.
func (o *Outfit) Complete() bool {
	return o.Dress != nil || (o.Top != nil && o.Bottom != nil)
}

// wardrobeIndex groups a snapshot's items by slot, each slot capped and in
// deterministic rotation-friendly order: least worn first, oldest wear
// breaking ties, item ID as the final tie-break.
type wardrobeIndex struct {
	bySlot map[Slot][]*models.ClothingItem
}

func indexWardrobe(items []models.ClothingItem, perSlotCap int) *wardrobeIndex {
	idx := &wardrobeIndex{bySlot: make(map[Slot][]*models.ClothingItem)}

	for i := range items {
		item := &items[i]
		slot := SlotFor(*item)
		idx.bySlot[slot] = append(idx.bySlot[slot], item)
	}

	for slot, slotItems := range idx.bySlot {
		sort.Slice(slotItems, func(i, j int) bool {
			a, b := slotItems[i], slotItems[j]
			if a.UsageCount != b.UsageCount {
				return a.UsageCount < b.UsageCount
			}
			if !equalWear(a.LastWorn, b.LastWorn) {
				return olderWear(a.LastWorn, b.LastWorn)
			}
			return a.ID < b.ID
		})
		if perSlotCap > 0 && len(slotItems) > perSlotCap {
			idx.bySlot[slot] = slotItems[:perSlotCap]
		}
	}

	return idx
}

// olderWear orders last-worn timestamps with nil (never worn) first.
func olderWear(a, b *time.Time) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}

func equalWear(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// generateCandidates enumerates complete outfit candidates from the
// indexed snapshot. Enumeration is deterministic and bounded by
// maxCandidates; breadth is favored over exhaustiveness, so optional
// slots (shoes, outerwear, accessory) are cycled per base pair instead of
// expanded into a full cross product.
func generateCandidates(idx *wardrobeIndex, maxCandidates int) []*Outfit {
	tops := idx.bySlot[SlotTop]
	bottoms := idx.bySlot[SlotBottom]
	dresses := idx.bySlot[SlotDress]
	shoes := idx.bySlot[SlotShoes]
	outerwear := idx.bySlot[SlotOuterwear]
	accessories := idx.bySlot[SlotAccessory]

	var candidates []*Outfit
	emit := func(o *Outfit) bool {
		if !o.Complete() {
			return true
		}
		candidates = append(candidates, o)
		return maxCandidates <= 0 || len(candidates) < maxCandidates
	}

	pair := 0
	for _, top := range tops {
		for _, bottom := range bottoms {
			base := Outfit{Top: top, Bottom: bottom}

			dressed := base
			if len(shoes) > 0 {
				dressed.Shoes = shoes[pair%len(shoes)]
			}
			if !emit(&dressed) {
				return candidates
			}

			if len(outerwear) > 0 {
				layered := dressed
				layered.Outerwear = outerwear[pair%len(outerwear)]
				if !emit(&layered) {
					return candidates
				}
			}

			if len(accessories) > 0 {
				accented := dressed
				accented.Accessory = accessories[pair%len(accessories)]
				if !emit(&accented) {
					return candidates
				}
			}

			if dressed.Shoes != nil {
				if !emit(&base) {
					return candidates
				}
			}
			pair++
		}
	}

	for i, dress := range dresses {
		outfit := Outfit{Dress: dress}
		if len(shoes) > 0 {
			outfit.Shoes = shoes[i%len(shoes)]
		}
		if !emit(&outfit) {
			return candidates
		}

		if len(outerwear) > 0 {
			layered := outfit
			layered.Outerwear = outerwear[i%len(outerwear)]
			if !emit(&layered) {
				return candidates
			}
		}
	}

	return candidates
}
