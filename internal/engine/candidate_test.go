package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onefitted/fitted/pkg/models"
)

func TestSlotFor(t *testing.T) {
	tests := []struct {
		rawType  string
		expected Slot
	}{
		{"shirt", SlotTop},
		{"T-Shirt", SlotTop},
		{"jeans", SlotBottom},
		{"sneakers", SlotShoes},
		{"jacket", SlotOuterwear},
		{"dress", SlotDress},
		{"scarf", SlotAccessory},
		{"quantum-vest", SlotAccessory}, // unknown types degrade, never reject
	}

	for _, tt := range tests {
		t.Run(tt.rawType, func(t *testing.T) {
			item := models.ClothingItem{Type: tt.rawType}
			assert.Equal(t, tt.expected, SlotFor(item))
		})
	}
}

func TestIndexWardrobe_CapsAndOrdersSlots(t *testing.T) {
	worn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	wardrobe := []models.ClothingItem{
		{ID: "t1", Type: "shirt", UsageCount: 8},
		{ID: "t2", Type: "shirt", UsageCount: 1, LastWorn: &worn},
		{ID: "t3", Type: "shirt", UsageCount: 1}, // never worn, sorts before t2
		{ID: "t4", Type: "shirt", UsageCount: 5},
	}

	idx := indexWardrobe(wardrobe, 3)

	tops := idx.bySlot[SlotTop]
	require.Len(t, tops, 3, "per-slot cap must apply")
	assert.Equal(t, "t3", tops[0].ID)
	assert.Equal(t, "t2", tops[1].ID)
	assert.Equal(t, "t4", tops[2].ID)
}

func TestGenerateCandidates_RequiresTopAndBottom(t *testing.T) {
	wardrobe := []models.ClothingItem{
		{ID: "t1", Type: "shirt"},
		{ID: "s1", Type: "sneakers"},
		{ID: "x1", Type: "scarf"},
	}

	idx := indexWardrobe(wardrobe, 3)
	candidates := generateCandidates(idx, 50)

	assert.Empty(t, candidates, "no bottom slot means no complete candidate")
}

func TestGenerateCandidates_BoundedByCap(t *testing.T) {
	var wardrobe []models.ClothingItem
	for _, group := range []struct {
		prefix  string
		rawType string
	}{
		{"t", "shirt"}, {"b", "jeans"}, {"s", "sneakers"}, {"o", "jacket"}, {"x", "belt"},
	} {
		for i := 0; i < 5; i++ {
			wardrobe = append(wardrobe, models.ClothingItem{
				ID:   group.prefix + string(rune('0'+i)),
				Type: group.rawType,
			})
		}
	}

	idx := indexWardrobe(wardrobe, 5)
	candidates := generateCandidates(idx, 10)

	assert.Len(t, candidates, 10)
	for _, c := range candidates {
		assert.True(t, c.Complete())
	}
}

func TestGenerateCandidates_DressFillsBothSlots(t *testing.T) {
	wardrobe := []models.ClothingItem{
		{ID: "d1", Type: "dress", Color: "red"},
		{ID: "s1", Type: "heels", Color: "black"},
	}

	idx := indexWardrobe(wardrobe, 3)
	candidates := generateCandidates(idx, 50)

	require.NotEmpty(t, candidates)
	assert.Equal(t, "d1", candidates[0].Dress.ID)
	assert.True(t, candidates[0].Complete())
}

func TestOutfit_ItemIDs_StableOrder(t *testing.T) {
	outfit := &Outfit{
		Top:    &models.ClothingItem{ID: "t"},
		Bottom: &models.ClothingItem{ID: "b"},
		Shoes:  &models.ClothingItem{ID: "s"},
	}

	assert.Equal(t, []string{"t", "b", "s"}, outfit.ItemIDs())
}
