package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/onefitted/fitted/pkg/models"
)

// Slot is a category position inside an outfit.
type Slot string

const (
	SlotOuterwear Slot = "outerwear"
	SlotTop       Slot = "top"
	SlotBottom    Slot = "bottom"
	SlotShoes     Slot = "shoes"
	SlotAccessory Slot = "accessory"

	// SlotDress is internal: a dress occupies both the top and bottom
	// slots of a candidate, so it is tracked as its own category.
	SlotDress Slot = "dress"
)

var lowercase = cases.Lower(language.Und)

// slotByType is the fixed mapping from raw clothing-type tags to slots.
// Unknown types fall back to SlotAccessory so one odd record never aborts
// a whole snapshot.
var slotByType = map[string]Slot{
	"shirt":      SlotTop,
	"t-shirt":    SlotTop,
	"tshirt":     SlotTop,
	"blouse":     SlotTop,
	"sweater":    SlotTop,
	"tank_top":   SlotTop,
	"polo":       SlotTop,
	"top":        SlotTop,
	"activewear": SlotTop,

	"pants":    SlotBottom,
	"jeans":    SlotBottom,
	"shorts":   SlotBottom,
	"skirt":    SlotBottom,
	"leggings": SlotBottom,
	"bottom":   SlotBottom,

	"shoes":    SlotShoes,
	"sneakers": SlotShoes,
	"boots":    SlotShoes,
	"sandals":  SlotShoes,
	"heels":    SlotShoes,
	"loafers":  SlotShoes,

	"jacket":    SlotOuterwear,
	"coat":      SlotOuterwear,
	"blazer":    SlotOuterwear,
	"cardigan":  SlotOuterwear,
	"hoodie":    SlotOuterwear,
	"outerwear": SlotOuterwear,

	"dress": SlotDress,

	"accessories": SlotAccessory,
	"accessory":   SlotAccessory,
	"scarf":       SlotAccessory,
	"bag":         SlotAccessory,
	"belt":        SlotAccessory,
	"hat":         SlotAccessory,
	"jewelry":     SlotAccessory,
}

// SlotFor maps an item's raw type tag to its outfit slot.
func SlotFor(item models.ClothingItem) Slot {
	key := strings.TrimSpace(lowercase.String(item.Type))
	if slot, ok := slotByType[key]; ok {
		return slot
	}
	return SlotAccessory
}

// NormalizeColor lowercases and trims a free-text color name.
func NormalizeColor(color string) string {
	return strings.TrimSpace(lowercase.String(color))
}
