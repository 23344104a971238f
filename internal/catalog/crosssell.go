package catalog

import "github.com/vinyloveschody/storefront-api/internal/models"

// sectionLabels maps a document kind to the section heading the
// storefront renders above its cross-sell strip.
var sectionLabels = map[models.DocKind]string{
	models.DocFloor:             "floors",
	models.DocStair:             "stairs",
	models.DocSkirting:          "skirtings",
	models.DocTransitionProfile: "transitions",
	models.DocWallTermination:   "wall-terminations",
	models.DocAccessory:         "accessories",
}

// crossSellOrder fixes the section ordering per current-product kind.
// A floor page leads with matching skirtings, a skirting page leads with
// the matching floor, and so on.
var crossSellOrder = map[models.DocKind][]models.DocKind{
	models.DocFloor: {
		models.DocSkirting, models.DocTransitionProfile,
		models.DocWallTermination, models.DocStair, models.DocAccessory,
	},
	models.DocStair: {
		models.DocFloor, models.DocSkirting,
		models.DocWallTermination, models.DocTransitionProfile, models.DocAccessory,
	},
	models.DocSkirting: {
		models.DocFloor, models.DocStair,
		models.DocTransitionProfile, models.DocWallTermination, models.DocAccessory,
	},
	models.DocTransitionProfile: {
		models.DocFloor, models.DocStair,
		models.DocSkirting, models.DocWallTermination, models.DocAccessory,
	},
	models.DocWallTermination: {
		models.DocFloor, models.DocStair,
		models.DocSkirting, models.DocTransitionProfile, models.DocAccessory,
	},
	models.DocAccessory: {
		models.DocFloor, models.DocStair,
		models.DocSkirting, models.DocTransitionProfile, models.DocWallTermination,
	},
}

// PartitionCrossSell splits decor siblings into labeled sections, ordered
// by the lookup table for the current product's kind. Kinds with no
// siblings produce no section.
func PartitionCrossSell(current models.DocKind, siblings []models.Product) []models.CrossSellSection {
	byKind := make(map[models.DocKind][]models.Product)
	for _, p := range siblings {
		byKind[p.Kind] = append(byKind[p.Kind], p)
	}

	order, ok := crossSellOrder[current]
	if !ok {
		order = crossSellOrder[models.DocFloor]
	}

	var sections []models.CrossSellSection
	for _, kind := range order {
		products := byKind[kind]
		if len(products) == 0 {
			continue
		}
		sections = append(sections, models.CrossSellSection{
			Label:    sectionLabels[kind],
			Kind:     kind,
			Products: products,
		})
	}
	return sections
}
