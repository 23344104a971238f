package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinyloveschody/storefront-api/internal/models"
)

func product(kind models.DocKind, slug string) models.Product {
	return models.Product{Kind: kind, Slug: slug, Title: slug}
}

func TestPartitionCrossSellForFloor(t *testing.T) {
	siblings := []models.Product{
		product(models.DocAccessory, "lepidlo-na-vinyl"),
		product(models.DocSkirting, "soklova-lista-dub"),
		product(models.DocTransitionProfile, "prechodova-lista-dub"),
		product(models.DocSkirting, "soklova-lista-dub-vysoka"),
	}

	sections := PartitionCrossSell(models.DocFloor, siblings)

	require.Len(t, sections, 3)
	assert.Equal(t, "skirtings", sections[0].Label)
	assert.Len(t, sections[0].Products, 2)
	assert.Equal(t, "transitions", sections[1].Label)
	assert.Equal(t, "accessories", sections[2].Label)
}

func TestPartitionCrossSellOrderDependsOnCurrentKind(t *testing.T) {
	siblings := []models.Product{
		product(models.DocFloor, "vinylova-podlaha-dub"),
		product(models.DocSkirting, "soklova-lista-dub"),
	}

	fromSkirting := PartitionCrossSell(models.DocSkirting, siblings)
	require.Len(t, fromSkirting, 2)

	// A skirting page leads with the matching floor.
	assert.Equal(t, "floors", fromSkirting[0].Label)

	fromFloor := PartitionCrossSell(models.DocFloor, siblings)
	assert.Equal(t, "skirtings", fromFloor[0].Label)
}

func TestPartitionCrossSellEmptySiblings(t *testing.T) {
	assert.Empty(t, PartitionCrossSell(models.DocFloor, nil))
}

func TestPartitionCrossSellUnknownKindFallsBack(t *testing.T) {
	siblings := []models.Product{product(models.DocSkirting, "soklova-lista-dub")}
	sections := PartitionCrossSell(models.DocKind("decorPattern"), siblings)
	require.Len(t, sections, 1)
	assert.Equal(t, "skirtings", sections[0].Label)
}
