package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinyloveschody/storefront-api/internal/models"
)

func TestDecodeParamsByKind(t *testing.T) {
	p := models.Product{Kind: models.DocFloor, Slug: "vinylova-podlaha-dub"}
	raw := []byte(`{"thicknessMm":5.5,"wearLayerMm":0.55,"plankLengthMm":1220,"plankWidthMm":180,"packCoverageM2":2.2}`)

	require.NoError(t, decodeParams(&p, raw))

	require.NotNil(t, p.Floor)
	assert.Nil(t, p.Skirting)
	assert.Equal(t, 5.5, p.Floor.ThicknessMM)
	assert.Equal(t, 2.2, p.Floor.PackCoverageM2)
}

func TestDecodeParamsEmptyPayload(t *testing.T) {
	p := models.Product{Kind: models.DocAccessory, Slug: "lepidlo-na-vinyl"}

	require.NoError(t, decodeParams(&p, nil))

	require.NotNil(t, p.Accessory)
	assert.Empty(t, p.Accessory.Usage)
}

func TestDecodeParamsUnknownKind(t *testing.T) {
	p := models.Product{Kind: models.DocKind("banner"), Slug: "homepage-banner"}
	assert.Error(t, decodeParams(&p, []byte(`{}`)))
}
