package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddVat(t *testing.T) {
	assert.Equal(t, int64(1210), AddVat(1000))
	assert.Equal(t, int64(1), AddVat(1))
	assert.Equal(t, int64(0), AddVat(0))
	// 549 * 1.21 = 664.29 -> 664
	assert.Equal(t, int64(664), AddVat(549))
	// 790 * 1.21 = 955.9 -> 956
	assert.Equal(t, int64(956), AddVat(790))
}

func TestPackagePrice(t *testing.T) {
	// 549 CZK/m2 at 2.2 m2 per box = 1207.8 -> 1208
	assert.Equal(t, int64(1208), PackagePrice(549, 2.2))
	assert.Equal(t, int64(0), PackagePrice(549, 0))
}
