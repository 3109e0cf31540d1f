package fixtureforecast

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulmorrishill/HouseSolarPredictor-sub000/internal/timegrid"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	var solar, load, price strings.Builder
	for i := 0; i < timegrid.SegmentCount; i++ {
		if i > 0 {
			solar.WriteString(", ")
			load.WriteString(", ")
			price.WriteString(", ")
		}
		solar.WriteString("1.5")
		load.WriteString("0.5")
		price.WriteString("0.25")
	}
	contents := "solar_kwh: [" + solar.String() + "]\n" +
		"load_kwh: [" + load.String() + "]\n" +
		"price_gbp_per_kwh: [" + price.String() + "]\n"
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_ReadsAllThreeSeries(t *testing.T) {
	src, err := Load(writeFixture(t))
	require.NoError(t, err)

	seg, err := timegrid.AtIndex(0)
	require.NoError(t, err)

	solar, err := src.Solar(1, seg)
	require.NoError(t, err)
	assert.Equal(t, 1.5, solar.Float64())

	load, err := src.Load(1, seg)
	require.NoError(t, err)
	assert.Equal(t, 0.5, load.Float64())

	price, err := src.Price(time.Now(), seg)
	require.NoError(t, err)
	assert.Equal(t, 0.25, price.Float64())
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSet_WiresBatteryPort(t *testing.T) {
	src, err := Load(writeFixture(t))
	require.NoError(t, err)
	set := src.Set(nil)
	assert.Equal(t, src, set.Solar)
	assert.Equal(t, src, set.Load)
	assert.Equal(t, src, set.Price)
	assert.Nil(t, set.Battery)
}
