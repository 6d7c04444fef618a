package calendario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCivilParaSuinoAncora(t *testing.T) {
	assert.Equal(t, 1, CivilParaSuino(Ancora()))
	assert.Equal(t, 2, CivilParaSuino(Ancora().AddDate(0, 0, 1)))
	assert.Equal(t, 1000, CivilParaSuino(Ancora().AddDate(0, 0, 999)))
	// wraps after 1000 days
	assert.Equal(t, 1, CivilParaSuino(Ancora().AddDate(0, 0, 1000)))
}

func TestCivilParaSuinoAntesDaAncora(t *testing.T) {
	// one day before the anchor lands on the end of the previous cycle
	assert.Equal(t, 1000, CivilParaSuino(Ancora().AddDate(0, 0, -1)))
}

func TestSuinoParaCivilLimites(t *testing.T) {
	_, err := SuinoParaCivil(0, 2020)
	assert.Error(t, err)
	_, err = SuinoParaCivil(1001, 2020)
	assert.Error(t, err)

	d, err := SuinoParaCivil(1, 2020)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), d)
}

func TestIdaEVolta(t *testing.T) {
	// Within the anchor cycle (reference year 2020, days counted from the
	// anchor itself) the round trip recovers the index for every day.
	for dia := 1; dia <= 1000; dia += 7 {
		civil, err := SuinoParaCivil(dia, 2020)
		require.NoError(t, err)
		assert.Equal(t, dia, CivilParaSuino(civil), "dia %d", dia)
	}
}

func TestIdaEVoltaForaDaJanela(t *testing.T) {
	// Reference year 2023 starts 1096 days after the anchor — outside the
	// first 1000-day window — so the recovered index is shifted, not equal.
	civil, err := SuinoParaCivil(1, 2023)
	require.NoError(t, err)
	assert.NotEqual(t, 1, CivilParaSuino(civil))
}
