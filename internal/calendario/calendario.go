// Package calendario implements the cyclic 1..1000 swine-calendar index used
// as an alternative date notation on the farm: day 1 is anchored at
// 2020-01-01 and the index wraps every 1000 days.
package calendario

import (
	"fmt"
	"time"
)

const Ciclo = 1000

var ancora = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Ancora returns the fixed reference date of day 1.
func Ancora() time.Time { return ancora }

// CivilParaSuino converts a civil date to its 1..1000 cyclic index.
func CivilParaSuino(data time.Time) int {
	d := time.Date(data.Year(), data.Month(), data.Day(), 0, 0, 0, 0, time.UTC)
	dias := int(d.Sub(ancora).Hours() / 24)
	resto := dias % Ciclo
	if resto < 0 {
		resto += Ciclo
	}
	return resto + 1
}

// SuinoParaCivil maps a swine-calendar day back to a civil date counted from
// 1 January of the reference year. The round trip through CivilParaSuino
// recovers the same index only while the resulting date stays within one
// 1000-day window of the anchor.
func SuinoParaCivil(diaSuino, anoReferencia int) (time.Time, error) {
	if diaSuino < 1 || diaSuino > Ciclo {
		return time.Time{}, fmt.Errorf("dia suíno %d fora do intervalo 1..%d", diaSuino, Ciclo)
	}
	inicio := time.Date(anoReferencia, time.January, 1, 0, 0, 0, 0, time.UTC)
	return inicio.AddDate(0, 0, diaSuino-1), nil
}
