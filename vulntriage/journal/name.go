package journal

import (
	"fmt"
	"time"
)

const (
	DefaultBaseName = "vulnerability journal"

	dateLayout     = "02.01.2006"
	workdayStart   = 8
	workdayEnd     = 20
	secondRunLabel = " (2)"
)

// NameFor returns the journal name for a publication made at t. Publications during working hours carry the date of
// t. Evening publications carry the same date marked as a second run; publications after midnight and before the
// working day belong to the previous day's second run.
func NameFor(t time.Time, base string) string {
	if base == "" {
		base = DefaultBaseName
	}

	switch hour := t.Hour(); {
	case hour >= workdayStart && hour < workdayEnd:
		return fmt.Sprintf("%s %s", base, t.Format(dateLayout))
	case hour >= workdayEnd:
		return fmt.Sprintf("%s %s%s", base, t.Format(dateLayout), secondRunLabel)
	default:
		return fmt.Sprintf("%s %s%s", base, t.AddDate(0, 0, -1).Format(dateLayout), secondRunLabel)
	}
}
