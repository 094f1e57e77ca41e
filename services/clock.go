package services

import (
	"fmt"
	"time"
)

// NormalizeClock "HH:MM" veya "HH:MM:SS" biçimindeki saat metnini doğrular ve
// veritabanında tutulan "HH:MM" biçimine indirger.
func NormalizeClock(s string) (string, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("geçersiz saat biçimi: %q", s)
}

// ParseDate "YYYY-MM-DD" biçimindeki tarih metnini çözer.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("geçersiz tarih biçimi: %q", s)
	}
	return t, nil
}
