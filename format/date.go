package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WaktuLayout is the HTML datetime-local layout used for incident times.
const WaktuLayout = "2006-01-02T15:04"

var dayNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Jakarta is the reporting timezone. Incident times are entered as
// local WIB wall-clock values.
var Jakarta = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}()

// ParseWaktu parses an incident time string into Jakarta local time.
func ParseWaktu(s string) (time.Time, error) {
	t, err := time.ParseInLocation(WaktuLayout, strings.TrimSpace(s), Jakarta)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid waktu kejadian %q: %w", s, err)
	}
	return t, nil
}

// LongDateTime renders an incident time the way the narrative sections
// spell it: "Pada Hari Jumat Tanggal 15 Maret 2024 sekitar pukul 08.30 WIB".
func LongDateTime(t time.Time) string {
	t = t.In(Jakarta)
	return fmt.Sprintf("Pada Hari %s Tanggal %02d %s %d sekitar pukul %02d.%02d WIB",
		dayNames[t.Weekday()], t.Day(), monthNames[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// LongDate renders a plain long date, e.g. "15 Maret 2024".
func LongDate(t time.Time) string {
	t = t.In(Jakarta)
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// Age fallback strings, kept byte-identical so rendered reports stay
// stable across re-exports.
const (
	AgeUnknown     = "(Usia Tdk Diketahui)"
	AgeBadFormat   = "(Format Tgl Lahir Salah)"
	AgeInvalidDate = "(Tgl Lahir Invalid)"
	AgeNegative    = "(Usia Invalid)"
)

// Age derives an age string such as "34 Th" from a DD-MM-YYYY birth
// date. Malformed input degrades to a placeholder, never an error.
func Age(birthDate string, now time.Time) string {
	if birthDate == "" {
		return AgeUnknown
	}
	parts := strings.Split(birthDate, "-")
	if len(parts) != 3 {
		return AgeBadFormat
	}
	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil || year < 1900 || year > now.Year()+1 {
		return AgeInvalidDate
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return AgeInvalidDate
	}
	age := now.Year() - year
	if int(now.Month())-month < 0 || (int(now.Month()) == month && now.Day() < day) {
		age--
	}
	if age < 0 {
		return AgeNegative
	}
	return fmt.Sprintf("%d Th", age)
}
