package format

import "strings"

// VehiclePrefix classifies a free-text vehicle description into the
// display prefix and category used by the report rosters, e.g.
// "Honda Beat" -> ("Spd. Motor ", "Motor"). Unrecognized descriptions
// fall back to the generic "Kend. " prefix.
func VehiclePrefix(jenisKendaraan string) (prefix, category string) {
	lower := strings.ToLower(jenisKendaraan)
	switch {
	case lower == "":
		return "Kend. ", "Lainnya"
	case containsAny(lower, "motor", "spd motor", "sepeda motor"):
		return "Spd. Motor ", "Motor"
	case containsAny(lower, "mobil penumpang", "minibus", "sedan", "suv", "mpv"):
		return "Mobil Penumpang ", "Mobil"
	case containsAny(lower, "mobil barang", "truk", "truck", "pick up", "pickup"):
		return "Mobil Barang ", "Truk"
	case strings.Contains(lower, "bus"):
		return "Bus ", "Bus"
	case strings.Contains(lower, "sepeda"):
		return "Sepeda ", "Sepeda"
	default:
		return "Kend. ", "Lainnya"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
