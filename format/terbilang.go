// Package format holds the pure Indonesian-language formatting helpers
// shared by the derive engine and the report renderers.
package format

import (
	"fmt"
	"strings"
)

var satuan = []string{"", "satu", "dua", "tiga", "empat", "lima", "enam", "tujuh", "delapan", "sembilan", "sepuluh", "sebelas"}

// terbilang renders a non-negative integer as Indonesian words, using
// the irregular short forms sebelas, seratus and seribu.
func terbilang(n int64) string {
	switch {
	case n < 12:
		return satuan[n]
	case n < 20:
		return satuan[n-10] + " belas"
	case n < 100:
		s := satuan[n/10] + " puluh"
		if n%10 > 0 {
			s += " " + satuan[n%10]
		}
		return s
	case n < 200:
		return joinScale("seratus", n%100)
	case n < 1000:
		return joinScale(satuan[n/100]+" ratus", n%100)
	case n < 2000:
		return joinScale("seribu", n%1000)
	case n < 1_000_000:
		return joinScale(terbilang(n/1000)+" ribu", n%1000)
	case n < 1_000_000_000:
		return joinScale(terbilang(n/1_000_000)+" juta", n%1_000_000)
	case n < 1_000_000_000_000:
		return joinScale(terbilang(n/1_000_000_000)+" miliar", n%1_000_000_000)
	default:
		return joinScale(terbilang(n/1_000_000_000_000)+" triliun", n%1_000_000_000_000)
	}
}

func joinScale(head string, rest int64) string {
	if rest > 0 {
		return head + " " + terbilang(rest)
	}
	return head
}

// TerbilangRupiah renders a currency amount as
// "Rp. 1.500.000,- (Satu juta lima ratus ribu Rupiah)". Negative input
// is treated as its absolute value with no sign word; callers guarantee
// a non-negative domain.
func TerbilangRupiah(amount int64) string {
	if amount < 0 {
		amount = -amount
	}
	if amount == 0 {
		return "Rp. 0,- (Nol Rupiah)"
	}
	words := terbilang(amount)
	words = strings.ToUpper(words[:1]) + words[1:]
	return fmt.Sprintf("Rp. %s,- (%s Rupiah)", GroupDigits(amount), words)
}

// GroupDigits formats a non-negative integer with Indonesian thousands
// separators, e.g. 1500000 -> "1.500.000".
func GroupDigits(n int64) string {
	if n < 0 {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
