// Package derive keeps the generated fields of an accident report
// consistent with their sources. Every rule is independent and
// idempotent: re-running Apply on an unchanged report is a no-op, so
// callers can run it after every mutation without coordination.
package derive

import (
	"fmt"
	"strings"
	"time"

	"github.com/satlantas/laka-report-api/format"
	"github.com/satlantas/laka-report-api/models"
)

// Change names a derived field rewritten by Apply.
type Change string

// Fields the engine may rewrite.
const (
	ChangeTerbilang       Change = "kerugianMateriilTerbilang"
	ChangeKorbanCounters  Change = "korbanCounters"
	ChangeNomorLP         Change = "nomorLaporanPolisi"
	ChangeJalanLingkungan Change = "uraianPraKejadianJalanLingkungan"
	ChangeKronologi       Change = "kronologiKejadianUtama"
)

// Fallback written to the road/environment narrative when the incident
// time cannot be parsed.
const invalidWaktuText = "Format waktu kejadian tidak valid."

const jalanBaseDescription = "keadaan jalan lurus, arus lalu-lintas sedang dan di sekitar TKP terdapat Pemukiman Penduduk."

// NewReport returns a report populated with the creation defaults,
// including a fresh LP number with a blank serial segment for the
// current month and year.
func NewReport(id string, now time.Time) models.AccidentReport {
	now = now.In(format.Jakarta)
	return models.AccidentReport{
		ID:                         id,
		LastModified:               now.UnixMilli(),
		Kepada:                     models.DefaultKepada,
		Dari:                       models.DefaultDari,
		Perihal:                    models.DefaultPerihal,
		NarasiAkibatKecelakaan:     models.DefaultNarasiAkibat,
		KerugianMateriilTerbilang:  models.DefaultTerbilang,
		UraianPraKejadianKendaraan: models.DefaultUraianKendaraan,
		JalanLingkunganMode:        models.FieldModeAuto,
		TindakanDilakukanText:      models.DefaultTindakanDilakukan,
		InvolvedEntities:           []models.InvolvedEntity{},
		PihakTerlibat:              []models.InvolvedParty{},
		SaksiSaksi:                 []models.Witness{},
		NomorLaporanPolisi: fmt.Sprintf("LP/B/    /%s/%d/%s",
			format.RomanMonth(int(now.Month())), now.Year(), models.LaporanPolisiSuffix),
	}
}

// Apply runs all derivation rules against the report in place and
// returns the set of fields it changed. It never returns an error:
// unparsable dates degrade to the documented fallback behavior of the
// rule they belong to.
func Apply(r *models.AccidentReport) []Change {
	var changes []Change
	if applyTerbilang(r) {
		changes = append(changes, ChangeTerbilang)
	}
	if applyKorbanCounters(r) {
		changes = append(changes, ChangeKorbanCounters)
	}
	if applyNomorLP(r) {
		changes = append(changes, ChangeNomorLP)
	}
	if applyJalanLingkungan(r) {
		changes = append(changes, ChangeJalanLingkungan)
	}
	if applyKronologi(r) {
		changes = append(changes, ChangeKronologi)
	}
	return changes
}

func applyTerbilang(r *models.AccidentReport) bool {
	want := format.TerbilangRupiah(r.KerugianMateriilAngka)
	if want == r.KerugianMateriilTerbilang {
		return false
	}
	r.KerugianMateriilTerbilang = want
	return true
}

func applyKorbanCounters(r *models.AccidentReport) bool {
	var md, lb, lr int
	for _, p := range r.PihakTerlibat {
		switch p.TingkatLuka {
		case models.InjuryFatal:
			md++
		case models.InjurySevere:
			lb++
		case models.InjuryMinor:
			lr++
		}
	}
	if md == r.KorbanMeninggalDunia && lb == r.KorbanLukaBerat && lr == r.KorbanLukaRingan {
		return false
	}
	r.KorbanMeninggalDunia = md
	r.KorbanLukaBerat = lb
	r.KorbanLukaRingan = lr
	return true
}

// applyNomorLP rewrites the month and year segments of the LP number to
// track the incident time. The free serial digits segment is preserved
// byte for byte; an empty or unparsable incident time leaves the whole
// number untouched.
func applyNomorLP(r *models.AccidentReport) bool {
	if r.WaktuKejadian == "" {
		return false
	}
	t, err := format.ParseWaktu(r.WaktuKejadian)
	if err != nil {
		return false
	}
	parts := strings.Split(r.NomorLaporanPolisi, "/")
	if len(parts) < 5 {
		return false
	}
	roman := format.RomanMonth(int(t.Month()))
	year := fmt.Sprintf("%d", t.Year())
	if parts[3] == roman && parts[4] == year {
		return false
	}
	serial := strings.TrimSpace(parts[2])
	if serial == "" {
		serial = "   "
	}
	rebuilt := fmt.Sprintf("LP/B/%s/%s/%s/%s", serial, roman, year, strings.Join(parts[5:], "/"))
	if rebuilt == r.NomorLaporanPolisi {
		return false
	}
	r.NomorLaporanPolisi = rebuilt
	return true
}

func applyJalanLingkungan(r *models.AccidentReport) bool {
	if r.JalanLingkunganMode != models.FieldModeAuto {
		return false
	}
	want := ""
	if r.WaktuKejadian != "" {
		t, err := format.ParseWaktu(r.WaktuKejadian)
		if err != nil {
			want = invalidWaktuText
		} else {
			cuaca, waktuHari := "gelap", "malam hari"
			switch hour := t.Hour(); {
			case hour >= 6 && hour < 11:
				cuaca, waktuHari = "terang", "pagi hari"
			case hour >= 11 && hour < 15:
				cuaca, waktuHari = "terang", "siang hari"
			case hour >= 15 && hour < 18:
				cuaca, waktuHari = "terang", "sore hari"
			}
			want = fmt.Sprintf("Cuaca %s, %s, %s", cuaca, waktuHari, jalanBaseDescription)
		}
	}
	if want == r.UraianPraKejadianJalanLingkungan {
		return false
	}
	r.UraianPraKejadianJalanLingkungan = want
	return true
}

// applyKronologi assembles the main chronology from the incident time,
// the location, the pre-incident human narrative and the consequence
// narrative. When none of the sources carry meaningful content the
// chronology resets to empty.
func applyKronologi(r *models.AccidentReport) bool {
	var waktuFormatted string
	if r.WaktuKejadian != "" {
		if t, err := format.ParseWaktu(r.WaktuKejadian); err == nil {
			waktuFormatted = format.LongDateTime(t)
		} else {
			waktuFormatted = "Pada waktu " + r.WaktuKejadian
		}
	}

	var part1 string
	if waktuFormatted != "" || r.AlamatTkp != "" {
		lokasi := "(lokasi TKP belum diisi)"
		if r.AlamatTkp != "" {
			lokasi = "di " + r.AlamatTkp
		}
		lead := waktuFormatted
		if lead == "" {
			lead = "Pada waktu yang tidak ditentukan"
		}
		part1 = fmt.Sprintf("%s, %s,", lead, lokasi)
	}

	var part2 string
	if r.UraianPraKejadianManusia != "" {
		part2 = r.UraianPraKejadianManusia + "."
	} else if part1 != "" {
		part2 = "(uraian manusia belum diisi)."
	}

	part3 := strings.TrimSpace(r.NarasiAkibatKecelakaan)

	meaningful := r.WaktuKejadian != "" || r.AlamatTkp != "" || r.UraianPraKejadianManusia != "" ||
		(r.NarasiAkibatKecelakaan != "" && r.NarasiAkibatKecelakaan != models.DefaultNarasiAkibat)

	want := ""
	if meaningful {
		var parts []string
		for _, p := range []string{part1, part2, part3} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		want = strings.TrimSpace(strings.Join(parts, " "))
	}
	if want == r.KronologiKejadianUtama {
		return false
	}
	r.KronologiKejadianUtama = want
	return true
}
