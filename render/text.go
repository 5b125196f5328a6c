// Package render turns an accident report into its outgoing document
// forms: the plain-text message, the printable PDF and the HTML used
// for printing and email.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/satlantas/laka-report-api/format"
	"github.com/satlantas/laka-report-api/models"
)

// Signature block shared by every rendered form.
const (
	SignatoryTitle = "Kasat Lantas Polres Tasikmalaya"
	SignatoryName  = "AKP H. AJAT SUDRAJAT"
)

var tembusan = []string{
	"Wadir Lantas Polda Jabar.",
	"Kabag Binopsnal Ditlantas Polda Jabar.",
	"Kasubdit Gakkum Ditlantas Polda Jabar.",
}

var leadingNumbering = regexp.MustCompile(`^\d+\.\s*`)

// Text renders the short report message. Missing fields render as
// "(Belum diisi)" style placeholders rather than failing, so the text
// can be generated at any stage of data entry. The footer date uses
// now in WIB.
func Text(r *models.AccidentReport, now time.Time) string {
	var b strings.Builder

	b.WriteString("Assalamu'alaikum wr. wb.\n\n")
	fmt.Fprintf(&b, "Kepada :\n%s\n\n", r.Kepada)
	fmt.Fprintf(&b, "Dari :\n%s\n\n", r.Dari)
	fmt.Fprintf(&b, "Perihal :\n%s\n\n", r.Perihal)

	b.WriteString("Waktu Kejadian:\n")
	waktuFormatted := "(Belum diisi)"
	if r.WaktuKejadian != "" {
		if t, err := format.ParseWaktu(r.WaktuKejadian); err == nil {
			waktuFormatted = format.LongDateTime(t)
		} else {
			waktuFormatted = r.WaktuKejadian
		}
	}
	fmt.Fprintf(&b, "%s\n\n", waktuFormatted)

	fmt.Fprintf(&b, "TKP :\n%s\n\n", orPlaceholder(r.AlamatTkp, "(Belum diisi)"))

	b.WriteString("Kendaraan Yang Terlibat:\n")
	vehicles, pedestrians := splitEntities(r)
	for _, v := range vehicles {
		prefix, _ := format.VehiclePrefix(v.JenisKendaraan)
		fmt.Fprintf(&b, "- Kendaraan %s%s TNKB %s.\n", prefix, v.JenisKendaraan, orPlaceholder(v.NomorPolisi, "(NoPol?)"))
	}
	if len(pedestrians) > 0 {
		b.WriteString("- Pejalan Kaki.\n")
	}
	if len(vehicles) == 0 && len(pedestrians) == 0 {
		b.WriteString("(Tidak ada data kendaraan atau pejalan kaki yang terlibat)\n")
	}
	b.WriteString("\n")

	b.WriteString("Akibat Kecelakaan:\n")
	narasi := strings.TrimSpace(r.NarasiAkibatKecelakaan)
	fmt.Fprintf(&b, "%s\n", orPlaceholder(narasi, "(Mohon lengkapi atau sesuaikan narasi akibat kecelakaan ini)."))
	fmt.Fprintf(&b, "Kerugian Materiil : %s\n", orPlaceholder(r.KerugianMateriilTerbilang, models.DefaultTerbilang))
	fmt.Fprintf(&b, "Korban Meninggal Dunia (MD) : %d Orang\n", r.KorbanMeninggalDunia)
	fmt.Fprintf(&b, "Korban Luka Berat (LB) : %d Orang\n", r.KorbanLukaBerat)
	fmt.Fprintf(&b, "Korban Luka Ringan (LR) : %d Orang\n\n", r.KorbanLukaRingan)

	b.WriteString("I. Pra Kejadian\n")
	fmt.Fprintf(&b, "a. Manusia\n%s\n\n", orPlaceholder(r.UraianPraKejadianManusia, "(Belum diisi)"))
	fmt.Fprintf(&b, "b. Kendaraan\n%s\n\n", orPlaceholder(r.UraianPraKejadianKendaraan, "(Belum diisi)"))
	fmt.Fprintf(&b, "c. Jalan & Lingkungan\n%s\n\n",
		orPlaceholder(r.UraianPraKejadianJalanLingkungan, "(Belum diisi atau menunggu waktu kejadian diisi)"))

	b.WriteString("II. Kronologis Kejadian\n")
	fmt.Fprintf(&b, "%s\n\n", orPlaceholder(r.KronologiKejadianUtama, "(Belum diisi)"))

	b.WriteString("III. Pasca Kejadian (Data Pihak Terlibat)\n")
	if len(r.PihakTerlibat) == 0 {
		b.WriteString("(Tidak ada data pihak terlibat)\n")
	} else {
		for _, p := range r.PihakTerlibat {
			fmt.Fprintf(&b, "- %s : Sdr/i. %s, %s, %s, Alamat %s.\n",
				partyRoleDisplay(r, &p),
				orPlaceholder(p.NamaLengkap, "(Nama Belum Diisi)"),
				partyAge(p.TanggalLahir, now),
				orPlaceholder(p.Pekerjaan, "(Pekerjaan Belum Diisi)"),
				orPlaceholder(p.Alamat, "(Alamat Belum Diisi)"))
		}
	}
	b.WriteString("\n")

	b.WriteString("IV. Saksi – saksi :\n")
	if len(r.SaksiSaksi) == 0 {
		b.WriteString("(Tidak ada data saksi)\n")
	} else {
		for i, s := range r.SaksiSaksi {
			fmt.Fprintf(&b, "%d. Sdr/i. %s, %s, %s, Alamat %s.\n",
				i+1,
				orPlaceholder(s.NamaLengkap, "(Nama Belum Diisi)"),
				witnessAge(s, now),
				orPlaceholder(s.Pekerjaan, "(Pekerjaan Belum Diisi)"),
				orPlaceholder(s.Alamat, "(Alamat Belum Diisi)"))
		}
	}
	b.WriteString("\n")

	b.WriteString("V. Barang Bukti :\n")
	bb := EvidenceLines(r)
	if len(bb) == 0 {
		b.WriteString("(Tidak ada data barang bukti)\n")
	} else {
		b.WriteString(strings.Join(bb, "\n"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("VI. Tindakan yang dilakukan:\n")
	if r.TindakanDilakukanText == "" {
		b.WriteString("(Belum diisi)\n\n")
	} else {
		fmt.Fprintf(&b, "%s\n\n", strings.Join(ActionLines(r.TindakanDilakukanText), "\n"))
	}

	fmt.Fprintf(&b, "Nomor LP: %s, Tanggal %s\n",
		orPlaceholder(r.NomorLaporanPolisi, "(Belum diisi)"), format.LongDate(now.In(format.Jakarta)))
	b.WriteString("Demikian dilaporkan.\n\n")
	fmt.Fprintf(&b, "Hormat kami,\n%s\n\n", SignatoryTitle)
	fmt.Fprintf(&b, "%s\n\n", SignatoryName)
	b.WriteString("Tembusan:\n")
	for i, tb := range tembusan {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tb)
	}

	return b.String()
}

// EvidenceLines builds the evidence list: one line per involved
// vehicle followed by the free-text items, each normalized to a "- "
// bullet.
func EvidenceLines(r *models.AccidentReport) []string {
	var lines []string
	vehicles, _ := splitEntities(r)
	for _, v := range vehicles {
		prefix, _ := format.VehiclePrefix(v.JenisKendaraan)
		line := fmt.Sprintf("- 1 Unit Kendaraan %s%s", prefix, v.JenisKendaraan)
		if v.NomorPolisi != "" {
			line += " TNKB " + v.NomorPolisi
		}
		lines = append(lines, line+".")
	}
	for _, raw := range strings.Split(r.BarangBuktiText, "\n") {
		item := strings.TrimSpace(raw)
		if item == "" {
			continue
		}
		if !strings.HasPrefix(item, "- ") {
			item = "- " + item
		}
		lines = append(lines, item)
	}
	return lines
}

// ActionLines renumbers the free-text action list, stripping any
// numbering or bullets the user typed.
func ActionLines(text string) []string {
	var lines []string
	for i, raw := range strings.Split(text, "\n") {
		s := leadingNumbering.ReplaceAllString(raw, "")
		s = strings.TrimPrefix(s, "- ")
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, s))
	}
	return lines
}

func splitEntities(r *models.AccidentReport) (vehicles, pedestrians []models.InvolvedEntity) {
	for _, e := range r.InvolvedEntities {
		switch e.Type {
		case models.EntityVehicle:
			vehicles = append(vehicles, e)
		case models.EntityPedestrian:
			pedestrians = append(pedestrians, e)
		}
	}
	return vehicles, pedestrians
}

// partyRoleDisplay maps the role label to its display form. Drivers
// show as "Pengendara" followed by their linked vehicle; a pedestrian
// role shows plain.
func partyRoleDisplay(r *models.AccidentReport, p *models.InvolvedParty) string {
	role := orPlaceholder(p.Peran, "(Peran?)")
	if role == "Pengemudi" {
		role = "Pengendara"
	}
	if e := r.FindEntity(p.InvolvedEntityID); e != nil && e.Type == models.EntityVehicle {
		prefix, _ := format.VehiclePrefix(e.JenisKendaraan)
		return fmt.Sprintf("%s Kend. %s%s TNKB %s", role, prefix, e.JenisKendaraan, orPlaceholder(e.NomorPolisi, "(NoPol?)"))
	}
	if p.Peran == models.EntityPedestrian {
		return models.EntityPedestrian
	}
	return role
}

func partyAge(tanggalLahir string, now time.Time) string {
	if tanggalLahir == "" {
		return format.AgeUnknown
	}
	return format.Age(tanggalLahir, now)
}

func witnessAge(s models.Witness, now time.Time) string {
	if s.TanggalLahir != "" {
		return format.Age(s.TanggalLahir, now)
	}
	return orPlaceholder(s.UmurString, format.AgeUnknown)
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
