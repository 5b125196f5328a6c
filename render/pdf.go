package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/satlantas/laka-report-api/format"
	"github.com/satlantas/laka-report-api/models"
)

// PDF renders the report as an A4 letter document and returns the
// encoded bytes. The layout mirrors the plain-text form with a
// letterhead, numbered sections and the signature block.
func PDF(r *models.AccidentReport, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 6, "KEPOLISIAN NEGARA REPUBLIK INDONESIA", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "DAERAH JAWA BARAT", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "RESOR TASIKMALAYA", "", 1, "C", false, 0, "")
	pdf.SetLineWidth(0.5)
	pdf.Line(20, pdf.GetY()+2, 190, pdf.GetY()+2)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	labelValue := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(30, 5, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, ": "+value, "", "L", false)
	}
	labelValue("Kepada", r.Kepada)
	labelValue("Dari", r.Dari)
	labelValue("Perihal", r.Perihal)
	labelValue("Nomor LP", orPlaceholder(r.NomorLaporanPolisi, "(Belum diisi)"))
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.MultiCell(0, 5, title, "", "L", false)
		pdf.SetFont("Arial", "", 10)
	}
	body := func(text string) {
		pdf.MultiCell(0, 5, text, "", "L", false)
		pdf.Ln(2)
	}

	waktu := "(Belum diisi)"
	if r.WaktuKejadian != "" {
		if t, err := format.ParseWaktu(r.WaktuKejadian); err == nil {
			waktu = format.LongDateTime(t)
		} else {
			waktu = r.WaktuKejadian
		}
	}
	section("Waktu Kejadian")
	body(waktu)
	section("Tempat Kejadian Perkara")
	body(orPlaceholder(r.AlamatTkp, "(Belum diisi)"))

	section("Akibat Kecelakaan")
	akibat := []string{
		orPlaceholder(strings.TrimSpace(r.NarasiAkibatKecelakaan), "(Belum diisi)"),
		"Kerugian Materiil : " + orPlaceholder(r.KerugianMateriilTerbilang, models.DefaultTerbilang),
		fmt.Sprintf("Korban Meninggal Dunia (MD) : %d Orang", r.KorbanMeninggalDunia),
		fmt.Sprintf("Korban Luka Berat (LB) : %d Orang", r.KorbanLukaBerat),
		fmt.Sprintf("Korban Luka Ringan (LR) : %d Orang", r.KorbanLukaRingan),
	}
	body(strings.Join(akibat, "\n"))

	section("I. Pra Kejadian")
	body(fmt.Sprintf("a. Manusia\n%s\n\nb. Kendaraan\n%s\n\nc. Jalan & Lingkungan\n%s",
		orPlaceholder(r.UraianPraKejadianManusia, "(Belum diisi)"),
		orPlaceholder(r.UraianPraKejadianKendaraan, "(Belum diisi)"),
		orPlaceholder(r.UraianPraKejadianJalanLingkungan, "(Belum diisi)")))

	section("II. Kronologis Kejadian")
	body(orPlaceholder(r.KronologiKejadianUtama, "(Belum diisi)"))

	section("III. Pasca Kejadian (Data Pihak Terlibat)")
	if len(r.PihakTerlibat) == 0 {
		body("(Tidak ada data pihak terlibat)")
	} else {
		var lines []string
		for _, p := range r.PihakTerlibat {
			lines = append(lines, fmt.Sprintf("- %s : Sdr/i. %s, %s, %s, Alamat %s.",
				partyRoleDisplay(r, &p),
				orPlaceholder(p.NamaLengkap, "(Nama Belum Diisi)"),
				partyAge(p.TanggalLahir, now),
				orPlaceholder(p.Pekerjaan, "(Pekerjaan Belum Diisi)"),
				orPlaceholder(p.Alamat, "(Alamat Belum Diisi)")))
		}
		body(strings.Join(lines, "\n"))
	}

	section("IV. Saksi - saksi")
	if len(r.SaksiSaksi) == 0 {
		body("(Tidak ada data saksi)")
	} else {
		var lines []string
		for i, s := range r.SaksiSaksi {
			lines = append(lines, fmt.Sprintf("%d. Sdr/i. %s, %s, %s, Alamat %s.",
				i+1,
				orPlaceholder(s.NamaLengkap, "(Nama Belum Diisi)"),
				witnessAge(s, now),
				orPlaceholder(s.Pekerjaan, "(Pekerjaan Belum Diisi)"),
				orPlaceholder(s.Alamat, "(Alamat Belum Diisi)")))
		}
		body(strings.Join(lines, "\n"))
	}

	section("V. Barang Bukti")
	if bb := EvidenceLines(r); len(bb) == 0 {
		body("(Tidak ada data barang bukti)")
	} else {
		body(strings.Join(bb, "\n"))
	}

	section("VI. Tindakan yang dilakukan")
	if r.TindakanDilakukanText == "" {
		body("(Belum diisi)")
	} else {
		body(strings.Join(ActionLines(r.TindakanDilakukanText), "\n"))
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("Tasikmalaya, %s", format.LongDate(now.In(format.Jakarta))), "", "R", false)
	pdf.MultiCell(0, 5, "Hormat kami,\n"+SignatoryTitle, "", "R", false)
	pdf.Ln(14)
	pdf.SetFont("Arial", "BU", 10)
	pdf.MultiCell(0, 5, SignatoryName, "", "R", false)

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 4, "Tembusan:", "", "L", false)
	for i, tb := range tembusan {
		pdf.MultiCell(0, 4, fmt.Sprintf("%d. %s", i+1, tb), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encoding report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
