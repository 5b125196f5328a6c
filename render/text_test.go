package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/satlantas/laka-report-api/derive"
	"github.com/satlantas/laka-report-api/models"
	"github.com/satlantas/laka-report-api/render"
)

var renderNow = time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)

func sampleReport() models.AccidentReport {
	r := derive.NewReport("r1", renderNow)
	r.WaktuKejadian = "2024-03-15T08:30"
	r.AlamatTkp = "Jalan Raya Ciawi KM 4"
	r.UraianPraKejadianManusia = "Pengemudi melaju dengan kecepatan tinggi"
	r.KerugianMateriilAngka = 500_000
	r.InvolvedEntities = []models.InvolvedEntity{
		{ID: "v1", Type: models.EntityVehicle, JenisKendaraan: "Sepeda Motor Honda Beat", NomorPolisi: "Z 1234 AB"},
		{ID: "pk1", Type: models.EntityPedestrian},
	}
	r.PihakTerlibat = []models.InvolvedParty{
		{
			ID: "p1", Peran: "Pengemudi", NamaLengkap: "ASEP SUNANDAR",
			TanggalLahir: "10-01-1990", Pekerjaan: "Wiraswasta",
			Alamat: "Kp. Cikunten", InvolvedEntityID: "v1", TingkatLuka: models.InjuryMinor,
		},
	}
	r.SaksiSaksi = []models.Witness{
		{ID: "s1", NamaLengkap: "DADANG", UmurString: "40 Th", Pekerjaan: "Pedagang", Alamat: "Kp. Sukarame"},
	}
	r.BarangBuktiText = "Helm warna hitam\n- Sandal jepit"
	derive.Apply(&r)
	return r
}

func TestText_FullReport(t *testing.T) {
	r := sampleReport()
	got := render.Text(&r, renderNow)

	assert.True(t, strings.HasPrefix(got, "Assalamu'alaikum wr. wb.\n\n"))
	assert.Contains(t, got, "Pada Hari Jumat Tanggal 15 Maret 2024 sekitar pukul 08.30 WIB")
	assert.Contains(t, got, "TKP :\nJalan Raya Ciawi KM 4")
	assert.Contains(t, got, "- Kendaraan Spd. Motor Sepeda Motor Honda Beat TNKB Z 1234 AB.")
	assert.Contains(t, got, "- Pejalan Kaki.")
	assert.Contains(t, got, "Kerugian Materiil : Rp. 500.000,- (Lima ratus ribu Rupiah)")
	assert.Contains(t, got, "Korban Luka Ringan (LR) : 1 Orang")
	assert.Contains(t, got, "c. Jalan & Lingkungan\nCuaca terang, pagi hari,")
	assert.Contains(t, got, "- Pengendara Kend. Spd. Motor Sepeda Motor Honda Beat TNKB Z 1234 AB : Sdr/i. ASEP SUNANDAR, 34 Th, Wiraswasta, Alamat Kp. Cikunten.")
	assert.Contains(t, got, "1. Sdr/i. DADANG, 40 Th, Pedagang, Alamat Kp. Sukarame.")
	assert.Contains(t, got, "- 1 Unit Kendaraan Spd. Motor Sepeda Motor Honda Beat TNKB Z 1234 AB.")
	assert.Contains(t, got, "- Helm warna hitam")
	assert.Contains(t, got, "- Sandal jepit")
	assert.Contains(t, got, "1. Menerima Laporan")
	assert.Contains(t, got, "Nomor LP: LP/B/    /III/2024/SPKT/POLRES TASIKMALAYA/POLDA JABAR, Tanggal 20 Maret 2024")
	assert.Contains(t, got, "Hormat kami,\nKasat Lantas Polres Tasikmalaya")
	assert.Contains(t, got, "AKP H. AJAT SUDRAJAT")
	assert.Contains(t, got, "3. Kasubdit Gakkum Ditlantas Polda Jabar.")
}

func TestText_EmptyReportUsesPlaceholders(t *testing.T) {
	r := derive.NewReport("r2", renderNow)
	got := render.Text(&r, renderNow)

	assert.Contains(t, got, "Waktu Kejadian:\n(Belum diisi)")
	assert.Contains(t, got, "TKP :\n(Belum diisi)")
	assert.Contains(t, got, "(Tidak ada data kendaraan atau pejalan kaki yang terlibat)")
	assert.Contains(t, got, "(Tidak ada data pihak terlibat)")
	assert.Contains(t, got, "(Tidak ada data saksi)")
	assert.Contains(t, got, "V. Barang Bukti :\n(Tidak ada data barang bukti)")
	assert.Contains(t, got, "II. Kronologis Kejadian\n(Belum diisi)")
	assert.Contains(t, got, "Korban Meninggal Dunia (MD) : 0 Orang")
}

func TestActionLines_Renumbers(t *testing.T) {
	got := render.ActionLines("1. Menerima Laporan\n- Olah TKP\nMembuat LP")
	assert.Equal(t, []string{"1. Menerima Laporan", "2. Olah TKP", "3. Membuat LP"}, got)
}

func TestEvidenceLines_NormalizesBullets(t *testing.T) {
	r := derive.NewReport("r3", renderNow)
	r.BarangBuktiText = "Helm\n\n- Jaket"
	got := render.EvidenceLines(&r)
	assert.Equal(t, []string{"- Helm", "- Jaket"}, got)
}

func TestPDF_ProducesDocument(t *testing.T) {
	r := sampleReport()
	got, err := render.PDF(&r, renderNow)
	assert.NoError(t, err)
	assert.True(t, len(got) > 1000)
	assert.Equal(t, "%PDF", string(got[:4]))
}
