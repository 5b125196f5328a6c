package models

// Entity type discriminators for InvolvedEntity.
const (
	EntityVehicle    = "Kendaraan"
	EntityPedestrian = "Pejalan Kaki"
)

// Injury level tags for an involved party.
const (
	InjuryMinor    = "LR"     // luka ringan
	InjurySevere   = "LB"     // luka berat
	InjuryFatal    = "MD"     // meninggal dunia
	InjuryProperty = "MATERI" // kerugian materiil saja
)

// Field modes for derived fields that a user may take over manually.
const (
	FieldModeAuto   = "auto"
	FieldModeManual = "manual"
)

// Default narrative boilerplate placed on a freshly created report.
const (
	DefaultNarasiAkibat      = "Akibat dari kejadian kecelakaan lalu lintas tersebut,"
	DefaultUraianKendaraan   = "Kendaraan yang terlibat kecelakaan masih standar pabrik bukan modifikasi."
	DefaultTindakanDilakukan = "1. Menerima Laporan\n2. Mendatangi TKP dan olah TKP\n3. Mencatat saksi-saksi\n4. Mengecek Korban\n5. Mengamankan BB\n6. Membuat LP"
	DefaultTerbilang         = "Rp. 0,- (Nol Rupiah)"
	DefaultKepada            = "Yth. Dirlantas Polda Jabar."
	DefaultDari              = "Kasat Lantas Polres Tasikmalaya"
	DefaultPerihal           = "Kecelakaan Lalu Lintas di Wilayah Hukum Polres Tasikmalaya."
	LaporanPolisiSuffix      = "SPKT/POLRES TASIKMALAYA/POLDA JABAR"
)

// AccidentReport holds the structure for one traffic-accident report in
// the reports collection. The casualty counters, the terbilang string,
// the chronology and the month/year segments of the LP number are
// derived fields maintained by the derive package, never written
// directly by clients.
type AccidentReport struct {
	ID           string `json:"id" bson:"_id"`
	LastModified int64  `json:"lastModified" bson:"lastModified"`

	Kepada  string `json:"kepada" bson:"kepada"`
	Dari    string `json:"dari" bson:"dari"`
	Perihal string `json:"perihal" bson:"perihal"`

	Pelapor Pelapor `json:"pelaporInfo" bson:"pelaporInfo"`

	// WaktuKejadian uses the HTML datetime-local layout 2006-01-02T15:04
	// and may be empty while the report is still being assembled.
	WaktuKejadian string `json:"waktuKejadian" bson:"waktuKejadian"`
	AlamatTkp     string `json:"alamatTkp" bson:"alamatTkp"`

	NarasiAkibatKecelakaan    string `json:"narasiAkibatKecelakaan" bson:"narasiAkibatKecelakaan"`
	KorbanMeninggalDunia      int    `json:"korbanMeninggalDunia" bson:"korbanMeninggalDunia"`
	KorbanLukaBerat           int    `json:"korbanLukaBerat" bson:"korbanLukaBerat"`
	KorbanLukaRingan          int    `json:"korbanLukaRingan" bson:"korbanLukaRingan"`
	KerugianMateriilAngka     int64  `json:"kerugianMateriilAngka" bson:"kerugianMateriilAngka"`
	KerugianMateriilTerbilang string `json:"kerugianMateriilTerbilang" bson:"kerugianMateriilTerbilang"`

	UraianPraKejadianManusia         string `json:"uraianPraKejadianManusia" bson:"uraianPraKejadianManusia"`
	UraianPraKejadianKendaraan       string `json:"uraianPraKejadianKendaraan" bson:"uraianPraKejadianKendaraan"`
	UraianPraKejadianJalanLingkungan string `json:"uraianPraKejadianJalanLingkungan" bson:"uraianPraKejadianJalanLingkungan"`
	// JalanLingkunganMode flips from auto to manual the first time the
	// road/environment narrative is edited directly; the derive engine
	// leaves the field alone from then on.
	JalanLingkunganMode string `json:"jalanLingkunganMode" bson:"jalanLingkunganMode"`

	KronologiKejadianUtama string `json:"kronologiKejadianUtama" bson:"kronologiKejadianUtama"`

	JenisKecelakaan string `json:"jenisKecelakaan,omitempty" bson:"jenisKecelakaan,omitempty"`
	PenyebabUtama   string `json:"penyebabUtama,omitempty" bson:"penyebabUtama,omitempty"`

	InvolvedEntities []InvolvedEntity `json:"involvedEntities" bson:"involvedEntities"`
	PihakTerlibat    []InvolvedParty  `json:"pihakTerlibat" bson:"pihakTerlibat"`
	SaksiSaksi       []Witness        `json:"saksiSaksi" bson:"saksiSaksi"`

	BarangBuktiText       string `json:"barangBuktiText" bson:"barangBuktiText"`
	TindakanDilakukanText string `json:"tindakanDilakukanText" bson:"tindakanDilakukanText"`

	NomorLaporanPolisi string `json:"nomorLaporanPolisi" bson:"nomorLaporanPolisi"`

	CatatanTambahanPetugas string `json:"catatanTambahanPetugas,omitempty" bson:"catatanTambahanPetugas,omitempty"`
}

// InvolvedEntity is a vehicle or pedestrian participant. Type selects
// the variant; the vehicle-only fields stay empty for pedestrians.
type InvolvedEntity struct {
	ID   string `json:"id" bson:"id"`
	Type string `json:"type" bson:"type"`

	JenisKendaraan string `json:"jenisKendaraan,omitempty" bson:"jenisKendaraan,omitempty"`
	NomorPolisi    string `json:"nomorPolisi,omitempty" bson:"nomorPolisi,omitempty"`
	Kerusakan      string `json:"kerusakan,omitempty" bson:"kerusakan,omitempty"`
}

// InvolvedParty holds one person involved in the accident. The entity
// reference is a lookup key into the report's InvolvedEntities, not an
// owning pointer; deleting the entity clears the reference.
type InvolvedParty struct {
	ID               string `json:"id" bson:"id"`
	Peran            string `json:"peran" bson:"peran"`
	NamaLengkap      string `json:"namaLengkap" bson:"namaLengkap"`
	NomorIdentitas   string `json:"nomorIdentitas" bson:"nomorIdentitas"`
	Alamat           string `json:"alamat" bson:"alamat"`
	TempatLahir      string `json:"tempatLahir,omitempty" bson:"tempatLahir,omitempty"`
	TanggalLahir     string `json:"tanggalLahir" bson:"tanggalLahir"` // DD-MM-YYYY
	JenisKelamin     string `json:"jenisKelamin,omitempty" bson:"jenisKelamin,omitempty"`
	Pekerjaan        string `json:"pekerjaan" bson:"pekerjaan"`
	InvolvedEntityID string `json:"involvedEntityId,omitempty" bson:"involvedEntityId,omitempty"`
	FotoIdentitas    string `json:"fotoIdentitas,omitempty" bson:"fotoIdentitas,omitempty"`
	TingkatLuka      string `json:"tingkatLuka,omitempty" bson:"tingkatLuka,omitempty"`
	DidugaTersangka  bool   `json:"didugaTersangka" bson:"didugaTersangka"`
}

// Witness holds one witness statement. Age comes from TanggalLahir when
// present, otherwise from the manually entered UmurString.
type Witness struct {
	ID                 string `json:"id" bson:"id"`
	NamaLengkap        string `json:"namaLengkap" bson:"namaLengkap"`
	NomorIdentitas     string `json:"nomorIdentitas,omitempty" bson:"nomorIdentitas,omitempty"`
	Alamat             string `json:"alamat" bson:"alamat"`
	TempatLahir        string `json:"tempatLahir,omitempty" bson:"tempatLahir,omitempty"`
	TanggalLahir       string `json:"tanggalLahir,omitempty" bson:"tanggalLahir,omitempty"` // DD-MM-YYYY
	JenisKelamin       string `json:"jenisKelamin,omitempty" bson:"jenisKelamin,omitempty"`
	UmurString         string `json:"umurString" bson:"umurString"`
	Pekerjaan          string `json:"pekerjaan" bson:"pekerjaan"`
	KeteranganSaksi    string `json:"keteranganSaksi" bson:"keteranganSaksi"`
	FotoIdentitasSaksi string `json:"fotoIdentitasSaksi,omitempty" bson:"fotoIdentitasSaksi,omitempty"`
}

// Pelapor holds the single reporting person attached to a report.
type Pelapor struct {
	NamaLengkap      string `json:"namaLengkap" bson:"namaLengkap"`
	NomorIdentitas   string `json:"nomorIdentitas" bson:"nomorIdentitas"`
	Alamat           string `json:"alamat" bson:"alamat"`
	TempatLahir      string `json:"tempatLahir,omitempty" bson:"tempatLahir,omitempty"`
	TanggalLahir     string `json:"tanggalLahir" bson:"tanggalLahir"` // DD-MM-YYYY
	JenisKelamin     string `json:"jenisKelamin,omitempty" bson:"jenisKelamin,omitempty"`
	Pekerjaan        string `json:"pekerjaan" bson:"pekerjaan"`
	Agama            string `json:"agama,omitempty" bson:"agama,omitempty"`
	Suku             string `json:"suku,omitempty" bson:"suku,omitempty"`
	FotoIdentitasKtp string `json:"fotoIdentitasKtp,omitempty" bson:"fotoIdentitasKtp,omitempty"`
}

// FindEntity returns the involved entity with the given ID, or nil.
func (r *AccidentReport) FindEntity(id string) *InvolvedEntity {
	if id == "" {
		return nil
	}
	for i := range r.InvolvedEntities {
		if r.InvolvedEntities[i].ID == id {
			return &r.InvolvedEntities[i]
		}
	}
	return nil
}
