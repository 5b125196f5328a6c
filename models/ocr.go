package models

// Document type discriminators returned by the extraction service.
const (
	DocumentKTP     = "KTP"
	DocumentSIM     = "SIM"
	DocumentKK      = "KK"
	DocumentSTNK    = "STNK"
	DocumentLainnya = "LAINNYA"
)

// OcrResult is the parsed result of the external document-extraction
// service. The service is a black box; only this shape is consumed.
type OcrResult struct {
	DocumentType   string `json:"documentType"`
	NamaLengkap    string `json:"namaLengkap"`
	NomorIdentitas string `json:"nomorIdentitas"`
	Alamat         string `json:"alamat"`
	TempatLahir    string `json:"tempatLahir"`
	TanggalLahir   string `json:"tanggalLahir"` // DD-MM-YYYY
	JenisKelamin   string `json:"jenisKelamin"`
	Pekerjaan      string `json:"pekerjaan"`
	Agama          string `json:"agama,omitempty"`
	NomorPolisi    string `json:"nomorPolisi,omitempty"`

	// Family-card extras.
	FamilyMembers       []OcrFamilyMember `json:"familyMembers,omitempty"`
	AlamatKartuKeluarga string            `json:"alamatKartuKeluarga,omitempty"`

	// Vehicle-registration extras.
	JenisKendaraanStnk string `json:"jenisKendaraanStnk,omitempty"`
	NamaPemilikStnk    string `json:"namaPemilikStnk,omitempty"`
	AlamatStnk         string `json:"alamatStnk,omitempty"`

	// PhotoURL is set by the service after the scanned document has
	// been uploaded, so the client can attach it to the record.
	PhotoURL string `json:"photoUrl,omitempty"`
}

// OcrFamilyMember is one row of an extracted family card.
type OcrFamilyMember struct {
	NamaLengkap      string `json:"namaLengkap"`
	NomorIdentitas   string `json:"nomorIdentitas"`
	Alamat           string `json:"alamat,omitempty"`
	TempatLahir      string `json:"tempatLahir,omitempty"`
	TanggalLahir     string `json:"tanggalLahir"`
	JenisKelamin     string `json:"jenisKelamin,omitempty"`
	Pekerjaan        string `json:"pekerjaan"`
	HubunganKeluarga string `json:"hubunganKeluarga"`
}
