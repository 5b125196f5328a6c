package models

// Officer is one entry of the fixed signatory roster sent to the
// document-rendering service alongside a report.
type Officer struct {
	Nama    string `json:"nama"`
	Pangkat string `json:"pangkat"`
	NRP     string `json:"nrp"`
	Regu    string `json:"regu,omitempty"`
}

// SPKT duty officers eligible to receive a report.
var SpktOfficers = []Officer{
	{Nama: "EDI SUHENDAR", Pangkat: "AIPDA", NRP: "80071313", Regu: "KA SPKT I"},
	{Nama: "AGUS RAMDONI, S.H.", Pangkat: "AIPTU", NRP: "79080333", Regu: "KA SPKT II"},
	{Nama: "DIAN ROSDIANA", Pangkat: "AIPTU", NRP: "70100159", Regu: "KA SPKT III"},
}

// Officers eligible to author a report.
var ReportingOfficers = []Officer{
	{Nama: "WISNU ANTONI", Pangkat: "BRIPKA", NRP: "86031618"},
	{Nama: "LINGGA PRIADI PUTRA", Pangkat: "BRIGPOL", NRP: "96060789"},
}

// FindOfficer returns the officer with the given name from the roster.
func FindOfficer(roster []Officer, nama string) *Officer {
	for i := range roster {
		if roster[i].Nama == nama {
			return &roster[i]
		}
	}
	return nil
}
