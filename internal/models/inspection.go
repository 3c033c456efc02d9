package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InspectionStatus string

const (
	InspectionStatusDraft       InspectionStatus = "draft"
	InspectionStatusNeedReview  InspectionStatus = "need_review"
	InspectionStatusApproved    InspectionStatus = "approved"
	InspectionStatusMinted      InspectionStatus = "minted"
	InspectionStatusMintFailed  InspectionStatus = "mint_failed"
	InspectionStatusDeactivated InspectionStatus = "deactivated"
)

// VehicleData holds the vehicle identity section of a report. Kilometer is
// kept as the inspector typed it (odometers are photographed, not parsed).
type VehicleData struct {
	Merek       string    `json:"merek" bson:"merek" validate:"required"`
	Tipe        string    `json:"tipe" bson:"tipe" validate:"required"`
	Tahun       int       `json:"tahun" bson:"tahun" validate:"required"`
	Transmisi   string    `json:"transmisi" bson:"transmisi" validate:"required"`
	Warna       string    `json:"warna" bson:"warna" validate:"required"`
	Kilometer   string    `json:"kilometer" bson:"kilometer" validate:"required"`
	Kepemilikan string    `json:"kepemilikan" bson:"kepemilikan" validate:"required"`
	PlatNomor   string    `json:"platNomor" bson:"plat_nomor" validate:"required"`
	Pajak1Tahun time.Time `json:"pajak1Tahun" bson:"pajak_1_tahun" validate:"required"`
	Pajak5Tahun time.Time `json:"pajak5Tahun" bson:"pajak_5_tahun" validate:"required"`
	BiayaPajak  float64   `json:"biayaPajak" bson:"biaya_pajak" validate:"required"`
}

// Fitur is the feature checklist. Interior sub-scores are optional and only
// stored when the inspector filled them in.
type Fitur struct {
	Airbag         int      `json:"airbag" bson:"airbag"`
	AudioSystem    int      `json:"audioSystem" bson:"audio_system"`
	PowerWindow    int      `json:"powerWindow" bson:"power_window"`
	AC             int      `json:"ac" bson:"ac"`
	RemABS         int      `json:"remAbs" bson:"rem_abs"`
	CentralLock    int      `json:"centralLock" bson:"central_lock"`
	ElectricMirror int      `json:"electricMirror" bson:"electric_mirror"`
	Interior1      *int     `json:"interior1,omitempty" bson:"interior_1,omitempty"`
	Interior2      *int     `json:"interior2,omitempty" bson:"interior_2,omitempty"`
	Interior3      *int     `json:"interior3,omitempty" bson:"interior_3,omitempty"`
	Catatan        []string `json:"catatan,omitempty" bson:"catatan,omitempty"`
}

type RepairEstimate struct {
	NamaPart string  `json:"namaPart" bson:"nama_part" validate:"required"`
	Harga    float64 `json:"harga" bson:"harga"`
}

// InspectionSummary carries the five category scores, damage indicators,
// tire descriptions and the optional repair estimate list.
type InspectionSummary struct {
	Interior             int      `json:"interior" bson:"interior"`
	CatatanInterior      []string `json:"catatanInterior,omitempty" bson:"catatan_interior,omitempty"`
	Eksterior            int      `json:"eksterior" bson:"eksterior"`
	CatatanEksterior     []string `json:"catatanEksterior,omitempty" bson:"catatan_eksterior,omitempty"`
	KakiKaki             int      `json:"kakiKaki" bson:"kaki_kaki"`
	CatatanKakiKaki      []string `json:"catatanKakiKaki,omitempty" bson:"catatan_kaki_kaki,omitempty"`
	Mesin                int      `json:"mesin" bson:"mesin"`
	CatatanMesin         []string `json:"catatanMesin,omitempty" bson:"catatan_mesin,omitempty"`
	PenilaianKeseluruhan int      `json:"penilaianKeseluruhan" bson:"penilaian_keseluruhan"`
	CatatanKeseluruhan   []string `json:"catatanKeseluruhan,omitempty" bson:"catatan_keseluruhan,omitempty"`

	IndikasiTabrakan      bool `json:"indikasiTabrakan" bson:"indikasi_tabrakan"`
	IndikasiBanjir        bool `json:"indikasiBanjir" bson:"indikasi_banjir"`
	IndikasiOdometerReset bool `json:"indikasiOdometerReset" bson:"indikasi_odometer_reset"`

	PosisiBan    string `json:"posisiBan" bson:"posisi_ban" validate:"required"`
	MerkBan      string `json:"merkBan" bson:"merk_ban" validate:"required"`
	TipeVelg     string `json:"tipeVelg" bson:"tipe_velg" validate:"required"`
	KetebalanBan string `json:"ketebalanBan" bson:"ketebalan_ban" validate:"required"`

	EstimasiPerbaikan []RepairEstimate `json:"estimasiPerbaikan,omitempty" bson:"estimasi_perbaikan,omitempty"`
}

// Inspection is one vehicle-condition report. Inspector and branch
// identifiers are UUIDs owned by the organisation directory, not ObjectIDs.
type Inspection struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	InspectorID  string             `json:"inspectorId" bson:"inspector_id" validate:"required,uuid"`
	BranchID     string             `json:"cabangId" bson:"branch_id" validate:"required,uuid"`
	CustomerName string             `json:"namaCustomer" bson:"customer_name" validate:"required"`

	VehicleData VehicleData       `json:"vehicleData" bson:"vehicle_data"`
	Fitur       Fitur             `json:"fitur" bson:"fitur"`
	Summary     InspectionSummary `json:"summary" bson:"summary"`

	Status InspectionStatus `json:"status" bson:"status" default:"need_review"`

	// Set once the report PDF is generated and, later, anchored on chain.
	ReportURL      string `json:"reportUrl,omitempty" bson:"report_url,omitempty"`
	ReportHash     string `json:"reportHash,omitempty" bson:"report_hash,omitempty"`
	NFTMintAddress string `json:"nftMintAddress,omitempty" bson:"nft_mint_address,omitempty"`
	NFTTxSignature string `json:"nftTxSignature,omitempty" bson:"nft_tx_signature,omitempty"`

	CreatedAt  time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" bson:"updated_at"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty" bson:"approved_at,omitempty"`
	MintedAt   *time.Time `json:"mintedAt,omitempty" bson:"minted_at,omitempty"`
}

// Archived reports are the ones a customer can still look up.
func (i *Inspection) IsArchived() bool {
	return i.Status == InspectionStatusApproved || i.Status == InspectionStatusMinted
}
