package validators

import (
	"testing"

	"inspekta/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() *InspectionCreateRequest {
	return &InspectionCreateRequest{
		InspectorID:  "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		BranchID:     "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
		CustomerName: "Budi Santoso",
		VehicleData: VehicleDataRequest{
			Merek:       "Toyota",
			Tipe:        "Avanza 1.3 G",
			Tahun:       "2019",
			Transmisi:   "Manual",
			Warna:       "Hitam",
			Kilometer:   "85.000 km",
			Kepemilikan: "Tangan Pertama",
			PlatNomor:   "B 1234 ABC",
			Pajak1Tahun: "2026-03-15",
			Pajak5Tahun: "2028-03-15",
			BiayaPajak:  "2500000",
		},
		Fitur: FiturRequest{
			Airbag:         intPtr(8),
			AudioSystem:    intPtr(7),
			PowerWindow:    intPtr(9),
			AC:             intPtr(8),
			RemABS:         intPtr(7),
			CentralLock:    intPtr(8),
			ElectricMirror: intPtr(6),
		},
		Summary: SummaryRequest{
			Interior:              intPtr(7),
			Eksterior:             intPtr(8),
			KakiKaki:              intPtr(6),
			Mesin:                 intPtr(8),
			PenilaianKeseluruhan:  intPtr(7),
			IndikasiTabrakan:      boolPtr(false),
			IndikasiBanjir:        boolPtr(false),
			IndikasiOdometerReset: boolPtr(false),
			PosisiBan:             "Depan Belakang",
			MerkBan:               "Bridgestone",
			TipeVelg:              "Alloy",
			KetebalanBan:          "80%",
			EstimasiPerbaikan: []RepairEstimateRequest{
				{NamaPart: "Kampas Rem", Harga: "350000"},
			},
		},
	}
}

func TestValidateInspectionCreate(t *testing.T) {
	inspection, errs := ValidateInspectionCreate(validCreateRequest())
	require.Nil(t, errs)
	require.NotNil(t, inspection)

	assert.Equal(t, 2019, inspection.VehicleData.Tahun)
	assert.Equal(t, 2500000.0, inspection.VehicleData.BiayaPajak)
	assert.Equal(t, 2026, inspection.VehicleData.Pajak1Tahun.Year())
	assert.Equal(t, models.InspectionStatusNeedReview, inspection.Status)

	require.Len(t, inspection.Summary.EstimasiPerbaikan, 1)
	assert.Equal(t, "Kampas Rem", inspection.Summary.EstimasiPerbaikan[0].NamaPart)
	assert.Equal(t, 350000.0, inspection.Summary.EstimasiPerbaikan[0].Harga)
}

func TestValidateInspectionCreateBadNumeric(t *testing.T) {
	req := validCreateRequest()
	req.VehicleData.Tahun = "duaribu"

	inspection, errs := ValidateInspectionCreate(req)
	assert.Nil(t, inspection)
	require.NotEmpty(t, errs)

	details := errs.Details()
	assert.Contains(t, details, "vehicleData.tahun")
}

func TestValidateInspectionCreateAggregatesErrors(t *testing.T) {
	req := validCreateRequest()
	req.CustomerName = ""
	req.VehicleData.Merek = ""
	req.VehicleData.BiayaPajak = "x"

	inspection, errs := ValidateInspectionCreate(req)
	assert.Nil(t, inspection)
	// Missing name, missing merek and the bad number all surface together
	assert.GreaterOrEqual(t, len(errs), 3)
}

func TestValidateInspectionCreateBadRepairPrice(t *testing.T) {
	req := validCreateRequest()
	req.Summary.EstimasiPerbaikan = []RepairEstimateRequest{
		{NamaPart: "Shockbreaker", Harga: "tigaratus"},
	}

	inspection, errs := ValidateInspectionCreate(req)
	assert.Nil(t, inspection)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs.Details(), "summary.estimasiPerbaikan[0].harga")
}

func TestValidateInspectionCreateBadDate(t *testing.T) {
	req := validCreateRequest()
	req.VehicleData.Pajak1Tahun = "next year"

	inspection, errs := ValidateInspectionCreate(req)
	assert.Nil(t, inspection)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs.Details(), "vehicleData.pajak1Tahun")
}

func TestValidateInspectionCreateRequiresScoresAndIndicators(t *testing.T) {
	req := validCreateRequest()
	req.Fitur = FiturRequest{}
	req.Summary.Interior = nil
	req.Summary.IndikasiTabrakan = nil

	inspection, errs := ValidateInspectionCreate(req)
	assert.Nil(t, inspection)
	require.NotEmpty(t, errs)

	details := errs.Details()
	assert.Contains(t, details, "fitur.airbag")
	assert.Contains(t, details, "fitur.electricMirror")
	assert.Contains(t, details, "summary.interior")
	assert.Contains(t, details, "summary.indikasiTabrakan")
}

func TestValidateInspectionCreateZeroScoreValid(t *testing.T) {
	req := validCreateRequest()
	req.Fitur.Airbag = intPtr(0)
	req.Summary.IndikasiBanjir = boolPtr(true)

	inspection, errs := ValidateInspectionCreate(req)
	require.Nil(t, errs)
	// A zero score is a real grade, distinct from an absent one
	assert.Equal(t, 0, inspection.Fitur.Airbag)
	assert.True(t, inspection.Summary.IndikasiBanjir)
}

func TestValidateInspectionCreateEstimasiOmittedOrEmpty(t *testing.T) {
	omitted := validCreateRequest()
	omitted.Summary.EstimasiPerbaikan = nil
	inspection, errs := ValidateInspectionCreate(omitted)
	require.Nil(t, errs)
	assert.Empty(t, inspection.Summary.EstimasiPerbaikan)

	present := validCreateRequest()
	present.Summary.EstimasiPerbaikan = []RepairEstimateRequest{}
	inspection, errs = ValidateInspectionCreate(present)
	require.Nil(t, errs)
	assert.Empty(t, inspection.Summary.EstimasiPerbaikan)
}

func TestValidateInspectionUpdateMergesSections(t *testing.T) {
	existing, errs := ValidateInspectionCreate(validCreateRequest())
	require.Nil(t, errs)
	existing.Status = models.InspectionStatusDraft

	newName := "Siti Rahma"
	updated, errs := ValidateInspectionUpdate(&InspectionUpdateRequest{
		CustomerName: &newName,
	}, existing)
	require.Nil(t, errs)

	assert.Equal(t, "Siti Rahma", updated.CustomerName)
	// Untouched sections survive the merge
	assert.Equal(t, "Toyota", updated.VehicleData.Merek)
	assert.Equal(t, 2019, updated.VehicleData.Tahun)
	assert.Equal(t, models.InspectionStatusDraft, updated.Status)
}

func TestValidateInspectionUpdateRejectsBadSection(t *testing.T) {
	existing, errs := ValidateInspectionCreate(validCreateRequest())
	require.Nil(t, errs)

	bad := validCreateRequest().VehicleData
	bad.Tahun = "abc"

	updated, errs := ValidateInspectionUpdate(&InspectionUpdateRequest{
		VehicleData: &bad,
	}, existing)
	assert.Nil(t, updated)
	assert.NotEmpty(t, errs)
}
