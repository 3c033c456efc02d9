package validators

import (
	"strconv"
	"strings"
	"time"

	"inspekta/internal/models"
)

// InspectionCreateRequest is the submission payload. Numeric fields arrive as
// strings because clients post the form as multipart alongside photos; they
// are coerced before the rule table runs so a bad number reports next to the
// other field violations instead of aborting the bind.
type InspectionCreateRequest struct {
	InspectorID  string `json:"inspectorId" validate:"required,uuid_field"`
	BranchID     string `json:"cabangId" validate:"required,uuid_field"`
	CustomerName string `json:"namaCustomer" validate:"required"`

	VehicleData VehicleDataRequest `json:"vehicleData" validate:"required"`
	Fitur       FiturRequest       `json:"fitur" validate:"required"`
	Summary     SummaryRequest     `json:"summary" validate:"required"`
}

type VehicleDataRequest struct {
	Merek       string `json:"merek" validate:"required"`
	Tipe        string `json:"tipe" validate:"required"`
	Tahun       string `json:"tahun" validate:"required,numeric_string"`
	Transmisi   string `json:"transmisi" validate:"required"`
	Warna       string `json:"warna" validate:"required"`
	Kilometer   string `json:"kilometer" validate:"required"`
	Kepemilikan string `json:"kepemilikan" validate:"required"`
	PlatNomor   string `json:"platNomor" validate:"required"`
	Pajak1Tahun string `json:"pajak1Tahun" validate:"required"`
	Pajak5Tahun string `json:"pajak5Tahun" validate:"required"`
	BiayaPajak  string `json:"biayaPajak" validate:"required,numeric_string"`
}

// Scores and indicator flags are pointers so an absent field fails required
// instead of silently persisting a zero score or a false flag.
type FiturRequest struct {
	Airbag         *int     `json:"airbag" validate:"required,score_value"`
	AudioSystem    *int     `json:"audioSystem" validate:"required,score_value"`
	PowerWindow    *int     `json:"powerWindow" validate:"required,score_value"`
	AC             *int     `json:"ac" validate:"required,score_value"`
	RemABS         *int     `json:"remAbs" validate:"required,score_value"`
	CentralLock    *int     `json:"centralLock" validate:"required,score_value"`
	ElectricMirror *int     `json:"electricMirror" validate:"required,score_value"`
	Interior1      *int     `json:"interior1,omitempty" validate:"omitempty,score_value"`
	Interior2      *int     `json:"interior2,omitempty" validate:"omitempty,score_value"`
	Interior3      *int     `json:"interior3,omitempty" validate:"omitempty,score_value"`
	Catatan        []string `json:"catatan,omitempty"`
}

type RepairEstimateRequest struct {
	NamaPart string `json:"namaPart" validate:"required"`
	Harga    string `json:"harga" validate:"required,numeric_string"`
}

type SummaryRequest struct {
	Interior             *int     `json:"interior" validate:"required,score_value"`
	CatatanInterior      []string `json:"catatanInterior,omitempty"`
	Eksterior            *int     `json:"eksterior" validate:"required,score_value"`
	CatatanEksterior     []string `json:"catatanEksterior,omitempty"`
	KakiKaki             *int     `json:"kakiKaki" validate:"required,score_value"`
	CatatanKakiKaki      []string `json:"catatanKakiKaki,omitempty"`
	Mesin                *int     `json:"mesin" validate:"required,score_value"`
	CatatanMesin         []string `json:"catatanMesin,omitempty"`
	PenilaianKeseluruhan *int     `json:"penilaianKeseluruhan" validate:"required,score_value"`
	CatatanKeseluruhan   []string `json:"catatanKeseluruhan,omitempty"`

	IndikasiTabrakan      *bool `json:"indikasiTabrakan" validate:"required"`
	IndikasiBanjir        *bool `json:"indikasiBanjir" validate:"required"`
	IndikasiOdometerReset *bool `json:"indikasiOdometerReset" validate:"required"`

	PosisiBan    string `json:"posisiBan" validate:"required"`
	MerkBan      string `json:"merkBan" validate:"required"`
	TipeVelg     string `json:"tipeVelg" validate:"required"`
	KetebalanBan string `json:"ketebalanBan" validate:"required"`

	EstimasiPerbaikan []RepairEstimateRequest `json:"estimasiPerbaikan,omitempty" validate:"omitempty,dive"`
}

// taxDateLayouts are tried in order when parsing tax due dates.
var taxDateLayouts = []string{"2006-01-02", time.RFC3339, "02-01-2006"}

func parseTaxDate(value string) (time.Time, bool) {
	for _, layout := range taxDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidateInspectionCreate coerces the string-typed numerics, runs the rule
// table, and builds the storable inspection. Coercion failures are appended
// to the same error list so the client sees everything at once.
func ValidateInspectionCreate(req *InspectionCreateRequest) (*models.Inspection, ValidationErrors) {
	validationErrors := ValidateStruct(req)

	inspection := &models.Inspection{
		InspectorID:  req.InspectorID,
		BranchID:     req.BranchID,
		CustomerName: req.CustomerName,
		Status:       models.InspectionStatusNeedReview,
	}

	inspection.VehicleData = models.VehicleData{
		Merek:       req.VehicleData.Merek,
		Tipe:        req.VehicleData.Tipe,
		Transmisi:   req.VehicleData.Transmisi,
		Warna:       req.VehicleData.Warna,
		Kilometer:   req.VehicleData.Kilometer,
		Kepemilikan: req.VehicleData.Kepemilikan,
		PlatNomor:   req.VehicleData.PlatNomor,
	}

	if req.VehicleData.Tahun != "" {
		tahun, err := strconv.Atoi(strings.TrimSpace(req.VehicleData.Tahun))
		if err != nil {
			validationErrors = appendCoercionError(validationErrors, "vehicleData.tahun", req.VehicleData.Tahun)
		} else {
			inspection.VehicleData.Tahun = tahun
		}
	}

	if req.VehicleData.BiayaPajak != "" {
		biaya, err := strconv.ParseFloat(strings.TrimSpace(req.VehicleData.BiayaPajak), 64)
		if err != nil {
			validationErrors = appendCoercionError(validationErrors, "vehicleData.biayaPajak", req.VehicleData.BiayaPajak)
		} else {
			inspection.VehicleData.BiayaPajak = biaya
		}
	}

	if req.VehicleData.Pajak1Tahun != "" {
		if t, ok := parseTaxDate(req.VehicleData.Pajak1Tahun); ok {
			inspection.VehicleData.Pajak1Tahun = t
		} else {
			validationErrors = append(validationErrors, ValidationError{
				Field:   "vehicleData.pajak1Tahun",
				Tag:     "date",
				Value:   req.VehicleData.Pajak1Tahun,
				Message: "pajak1Tahun must be a valid date",
			})
		}
	}

	if req.VehicleData.Pajak5Tahun != "" {
		if t, ok := parseTaxDate(req.VehicleData.Pajak5Tahun); ok {
			inspection.VehicleData.Pajak5Tahun = t
		} else {
			validationErrors = append(validationErrors, ValidationError{
				Field:   "vehicleData.pajak5Tahun",
				Tag:     "date",
				Value:   req.VehicleData.Pajak5Tahun,
				Message: "pajak5Tahun must be a valid date",
			})
		}
	}

	inspection.Fitur = models.Fitur{
		Airbag:         intValue(req.Fitur.Airbag),
		AudioSystem:    intValue(req.Fitur.AudioSystem),
		PowerWindow:    intValue(req.Fitur.PowerWindow),
		AC:             intValue(req.Fitur.AC),
		RemABS:         intValue(req.Fitur.RemABS),
		CentralLock:    intValue(req.Fitur.CentralLock),
		ElectricMirror: intValue(req.Fitur.ElectricMirror),
		Interior1:      req.Fitur.Interior1,
		Interior2:      req.Fitur.Interior2,
		Interior3:      req.Fitur.Interior3,
		Catatan:        req.Fitur.Catatan,
	}

	inspection.Summary = models.InspectionSummary{
		Interior:             intValue(req.Summary.Interior),
		CatatanInterior:      req.Summary.CatatanInterior,
		Eksterior:            intValue(req.Summary.Eksterior),
		CatatanEksterior:     req.Summary.CatatanEksterior,
		KakiKaki:             intValue(req.Summary.KakiKaki),
		CatatanKakiKaki:      req.Summary.CatatanKakiKaki,
		Mesin:                intValue(req.Summary.Mesin),
		CatatanMesin:         req.Summary.CatatanMesin,
		PenilaianKeseluruhan: intValue(req.Summary.PenilaianKeseluruhan),
		CatatanKeseluruhan:   req.Summary.CatatanKeseluruhan,

		IndikasiTabrakan:      boolValue(req.Summary.IndikasiTabrakan),
		IndikasiBanjir:        boolValue(req.Summary.IndikasiBanjir),
		IndikasiOdometerReset: boolValue(req.Summary.IndikasiOdometerReset),

		PosisiBan:    req.Summary.PosisiBan,
		MerkBan:      req.Summary.MerkBan,
		TipeVelg:     req.Summary.TipeVelg,
		KetebalanBan: req.Summary.KetebalanBan,
	}

	for i, est := range req.Summary.EstimasiPerbaikan {
		entry := models.RepairEstimate{NamaPart: est.NamaPart}
		if est.Harga != "" {
			harga, err := strconv.ParseFloat(strings.TrimSpace(est.Harga), 64)
			if err != nil {
				validationErrors = appendCoercionError(validationErrors,
					"summary.estimasiPerbaikan["+strconv.Itoa(i)+"].harga", est.Harga)
			} else {
				entry.Harga = harga
			}
		}
		inspection.Summary.EstimasiPerbaikan = append(inspection.Summary.EstimasiPerbaikan, entry)
	}

	if len(validationErrors) > 0 {
		return nil, validationErrors
	}

	return inspection, nil
}

// InspectionUpdateRequest mirrors the create payload with every field
// optional; only sections present in the body are replaced.
type InspectionUpdateRequest struct {
	CustomerName *string             `json:"namaCustomer,omitempty"`
	VehicleData  *VehicleDataRequest `json:"vehicleData,omitempty"`
	Fitur        *FiturRequest       `json:"fitur,omitempty"`
	Summary      *SummaryRequest     `json:"summary,omitempty"`
}

// ValidateInspectionUpdate validates only the sections the client sent. It
// returns a create-shaped request with the existing inspection's values
// filled in for the untouched sections so the same coercion path applies.
func ValidateInspectionUpdate(req *InspectionUpdateRequest, existing *models.Inspection) (*models.Inspection, ValidationErrors) {
	merged := &InspectionCreateRequest{
		InspectorID:  existing.InspectorID,
		BranchID:     existing.BranchID,
		CustomerName: existing.CustomerName,
		VehicleData:  vehicleDataToRequest(existing.VehicleData),
		Fitur:        fiturToRequest(existing.Fitur),
		Summary:      summaryToRequest(existing.Summary),
	}

	if req.CustomerName != nil {
		merged.CustomerName = *req.CustomerName
	}
	if req.VehicleData != nil {
		merged.VehicleData = *req.VehicleData
	}
	if req.Fitur != nil {
		merged.Fitur = *req.Fitur
	}
	if req.Summary != nil {
		merged.Summary = *req.Summary
	}

	updated, errs := ValidateInspectionCreate(merged)
	if errs != nil {
		return nil, errs
	}

	updated.ID = existing.ID
	updated.Status = existing.Status
	updated.ReportURL = existing.ReportURL
	updated.ReportHash = existing.ReportHash
	updated.NFTMintAddress = existing.NFTMintAddress
	updated.NFTTxSignature = existing.NFTTxSignature
	updated.CreatedAt = existing.CreatedAt
	updated.ApprovedAt = existing.ApprovedAt
	updated.MintedAt = existing.MintedAt
	return updated, nil
}

func vehicleDataToRequest(v models.VehicleData) VehicleDataRequest {
	return VehicleDataRequest{
		Merek:       v.Merek,
		Tipe:        v.Tipe,
		Tahun:       strconv.Itoa(v.Tahun),
		Transmisi:   v.Transmisi,
		Warna:       v.Warna,
		Kilometer:   v.Kilometer,
		Kepemilikan: v.Kepemilikan,
		PlatNomor:   v.PlatNomor,
		Pajak1Tahun: v.Pajak1Tahun.Format("2006-01-02"),
		Pajak5Tahun: v.Pajak5Tahun.Format("2006-01-02"),
		BiayaPajak:  strconv.FormatFloat(v.BiayaPajak, 'f', -1, 64),
	}
}

func fiturToRequest(f models.Fitur) FiturRequest {
	return FiturRequest{
		Airbag:         intPtr(f.Airbag),
		AudioSystem:    intPtr(f.AudioSystem),
		PowerWindow:    intPtr(f.PowerWindow),
		AC:             intPtr(f.AC),
		RemABS:         intPtr(f.RemABS),
		CentralLock:    intPtr(f.CentralLock),
		ElectricMirror: intPtr(f.ElectricMirror),
		Interior1:      f.Interior1,
		Interior2:      f.Interior2,
		Interior3:      f.Interior3,
		Catatan:        f.Catatan,
	}
}

func summaryToRequest(s models.InspectionSummary) SummaryRequest {
	req := SummaryRequest{
		Interior:             intPtr(s.Interior),
		CatatanInterior:      s.CatatanInterior,
		Eksterior:            intPtr(s.Eksterior),
		CatatanEksterior:     s.CatatanEksterior,
		KakiKaki:             intPtr(s.KakiKaki),
		CatatanKakiKaki:      s.CatatanKakiKaki,
		Mesin:                intPtr(s.Mesin),
		CatatanMesin:         s.CatatanMesin,
		PenilaianKeseluruhan: intPtr(s.PenilaianKeseluruhan),
		CatatanKeseluruhan:   s.CatatanKeseluruhan,

		IndikasiTabrakan:      boolPtr(s.IndikasiTabrakan),
		IndikasiBanjir:        boolPtr(s.IndikasiBanjir),
		IndikasiOdometerReset: boolPtr(s.IndikasiOdometerReset),

		PosisiBan:    s.PosisiBan,
		MerkBan:      s.MerkBan,
		TipeVelg:     s.TipeVelg,
		KetebalanBan: s.KetebalanBan,
	}
	for _, est := range s.EstimasiPerbaikan {
		req.EstimasiPerbaikan = append(req.EstimasiPerbaikan, RepairEstimateRequest{
			NamaPart: est.NamaPart,
			Harga:    strconv.FormatFloat(est.Harga, 'f', -1, 64),
		})
	}
	return req
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func boolValue(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

func appendCoercionError(errs ValidationErrors, field, value string) ValidationErrors {
	return append(errs, ValidationError{
		Field:   field,
		Tag:     "numeric",
		Value:   value,
		Message: field[strings.LastIndex(field, ".")+1:] + " must be numeric",
	})
}
