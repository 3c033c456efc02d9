package validators

import (
	"encoding/json"
	"fmt"

	"inspekta/internal/models"
)

// Upload modes accepted by the photo endpoints. The mode decides which
// metadata schema applies and whether the entry count must match the file
// count.
const (
	UploadModeSingle        = "single"
	UploadModeBatchDynamic  = "batchDynamic"
	UploadModeBatchFixed    = "batchFixed"
	UploadModeBatchDocument = "batchDocument"
)

// PhotoMetadataEntry is one element of the metadata array posted alongside
// the image files. Fields are pointers so "absent" and "empty" stay
// distinguishable per mode.
type PhotoMetadataEntry struct {
	Label         *string `json:"label"`
	OriginalLabel *string `json:"originalLabel"`
	NeedAttention *bool   `json:"needAttention"`
}

// ResolvedPhotoMeta is a metadata entry after mode rules are applied, paired
// positionally with an uploaded file.
type ResolvedPhotoMeta struct {
	Type          models.PhotoType
	Label         string
	OriginalLabel string
	NeedAttention bool
}

// ParsePhotoMetadata decodes the metadata form field and reconciles it with
// the number of uploaded files. The raw value is a JSON array encoded as a
// string because it travels in a multipart field. Labels are kept exactly as
// sent, leading and trailing spaces included.
func ParsePhotoMetadata(raw string, mode string, fileCount int) ([]ResolvedPhotoMeta, ValidationErrors) {
	switch mode {
	case UploadModeSingle, UploadModeBatchDynamic, UploadModeBatchFixed, UploadModeBatchDocument:
	default:
		return nil, ValidationErrors{{
			Field:   "mode",
			Tag:     "oneof",
			Value:   mode,
			Message: "mode must be one of: single batchDynamic batchFixed batchDocument",
		}}
	}

	var entries []PhotoMetadataEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, ValidationErrors{{
			Field:   "metadata",
			Tag:     "json",
			Message: "metadata must be a JSON array",
		}}
	}

	if len(entries) == 0 {
		return nil, ValidationErrors{{
			Field:   "metadata",
			Tag:     "required",
			Message: "metadata array must not be empty",
		}}
	}

	if mode == UploadModeSingle && len(entries) != 1 {
		return nil, ValidationErrors{{
			Field:   "metadata",
			Tag:     "len",
			Message: "single upload requires exactly one metadata entry",
		}}
	}

	if len(entries) != fileCount {
		return nil, ValidationErrors{{
			Field: "metadata",
			Tag:   "count",
			Message: fmt.Sprintf("metadata has %d entries but %d files were uploaded",
				len(entries), fileCount),
		}}
	}

	var validationErrors ValidationErrors
	resolved := make([]ResolvedPhotoMeta, 0, len(entries))

	for i, entry := range entries {
		meta := ResolvedPhotoMeta{}

		switch mode {
		case UploadModeBatchFixed:
			// Fixed slots come from the predefined checklist; originalLabel
			// identifies the slot and seeds the display label.
			meta.Type = models.PhotoTypeFixed
			if entry.OriginalLabel == nil || *entry.OriginalLabel == "" {
				validationErrors = append(validationErrors, ValidationError{
					Field:   fmt.Sprintf("metadata[%d].originalLabel", i),
					Tag:     "required",
					Message: "originalLabel is required for fixed photos",
				})
				continue
			}
			meta.OriginalLabel = *entry.OriginalLabel
			meta.Label = *entry.OriginalLabel
		case UploadModeBatchDocument:
			meta.Type = models.PhotoTypeDocument
			if entry.Label == nil || *entry.Label == "" {
				validationErrors = append(validationErrors, ValidationError{
					Field:   fmt.Sprintf("metadata[%d].label", i),
					Tag:     "required",
					Message: "label is required for document photos",
				})
				continue
			}
			meta.Label = *entry.Label
		case UploadModeSingle, UploadModeBatchDynamic:
			meta.Type = models.PhotoTypeDynamic
			if entry.Label == nil || *entry.Label == "" {
				validationErrors = append(validationErrors, ValidationError{
					Field:   fmt.Sprintf("metadata[%d].label", i),
					Tag:     "required",
					Message: "label is required for dynamic photos",
				})
				continue
			}
			meta.Label = *entry.Label
		}

		if entry.NeedAttention != nil {
			meta.NeedAttention = *entry.NeedAttention
		}

		resolved = append(resolved, meta)
	}

	if len(validationErrors) > 0 {
		return nil, validationErrors
	}

	return resolved, nil
}

// PhotoUpdateRequest edits one stored photo's annotation.
type PhotoUpdateRequest struct {
	Label         *string `json:"label"`
	NeedAttention *bool   `json:"needAttention"`
}
