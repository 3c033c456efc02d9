package validators

import (
	"testing"

	"inspekta/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhotoMetadataBatchFixed(t *testing.T) {
	raw := `[{"originalLabel":"Tampak Depan"},{"originalLabel":"Tampak Belakang","needAttention":true}]`

	resolved, errs := ParsePhotoMetadata(raw, UploadModeBatchFixed, 2)
	require.Nil(t, errs)
	require.Len(t, resolved, 2)

	assert.Equal(t, models.PhotoTypeFixed, resolved[0].Type)
	assert.Equal(t, "Tampak Depan", resolved[0].OriginalLabel)
	assert.Equal(t, "Tampak Depan", resolved[0].Label)
	assert.False(t, resolved[0].NeedAttention)

	assert.Equal(t, "Tampak Belakang", resolved[1].Label)
	assert.True(t, resolved[1].NeedAttention)
}

func TestParsePhotoMetadataFixedRequiresOriginalLabel(t *testing.T) {
	raw := `[{"originalLabel":"Tampak Depan"},{"label":"Tampak Belakang"}]`

	resolved, errs := ParsePhotoMetadata(raw, UploadModeBatchFixed, 2)
	assert.Nil(t, resolved)
	require.Len(t, errs, 1)
	assert.Equal(t, "metadata[1].originalLabel", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
}

func TestParsePhotoMetadataDocumentRequiresLabel(t *testing.T) {
	resolved, errs := ParsePhotoMetadata(`[{"label":""}]`, UploadModeBatchDocument, 1)
	assert.Nil(t, resolved)
	require.Len(t, errs, 1)
	assert.Equal(t, "metadata[0].label", errs[0].Field)

	resolved, errs = ParsePhotoMetadata(`[{"label":"STNK"}]`, UploadModeBatchDocument, 1)
	require.Nil(t, errs)
	assert.Equal(t, models.PhotoTypeDocument, resolved[0].Type)
	assert.Equal(t, "STNK", resolved[0].Label)
}

func TestParsePhotoMetadataDynamicRequiresLabel(t *testing.T) {
	raw := `[{"label":"Baret pintu kanan"},{"needAttention":true}]`

	resolved, errs := ParsePhotoMetadata(raw, UploadModeBatchDynamic, 2)
	assert.Nil(t, resolved)
	require.Len(t, errs, 1)
	assert.Equal(t, "metadata[1].label", errs[0].Field)
}

func TestParsePhotoMetadataSingle(t *testing.T) {
	resolved, errs := ParsePhotoMetadata(`[{"label":"Rear Left Fender","needAttention":true}]`, UploadModeSingle, 1)
	require.Nil(t, errs)
	require.Len(t, resolved, 1)

	assert.Equal(t, models.PhotoTypeDynamic, resolved[0].Type)
	assert.Equal(t, "Rear Left Fender", resolved[0].Label)
	assert.True(t, resolved[0].NeedAttention)
}

func TestParsePhotoMetadataSingleNeedsOneEntry(t *testing.T) {
	resolved, errs := ParsePhotoMetadata(`[{"label":"a"},{"label":"b"}]`, UploadModeSingle, 2)
	assert.Nil(t, resolved)
	require.Len(t, errs, 1)
	assert.Equal(t, "len", errs[0].Tag)
}

func TestParsePhotoMetadataEmptyArray(t *testing.T) {
	resolved, errs := ParsePhotoMetadata(`[]`, UploadModeBatchDynamic, 0)
	assert.Nil(t, resolved)
	require.Len(t, errs, 1)
	assert.Equal(t, "required", errs[0].Tag)
}

func TestParsePhotoMetadataCountMismatch(t *testing.T) {
	resolved, errs := ParsePhotoMetadata(`[{"originalLabel":"A"},{"originalLabel":"B"}]`, UploadModeBatchFixed, 3)
	assert.Nil(t, resolved)
	require.Len(t, errs, 1)
	assert.Equal(t, "count", errs[0].Tag)
	assert.Equal(t, "metadata has 2 entries but 3 files were uploaded", errs[0].Message)
}

func TestParsePhotoMetadataBadJSON(t *testing.T) {
	resolved, errs := ParsePhotoMetadata(`not json`, UploadModeBatchDynamic, 1)
	assert.Nil(t, resolved)
	require.Len(t, errs, 1)
	assert.Equal(t, "metadata", errs[0].Field)
	assert.Equal(t, "json", errs[0].Tag)
}

func TestParsePhotoMetadataInvalidMode(t *testing.T) {
	resolved, errs := ParsePhotoMetadata(`[{"label":"a"}]`, "bulk", 1)
	assert.Nil(t, resolved)
	require.Len(t, errs, 1)
	assert.Equal(t, "mode", errs[0].Field)
	assert.Equal(t, "oneof", errs[0].Tag)
}

func TestParsePhotoMetadataKeepsLabelVerbatim(t *testing.T) {
	raw := `[{"originalLabel":"  Tampak Samping Kiri "}]`

	resolved, errs := ParsePhotoMetadata(raw, UploadModeBatchFixed, 1)
	require.Nil(t, errs)
	assert.Equal(t, "  Tampak Samping Kiri ", resolved[0].Label)
}
