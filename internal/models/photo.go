package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PhotoType string

const (
	PhotoTypeFixed    PhotoType = "FIXED"
	PhotoTypeDynamic  PhotoType = "DYNAMIC"
	PhotoTypeDocument PhotoType = "DOCUMENT"
)

// FrontViewLabel is the predefined fixed-photo label every archived
// inspection must carry; listing queries filter on it.
const FrontViewLabel = "Tampak Depan"

// Photo is one stored image, owned exclusively by its parent inspection.
// Label text is stored exactly as the client sent it; reports render it
// verbatim.
type Photo struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	InspectionID  primitive.ObjectID `json:"inspectionId" bson:"inspection_id" validate:"required"`
	Type          PhotoType          `json:"type" bson:"type" validate:"required"`
	Path          string             `json:"path" bson:"path" validate:"required"`
	Label         string             `json:"label,omitempty" bson:"label,omitempty"`
	OriginalLabel string             `json:"originalLabel,omitempty" bson:"original_label,omitempty"`
	NeedAttention bool               `json:"needAttention" bson:"need_attention" default:"false"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
}
