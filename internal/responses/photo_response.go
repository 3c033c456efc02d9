package responses

import "inspekta/internal/models"

// PhotoResponse is the client-facing shape of one photo. An unlabeled photo
// is served with an empty label, exactly as stored.
type PhotoResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	URL           string `json:"url"`
	Label         string `json:"label"`
	NeedAttention bool   `json:"needAttention"`
}

func NewPhotoResponse(photo *models.Photo, url string) PhotoResponse {
	return PhotoResponse{
		ID:            photo.ID.Hex(),
		Type:          string(photo.Type),
		URL:           url,
		Label:         photo.Label,
		NeedAttention: photo.NeedAttention,
	}
}

// TypedPhotoResponse groups a report's photos by type, preserving upload
// order inside each group.
type TypedPhotoResponse struct {
	Fixed    []PhotoResponse `json:"fixed"`
	Dynamic  []PhotoResponse `json:"dynamic"`
	Document []PhotoResponse `json:"document"`
}

// URLResolver turns a stored photo path into a servable URL.
type URLResolver func(path string) string

func NewTypedPhotoResponse(photos []*models.Photo, resolve URLResolver) TypedPhotoResponse {
	resp := TypedPhotoResponse{
		Fixed:    []PhotoResponse{},
		Dynamic:  []PhotoResponse{},
		Document: []PhotoResponse{},
	}
	for _, photo := range photos {
		pr := NewPhotoResponse(photo, resolve(photo.Path))
		switch photo.Type {
		case models.PhotoTypeFixed:
			resp.Fixed = append(resp.Fixed, pr)
		case models.PhotoTypeDynamic:
			resp.Dynamic = append(resp.Dynamic, pr)
		case models.PhotoTypeDocument:
			resp.Document = append(resp.Document, pr)
		}
	}
	return resp
}
