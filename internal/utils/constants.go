package utils

import "time"

// Application Constants
const (
	AppName    = "Inspekta"
	AppVersion = "1.0.0"

	// Default values
	DefaultLanguage = "id"
	DefaultTimeZone = "Asia/Jakarta"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength  = 8
	PasswordMaxLength  = 128
	PINLength          = 6

	// Inspection Constants
	LatestArchivedDefaultLimit = 10
	LatestArchivedMaxLimit     = 50
	DashboardMonthsWindow      = 12
	MaxPhotosPerUpload         = 30
	MaxPhotosPerInspection     = 120

	// File Upload
	MaxImageSize    = 5 * 1024 * 1024  // 5MB
	MaxDocumentSize = 10 * 1024 * 1024 // 10MB
	SignedURLTTL    = 15 * time.Minute

	// Rate Limiting
	DefaultRateLimit = 100
	LoginRateLimit   = 5
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFailed  = "failed"
)

// Error Messages
const (
	ErrInvalidCredentials  = "invalid credentials"
	ErrUserNotFound        = "user not found"
	ErrUserExists          = "user already exists"
	ErrInvalidToken        = "invalid token"
	ErrTokenExpired        = "token expired"
	ErrInvalidInput        = "invalid input"
	ErrInternalServer      = "internal server error"
	ErrUnauthorized        = "unauthorized"
	ErrForbidden           = "forbidden"
	ErrNotFound            = "not found"
	ErrConflict            = "conflict"
	ErrValidationFailed    = "validation failed"
	ErrFileUploadFailed    = "file upload failed"
	ErrInspectionNotFound  = "inspection not found"
	ErrPhotoNotFound       = "photo not found"
	ErrMintFailed          = "mint failed"
	ErrInvalidStatusChange = "invalid status transition"
)

// Cache Keys
const (
	CacheUserPrefix       = "user:"
	CacheInspectionPrefix = "inspection:"
	CachePhotosPrefix     = "photos:inspection:"
	CacheDashboardStats   = "dashboard:stats"
	CacheLatestArchived   = "inspections:latest_archived"
	CacheRateLimitPrefix  = "rate_limit:"
	CacheSessionPrefix    = "session:"
)

// Event Types
const (
	EventUserRegistered      = "user_registered"
	EventUserLogin           = "user_login"
	EventInspectionSubmitted = "inspection_submitted"
	EventInspectionApproved  = "inspection_approved"
	EventInspectionMinted    = "inspection_minted"
	EventMintFailed          = "mint_failed"
)

// File Types
var (
	AllowedImageTypes    = []string{"jpg", "jpeg", "png", "webp"}
	AllowedDocumentTypes = []string{"pdf"}
)
