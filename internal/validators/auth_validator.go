package validators

// Auth request payloads. Password rules follow the account policy; PIN and
// WhatsApp formats use the registered custom rules.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Role        string `json:"role" validate:"required,oneof=admin inspector"`
	InspectorID string `json:"inspectorId" validate:"omitempty,uuid_field"`
	BranchID    string `json:"cabangId" validate:"omitempty,uuid_field"`
	WhatsApp    string `json:"whatsapp" validate:"omitempty,whatsapp"`
}

// WalletLoginRequest carries a signed challenge. Only the address shape is
// checked here; signature verification is delegated to the wallet adapter on
// the client, the server just matches the address to a registered account.
type WalletLoginRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet_address"`
	Message       string `json:"message" validate:"required"`
	Signature     string `json:"signature" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type GoogleLinkRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type SetPINRequest struct {
	PIN string `json:"pin" validate:"required,pin"`
}

type VerifyPINRequest struct {
	PIN string `json:"pin" validate:"required,pin"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type UserUpdateRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	WhatsApp *string `json:"whatsapp,omitempty" validate:"omitempty,whatsapp"`
	BranchID *string `json:"cabangId,omitempty" validate:"omitempty,uuid_field"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func ValidateLogin(req *LoginRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateRegister(req *RegisterRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateWalletLogin(req *WalletLoginRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateChangePassword(req *ChangePasswordRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateSetPIN(req *SetPINRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateUserUpdate(req *UserUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
