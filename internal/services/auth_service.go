package services

import (
	"context"
	"fmt"

	"inspekta/internal/config"
	"inspekta/internal/models"
	"inspekta/internal/repositories/interfaces"
	"inspekta/internal/utils"
	"inspekta/internal/validators"
	"inspekta/pkg/logger"
	"inspekta/pkg/oauth"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req *validators.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *validators.LoginRequest) (*models.User, *utils.TokenPair, error)
	WalletLogin(ctx context.Context, req *validators.WalletLoginRequest) (*models.User, *utils.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error)
	ChangePassword(ctx context.Context, userID primitive.ObjectID, req *validators.ChangePasswordRequest) error
	LinkGoogleAccount(ctx context.Context, userID primitive.ObjectID, req *validators.GoogleLinkRequest) error
	SetPIN(ctx context.Context, userID primitive.ObjectID, req *validators.SetPINRequest) error
	VerifyPIN(ctx context.Context, userID primitive.ObjectID, pin string) error
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *validators.UserUpdateRequest) (*models.User, error)

	ListUsers(ctx context.Context, role string, params *utils.PaginationParams) ([]*models.User, int64, error)
	DeleteUser(ctx context.Context, userID primitive.ObjectID) error
}

type authService struct {
	userRepo interfaces.UserRepository
	google   *oauth.GoogleOAuthProvider
	security *config.SecurityConfig
	logger   *logger.Logger
}

func NewAuthService(
	userRepo interfaces.UserRepository,
	google *oauth.GoogleOAuthProvider,
	security *config.SecurityConfig,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		google:   google,
		security: security,
		logger:   logger,
	}
}

func (s *authService) Register(ctx context.Context, req *validators.RegisterRequest) (*models.User, error) {
	if validationErrors := validators.ValidateRegister(req); validationErrors != nil {
		return nil, validationErrors
	}

	if existing, _ := s.userRepo.GetByEmail(ctx, req.Email); existing != nil {
		return nil, fmt.Errorf(utils.ErrUserExists)
	}

	// Inspectors must carry their directory identifiers
	if req.Role == string(models.UserRoleInspector) && (req.InspectorID == "" || req.BranchID == "") {
		return nil, fmt.Errorf("inspector accounts require inspectorId and cabangId")
	}

	// Inspector identifiers map one to one onto accounts
	if req.InspectorID != "" {
		if existing, _ := s.userRepo.GetByInspectorID(ctx, req.InspectorID); existing != nil {
			return nil, fmt.Errorf(utils.ErrUserExists)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         models.UserRole(req.Role),
		InspectorID:  req.InspectorID,
		BranchID:     req.BranchID,
		WhatsApp:     req.WhatsApp,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithUserID(user.ID).Info("User registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, req *validators.LoginRequest) (*models.User, *utils.TokenPair, error) {
	if validationErrors := validators.ValidateLogin(req); validationErrors != nil {
		return nil, nil, validationErrors
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, fmt.Errorf(utils.ErrInvalidCredentials)
	}

	if !user.IsActive {
		return nil, nil, fmt.Errorf(utils.ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, fmt.Errorf(utils.ErrInvalidCredentials)
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// WalletLogin authenticates by wallet address. The address must belong to a
// registered account; the signature fields are required in the payload but
// on-chain verification is delegated to the wallet adapter on the client.
func (s *authService) WalletLogin(ctx context.Context, req *validators.WalletLoginRequest) (*models.User, *utils.TokenPair, error) {
	if validationErrors := validators.ValidateWalletLogin(req); validationErrors != nil {
		return nil, nil, validationErrors
	}

	user, err := s.userRepo.GetByWalletAddress(ctx, req.WalletAddress)
	if err != nil {
		return nil, nil, fmt.Errorf(utils.ErrInvalidCredentials)
	}

	if !user.IsActive {
		return nil, nil, fmt.Errorf(utils.ErrForbidden)
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	return utils.RefreshAccessToken(refreshToken, s.security.JWTSecret)
}

func (s *authService) ChangePassword(ctx context.Context, userID primitive.ObjectID, req *validators.ChangePasswordRequest) error {
	if validationErrors := validators.ValidateChangePassword(req); validationErrors != nil {
		return validationErrors
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return fmt.Errorf(utils.ErrInvalidCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.Update(ctx, userID, map[string]interface{}{"password_hash": string(hash)})
}

func (s *authService) LinkGoogleAccount(ctx context.Context, userID primitive.ObjectID, req *validators.GoogleLinkRequest) error {
	if validationErrors := validators.ValidateStruct(req); validationErrors != nil {
		return validationErrors
	}

	info, err := s.google.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		return fmt.Errorf(utils.ErrInvalidToken)
	}

	// One Google account links to one user
	if existing, _ := s.userRepo.GetByGoogleID(ctx, info.ID); existing != nil && existing.ID != userID {
		return fmt.Errorf("google account already linked")
	}

	return s.userRepo.Update(ctx, userID, map[string]interface{}{"google_id": info.ID})
}

func (s *authService) SetPIN(ctx context.Context, userID primitive.ObjectID, req *validators.SetPINRequest) error {
	if validationErrors := validators.ValidateSetPIN(req); validationErrors != nil {
		return validationErrors
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}

	return s.userRepo.Update(ctx, userID, map[string]interface{}{"pin_hash": string(hash)})
}

func (s *authService) VerifyPIN(ctx context.Context, userID primitive.ObjectID, pin string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.PINHash == "" {
		return fmt.Errorf("PIN not set")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PINHash), []byte(pin)); err != nil {
		return fmt.Errorf(utils.ErrInvalidCredentials)
	}
	return nil
}

func (s *authService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *validators.UserUpdateRequest) (*models.User, error) {
	if validationErrors := validators.ValidateUserUpdate(req); validationErrors != nil {
		return nil, validationErrors
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.WhatsApp != nil {
		updates["whatsapp"] = *req.WhatsApp
	}
	if req.BranchID != nil {
		updates["branch_id"] = *req.BranchID
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(ctx, userID, updates); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) ListUsers(ctx context.Context, role string, params *utils.PaginationParams) ([]*models.User, int64, error) {
	if role != "" {
		return s.userRepo.GetByRole(ctx, models.UserRole(role), params)
	}
	return s.userRepo.List(ctx, params)
}

func (s *authService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

func (s *authService) issueTokens(user *models.User) (*utils.TokenPair, error) {
	return utils.GenerateTokenPair(user.ID, string(user.Role), user.Email, user.InspectorID, s.security.JWTSecret)
}
