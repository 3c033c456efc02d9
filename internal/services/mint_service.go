package services

import (
	"context"
	"fmt"
	"time"

	"inspekta/internal/config"
	"inspekta/internal/models"
	"inspekta/internal/repositories/interfaces"
	"inspekta/internal/utils"
	"inspekta/pkg/blockchain"
	"inspekta/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MintService anchors approved reports on chain as one-of-one NFTs. The
// token's metadata URI points at the stored report, whose SHA-256 hash was
// recorded at approval time.
type MintService interface {
	Mint(ctx context.Context, inspectionID primitive.ObjectID, ownerWallet string) (*models.Inspection, error)
}

type mintService struct {
	inspectionRepo interfaces.InspectionRepository
	solana         *blockchain.SolanaClient
	config         *config.BlockchainConfig
	logger         *logger.Logger
}

func NewMintService(
	inspectionRepo interfaces.InspectionRepository,
	solana *blockchain.SolanaClient,
	config *config.BlockchainConfig,
	logger *logger.Logger,
) MintService {
	return &mintService{
		inspectionRepo: inspectionRepo,
		solana:         solana,
		config:         config,
		logger:         logger,
	}
}

func (s *mintService) Mint(ctx context.Context, inspectionID primitive.ObjectID, ownerWallet string) (*models.Inspection, error) {
	if s.solana == nil {
		return nil, fmt.Errorf("%s: blockchain is not configured", utils.ErrMintFailed)
	}

	inspection, err := s.inspectionRepo.GetByID(ctx, inspectionID)
	if err != nil {
		return nil, err
	}

	// Only approved reports can be minted, and only once
	switch inspection.Status {
	case models.InspectionStatusApproved, models.InspectionStatusMintFailed:
	case models.InspectionStatusMinted:
		return nil, fmt.Errorf("%s: inspection already minted", utils.ErrInvalidStatusChange)
	default:
		return nil, fmt.Errorf("%s: cannot mint inspection in status %s", utils.ErrInvalidStatusChange, inspection.Status)
	}

	if inspection.ReportHash == "" {
		return nil, fmt.Errorf("%s: inspection has no report hash", utils.ErrMintFailed)
	}

	name := fmt.Sprintf("%s %s %d", inspection.VehicleData.Merek, inspection.VehicleData.Tipe, inspection.VehicleData.Tahun)
	if len(name) > 32 {
		// Metaplex caps the name field at 32 bytes
		name = name[:32]
	}

	mintAddr, sig, err := s.solana.MintReportNFT(ctx, ownerWallet, blockchain.NFTMetadata{
		Name:                 name,
		Symbol:               s.config.CollectionSymbol,
		URI:                  inspection.ReportURL,
		SellerFeeBasisPoints: 0,
	})
	if err != nil {
		s.logger.WithInspectionID(inspectionID).WithError(err).Error("Mint failed")
		if updateErr := s.inspectionRepo.UpdateStatus(ctx, inspectionID, models.InspectionStatusMintFailed); updateErr != nil {
			s.logger.WithInspectionID(inspectionID).WithError(updateErr).Error("Failed to record mint failure")
		}
		return nil, fmt.Errorf("%s: %w", utils.ErrMintFailed, err)
	}

	mintedAt := time.Now()
	if err := s.inspectionRepo.SetMinted(ctx, inspectionID, mintAddr, sig, mintedAt); err != nil {
		return nil, err
	}

	inspection.Status = models.InspectionStatusMinted
	inspection.NFTMintAddress = mintAddr
	inspection.NFTTxSignature = sig
	inspection.MintedAt = &mintedAt

	s.logger.LogMintEvent(inspectionID, utils.EventInspectionMinted, mintAddr)

	return inspection, nil
}
