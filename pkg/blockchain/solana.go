package blockchain

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"fmt"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/associated_token_account"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/types"
)

type Config struct {
	RPCEndpoint      string
	MintAuthorityKey string
}

// NFTMetadata is the on-chain metadata for one report certificate. URI
// points at the stored metadata JSON describing the report PDF and its hash.
type NFTMetadata struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
}

// SolanaClient mints report certificates. One report maps to exactly one
// token: decimals 0, supply 1, MaxSupply 1.
type SolanaClient struct {
	rpc       *client.Client
	authority types.Account
}

func NewSolanaClient(config *Config) (*SolanaClient, error) {
	if config.MintAuthorityKey == "" {
		return nil, fmt.Errorf("mint authority key not configured")
	}

	authority, err := parseAuthorityKey(config.MintAuthorityKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mint authority key: %w", err)
	}

	return &SolanaClient{
		rpc:       client.NewClient(config.RPCEndpoint),
		authority: authority,
	}, nil
}

// parseAuthorityKey accepts either a base58-encoded private key or the
// solana-keygen JSON array format.
func parseAuthorityKey(raw string) (types.Account, error) {
	if raw[0] == '[' {
		var ints []int
		if err := json.Unmarshal([]byte(raw), &ints); err != nil {
			return types.Account{}, fmt.Errorf("unmarshal keypair json: %w", err)
		}
		if len(ints) != ed25519.PrivateKeySize {
			return types.Account{}, fmt.Errorf("unexpected key length: got %d, want %d", len(ints), ed25519.PrivateKeySize)
		}
		keyBytes := make([]byte, len(ints))
		for i, v := range ints {
			keyBytes[i] = byte(v)
		}
		return types.AccountFromBytes(keyBytes)
	}
	return types.AccountFromBase58(raw)
}

// AuthorityAddress returns the mint authority's public key in base58.
func (s *SolanaClient) AuthorityAddress() string {
	return s.authority.PublicKey.ToBase58()
}

// MintReportNFT mints one certificate token into ownerWallet's associated
// token account. Returns the mint address and transaction signature.
func (s *SolanaClient) MintReportNFT(ctx context.Context, ownerWallet string, meta NFTMetadata) (string, string, error) {
	feePayer := s.authority
	owner := common.PublicKeyFromString(ownerWallet)
	mint := types.NewAccount()

	ata, _, err := common.FindAssociatedTokenAddress(owner, mint.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("FindAssociatedTokenAddress: %w", err)
	}

	metadataPubkey, err := token_metadata.GetTokenMetaPubkey(mint.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("GetTokenMetaPubkey: %w", err)
	}
	masterEditionPubkey, err := token_metadata.GetMasterEdition(mint.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("GetMasterEdition: %w", err)
	}

	mintRent, err := s.rpc.GetMinimumBalanceForRentExemption(ctx, token.MintAccountSize)
	if err != nil {
		return "", "", fmt.Errorf("GetMinimumBalanceForRentExemption: %w", err)
	}

	recent, err := s.rpc.GetLatestBlockhash(ctx)
	if err != nil {
		return "", "", fmt.Errorf("GetLatestBlockhash: %w", err)
	}

	maxSupply := uint64(1)

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Signers: []types.Account{mint, feePayer},
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        feePayer.PublicKey,
			RecentBlockhash: recent.Blockhash,
			Instructions: []types.Instruction{
				system.CreateAccount(system.CreateAccountParam{
					From:     feePayer.PublicKey,
					New:      mint.PublicKey,
					Owner:    common.TokenProgramID,
					Lamports: mintRent,
					Space:    token.MintAccountSize,
				}),
				token.InitializeMint(token.InitializeMintParam{
					Decimals:   0,
					Mint:       mint.PublicKey,
					MintAuth:   feePayer.PublicKey,
					FreezeAuth: &feePayer.PublicKey,
				}),
				token_metadata.CreateMetadataAccountV3(
					token_metadata.CreateMetadataAccountV3Param{
						Metadata:                metadataPubkey,
						Mint:                    mint.PublicKey,
						MintAuthority:           feePayer.PublicKey,
						UpdateAuthority:         feePayer.PublicKey,
						Payer:                   feePayer.PublicKey,
						UpdateAuthorityIsSigner: true,
						IsMutable:               true,
						Data: token_metadata.DataV2{
							Name:                 meta.Name,
							Symbol:               meta.Symbol,
							Uri:                  meta.URI,
							SellerFeeBasisPoints: meta.SellerFeeBasisPoints,
							Creators: &[]token_metadata.Creator{
								{
									Address:  feePayer.PublicKey,
									Verified: true,
									Share:    100,
								},
							},
						},
						CollectionDetails: nil,
					},
				),
				associated_token_account.CreateAssociatedTokenAccount(
					associated_token_account.CreateAssociatedTokenAccountParam{
						Funder:                 feePayer.PublicKey,
						Owner:                  owner,
						Mint:                   mint.PublicKey,
						AssociatedTokenAccount: ata,
					},
				),
				token.MintTo(token.MintToParam{
					Mint:   mint.PublicKey,
					To:     ata,
					Auth:   feePayer.PublicKey,
					Amount: 1,
				}),
				token_metadata.CreateMasterEditionV3(
					token_metadata.CreateMasterEditionParam{
						Edition:         masterEditionPubkey,
						Mint:            mint.PublicKey,
						UpdateAuthority: feePayer.PublicKey,
						MintAuthority:   feePayer.PublicKey,
						Metadata:        metadataPubkey,
						Payer:           feePayer.PublicKey,
						MaxSupply:       &maxSupply,
					},
				),
			},
		}),
	})
	if err != nil {
		return "", "", fmt.Errorf("NewTransaction: %w", err)
	}

	sig, err := s.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return "", "", fmt.Errorf("SendTransaction: %w", err)
	}

	return mint.PublicKey.ToBase58(), sig, nil
}
