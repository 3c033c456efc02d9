package config

type BlockchainConfig struct {
	RPCEndpoint      string `yaml:"rpc_endpoint"`
	MintAuthorityKey string `yaml:"mint_authority_key"`
	CollectionName   string `yaml:"collection_name"`
	CollectionSymbol string `yaml:"collection_symbol"`
	Enabled          bool   `yaml:"enabled"`
}

func loadBlockchainConfig() *BlockchainConfig {
	return &BlockchainConfig{
		RPCEndpoint:      getEnv("SOLANA_RPC_ENDPOINT", "https://api.devnet.solana.com"),
		MintAuthorityKey: getEnv("SOLANA_MINT_AUTHORITY_KEY", ""),
		CollectionName:   getEnv("NFT_COLLECTION_NAME", "Inspekta Reports"),
		CollectionSymbol: getEnv("NFT_COLLECTION_SYMBOL", "INSPKT"),
		Enabled:          getEnvAsBool("BLOCKCHAIN_ENABLED", false),
	}
}
