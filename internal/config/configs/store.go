package configs

import "time"

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// Store selects where the advertiser, campaign and settings documents live.
type Store struct {
	// Driver is "file" (JSON documents in DataDir) or "postgres".
	Driver  string `env:"DRIVER" envDefault:"file"`
	DataDir string `env:"DATA_DIR" envDefault:"./data"`
	// CacheTTL keeps decoded documents in memory between writes. Zero
	// disables the cache.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	// SeedFile is a YAML fixture loaded into an empty store on startup.
	SeedFile string `env:"SEED_FILE"`
}
