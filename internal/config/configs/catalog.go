package configs

// Catalog points at the local creative files offered by the asset picker.
type Catalog struct {
	AssetsDir string `env:"ASSETS_DIR" envDefault:"./public/ads"`
	URLPrefix string `env:"URL_PREFIX" envDefault:"/ads"`
}
