package config

type QRGen struct {
	OutputDir string `env:"QRGEN_OUTPUT_DIR" envDefault:"qrcodes"`
	Overwrite bool   `env:"QRGEN_OVERWRITE" envDefault:"false"`
}
