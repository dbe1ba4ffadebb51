package ocr

type Config struct {
	Tesseract   string   `env:"OCR_TESSERACT_BIN" envDefault:"tesseract"`            // Tesseract is the binary name or absolute path.
	Languages   []string `env:"OCR_LANGUAGES" envSeparator:"," envDefault:"por,eng"` // Languages are tesseract language codes, tried together.
	TessdataDir string   `env:"OCR_TESSDATA_DIR"`                                    // TessdataDir overrides the tesseract data directory.
	DPI         float64  `env:"OCR_DPI" envDefault:"300"`                            // DPI is the rasterization resolution for scanned pages.
	MaxPages    int      `env:"OCR_MAX_PAGES" envDefault:"0"`                        // MaxPages caps processed pages, 0 means no limit.
	MinPageText int      `env:"OCR_MIN_PAGE_TEXT" envDefault:"32"`                   // MinPageText is the rune count below which a page counts as scanned.
}
