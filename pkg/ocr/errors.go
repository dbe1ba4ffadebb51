package ocr

import "errors"

var (
	// ErrUnsupportedDocument indicates the bytes could not be opened as a PDF.
	ErrUnsupportedDocument = errors.New("unsupported document")

	// ErrNoTextContent indicates the document yielded no usable text from
	// either the text layer or OCR.
	ErrNoTextContent = errors.New("document contains no extractable text")

	// ErrOCRFailed indicates the tesseract subprocess failed on every page
	// that needed it.
	ErrOCRFailed = errors.New("ocr subprocess failed")
)
