// Package ocr extracts text from uploaded candidate documents.
//
// PDFs are opened with go-fitz and read page by page. Pages with an embedded
// text layer are used as-is; pages without one (scans) are rasterized and fed
// to a tesseract subprocess behind the Runner interface, so tests can stub
// the external command. Extracted text is NFC-normalized and
// whitespace-cleaned before it reaches the structuring step.
package ocr
