// Package file archives original candidate uploads behind a Storage
// interface with local-disk and S3 backends.
//
// Helpers validate uploads before the pipeline touches them: IsPDF gates the
// accepted document type, ValidateSize and ValidateMIMEType enforce limits,
// Hash produces the content digest used as the extraction cache key, and
// SanitizeFilename strips path components from client-supplied names.
//
// # Usage
//
//	storage, err := file.NewLocalStorage(cfg.ArchiveDir, "/files/")
//	if err != nil {
//		return err
//	}
//
//	if !file.IsPDF(upload.Filename, upload.Content) {
//		return errDocumentNotSupported
//	}
//	stored, err := storage.Save(ctx, bytes.NewReader(upload.Content), "uploads/"+documentID+".pdf")
//
// Both backends confine writes to their configured root and clean up partial
// files on canceled uploads.
package file
