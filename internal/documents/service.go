package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"studentdocs-backend/internal/shared/metrics"
	"studentdocs-backend/internal/shared/saga"
	"studentdocs-backend/internal/shared/storage/object"
	"studentdocs-backend/internal/shared/telemetry"
	"studentdocs-backend/internal/shared/util"
)

// Service coordinates the document lifecycle across the object store and the
// metadata repo. Uploads write bytes before metadata so a row never
// references missing bytes; deletes remove metadata before bytes so a
// failure can only leak an unreferenced blob, never leave a dangling row.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// UploadInput carries the caller-declared attributes of a new document.
type UploadInput struct {
	Type         string
	Name         string
	Description  string
	FileName     string
	MimeType     string
	Size         int64
	Semester     *int
	AcademicYear string
}

var timeNow = time.Now

// Upload stores the file bytes in the bucket resolved from the document type
// and then records the metadata row. If the row insert fails, the
// just-written blob is removed best-effort and the insert error is surfaced.
func (s *Service) Upload(ctx context.Context, userID string, in UploadInput, r io.Reader) (Document, error) {
	if strings.TrimSpace(userID) == "" {
		return Document{}, ErrUnauthenticated
	}
	if strings.TrimSpace(in.Type) == "" {
		return Document{}, fmt.Errorf("%w: document type is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return Document{}, fmt.Errorf("%w: document name is required", ErrInvalidInput)
	}
	if in.Semester != nil && (*in.Semester < 1 || *in.Semester > 8) {
		return Document{}, fmt.Errorf("%w: semester must be between 1 and 8", ErrInvalidInput)
	}

	bucket := BucketForType(in.Type)
	path := derivePath(userID, in.FileName)

	var written int64
	var inserted Document

	err := saga.Run(ctx,
		saga.Step{
			Name: "put blob",
			Run: func(ctx context.Context) error {
				n, err := s.Store.Put(ctx, bucket, path, in.MimeType, r)
				if err != nil {
					return fmt.Errorf("%w: %v", ErrStorageWrite, err)
				}
				written = n
				return nil
			},
			Compensate: func(ctx context.Context) error {
				if err := s.Store.Delete(ctx, bucket, path); err != nil {
					metrics.IncOrphanedBlob()
					return fmt.Errorf("remove %s/%s: %w", bucket, path, err)
				}
				return nil
			},
		},
		saga.Step{
			Name: "insert metadata",
			Run: func(ctx context.Context) error {
				size := in.Size
				if size <= 0 {
					size = written
				}
				doc, err := s.Repo.Insert(ctx, Document{
					UserID:       userID,
					Type:         in.Type,
					Name:         in.Name,
					Description:  in.Description,
					FilePath:     path,
					FileSize:     size,
					MimeType:     in.MimeType,
					Semester:     in.Semester,
					AcademicYear: strings.TrimSpace(in.AcademicYear),
					UploadDate:   timeNow().UTC(),
				})
				if err != nil {
					return fmt.Errorf("%w: %v", ErrMetadataWrite, err)
				}
				inserted = doc
				return nil
			},
		},
	)
	if err != nil {
		metrics.IncUploadFailed()
		return Document{}, err
	}

	metrics.IncUploadCompleted()
	metrics.ObserveUploadSizeBytes(float64(inserted.FileSize))
	return inserted, nil
}

// List returns the caller's documents, newest first. An owner with no
// documents gets an empty list, not an error.
func (s *Service) List(ctx context.Context, userID string) ([]Document, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}
	return s.Repo.ListByOwner(ctx, userID)
}

// Download fetches the blob referenced by one of the caller's documents.
// A missing blob behind an existing row surfaces as ErrNotFound.
func (s *Service) Download(ctx context.Context, userID, docID string) (Document, io.ReadCloser, error) {
	if strings.TrimSpace(userID) == "" {
		return Document{}, nil, ErrUnauthenticated
	}

	doc, err := s.Repo.GetByID(ctx, userID, docID)
	if err != nil {
		return Document{}, nil, err
	}

	rc, err := s.Store.Get(ctx, BucketForType(doc.Type), doc.FilePath)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return Document{}, nil, fmt.Errorf("%w: blob missing for document %s", ErrNotFound, doc.ID)
		}
		return Document{}, nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}
	return doc, rc, nil
}

// Delete removes the metadata row first, then removes the blob best-effort.
// A blob removal failure leaves an orphaned blob; it is logged but the
// delete still succeeds because the row, the user-visible authority, is gone.
func (s *Service) Delete(ctx context.Context, userID, docID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrUnauthenticated
	}

	doc, err := s.Repo.DeleteByID(ctx, userID, docID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMetadataDelete, err)
	}

	bucket := BucketForType(doc.Type)
	if err := s.Store.Delete(ctx, bucket, doc.FilePath); err != nil {
		metrics.IncOrphanedBlob()
		telemetry.Warn("documents.blob_cleanup_failed", map[string]any{
			"document_id": doc.ID,
			"user_id":     userID,
			"bucket":      bucket,
			"path":        doc.FilePath,
			"error":       err.Error(),
		})
	}
	metrics.IncDeleteCompleted()
	return nil
}

// derivePath builds the storage key for a new blob. Owner id plus the upload
// instant in nanoseconds keeps concurrent uploads collision-free without any
// coordination step.
func derivePath(userID, fileName string) string {
	return fmt.Sprintf("%s/%d.%s", userID, timeNow().UTC().UnixNano(), util.FileExtension(fileName))
}
