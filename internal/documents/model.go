package documents

import "time"

// Document represents one uploaded file's metadata. The row is the single
// source of truth for whether a document exists from the owner's
// perspective; the blob it references lives in the bucket derived from Type.
type Document struct {
	ID           string
	UserID       string
	Type         string
	Name         string
	Description  string
	FilePath     string
	FileSize     int64
	MimeType     string
	Semester     *int
	AcademicYear string
	Verified     bool
	UploadDate   time.Time
}
