package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	DocumentID   string    `json:"documentId"`
	DocumentType string    `json:"documentType"`
	DocumentName string    `json:"documentName"`
	Description  string    `json:"description,omitempty"`
	FileSize     int64     `json:"fileSize"`
	MimeType     string    `json:"mimeType,omitempty"`
	Semester     *int      `json:"semester,omitempty"`
	AcademicYear string    `json:"academicYear,omitempty"`
	Verified     bool      `json:"verified"`
	UploadDate   time.Time `json:"uploadDate"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:   doc.ID,
		DocumentType: doc.Type,
		DocumentName: doc.Name,
		Description:  doc.Description,
		FileSize:     doc.FileSize,
		MimeType:     doc.MimeType,
		Semester:     doc.Semester,
		AcademicYear: doc.AcademicYear,
		Verified:     doc.Verified,
		UploadDate:   doc.UploadDate,
	}
}
