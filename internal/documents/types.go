package documents

// Known document type tags.
const (
	TypeCertificate = "certificate"
	TypeMarksheet   = "marksheet"
	TypeResume      = "resume"
	TypeTranscript  = "transcript"
	TypeInternship  = "internship"
	TypeProject     = "project"
	TypeOther       = "other"
)

// DefaultBucket receives every document whose type has no dedicated bucket,
// including unrecognized tags. The mapping is fixed; changing it would strand
// previously stored blobs.
const DefaultBucket = "student-documents"

var bucketByType = map[string]string{
	TypeCertificate: "certificates",
	TypeMarksheet:   "marksheets",
	TypeResume:      "resumes",
	TypeTranscript:  DefaultBucket,
	TypeInternship:  DefaultBucket,
	TypeProject:     DefaultBucket,
	TypeOther:       DefaultBucket,
}

// BucketForType resolves a document type tag to its storage bucket.
// Unrecognized tags fall back to the default bucket; the tag itself is still
// recorded verbatim on the document row.
func BucketForType(typeTag string) string {
	if bucket, ok := bucketByType[typeTag]; ok {
		return bucket
	}
	return DefaultBucket
}
