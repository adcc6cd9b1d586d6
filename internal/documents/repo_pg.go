package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `id, user_id, document_type, document_name, description, file_path, file_size, mime_type, semester, academic_year, verified, upload_date`

// Insert stores a new document row. The id is assigned by the database.
func (r *PGRepo) Insert(ctx context.Context, doc Document) (Document, error) {
	const query = `
INSERT INTO student_documents (
    user_id,
    document_type,
    document_name,
    description,
    file_path,
    file_size,
    mime_type,
    semester,
    academic_year,
    verified,
    upload_date
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE, $10)
RETURNING id`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		doc.UserID,
		doc.Type,
		doc.Name,
		nullableString(doc.Description),
		doc.FilePath,
		doc.FileSize,
		nullableString(doc.MimeType),
		nullableInt(doc.Semester),
		nullableString(doc.AcademicYear),
		doc.UploadDate,
	).Scan(&doc.ID)
	if err != nil {
		return Document{}, err
	}
	doc.Verified = false
	return doc, nil
}

// ListByOwner lists a user's documents ordered newest-first.
func (r *PGRepo) ListByOwner(ctx context.Context, userID string) ([]Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM student_documents
WHERE user_id = $1
ORDER BY upload_date DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// GetByID fetches a document by id, scoped to its owner.
func (r *PGRepo) GetByID(ctx context.Context, userID, docID string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM student_documents
WHERE user_id = $1 AND id = $2
LIMIT 1`

	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, userID, docID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// DeleteByID removes a document row scoped to its owner and returns the
// removed row. Ownership is enforced by the WHERE clause, not the caller.
func (r *PGRepo) DeleteByID(ctx context.Context, userID, docID string) (Document, error) {
	const query = `
DELETE FROM student_documents
WHERE user_id = $1 AND id = $2
RETURNING ` + documentColumns

	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, userID, docID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var description sql.NullString
	var mimeType sql.NullString
	var semester sql.NullInt64
	var academicYear sql.NullString
	if err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Type,
		&doc.Name,
		&description,
		&doc.FilePath,
		&doc.FileSize,
		&mimeType,
		&semester,
		&academicYear,
		&doc.Verified,
		&doc.UploadDate,
	); err != nil {
		return Document{}, err
	}
	if description.Valid {
		doc.Description = description.String
	}
	if mimeType.Valid {
		doc.MimeType = mimeType.String
	}
	if semester.Valid {
		v := int(semester.Int64)
		doc.Semester = &v
	}
	if academicYear.Valid {
		doc.AcademicYear = academicYear.String
	}
	return doc, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}

var _ Repo = (*PGRepo)(nil)
