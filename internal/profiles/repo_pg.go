package profiles

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const profileColumns = `id, user_id, student_id, first_name, last_name, email, phone, department, year_of_study, enrollment_year, cgpa, date_of_birth, address, emergency_contact_name, emergency_contact_phone, created_at, updated_at`

// GetByUser returns the profile owned by userID.
func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT ` + profileColumns + `
FROM student_profiles
WHERE user_id = $1
LIMIT 1`

	profile, err := scanProfile(r.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return profile, nil
}

// Upsert inserts or replaces the user's profile row and returns the stored row.
func (r *PGRepo) Upsert(ctx context.Context, profile Profile) (Profile, error) {
	const query = `
INSERT INTO student_profiles (
    user_id, student_id, first_name, last_name, email, phone, department,
    year_of_study, enrollment_year, cgpa, date_of_birth, address,
    emergency_contact_name, emergency_contact_phone, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  student_id = EXCLUDED.student_id,
  first_name = EXCLUDED.first_name,
  last_name = EXCLUDED.last_name,
  email = EXCLUDED.email,
  phone = EXCLUDED.phone,
  department = EXCLUDED.department,
  year_of_study = EXCLUDED.year_of_study,
  enrollment_year = EXCLUDED.enrollment_year,
  cgpa = EXCLUDED.cgpa,
  date_of_birth = EXCLUDED.date_of_birth,
  address = EXCLUDED.address,
  emergency_contact_name = EXCLUDED.emergency_contact_name,
  emergency_contact_phone = EXCLUDED.emergency_contact_phone,
  updated_at = now()
RETURNING ` + profileColumns

	stored, err := scanProfile(r.DB.QueryRowContext(
		ctx,
		query,
		profile.UserID,
		profile.StudentID,
		profile.FirstName,
		profile.LastName,
		nullableString(profile.Email),
		nullableString(profile.Phone),
		nullableString(profile.Department),
		profile.YearOfStudy,
		nullableInt(profile.EnrollmentYear),
		profile.CGPA,
		nullableString(profile.DateOfBirth),
		nullableString(profile.Address),
		nullableString(profile.EmergencyContactName),
		nullableString(profile.EmergencyContactPhone),
	))
	if err != nil {
		return Profile{}, err
	}
	return stored, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (Profile, error) {
	var p Profile
	var email, phone, department sql.NullString
	var enrollmentYear sql.NullInt64
	var cgpa sql.NullFloat64
	var dateOfBirth sql.NullTime
	var address, emergencyName, emergencyPhone sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.StudentID,
		&p.FirstName,
		&p.LastName,
		&email,
		&phone,
		&department,
		&p.YearOfStudy,
		&enrollmentYear,
		&cgpa,
		&dateOfBirth,
		&address,
		&emergencyName,
		&emergencyPhone,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return Profile{}, err
	}
	if email.Valid {
		p.Email = email.String
	}
	if phone.Valid {
		p.Phone = phone.String
	}
	if department.Valid {
		p.Department = department.String
	}
	if enrollmentYear.Valid {
		p.EnrollmentYear = int(enrollmentYear.Int64)
	}
	if cgpa.Valid {
		p.CGPA = cgpa.Float64
	}
	if dateOfBirth.Valid {
		p.DateOfBirth = dateOfBirth.Time.Format("2006-01-02")
	}
	if address.Valid {
		p.Address = address.String
	}
	if emergencyName.Valid {
		p.EmergencyContactName = emergencyName.String
	}
	if emergencyPhone.Valid {
		p.EmergencyContactPhone = emergencyPhone.String
	}
	return p, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
