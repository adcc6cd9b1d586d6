package profiles

import "time"

// Profile holds one student's self-reported academic profile. Exactly one
// row exists per user; saving is an upsert keyed on the owning user id.
type Profile struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"-"`
	StudentID             string    `json:"studentId"`
	FirstName             string    `json:"firstName"`
	LastName              string    `json:"lastName"`
	Email                 string    `json:"email,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	Department            string    `json:"department,omitempty"`
	YearOfStudy           int       `json:"yearOfStudy"`
	EnrollmentYear        int       `json:"enrollmentYear,omitempty"`
	CGPA                  float64   `json:"cgpa"`
	DateOfBirth           string    `json:"dateOfBirth,omitempty"`
	Address               string    `json:"address,omitempty"`
	EmergencyContactName  string    `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string    `json:"emergencyContactPhone,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
