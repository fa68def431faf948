package model

// Submission is a general contact-form record. It is immutable once written;
// nothing in the API updates or deletes it.
type Submission struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
	IP        string `json:"ip"`
}

// CreateSubmissionRequest is the public contact-form body.
type CreateSubmissionRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}
