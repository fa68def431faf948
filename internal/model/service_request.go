package model

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

const (
	SourcePublicForm = "public_form"
	SourceDashboard  = "client_dashboard"
)

// ServiceRequest is a structured quote/service inquiry with a status
// lifecycle: pending -> in-progress -> completed.
type ServiceRequest struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId,omitempty"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Company        string    `json:"company,omitempty"`
	ServiceType    string    `json:"serviceType"`
	PackageDetails string    `json:"packageDetails,omitempty"`
	Timeline       string    `json:"timeline,omitempty"`
	Budget         string    `json:"budget,omitempty"`
	Message        string    `json:"message,omitempty"`
	Status         string    `json:"status"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NextStatus reports whether a transition from -> to is a legal step of the
// lifecycle. Only forward single steps are allowed.
func NextStatus(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusInProgress
	case StatusInProgress:
		return to == StatusCompleted
	default:
		return false
	}
}

// PublicServiceRequestBody is the unauthenticated quote-form body.
type PublicServiceRequestBody struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	ServiceType    string `json:"serviceType"`
	PackageDetails string `json:"packageDetails"`
	Timeline       string `json:"timeline"`
	Budget         string `json:"budget"`
	Message        string `json:"message"`
}

// ClientServiceRequestBody is the authenticated intake body.
type ClientServiceRequestBody struct {
	UserID      string `json:"userId"`
	ServiceType string `json:"serviceType"`
	Description string `json:"description"`
	ContactInfo string `json:"contactInfo"`
}

// DashboardData aggregates a client's service requests.
type DashboardData struct {
	ActiveServices int64            `json:"activeServices"`
	TotalContracts int64            `json:"totalContracts"`
	TotalSpent     int64            `json:"totalSpent"`
	RecentActivity []DashboardEntry `json:"recentActivity"`
}

// DashboardEntry is one line of recent activity.
type DashboardEntry struct {
	ID          string    `json:"id"`
	ServiceType string    `json:"serviceType"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
