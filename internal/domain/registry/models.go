// Package registry defines the record kinds tracked by the operations
// dashboard and the in-memory store that holds them for the lifetime of
// the process.
package registry

import "time"

// EntityKind identifies one of the record kinds held by the store.
type EntityKind string

const (
	KindEmployee      EntityKind = "employee"
	KindProject       EntityKind = "project"
	KindFile          EntityKind = "file"
	KindVendor        EntityKind = "vendor"
	KindAlert         EntityKind = "alert"
	KindTraining      EntityKind = "training-program"
	KindFieldActivity EntityKind = "field-activity"
	KindUser          EntityKind = "user"
)

// EntityRef loosely associates a record with another record of any kind.
// The reference is never validated against the store.
type EntityRef struct {
	Kind EntityKind `json:"kind"`
	ID   string     `json:"id"`
}

// Coordinates is a geographic point attached to a field activity.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Roles maps the short organizational role code to its display form,
// ordered top-down in RoleCodes.
var Roles = map[string]string{
	"DG":       "DG (Director General)",
	"ADG":      "ADG (Addl Director General)",
	"PED":      "PED (Principal Exec Director)",
	"ED":       "ED (Executive Director)",
	"Director": "Director",
	"JD":       "JD (Joint Director)",
	"ADE":      "ADE (Addl Director Electrical)",
	"SSE":      "SSE (Senior Section Engineer)",
	"JE":       "JE (Junior Engineer)",
}

var RoleCodes = []string{"DG", "ADG", "PED", "ED", "Director", "JD", "ADE", "SSE", "JE"}

const (
	EmployeeStatusPresent   = "Present"
	EmployeeStatusAbsent    = "Absent"
	EmployeeStatusFieldDuty = "Field Duty"
)

var EmployeeStatuses = []string{EmployeeStatusPresent, EmployeeStatusAbsent, EmployeeStatusFieldDuty}

const (
	ProjectStatusOnTrack    = "On Track"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusDelayed    = "Delayed"
	ProjectStatusCompleted  = "Completed"
)

var ProjectStatuses = []string{ProjectStatusOnTrack, ProjectStatusInProgress, ProjectStatusDelayed, ProjectStatusCompleted}

const (
	FileStatusPending     = "Pending"
	FileStatusUnderReview = "Under Review"
	FileStatusApproved    = "Approved"
	FileStatusRejected    = "Rejected"
)

var FileStatuses = []string{FileStatusPending, FileStatusUnderReview, FileStatusApproved, FileStatusRejected}

const (
	VendorStatusApproved    = "Approved"
	VendorStatusRejected    = "Rejected"
	VendorStatusUnderReview = "Under Review"
	VendorStatusPending     = "Pending"
)

var VendorStatuses = []string{VendorStatusApproved, VendorStatusRejected, VendorStatusUnderReview, VendorStatusPending}

const (
	AlertTypeCritical = "Critical"
	AlertTypeWarning  = "Warning"
	AlertTypeInfo     = "Info"

	AlertStatusActive    = "Active"
	AlertStatusResolved  = "Resolved"
	AlertStatusDismissed = "Dismissed"
)

var (
	AlertTypes      = []string{AlertTypeCritical, AlertTypeWarning, AlertTypeInfo}
	AlertStatuses   = []string{AlertStatusActive, AlertStatusResolved, AlertStatusDismissed}
	AlertCategories = []string{"File", "Vendor", "Employee", "Project"}
)

const (
	TrainingStatusUpcoming  = "Upcoming"
	TrainingStatusOngoing   = "Ongoing"
	TrainingStatusCompleted = "Completed"
	TrainingStatusCancelled = "Cancelled"
)

var TrainingStatuses = []string{TrainingStatusUpcoming, TrainingStatusOngoing, TrainingStatusCompleted, TrainingStatusCancelled}

const (
	ActivityStatusScheduled  = "Scheduled"
	ActivityStatusInProgress = "In Progress"
	ActivityStatusCompleted  = "Completed"
	ActivityStatusCancelled  = "Cancelled"
)

var (
	ActivityStatuses = []string{ActivityStatusScheduled, ActivityStatusInProgress, ActivityStatusCompleted, ActivityStatusCancelled}
	ActivityTypes    = []string{"Inspection", "Trial", "Maintenance", "Survey"}
)

var Priorities = []string{"High", "Medium", "Low"}

const DefaultPriority = "Medium"

// OverdueThresholdDays is the number of pending days beyond which a file
// counts as overdue. A file pending exactly this many days is not overdue.
const OverdueThresholdDays = 7

type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	EmployeeID  string    `json:"employeeId"`
	Role        string    `json:"role"`
	Designation string    `json:"designation"`
	Shift       string    `json:"shift"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Department  string    `json:"department"`
	Contact     string    `json:"contact,omitempty"`
	Email       string    `json:"email,omitempty"`
	JoinDate    time.Time `json:"joinDate"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Project struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	Progress      int        `json:"progress"`
	Lead          string     `json:"lead"`
	Department    string     `json:"department"`
	StartDate     time.Time  `json:"startDate"`
	TargetDate    time.Time  `json:"targetDate"`
	ActualEndDate *time.Time `json:"actualEndDate,omitempty"`
	Priority      string     `json:"priority"`
	Budget        *int       `json:"budget,omitempty"`
	Resources     []string   `json:"resources"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type File struct {
	ID             string    `json:"id"`
	FileID         string    `json:"fileId"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description,omitempty"`
	CurrentOfficer string    `json:"currentOfficer"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	SubmissionDate time.Time `json:"submissionDate"`
	LastMovedDate  time.Time `json:"lastMovedDate"`
	PendingDays    int       `json:"pendingDays"`
	Department     string    `json:"department"`
	FileType       string    `json:"fileType"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Vendor struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	VendorID          string     `json:"vendorId"`
	Product           string     `json:"product"`
	Status            string     `json:"status"`
	Stage             string     `json:"stage"`
	ContactPerson     string     `json:"contactPerson,omitempty"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Address           string     `json:"address,omitempty"`
	RegistrationDate  time.Time  `json:"registrationDate"`
	ExpiryDate        *time.Time `json:"expiryDate,omitempty"`
	PerformanceRating int        `json:"performanceRating"`
	Category          string     `json:"category"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type Alert struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Related     *EntityRef `json:"related,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

type TrainingProgram struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	Instructor          string    `json:"instructor"`
	Department          string    `json:"department"`
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
	MaxParticipants     int       `json:"maxParticipants"`
	CurrentParticipants int       `json:"currentParticipants"`
	Skills              []string  `json:"skills"`
	Location            string    `json:"location,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}

type FieldActivity struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description,omitempty"`
	AssignedOfficer string       `json:"assignedOfficer"`
	Location        string       `json:"location"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	ScheduledDate   time.Time    `json:"scheduledDate"`
	CompletedDate   *time.Time   `json:"completedDate,omitempty"`
	Status          string       `json:"status"`
	ActivityType    string       `json:"activityType"`
	Priority        string       `json:"priority"`
	Notes           string       `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// User is a login identity. It is unrelated to the role hierarchy shown on
// the dashboard; role selection in the UI stays cosmetic.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
