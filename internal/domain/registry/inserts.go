package registry

import "time"

// Insert payloads carry every field of their record kind except the opaque
// id and createdAt, which the store assigns at insertion and never accepts
// from callers. Patch payloads carry a pointer per field; a nil pointer
// leaves the stored field untouched, a non-nil pointer replaces it wholesale
// (slices and coordinates included — there is no element-wise merge).

type EmployeeInsert struct {
	Name        string    `json:"name"`
	EmployeeID  string    `json:"employeeId"`
	Role        string    `json:"role"`
	Designation string    `json:"designation"`
	Shift       string    `json:"shift"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Department  string    `json:"department"`
	Contact     string    `json:"contact"`
	Email       string    `json:"email"`
	JoinDate    time.Time `json:"joinDate"`
	Skills      []string  `json:"skills"`
}

type EmployeePatch struct {
	Name        *string    `json:"name"`
	EmployeeID  *string    `json:"employeeId"`
	Role        *string    `json:"role"`
	Designation *string    `json:"designation"`
	Shift       *string    `json:"shift"`
	Status      *string    `json:"status"`
	Location    *string    `json:"location"`
	Department  *string    `json:"department"`
	Contact     *string    `json:"contact"`
	Email       *string    `json:"email"`
	JoinDate    *time.Time `json:"joinDate"`
	Skills      *[]string  `json:"skills"`
}

type ProjectInsert struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	Progress      int        `json:"progress"`
	Lead          string     `json:"lead"`
	Department    string     `json:"department"`
	StartDate     time.Time  `json:"startDate"`
	TargetDate    time.Time  `json:"targetDate"`
	ActualEndDate *time.Time `json:"actualEndDate"`
	Priority      string     `json:"priority"`
	Budget        *int       `json:"budget"`
	Resources     []string   `json:"resources"`
}

type ProjectPatch struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Status        *string    `json:"status"`
	Progress      *int       `json:"progress"`
	Lead          *string    `json:"lead"`
	Department    *string    `json:"department"`
	StartDate     *time.Time `json:"startDate"`
	TargetDate    *time.Time `json:"targetDate"`
	ActualEndDate *time.Time `json:"actualEndDate"`
	Priority      *string    `json:"priority"`
	Budget        *int       `json:"budget"`
	Resources     *[]string  `json:"resources"`
}

type FileInsert struct {
	FileID         string    `json:"fileId"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description"`
	CurrentOfficer string    `json:"currentOfficer"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	SubmissionDate time.Time `json:"submissionDate"`
	LastMovedDate  time.Time `json:"lastMovedDate"`
	PendingDays    int       `json:"pendingDays"`
	Department     string    `json:"department"`
	FileType       string    `json:"fileType"`
}

type FilePatch struct {
	FileID         *string    `json:"fileId"`
	Subject        *string    `json:"subject"`
	Description    *string    `json:"description"`
	CurrentOfficer *string    `json:"currentOfficer"`
	Status         *string    `json:"status"`
	Priority       *string    `json:"priority"`
	SubmissionDate *time.Time `json:"submissionDate"`
	LastMovedDate  *time.Time `json:"lastMovedDate"`
	PendingDays    *int       `json:"pendingDays"`
	Department     *string    `json:"department"`
	FileType       *string    `json:"fileType"`
}

type VendorInsert struct {
	Name              string     `json:"name"`
	VendorID          string     `json:"vendorId"`
	Product           string     `json:"product"`
	Status            string     `json:"status"`
	Stage             string     `json:"stage"`
	ContactPerson     string     `json:"contactPerson"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Address           string     `json:"address"`
	RegistrationDate  time.Time  `json:"registrationDate"`
	ExpiryDate        *time.Time `json:"expiryDate"`
	PerformanceRating int        `json:"performanceRating"`
	Category          string     `json:"category"`
}

type VendorPatch struct {
	Name              *string    `json:"name"`
	VendorID          *string    `json:"vendorId"`
	Product           *string    `json:"product"`
	Status            *string    `json:"status"`
	Stage             *string    `json:"stage"`
	ContactPerson     *string    `json:"contactPerson"`
	Email             *string    `json:"email"`
	Phone             *string    `json:"phone"`
	Address           *string    `json:"address"`
	RegistrationDate  *time.Time `json:"registrationDate"`
	ExpiryDate        *time.Time `json:"expiryDate"`
	PerformanceRating *int       `json:"performanceRating"`
	Category          *string    `json:"category"`
}

type AlertInsert struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Related     *EntityRef `json:"related"`
	AssignedTo  string     `json:"assignedTo"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
}

type AlertPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Type        *string    `json:"type"`
	Category    *string    `json:"category"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	Related     *EntityRef `json:"related"`
	AssignedTo  *string    `json:"assignedTo"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
}

type TrainingProgramInsert struct {
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Instructor          string    `json:"instructor"`
	Department          string    `json:"department"`
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
	MaxParticipants     int       `json:"maxParticipants"`
	CurrentParticipants int       `json:"currentParticipants"`
	Skills              []string  `json:"skills"`
	Location            string    `json:"location"`
	Status              string    `json:"status"`
}

type TrainingProgramPatch struct {
	Title               *string    `json:"title"`
	Description         *string    `json:"description"`
	Instructor          *string    `json:"instructor"`
	Department          *string    `json:"department"`
	StartDate           *time.Time `json:"startDate"`
	EndDate             *time.Time `json:"endDate"`
	MaxParticipants     *int       `json:"maxParticipants"`
	CurrentParticipants *int       `json:"currentParticipants"`
	Skills              *[]string  `json:"skills"`
	Location            *string    `json:"location"`
	Status              *string    `json:"status"`
}

type FieldActivityInsert struct {
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	AssignedOfficer string       `json:"assignedOfficer"`
	Location        string       `json:"location"`
	Coordinates     *Coordinates `json:"coordinates"`
	ScheduledDate   time.Time    `json:"scheduledDate"`
	CompletedDate   *time.Time   `json:"completedDate"`
	Status          string       `json:"status"`
	ActivityType    string       `json:"activityType"`
	Priority        string       `json:"priority"`
	Notes           string       `json:"notes"`
}

type FieldActivityPatch struct {
	Title           *string      `json:"title"`
	Description     *string      `json:"description"`
	AssignedOfficer *string      `json:"assignedOfficer"`
	Location        *string      `json:"location"`
	Coordinates     *Coordinates `json:"coordinates"`
	ScheduledDate   *time.Time   `json:"scheduledDate"`
	CompletedDate   *time.Time   `json:"completedDate"`
	Status          *string      `json:"status"`
	ActivityType    *string      `json:"activityType"`
	Priority        *string      `json:"priority"`
	Notes           *string      `json:"notes"`
}
