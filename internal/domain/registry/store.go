package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the authoritative in-memory collection for each record kind.
// It is constructed once at startup and handed to every consumer; there is
// no package-level instance. A single RWMutex serializes writes so that
// concurrent requests mutating the same record cannot interleave.
//
// State lives for the process lifetime only. A restart resets the store to
// whatever the fixture generator seeds into it.
type Store struct {
	mu    sync.RWMutex
	newID func() string
	now   func() time.Time

	employees     map[string]Employee
	employeeOrder []string
	projects      map[string]Project
	projectOrder  []string
	files         map[string]File
	fileOrder     []string
	vendors       map[string]Vendor
	vendorOrder   []string
	alerts        map[string]Alert
	alertOrder    []string
	trainings     map[string]TrainingProgram
	trainingOrder []string
	activities    map[string]FieldActivity
	activityOrder []string
	users         map[string]User
	userOrder     []string
}

func NewStore() *Store {
	return &Store{
		newID:      uuid.NewString,
		now:        time.Now,
		employees:  make(map[string]Employee),
		projects:   make(map[string]Project),
		files:      make(map[string]File),
		vendors:    make(map[string]Vendor),
		alerts:     make(map[string]Alert),
		trainings:  make(map[string]TrainingProgram),
		activities: make(map[string]FieldActivity),
		users:      make(map[string]User),
	}
}

func listInOrder[T any](order []string, records map[string]T) []T {
	out := make([]T, 0, len(order))
	for _, id := range order {
		if record, ok := records[id]; ok {
			out = append(out, record)
		}
	}
	return out
}

func dropID(order []string, id string) []string {
	for i, candidate := range order {
		if candidate == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

func cloneSlice(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Employees

func (s *Store) CreateEmployee(ins EmployeeInsert) Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	emp := Employee{
		ID:          s.newID(),
		Name:        ins.Name,
		EmployeeID:  ins.EmployeeID,
		Role:        ins.Role,
		Designation: ins.Designation,
		Shift:       ins.Shift,
		Status:      ins.Status,
		Location:    ins.Location,
		Department:  ins.Department,
		Contact:     ins.Contact,
		Email:       ins.Email,
		JoinDate:    ins.JoinDate,
		Skills:      cloneSlice(ins.Skills),
		CreatedAt:   s.now(),
	}
	s.employees[emp.ID] = emp
	s.employeeOrder = append(s.employeeOrder, emp.ID)
	return emp
}

func (s *Store) GetEmployee(id string) (Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	emp, ok := s.employees[id]
	return emp, ok
}

func (s *Store) ListEmployees() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listInOrder(s.employeeOrder, s.employees)
}

func (s *Store) UpdateEmployee(id string, patch EmployeePatch) (Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	emp, ok := s.employees[id]
	if !ok {
		return Employee{}, false
	}
	if patch.Name != nil {
		emp.Name = *patch.Name
	}
	if patch.EmployeeID != nil {
		emp.EmployeeID = *patch.EmployeeID
	}
	if patch.Role != nil {
		emp.Role = *patch.Role
	}
	if patch.Designation != nil {
		emp.Designation = *patch.Designation
	}
	if patch.Shift != nil {
		emp.Shift = *patch.Shift
	}
	if patch.Status != nil {
		emp.Status = *patch.Status
	}
	if patch.Location != nil {
		emp.Location = *patch.Location
	}
	if patch.Department != nil {
		emp.Department = *patch.Department
	}
	if patch.Contact != nil {
		emp.Contact = *patch.Contact
	}
	if patch.Email != nil {
		emp.Email = *patch.Email
	}
	if patch.JoinDate != nil {
		emp.JoinDate = *patch.JoinDate
	}
	if patch.Skills != nil {
		emp.Skills = cloneSlice(*patch.Skills)
	}
	s.employees[id] = emp
	return emp, true
}

func (s *Store) DeleteEmployee(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return false
	}
	delete(s.employees, id)
	s.employeeOrder = dropID(s.employeeOrder, id)
	return true
}

// Projects

func (s *Store) CreateProject(ins ProjectInsert) Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	proj := Project{
		ID:            s.newID(),
		Name:          ins.Name,
		Description:   ins.Description,
		Status:        ins.Status,
		Progress:      ins.Progress,
		Lead:          ins.Lead,
		Department:    ins.Department,
		StartDate:     ins.StartDate,
		TargetDate:    ins.TargetDate,
		ActualEndDate: ins.ActualEndDate,
		Priority:      ins.Priority,
		Budget:        ins.Budget,
		Resources:     cloneSlice(ins.Resources),
		CreatedAt:     s.now(),
	}
	if proj.Priority == "" {
		proj.Priority = DefaultPriority
	}
	s.projects[proj.ID] = proj
	s.projectOrder = append(s.projectOrder, proj.ID)
	return proj
}

func (s *Store) GetProject(id string) (Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	proj, ok := s.projects[id]
	return proj, ok
}

func (s *Store) ListProjects() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listInOrder(s.projectOrder, s.projects)
}

func (s *Store) UpdateProject(id string, patch ProjectPatch) (Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	proj, ok := s.projects[id]
	if !ok {
		return Project{}, false
	}
	if patch.Name != nil {
		proj.Name = *patch.Name
	}
	if patch.Description != nil {
		proj.Description = *patch.Description
	}
	if patch.Status != nil {
		proj.Status = *patch.Status
	}
	if patch.Progress != nil {
		proj.Progress = *patch.Progress
	}
	if patch.Lead != nil {
		proj.Lead = *patch.Lead
	}
	if patch.Department != nil {
		proj.Department = *patch.Department
	}
	if patch.StartDate != nil {
		proj.StartDate = *patch.StartDate
	}
	if patch.TargetDate != nil {
		proj.TargetDate = *patch.TargetDate
	}
	if patch.ActualEndDate != nil {
		proj.ActualEndDate = patch.ActualEndDate
	}
	if patch.Priority != nil {
		proj.Priority = *patch.Priority
	}
	if patch.Budget != nil {
		proj.Budget = patch.Budget
	}
	if patch.Resources != nil {
		proj.Resources = cloneSlice(*patch.Resources)
	}
	s.projects[id] = proj
	return proj, true
}

func (s *Store) DeleteProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return false
	}
	delete(s.projects, id)
	s.projectOrder = dropID(s.projectOrder, id)
	return true
}

// Files

func (s *Store) CreateFile(ins FileInsert) File {
	s.mu.Lock()
	defer s.mu.Unlock()
	file := File{
		ID:             s.newID(),
		FileID:         ins.FileID,
		Subject:        ins.Subject,
		Description:    ins.Description,
		CurrentOfficer: ins.CurrentOfficer,
		Status:         ins.Status,
		Priority:       ins.Priority,
		SubmissionDate: ins.SubmissionDate,
		LastMovedDate:  ins.LastMovedDate,
		PendingDays:    ins.PendingDays,
		Department:     ins.Department,
		FileType:       ins.FileType,
		CreatedAt:      s.now(),
	}
	if file.Priority == "" {
		file.Priority = DefaultPriority
	}
	s.files[file.ID] = file
	s.fileOrder = append(s.fileOrder, file.ID)
	return file
}

func (s *Store) GetFile(id string) (File, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	file, ok := s.files[id]
	return file, ok
}

func (s *Store) ListFiles() []File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listInOrder(s.fileOrder, s.files)
}

func (s *Store) UpdateFile(id string, patch FilePatch) (File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	file, ok := s.files[id]
	if !ok {
		return File{}, false
	}
	if patch.FileID != nil {
		file.FileID = *patch.FileID
	}
	if patch.Subject != nil {
		file.Subject = *patch.Subject
	}
	if patch.Description != nil {
		file.Description = *patch.Description
	}
	if patch.CurrentOfficer != nil {
		file.CurrentOfficer = *patch.CurrentOfficer
	}
	if patch.Status != nil {
		file.Status = *patch.Status
	}
	if patch.Priority != nil {
		file.Priority = *patch.Priority
	}
	if patch.SubmissionDate != nil {
		file.SubmissionDate = *patch.SubmissionDate
	}
	if patch.LastMovedDate != nil {
		file.LastMovedDate = *patch.LastMovedDate
	}
	if patch.PendingDays != nil {
		file.PendingDays = *patch.PendingDays
	}
	if patch.Department != nil {
		file.Department = *patch.Department
	}
	if patch.FileType != nil {
		file.FileType = *patch.FileType
	}
	s.files[id] = file
	return file, true
}

func (s *Store) DeleteFile(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[id]; !ok {
		return false
	}
	delete(s.files, id)
	s.fileOrder = dropID(s.fileOrder, id)
	return true
}

// Vendors

func (s *Store) CreateVendor(ins VendorInsert) Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()
	vendor := Vendor{
		ID:                s.newID(),
		Name:              ins.Name,
		VendorID:          ins.VendorID,
		Product:           ins.Product,
		Status:            ins.Status,
		Stage:             ins.Stage,
		ContactPerson:     ins.ContactPerson,
		Email:             ins.Email,
		Phone:             ins.Phone,
		Address:           ins.Address,
		RegistrationDate:  ins.RegistrationDate,
		ExpiryDate:        ins.ExpiryDate,
		PerformanceRating: ins.PerformanceRating,
		Category:          ins.Category,
		CreatedAt:         s.now(),
	}
	s.vendors[vendor.ID] = vendor
	s.vendorOrder = append(s.vendorOrder, vendor.ID)
	return vendor
}

func (s *Store) GetVendor(id string) (Vendor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vendor, ok := s.vendors[id]
	return vendor, ok
}

func (s *Store) ListVendors() []Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listInOrder(s.vendorOrder, s.vendors)
}

func (s *Store) UpdateVendor(id string, patch VendorPatch) (Vendor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vendor, ok := s.vendors[id]
	if !ok {
		return Vendor{}, false
	}
	if patch.Name != nil {
		vendor.Name = *patch.Name
	}
	if patch.VendorID != nil {
		vendor.VendorID = *patch.VendorID
	}
	if patch.Product != nil {
		vendor.Product = *patch.Product
	}
	if patch.Status != nil {
		vendor.Status = *patch.Status
	}
	if patch.Stage != nil {
		vendor.Stage = *patch.Stage
	}
	if patch.ContactPerson != nil {
		vendor.ContactPerson = *patch.ContactPerson
	}
	if patch.Email != nil {
		vendor.Email = *patch.Email
	}
	if patch.Phone != nil {
		vendor.Phone = *patch.Phone
	}
	if patch.Address != nil {
		vendor.Address = *patch.Address
	}
	if patch.RegistrationDate != nil {
		vendor.RegistrationDate = *patch.RegistrationDate
	}
	if patch.ExpiryDate != nil {
		vendor.ExpiryDate = patch.ExpiryDate
	}
	if patch.PerformanceRating != nil {
		vendor.PerformanceRating = *patch.PerformanceRating
	}
	if patch.Category != nil {
		vendor.Category = *patch.Category
	}
	s.vendors[id] = vendor
	return vendor, true
}

func (s *Store) DeleteVendor(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vendors[id]; !ok {
		return false
	}
	delete(s.vendors, id)
	s.vendorOrder = dropID(s.vendorOrder, id)
	return true
}

// Alerts

func (s *Store) CreateAlert(ins AlertInsert) Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	alert := Alert{
		ID:          s.newID(),
		Title:       ins.Title,
		Description: ins.Description,
		Type:        ins.Type,
		Category:    ins.Category,
		Priority:    ins.Priority,
		Status:      ins.Status,
		Related:     ins.Related,
		AssignedTo:  ins.AssignedTo,
		ResolvedAt:  ins.ResolvedAt,
		CreatedAt:   s.now(),
	}
	if alert.Priority == "" {
		alert.Priority = DefaultPriority
	}
	if alert.Status == "" {
		alert.Status = AlertStatusActive
	}
	s.alerts[alert.ID] = alert
	s.alertOrder = append(s.alertOrder, alert.ID)
	return alert
}

func (s *Store) GetAlert(id string) (Alert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	alert, ok := s.alerts[id]
	return alert, ok
}

func (s *Store) ListAlerts() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listInOrder(s.alertOrder, s.alerts)
}

func (s *Store) UpdateAlert(id string, patch AlertPatch) (Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	alert, ok := s.alerts[id]
	if !ok {
		return Alert{}, false
	}
	if patch.Title != nil {
		alert.Title = *patch.Title
	}
	if patch.Description != nil {
		alert.Description = *patch.Description
	}
	if patch.Type != nil {
		alert.Type = *patch.Type
	}
	if patch.Category != nil {
		alert.Category = *patch.Category
	}
	if patch.Priority != nil {
		alert.Priority = *patch.Priority
	}
	if patch.Status != nil {
		alert.Status = *patch.Status
	}
	if patch.Related != nil {
		alert.Related = patch.Related
	}
	if patch.AssignedTo != nil {
		alert.AssignedTo = *patch.AssignedTo
	}
	if patch.ResolvedAt != nil {
		alert.ResolvedAt = patch.ResolvedAt
	}
	s.alerts[id] = alert
	return alert, true
}

func (s *Store) DeleteAlert(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.alerts[id]; !ok {
		return false
	}
	delete(s.alerts, id)
	s.alertOrder = dropID(s.alertOrder, id)
	return true
}

// Training programs

func (s *Store) CreateTrainingProgram(ins TrainingProgramInsert) TrainingProgram {
	s.mu.Lock()
	defer s.mu.Unlock()
	program := TrainingProgram{
		ID:                  s.newID(),
		Title:               ins.Title,
		Description:         ins.Description,
		Instructor:          ins.Instructor,
		Department:          ins.Department,
		StartDate:           ins.StartDate,
		EndDate:             ins.EndDate,
		MaxParticipants:     ins.MaxParticipants,
		CurrentParticipants: ins.CurrentParticipants,
		Skills:              cloneSlice(ins.Skills),
		Location:            ins.Location,
		Status:              ins.Status,
		CreatedAt:           s.now(),
	}
	if program.Status == "" {
		program.Status = TrainingStatusUpcoming
	}
	s.trainings[program.ID] = program
	s.trainingOrder = append(s.trainingOrder, program.ID)
	return program
}

func (s *Store) GetTrainingProgram(id string) (TrainingProgram, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	program, ok := s.trainings[id]
	return program, ok
}

func (s *Store) ListTrainingPrograms() []TrainingProgram {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listInOrder(s.trainingOrder, s.trainings)
}

func (s *Store) UpdateTrainingProgram(id string, patch TrainingProgramPatch) (TrainingProgram, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	program, ok := s.trainings[id]
	if !ok {
		return TrainingProgram{}, false
	}
	if patch.Title != nil {
		program.Title = *patch.Title
	}
	if patch.Description != nil {
		program.Description = *patch.Description
	}
	if patch.Instructor != nil {
		program.Instructor = *patch.Instructor
	}
	if patch.Department != nil {
		program.Department = *patch.Department
	}
	if patch.StartDate != nil {
		program.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		program.EndDate = *patch.EndDate
	}
	if patch.MaxParticipants != nil {
		program.MaxParticipants = *patch.MaxParticipants
	}
	if patch.CurrentParticipants != nil {
		program.CurrentParticipants = *patch.CurrentParticipants
	}
	if patch.Skills != nil {
		program.Skills = cloneSlice(*patch.Skills)
	}
	if patch.Location != nil {
		program.Location = *patch.Location
	}
	if patch.Status != nil {
		program.Status = *patch.Status
	}
	s.trainings[id] = program
	return program, true
}

func (s *Store) DeleteTrainingProgram(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trainings[id]; !ok {
		return false
	}
	delete(s.trainings, id)
	s.trainingOrder = dropID(s.trainingOrder, id)
	return true
}

// Field activities

func (s *Store) CreateFieldActivity(ins FieldActivityInsert) FieldActivity {
	s.mu.Lock()
	defer s.mu.Unlock()
	activity := FieldActivity{
		ID:              s.newID(),
		Title:           ins.Title,
		Description:     ins.Description,
		AssignedOfficer: ins.AssignedOfficer,
		Location:        ins.Location,
		Coordinates:     ins.Coordinates,
		ScheduledDate:   ins.ScheduledDate,
		CompletedDate:   ins.CompletedDate,
		Status:          ins.Status,
		ActivityType:    ins.ActivityType,
		Priority:        ins.Priority,
		Notes:           ins.Notes,
		CreatedAt:       s.now(),
	}
	if activity.Status == "" {
		activity.Status = ActivityStatusScheduled
	}
	if activity.Priority == "" {
		activity.Priority = DefaultPriority
	}
	s.activities[activity.ID] = activity
	s.activityOrder = append(s.activityOrder, activity.ID)
	return activity
}

func (s *Store) GetFieldActivity(id string) (FieldActivity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	activity, ok := s.activities[id]
	return activity, ok
}

func (s *Store) ListFieldActivities() []FieldActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listInOrder(s.activityOrder, s.activities)
}

func (s *Store) UpdateFieldActivity(id string, patch FieldActivityPatch) (FieldActivity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	activity, ok := s.activities[id]
	if !ok {
		return FieldActivity{}, false
	}
	if patch.Title != nil {
		activity.Title = *patch.Title
	}
	if patch.Description != nil {
		activity.Description = *patch.Description
	}
	if patch.AssignedOfficer != nil {
		activity.AssignedOfficer = *patch.AssignedOfficer
	}
	if patch.Location != nil {
		activity.Location = *patch.Location
	}
	if patch.Coordinates != nil {
		activity.Coordinates = patch.Coordinates
	}
	if patch.ScheduledDate != nil {
		activity.ScheduledDate = *patch.ScheduledDate
	}
	if patch.CompletedDate != nil {
		activity.CompletedDate = patch.CompletedDate
	}
	if patch.Status != nil {
		activity.Status = *patch.Status
	}
	if patch.ActivityType != nil {
		activity.ActivityType = *patch.ActivityType
	}
	if patch.Priority != nil {
		activity.Priority = *patch.Priority
	}
	if patch.Notes != nil {
		activity.Notes = *patch.Notes
	}
	s.activities[id] = activity
	return activity, true
}

func (s *Store) DeleteFieldActivity(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[id]; !ok {
		return false
	}
	delete(s.activities, id)
	s.activityOrder = dropID(s.activityOrder, id)
	return true
}

// Users

func (s *Store) CreateUser(username, passwordHash string) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := User{
		ID:           s.newID(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return user
}

func (s *Store) GetUser(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	return user, ok
}

func (s *Store) GetUserByUsername(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if user, ok := s.users[id]; ok && user.Username == username {
			return user, true
		}
	}
	return User{}, false
}
