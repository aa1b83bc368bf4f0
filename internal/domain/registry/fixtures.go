package registry

import (
	"fmt"
	"math/rand"
	"time"
)

// FixtureSet is the initial dataset seeded into a fresh store: a small set
// of hand-curated records per kind followed by a larger randomly generated
// batch. Generation is deterministic for a given rng seed and reference
// time; production callers seed from the clock.
type FixtureSet struct {
	Employees        []EmployeeInsert
	Projects         []ProjectInsert
	Files            []FileInsert
	Vendors          []VendorInsert
	Alerts           []AlertInsert
	TrainingPrograms []TrainingProgramInsert
	FieldActivities  []FieldActivityInsert
}

var (
	fixtureDepartments = []string{"Signal & Telecom", "Electrical", "Rolling Stock", "Civil", "Mechanical", "Safety"}
	fixtureShifts      = []string{"Morning (6-14)", "Evening (14-22)", "Night (22-6)", "General (9-17)"}
	fixtureFileDepts   = []string{"Signal & Telecom", "Electrical", "Rolling Stock", "Civil", "Administration"}
	fixtureFileTypes   = []string{"Technical Approval", "Budget Approval", "Vendor Registration", "Safety Clearance"}
	fixtureCategories  = []string{"Signal Equipment", "Electrical Systems", "Rolling Stock", "Safety Equipment"}
	fixtureBulkRoles   = []string{"JE", "SSE", "ADE", "Director", "JD"}
)

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

func intPtr(v int) *int { return &v }

// GenerateFixtures produces the seed dataset: curated records for believable
// initial state plus generated bulk records with values drawn from the fixed
// enumerations. Human-facing identifiers are unique within the batch by
// construction (sequential numbering shared with the curated records).
func GenerateFixtures(rng *rand.Rand, now time.Time) FixtureSet {
	set := FixtureSet{
		Employees:        curatedEmployees(),
		Projects:         curatedProjects(),
		Files:            curatedFiles(),
		Vendors:          curatedVendors(now),
		Alerts:           curatedAlerts(),
		TrainingPrograms: curatedTrainingPrograms(),
		FieldActivities:  curatedFieldActivities(),
	}
	set.Employees = append(set.Employees, generatedEmployees(rng)...)
	set.Projects = append(set.Projects, generatedProjects(rng)...)
	set.Files = append(set.Files, generatedFiles(rng)...)
	set.Vendors = append(set.Vendors, generatedVendors(rng, now)...)
	return set
}

// Seed inserts every fixture record through the normal create path so each
// one receives an opaque id and creation timestamp. Alert references with an
// empty id are resolved to the first seeded record of their kind; the store
// never validates them afterwards.
func (s *Store) Seed(set FixtureSet) {
	var firstFile, firstVendor, firstEmployee, firstProject string
	for i, ins := range set.Employees {
		emp := s.CreateEmployee(ins)
		if i == 0 {
			firstEmployee = emp.ID
		}
	}
	for i, ins := range set.Projects {
		proj := s.CreateProject(ins)
		if i == 0 {
			firstProject = proj.ID
		}
	}
	for i, ins := range set.Files {
		file := s.CreateFile(ins)
		if i == 0 {
			firstFile = file.ID
		}
	}
	for i, ins := range set.Vendors {
		vendor := s.CreateVendor(ins)
		if i == 0 {
			firstVendor = vendor.ID
		}
	}
	for _, ins := range set.Alerts {
		if ins.Related != nil && ins.Related.ID == "" {
			ref := *ins.Related
			switch ref.Kind {
			case KindFile:
				ref.ID = firstFile
			case KindVendor:
				ref.ID = firstVendor
			case KindEmployee:
				ref.ID = firstEmployee
			case KindProject:
				ref.ID = firstProject
			}
			ins.Related = &ref
		}
		s.CreateAlert(ins)
	}
	for _, ins := range set.TrainingPrograms {
		s.CreateTrainingProgram(ins)
	}
	for _, ins := range set.FieldActivities {
		s.CreateFieldActivity(ins)
	}
}

func curatedEmployees() []EmployeeInsert {
	return []EmployeeInsert{
		{
			Name: "Rajesh Kumar", EmployeeID: "RDSO001", Role: "ED", Designation: "Executive Director",
			Shift: "General (9-17)", Status: EmployeeStatusPresent, Location: "HQ Office",
			Department: "Signal & Telecom", Contact: "+91-9876543210",
			Email: "rajesh.kumar@rdso.indianrailways.gov.in", JoinDate: date(2015, time.March, 15),
			Skills: []string{"Signal Systems", "Project Management", "Railways Operations"},
		},
		{
			Name: "Amit Kumar", EmployeeID: "RDSO002", Role: "SSE", Designation: "Senior Section Engineer",
			Shift: "Morning (6-14)", Status: EmployeeStatusPresent, Location: "HQ Office",
			Department: "Signal & Telecom", Contact: "+91-9876543211",
			Email: "amit.kumar@rdso.indianrailways.gov.in", JoinDate: date(2018, time.July, 20),
			Skills: []string{"Signal Testing", "Circuit Analysis", "Field Operations"},
		},
		{
			Name: "Priya Gupta", EmployeeID: "RDSO003", Role: "ADE", Designation: "Additional Director Electrical",
			Shift: "General (9-17)", Status: EmployeeStatusAbsent,
			Department: "Electrical", Contact: "+91-9876543212",
			Email: "priya.gupta@rdso.indianrailways.gov.in", JoinDate: date(2012, time.November, 10),
			Skills: []string{"Electrical Systems", "Power Management", "Team Leadership"},
		},
		{
			Name: "Rajesh Sharma", EmployeeID: "RDSO004", Role: "JE", Designation: "Junior Engineer",
			Shift: "Evening (14-22)", Status: EmployeeStatusFieldDuty, Location: "Lucknow Division",
			Department: "Rolling Stock", Contact: "+91-9876543213",
			Email: "rajesh.sharma@rdso.indianrailways.gov.in", JoinDate: date(2020, time.February, 5),
			Skills: []string{"Rolling Stock Testing", "Maintenance", "Field Inspection"},
		},
		{
			Name: "Dr. S.K. Singh", EmployeeID: "RDSO005", Role: "Director", Designation: "Director",
			Shift: "General (9-17)", Status: EmployeeStatusPresent, Location: "HQ Office",
			Department: "Signal & Telecom", Contact: "+91-9876543214",
			Email: "sk.singh@rdso.indianrailways.gov.in", JoinDate: date(2010, time.May, 12),
			Skills: []string{"Research & Development", "Signal Modernization", "Technical Standards"},
		},
	}
}

func generatedEmployees(rng *rand.Rand) []EmployeeInsert {
	out := make([]EmployeeInsert, 0, 45)
	for i := 6; i <= 50; i++ {
		role := pick(rng, fixtureBulkRoles)
		location := "HQ Office"
		if rng.Float64() <= 0.3 {
			location = fmt.Sprintf("Division %d", rng.Intn(5)+1)
		}
		out = append(out, EmployeeInsert{
			Name:        fmt.Sprintf("Employee %d", i),
			EmployeeID:  fmt.Sprintf("RDSO%03d", i),
			Role:        role,
			Designation: Roles[role],
			Shift:       pick(rng, fixtureShifts),
			Status:      pick(rng, EmployeeStatuses),
			Location:    location,
			Department:  pick(rng, fixtureDepartments),
			Contact:     fmt.Sprintf("+91-98765432%02d", i),
			Email:       fmt.Sprintf("employee%d@rdso.indianrailways.gov.in", i),
			JoinDate:    date(2015+rng.Intn(9), time.Month(rng.Intn(12)+1), rng.Intn(28)+1),
			Skills:      []string{"Technical Skills", "Field Operations", "Documentation"},
		})
	}
	return out
}

func curatedProjects() []ProjectInsert {
	return []ProjectInsert{
		{
			Name:        "Signal Modernization Phase-II",
			Description: "Upgrading signalling systems across NCR division with modern electronic interlocking.",
			Status:      ProjectStatusOnTrack, Progress: 78, Lead: "Dr. S.K. Singh",
			Department: "Signal & Telecom", StartDate: date(2024, time.January, 15),
			TargetDate: date(2024, time.December, 31), Priority: "High", Budget: intPtr(5000000),
			Resources: []string{"Signal Engineers", "Electronic Equipment", "Testing Tools"},
		},
		{
			Name:        "Track Circuit Testing",
			Description: "Comprehensive testing of track circuits for enhanced safety protocols.",
			Status:      ProjectStatusInProgress, Progress: 45, Lead: "A.K. Verma",
			Department: "Signal & Telecom", StartDate: date(2024, time.March, 1),
			TargetDate: date(2024, time.August, 30), Priority: "Medium", Budget: intPtr(2500000),
			Resources: []string{"Testing Equipment", "Field Engineers", "Safety Protocols"},
		},
		{
			Name:        "Oscillation Trial Analysis",
			Description: "Analysis of rolling stock oscillation patterns for improved ride quality.",
			Status:      ProjectStatusDelayed, Progress: 23, Lead: "M.R. Joshi",
			Department: "Rolling Stock", StartDate: date(2024, time.February, 15),
			TargetDate: date(2024, time.June, 15), Priority: "High", Budget: intPtr(3000000),
			Resources: []string{"Testing Coaches", "Measurement Equipment", "Analysis Software"},
		},
	}
}

func generatedProjects(rng *rand.Rand) []ProjectInsert {
	out := make([]ProjectInsert, 0, 7)
	for i := 4; i <= 10; i++ {
		out = append(out, ProjectInsert{
			Name:        fmt.Sprintf("Project %d", i),
			Description: fmt.Sprintf("Description for project %d", i),
			Status:      pick(rng, ProjectStatuses),
			Progress:    rng.Intn(100),
			Lead:        fmt.Sprintf("Project Lead %d", i),
			Department:  pick(rng, fixtureDepartments[:5]),
			StartDate:   date(2024, time.Month(rng.Intn(12)+1), rng.Intn(28)+1),
			TargetDate:  date(2024, time.Month(rng.Intn(12)+1), rng.Intn(28)+1),
			Priority:    pick(rng, Priorities),
			Budget:      intPtr(1000000 + rng.Intn(5000000)),
			Resources:   []string{fmt.Sprintf("Resource %dA", i), fmt.Sprintf("Resource %dB", i)},
		})
	}
	return out
}

func curatedFiles() []FileInsert {
	return []FileInsert{
		{
			FileID: "F-2024-001", Subject: "Signal Upgrade Approval",
			Description:    "Technical approval for signal modernization in Delhi division",
			CurrentOfficer: "J.K. Sharma (ADE)", Status: FileStatusPending, Priority: "High",
			SubmissionDate: date(2024, time.January, 10), LastMovedDate: date(2024, time.January, 18),
			PendingDays: 8, Department: "Signal & Telecom", FileType: "Technical Approval",
		},
		{
			FileID: "F-2024-002", Subject: "Vendor Empanelment",
			Description:    "New vendor application for electronic components",
			CurrentOfficer: "R.P. Gupta (Director)", Status: FileStatusUnderReview, Priority: "Medium",
			SubmissionDate: date(2024, time.January, 20), LastMovedDate: date(2024, time.January, 21),
			PendingDays: 5, Department: "Purchase", FileType: "Vendor Registration",
		},
		{
			FileID: "F-2024-003", Subject: "Training Budget Approval",
			Description:    "Budget allocation for Q2 training programs",
			CurrentOfficer: "S.M. Patel (ADG)", Status: FileStatusApproved, Priority: "Low",
			SubmissionDate: date(2024, time.January, 22), LastMovedDate: date(2024, time.January, 24),
			PendingDays: 2, Department: "Administration", FileType: "Budget Approval",
		},
	}
}

func generatedFiles(rng *rand.Rand) []FileInsert {
	out := make([]FileInsert, 0, 27)
	for i := 4; i <= 30; i++ {
		out = append(out, FileInsert{
			FileID:         fmt.Sprintf("F-2024-%03d", i),
			Subject:        fmt.Sprintf("File Subject %d", i),
			Description:    fmt.Sprintf("Description for file %d", i),
			CurrentOfficer: fmt.Sprintf("Officer %d", i),
			Status:         pick(rng, FileStatuses),
			Priority:       pick(rng, Priorities),
			SubmissionDate: date(2024, time.January, rng.Intn(26)+1),
			LastMovedDate:  date(2024, time.January, rng.Intn(26)+1),
			PendingDays:    rng.Intn(15),
			Department:     pick(rng, fixtureFileDepts),
			FileType:       pick(rng, fixtureFileTypes),
		})
	}
	return out
}

func curatedVendors(now time.Time) []VendorInsert {
	return []VendorInsert{
		{
			Name: "M/s ABC Electronics Ltd.", VendorID: "VEN001",
			Product: "Electronic Interlocking Systems", Status: VendorStatusApproved,
			Stage: "Active Contract", ContactPerson: "Mr. Anil Sharma",
			Email: "anil@abcelectronics.com", Phone: "+91-9876543215",
			Address:          "123 Electronics Park, Gurgaon",
			RegistrationDate: date(2023, time.June, 15),
			ExpiryDate:       timePtr(now.AddDate(0, 0, 25)),
			PerformanceRating: 4, Category: "Signal Equipment",
		},
		{
			Name: "M/s Railway Safety Systems", VendorID: "VEN002",
			Product: "Track Circuit Equipment", Status: VendorStatusUnderReview,
			Stage: "Technical Evaluation", ContactPerson: "Mrs. Sunita Mehta",
			Email: "sunita@railwaysafety.com", Phone: "+91-9876543216",
			Address:          "456 Safety Complex, Mumbai",
			RegistrationDate: date(2024, time.January, 5),
			Category:         "Safety Equipment",
		},
	}
}

func generatedVendors(rng *rand.Rand, now time.Time) []VendorInsert {
	out := make([]VendorInsert, 0, 18)
	for i := 3; i <= 20; i++ {
		ins := VendorInsert{
			Name:              fmt.Sprintf("M/s Vendor %d Ltd.", i),
			VendorID:          fmt.Sprintf("VEN%03d", i),
			Product:           fmt.Sprintf("Product %d", i),
			Status:            pick(rng, VendorStatuses),
			Stage:             "Evaluation Stage",
			ContactPerson:     fmt.Sprintf("Contact Person %d", i),
			Email:             fmt.Sprintf("contact%d@vendor%d.com", i, i),
			Phone:             fmt.Sprintf("+91-98765432%02d", i),
			Address:           fmt.Sprintf("Address %d", i),
			RegistrationDate:  date(2023, time.Month(rng.Intn(12)+1), rng.Intn(28)+1),
			PerformanceRating: rng.Intn(5),
			Category:          pick(rng, fixtureCategories),
		}
		// Half the generated vendors carry an expiry within the coming year.
		if rng.Float64() > 0.5 {
			ins.ExpiryDate = timePtr(now.AddDate(0, 0, rng.Intn(365)+1))
		}
		out = append(out, ins)
	}
	return out
}

func curatedAlerts() []AlertInsert {
	return []AlertInsert{
		{
			Title:       "Critical File Delay",
			Description: "File F-2024-001 has been pending with J.K. Sharma (ADE) for 8 days. Immediate attention required.",
			Type:        AlertTypeCritical, Category: "File", Priority: "High",
			Status: AlertStatusActive, Related: &EntityRef{Kind: KindFile},
			AssignedTo: "J.K. Sharma",
		},
		{
			Title:       "Vendor Contract Expiry",
			Description: "M/s ABC Electronics Ltd. contract expires soon. Renewal process should be initiated.",
			Type:        AlertTypeWarning, Category: "Vendor", Priority: "Medium",
			Status: AlertStatusActive, Related: &EntityRef{Kind: KindVendor},
			AssignedTo: "R.P. Gupta",
		},
		{
			Title:       "High Staff Absence",
			Description: "15 staff members absent today including 3 from critical sections.",
			Type:        AlertTypeWarning, Category: "Employee", Priority: "Medium",
			Status:     AlertStatusActive,
			AssignedTo: "HR Department",
		},
	}
}

func curatedTrainingPrograms() []TrainingProgramInsert {
	return []TrainingProgramInsert{
		{
			Title:       "Advanced Signal Systems",
			Description: "Comprehensive training on modern signalling technologies",
			Instructor:  "Dr. S.K. Singh", Department: "Signal & Telecom",
			StartDate: date(2024, time.March, 1), EndDate: date(2024, time.March, 5),
			MaxParticipants: 25, CurrentParticipants: 18,
			Skills:   []string{"Electronic Interlocking", "Signal Testing", "Safety Protocols"},
			Location: "RDSO Training Center", Status: TrainingStatusUpcoming,
		},
		{
			Title:       "Railway Safety Management",
			Description: "Safety protocols and risk management in railway operations",
			Instructor:  "A.K. Verma", Department: "Safety",
			StartDate: date(2024, time.February, 15), EndDate: date(2024, time.February, 18),
			MaxParticipants: 30, CurrentParticipants: 30,
			Skills:   []string{"Risk Assessment", "Safety Standards", "Emergency Response"},
			Location: "RDSO Conference Hall", Status: TrainingStatusOngoing,
		},
	}
}

func curatedFieldActivities() []FieldActivityInsert {
	return []FieldActivityInsert{
		{
			Title:       "Signal Installation Inspection",
			Description: "Inspection of newly installed signals at Ghaziabad Junction",
			AssignedOfficer: "Rajesh Sharma", Location: "Ghaziabad Junction",
			Coordinates:   &Coordinates{Lat: 28.6692, Lng: 77.4538},
			ScheduledDate: date(2024, time.January, 26),
			Status:        ActivityStatusScheduled, ActivityType: "Inspection", Priority: "High",
			Notes: "Focus on electronic interlocking system integration",
		},
		{
			Title:       "Track Circuit Testing",
			Description: "Performance testing of track circuits on Delhi-Mumbai route",
			AssignedOfficer: "Amit Kumar", Location: "Mathura Junction",
			Coordinates:   &Coordinates{Lat: 27.4924, Lng: 77.6737},
			ScheduledDate: date(2024, time.January, 25),
			CompletedDate: timePtr(date(2024, time.January, 25)),
			Status:        ActivityStatusCompleted, ActivityType: "Trial", Priority: "Medium",
			Notes: "All circuits tested successfully, minor adjustments made",
		},
	}
}
