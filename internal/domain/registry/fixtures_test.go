package registry

import (
	"math/rand"
	"testing"
	"time"
)

func fixtureNow() time.Time {
	return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func TestGenerateFixturesCounts(t *testing.T) {
	set := GenerateFixtures(rand.New(rand.NewSource(1)), fixtureNow())

	cases := []struct {
		name string
		got  int
		want int
	}{
		{"employees", len(set.Employees), 50},
		{"projects", len(set.Projects), 10},
		{"files", len(set.Files), 30},
		{"vendors", len(set.Vendors), 20},
		{"alerts", len(set.Alerts), 3},
		{"training programs", len(set.TrainingPrograms), 2},
		{"field activities", len(set.FieldActivities), 2},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestGenerateFixturesUniqueIdentifiers(t *testing.T) {
	set := GenerateFixtures(rand.New(rand.NewSource(2)), fixtureNow())

	seen := make(map[string]bool)
	for _, emp := range set.Employees {
		if seen[emp.EmployeeID] {
			t.Errorf("duplicate employeeId %s", emp.EmployeeID)
		}
		seen[emp.EmployeeID] = true
	}

	seen = make(map[string]bool)
	for _, file := range set.Files {
		if seen[file.FileID] {
			t.Errorf("duplicate fileId %s", file.FileID)
		}
		seen[file.FileID] = true
	}

	seen = make(map[string]bool)
	for _, vendor := range set.Vendors {
		if seen[vendor.VendorID] {
			t.Errorf("duplicate vendorId %s", vendor.VendorID)
		}
		seen[vendor.VendorID] = true
	}
}

func TestGenerateFixturesValidEnums(t *testing.T) {
	set := GenerateFixtures(rand.New(rand.NewSource(3)), fixtureNow())

	in := func(value string, allowed []string) bool {
		for _, candidate := range allowed {
			if value == candidate {
				return true
			}
		}
		return false
	}

	for _, emp := range set.Employees {
		if !in(emp.Status, EmployeeStatuses) {
			t.Errorf("employee %s has status %q", emp.EmployeeID, emp.Status)
		}
	}
	for _, proj := range set.Projects {
		if !in(proj.Status, ProjectStatuses) {
			t.Errorf("project %q has status %q", proj.Name, proj.Status)
		}
		if proj.Progress < 0 || proj.Progress > 100 {
			t.Errorf("project %q has progress %d", proj.Name, proj.Progress)
		}
	}
	for _, file := range set.Files {
		if !in(file.Status, FileStatuses) {
			t.Errorf("file %s has status %q", file.FileID, file.Status)
		}
		if file.PendingDays < 0 {
			t.Errorf("file %s has negative pendingDays", file.FileID)
		}
	}
	for _, vendor := range set.Vendors {
		if !in(vendor.Status, VendorStatuses) {
			t.Errorf("vendor %s has status %q", vendor.VendorID, vendor.Status)
		}
	}
	for _, alert := range set.Alerts {
		if !in(alert.Type, AlertTypes) {
			t.Errorf("alert %q has type %q", alert.Title, alert.Type)
		}
	}
}

func TestGenerateFixturesDeterministic(t *testing.T) {
	now := fixtureNow()
	first := GenerateFixtures(rand.New(rand.NewSource(42)), now)
	second := GenerateFixtures(rand.New(rand.NewSource(42)), now)

	if len(first.Employees) != len(second.Employees) {
		t.Fatalf("employee counts differ: %d vs %d", len(first.Employees), len(second.Employees))
	}
	for i := range first.Employees {
		if first.Employees[i].Status != second.Employees[i].Status ||
			first.Employees[i].Shift != second.Employees[i].Shift ||
			first.Employees[i].Department != second.Employees[i].Department {
			t.Errorf("employee %d differs between runs", i)
		}
	}
	for i := range first.Files {
		if first.Files[i].PendingDays != second.Files[i].PendingDays {
			t.Errorf("file %d pendingDays differs between runs", i)
		}
	}
}

func TestSeedResolvesAlertReferences(t *testing.T) {
	store := NewStore()
	store.Seed(GenerateFixtures(rand.New(rand.NewSource(7)), fixtureNow()))

	firstFile := store.ListFiles()[0]
	firstVendor := store.ListVendors()[0]

	alerts := store.ListAlerts()
	if len(alerts) != 3 {
		t.Fatalf("expected 3 seeded alerts, got %d", len(alerts))
	}
	if alerts[0].Related == nil || alerts[0].Related.Kind != KindFile || alerts[0].Related.ID != firstFile.ID {
		t.Errorf("first alert ref = %+v, want first file %s", alerts[0].Related, firstFile.ID)
	}
	if alerts[1].Related == nil || alerts[1].Related.Kind != KindVendor || alerts[1].Related.ID != firstVendor.ID {
		t.Errorf("second alert ref = %+v, want first vendor %s", alerts[1].Related, firstVendor.ID)
	}
	if alerts[2].Related != nil {
		t.Errorf("third alert should carry no reference, got %+v", alerts[2].Related)
	}
}

func TestSeedAssignsOpaqueIdentifiers(t *testing.T) {
	store := NewStore()
	store.Seed(GenerateFixtures(rand.New(rand.NewSource(9)), fixtureNow()))

	ids := make(map[string]bool)
	for _, emp := range store.ListEmployees() {
		if emp.ID == "" {
			t.Fatal("seeded employee missing id")
		}
		if ids[emp.ID] {
			t.Fatalf("duplicate id %s", emp.ID)
		}
		ids[emp.ID] = true
	}
}

func TestCuratedVendorExpiresWithinWindow(t *testing.T) {
	now := fixtureNow()
	set := GenerateFixtures(rand.New(rand.NewSource(11)), now)

	ven001 := set.Vendors[0]
	if ven001.VendorID != "VEN001" {
		t.Fatalf("expected VEN001 first, got %s", ven001.VendorID)
	}
	if ven001.ExpiryDate == nil {
		t.Fatal("VEN001 should carry an expiry date")
	}
	days := int(ven001.ExpiryDate.Sub(now).Hours() / 24)
	if days <= 0 || days > 30 {
		t.Errorf("VEN001 expires in %d days, want within (0,30]", days)
	}
}
