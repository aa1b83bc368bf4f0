// Package stats computes derived dashboard statistics over full entity
// lists. Every function is pure: it reads the slices it is given, mutates
// nothing, and returns zero-valued counts for empty input. Records with a
// status outside the enumerated domain fall into no bucket.
package stats

import (
	"time"

	"railops/internal/domain/registry"
)

type EmployeeStats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Field   int `json:"field"`
}

type ProjectStats struct {
	Total      int `json:"total"`
	OnTrack    int `json:"onTrack"`
	Delayed    int `json:"delayed"`
	InProgress int `json:"inProgress"`
}

type FileStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Overdue  int `json:"overdue"`
}

type VendorStats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Pending  int `json:"pending"`
}

type AlertStats struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
}

// Dashboard bundles the per-kind tallies served by a single dashboard
// fetch. It is recomputed from live store contents on every call; nothing
// here is cached.
type Dashboard struct {
	Employees EmployeeStats `json:"employees"`
	Projects  ProjectStats  `json:"projects"`
	Files     FileStats     `json:"files"`
	Vendors   VendorStats   `json:"vendors"`
	Alerts    AlertStats    `json:"alerts"`
}

func Compute(
	employees []registry.Employee,
	projects []registry.Project,
	files []registry.File,
	vendors []registry.Vendor,
	alerts []registry.Alert,
) Dashboard {
	return Dashboard{
		Employees: ComputeEmployees(employees),
		Projects:  ComputeProjects(projects),
		Files:     ComputeFiles(files),
		Vendors:   ComputeVendors(vendors),
		Alerts:    ComputeAlerts(alerts),
	}
}

func ComputeEmployees(employees []registry.Employee) EmployeeStats {
	out := EmployeeStats{Total: len(employees)}
	for _, emp := range employees {
		switch emp.Status {
		case registry.EmployeeStatusPresent:
			out.Present++
		case registry.EmployeeStatusAbsent:
			out.Absent++
		case registry.EmployeeStatusFieldDuty:
			out.Field++
		}
	}
	return out
}

func ComputeProjects(projects []registry.Project) ProjectStats {
	out := ProjectStats{Total: len(projects)}
	for _, proj := range projects {
		switch proj.Status {
		case registry.ProjectStatusOnTrack:
			out.OnTrack++
		case registry.ProjectStatusDelayed:
			out.Delayed++
		case registry.ProjectStatusInProgress:
			out.InProgress++
		}
	}
	return out
}

func ComputeFiles(files []registry.File) FileStats {
	out := FileStats{Total: len(files)}
	for _, file := range files {
		switch file.Status {
		case registry.FileStatusPending:
			out.Pending++
		case registry.FileStatusApproved:
			out.Approved++
		}
		if IsOverdue(file) {
			out.Overdue++
		}
	}
	return out
}

func ComputeVendors(vendors []registry.Vendor) VendorStats {
	out := VendorStats{Total: len(vendors)}
	for _, vendor := range vendors {
		switch vendor.Status {
		case registry.VendorStatusApproved:
			out.Approved++
		case registry.VendorStatusRejected:
			out.Rejected++
		case registry.VendorStatusPending:
			out.Pending++
		}
	}
	return out
}

// ComputeAlerts counts critical and warning alerts only within the active
// set; resolved and dismissed alerts contribute to the total alone.
func ComputeAlerts(alerts []registry.Alert) AlertStats {
	out := AlertStats{Total: len(alerts)}
	for _, alert := range alerts {
		if alert.Status != registry.AlertStatusActive {
			continue
		}
		switch alert.Type {
		case registry.AlertTypeCritical:
			out.Critical++
		case registry.AlertTypeWarning:
			out.Warning++
		}
	}
	return out
}

// IsOverdue reports whether a file has been pending strictly longer than
// the overdue threshold. A file pending exactly seven days is not overdue.
func IsOverdue(file registry.File) bool {
	return file.PendingDays > registry.OverdueThresholdDays
}

func OverdueFiles(files []registry.File) int {
	count := 0
	for _, file := range files {
		if IsOverdue(file) {
			count++
		}
	}
	return count
}

// AgingBucket is one bar of the file-aging chart.
type AgingBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PendingDayBuckets partitions files into the four aging ranges
// [0,3], (3,7], (7,15] and (15,inf). Every file lands in exactly one
// bucket.
func PendingDayBuckets(files []registry.File) []AgingBucket {
	buckets := []AgingBucket{
		{Label: "0-3 days"},
		{Label: "4-7 days"},
		{Label: "8-15 days"},
		{Label: "16+ days"},
	}
	for _, file := range files {
		switch {
		case file.PendingDays <= 3:
			buckets[0].Count++
		case file.PendingDays <= 7:
			buckets[1].Count++
		case file.PendingDays <= 15:
			buckets[2].Count++
		default:
			buckets[3].Count++
		}
	}
	return buckets
}

// IsExpiringSoon reports whether a vendor's registration expires within the
// next 30 whole days. Vendors without an expiry date, and vendors already
// expired (zero or negative days left), are not flagged.
func IsExpiringSoon(vendor registry.Vendor, now time.Time) bool {
	if vendor.ExpiryDate == nil {
		return false
	}
	days := int(vendor.ExpiryDate.Sub(now).Hours() / 24)
	return days > 0 && days <= 30
}

func ExpiringSoon(vendors []registry.Vendor, now time.Time) []registry.Vendor {
	out := make([]registry.Vendor, 0)
	for _, vendor := range vendors {
		if IsExpiringSoon(vendor, now) {
			out = append(out, vendor)
		}
	}
	return out
}

// RecentProjects returns the first n projects in store order. Progress is
// passed through as stored; there is no recomputation or sorting.
func RecentProjects(projects []registry.Project, n int) []registry.Project {
	if n < 0 {
		n = 0
	}
	if n > len(projects) {
		n = len(projects)
	}
	out := make([]registry.Project, n)
	copy(out, projects[:n])
	return out
}
