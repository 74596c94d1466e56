package models

// UserRole distinguishes workshop coordinators from instructors.
type UserRole string

const (
	RoleCoordinator UserRole = "COORDINATOR"
	RoleInstructor  UserRole = "INSTRUCTOR"
)

// Pagination describes paginated responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
