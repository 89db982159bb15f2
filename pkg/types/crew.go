package types

// Crew member employment statuses.
const (
	CrewActive     = "Active"
	CrewOnLeave    = "On Leave"
	CrewTerminated = "Terminated"
)

// CrewStatuses lists the employment statuses in display order.
var CrewStatuses = []string{CrewActive, CrewOnLeave, CrewTerminated}

// Departments lists the departments a crew member can be assigned to.
var Departments = []string{"Management", "Sales", "Stock", "Logistics"}

// CrewMember is one employee.
type CrewMember struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	Department       string `json:"department"`
	Status           string `json:"status"`
	Email            string `json:"email"`
	PerformanceScore int    `json:"performance_score"` // 0-100
}

// RecordID returns the employee identity.
func (c CrewMember) RecordID() string { return c.ID }
