package models

// EmployeeRole is the specialization of an employee
type EmployeeRole string

const (
	RoleNone        EmployeeRole = ""
	RoleGuard       EmployeeRole = "GUARD"
	RoleChef        EmployeeRole = "CHEF"
	RoleMaintenance EmployeeRole = "MAINTENANCE"
	RoleMedical     EmployeeRole = "MEDICAL"
)

// Valid reports whether r is a known role or no role at all.
func (r EmployeeRole) Valid() bool {
	switch r {
	case RoleNone, RoleGuard, RoleChef, RoleMaintenance, RoleMedical:
		return true
	}
	return false
}

// Employee represents an employee with its optional role.
// RoleDetail holds the guard area, meal, maintenance type or medical type.
type Employee struct {
	EmpID      int64        `json:"empId"`
	Name       string       `json:"name"`
	Role       EmployeeRole `json:"role,omitempty"`
	RoleDetail string       `json:"roleDetail,omitempty"`
}

// WorksAt associates an employee with a prison
type WorksAt struct {
	PrisonNum int64   `json:"prisonNum"`
	EmpID     int64   `json:"empId"`
	Salary    float64 `json:"salary"`
}

// Certification held by an employee
type Certification struct {
	Certificate string `json:"certificate"`
	Skills      string `json:"skills"`
	EmpID       int64  `json:"empId"`
}
