package dto

// AddEmployeeRequest represents employee creation data with an optional role
type AddEmployeeRequest struct {
	EmpID      FlexInt `json:"empId" binding:"required,gt=0" swaggertype:"integer" example:"10"`
	Name       string  `json:"name" binding:"required,max=100" example:"Dana Reyes"`
	Role       string  `json:"role" binding:"omitempty,oneof=GUARD CHEF MAINTENANCE MEDICAL" example:"GUARD"`
	RoleDetail string  `json:"roleDetail" binding:"required_with=Role,max=100" example:"Yard"`
}

// AssignEmployeeRequest places an employee at a prison
type AssignEmployeeRequest struct {
	PrisonNum FlexInt   `json:"prisonNum" binding:"required,gt=0" swaggertype:"integer" example:"1"`
	EmpID     FlexInt   `json:"empId" binding:"required,gt=0" swaggertype:"integer" example:"10"`
	Salary    FlexFloat `json:"salary" binding:"gte=0" swaggertype:"number" example:"52000"`
}

// AddCertificationRequest represents certification creation data
type AddCertificationRequest struct {
	Certificate string  `json:"certificate" binding:"required,max=100" example:"First Aid"`
	Skills      string  `json:"skills" binding:"max=200" example:"CPR"`
	EmpID       FlexInt `json:"empId" binding:"required,gt=0" swaggertype:"integer" example:"10"`
}
