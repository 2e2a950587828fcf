package models

// Rows returned by the query catalog.

type CellCount struct {
	HoldingCell string `json:"holdingCell"`
	Count       int64  `json:"count"`
}

type HighSeverityCell struct {
	HoldingCell       string `json:"holdingCell"`
	PrisonNum         int64  `json:"prisonNum"`
	HighSeverityCount int64  `json:"highSeverityCount"`
}

type InmateMedical struct {
	InmateID    int64   `json:"inmateId"`
	HoldingCell string  `json:"holdingCell"`
	RecordNum   int64   `json:"recordNum"`
	BloodType   string  `json:"bloodType"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
	Sex         string  `json:"sex"`
}

type InmateMedicalSentence struct {
	InmateID    int64   `json:"inmateId"`
	HoldingCell string  `json:"holdingCell"`
	BloodType   string  `json:"bloodType"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
	CrimeName   string  `json:"crimeName"`
	Severity    int     `json:"severity"`
	Duration    int     `json:"duration"`
}

// InmateRef is the result row of the division query
type InmateRef struct {
	InmateID    int64  `json:"inmateId"`
	HoldingCell string `json:"holdingCell"`
}

type HighSecurityAssignment struct {
	EmpID         int64   `json:"empId"`
	Name          string  `json:"name"`
	PrisonNum     int64   `json:"prisonNum"`
	SecurityLevel int     `json:"securityLevel"`
	Location      string  `json:"location"`
	Salary        float64 `json:"salary"`
}
