package models

// HoldingCell represents a cell type belonging to a prison
type HoldingCell struct {
	CellType  string `json:"cellType"`
	PrisonNum int64  `json:"prisonNum"`
}

// PrisonSecurity represents a security level and its staffing
type PrisonSecurity struct {
	SecurityLevel int    `json:"securityLevel"`
	GuardCount    int    `json:"guardCount"`
	Location      string `json:"location"`
}

// Prison represents a prison_info row
type Prison struct {
	PrisonNum     int64 `json:"prisonNum"`
	SecurityLevel int   `json:"securityLevel"`
}

// Amenity represents a recreational amenity of a prison
type Amenity struct {
	AmenType   string `json:"amenType"`
	Name       string `json:"name"`
	Recreation string `json:"recreation"`
	PrisonNum  int64  `json:"prisonNum"`
}

// Club represents an inmate club
type Club struct {
	Name     string `json:"name"`
	ClubType string `json:"clubType"`
}
