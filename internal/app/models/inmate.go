package models

// Inmate represents an inmate row
type Inmate struct {
	InmateID    int64  `json:"inmateId"`
	HoldingCell string `json:"holdingCell"`
	HealthNum   int64  `json:"healthNum"`
	StartDate   Date   `json:"startDate"`
	EndDate     Date   `json:"endDate"`
}

// InmateBasic is the reduced projection served by /basic-inmate-info
type InmateBasic struct {
	InmateID    int64  `json:"inmateId"`
	HoldingCell string `json:"holdingCell"`
	EndDate     Date   `json:"endDate"`
}

// CellAssignment records that an inmate was placed in a holding cell on a given day.
type CellAssignment struct {
	InmateID    int64  `json:"inmateId"`
	HoldingCell string `json:"holdingCell"`
	AssignedOn  Date   `json:"assignedOn"`
}

// CompleteInmate bundles the rows inserted together by the composite insert.
type CompleteInmate struct {
	Inmate   Inmate
	Sentence Sentence
	Medical  MedicalRecord
}
