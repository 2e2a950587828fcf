package dto

// AddInmateRequest represents inmate creation data
type AddInmateRequest struct {
	InmateID    FlexInt `json:"inmateId" binding:"required,gt=0" swaggertype:"integer" example:"1"`
	HoldingCell string  `json:"holdingCell" binding:"required,max=20" example:"A"`
	HealthNum   FlexInt `json:"healthNum" binding:"required,gt=0" swaggertype:"integer" example:"100"`
	StartDate   string  `json:"startDate" binding:"required,isodate" example:"2024-01-01"`
	EndDate     string  `json:"endDate" binding:"required,isodate" example:"2024-01-10"`
}

// AddCompleteInmateRequest carries an inmate with its first sentence and medical record
type AddCompleteInmateRequest struct {
	AddInmateRequest

	Duration  FlexInt `json:"duration" binding:"required,gt=0" swaggertype:"integer" example:"24"`
	CrimeName string  `json:"crimeName" binding:"required,max=100" example:"Burglary"`
	CrimeType string  `json:"crimeType" binding:"required,max=50" example:"Property"`
	Severity  FlexInt `json:"severity" binding:"gte=0,lte=10" swaggertype:"integer" example:"5"`

	RecordNum FlexInt   `json:"recordNum" binding:"required,gt=0" swaggertype:"integer" example:"500"`
	BloodType string    `json:"bloodType" binding:"required,bloodtype" example:"O+"`
	Weight    FlexFloat `json:"weight" binding:"required,gt=0" swaggertype:"number" example:"72.5"`
	Sex       string    `json:"sex" binding:"required,oneof=M F X" example:"M"`
	Height    FlexFloat `json:"height" binding:"required,gt=0" swaggertype:"number" example:"180"`
}

// RemoveInmateRequest identifies the inmate to delete
type RemoveInmateRequest struct {
	InmateID FlexInt `json:"inmateID" binding:"required,gt=0" swaggertype:"integer" example:"1"`
}

// TransferInmateRequest moves an inmate to another holding cell
type TransferInmateRequest struct {
	InmateID       FlexInt `json:"inmateId" binding:"required,gt=0" swaggertype:"integer" example:"1"`
	NewHoldingCell string  `json:"newHoldingCell" binding:"required,max=20" example:"B"`
}
