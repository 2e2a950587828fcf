package dto

// AddSentenceRequest represents sentence creation data
type AddSentenceRequest struct {
	Duration  FlexInt `json:"duration" binding:"required,gt=0" swaggertype:"integer" example:"24"`
	CrimeName string  `json:"crimeName" binding:"required,max=100" example:"Fraud"`
	CrimeType string  `json:"crimeType" binding:"required,max=50" example:"Financial"`
	Severity  FlexInt `json:"severity" binding:"gte=0,lte=10" swaggertype:"integer" example:"4"`
	InmateID  FlexInt `json:"inmateId" binding:"required,gt=0" swaggertype:"integer" example:"1"`
}

// ReduceSentenceRequest shortens every sentence of an inmate for good behaviour
type ReduceSentenceRequest struct {
	InmateID      FlexInt `json:"inmateId" binding:"required,gt=0" swaggertype:"integer" example:"1"`
	MonthsReduced FlexInt `json:"monthsReduced" binding:"required,gt=0" swaggertype:"integer" example:"6"`
}
