package dto

// AddPrisonSecurityRequest represents security level creation data
type AddPrisonSecurityRequest struct {
	SecurityLevel FlexInt `json:"securityLevel" binding:"required,gt=0,lte=10" swaggertype:"integer" example:"8"`
	GuardCount    FlexInt `json:"guardCount" binding:"gte=0" swaggertype:"integer" example:"40"`
	Location      string  `json:"location" binding:"required,max=100" example:"North Wing"`
}

// AddPrisonRequest represents prison creation data
type AddPrisonRequest struct {
	PrisonNum     FlexInt `json:"prisonNum" binding:"required,gt=0" swaggertype:"integer" example:"1"`
	SecurityLevel FlexInt `json:"securityLevel" binding:"required,gt=0" swaggertype:"integer" example:"8"`
}

// AddCellRequest represents holding cell creation data
type AddCellRequest struct {
	CellType  string  `json:"cellType" binding:"required,max=20" example:"A"`
	PrisonNum FlexInt `json:"prisonNum" binding:"required,gt=0" swaggertype:"integer" example:"1"`
}

// RemoveCellRequest identifies the holding cell to delete
type RemoveCellRequest struct {
	CellType string `json:"cellType" binding:"required,max=20" example:"A"`
}

// AddAmenityRequest represents amenity creation data
type AddAmenityRequest struct {
	AmenType   string  `json:"amenType" binding:"required,max=50" example:"Sports"`
	Name       string  `json:"name" binding:"required,max=100" example:"Gym"`
	Recreation string  `json:"recreation" binding:"max=100" example:"Weights"`
	PrisonNum  FlexInt `json:"prisonNum" binding:"required,gt=0" swaggertype:"integer" example:"1"`
}

// AddClubRequest represents club creation data
type AddClubRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Chess Club"`
	ClubType string `json:"clubType" binding:"required,max=50" example:"Games"`
}
