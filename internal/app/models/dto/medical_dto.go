package dto

// AddMedicalRequest represents medical record creation data
type AddMedicalRequest struct {
	RecordNum FlexInt   `json:"recordNum" binding:"required,gt=0" swaggertype:"integer" example:"500"`
	BloodType string    `json:"bloodType" binding:"required,bloodtype" example:"O+"`
	Weight    FlexFloat `json:"weight" binding:"required,gt=0" swaggertype:"number" example:"72.5"`
	Sex       string    `json:"sex" binding:"required,oneof=M F X" example:"F"`
	Height    FlexFloat `json:"height" binding:"required,gt=0" swaggertype:"number" example:"165"`
	InmateID  FlexInt   `json:"inmateId" binding:"required,gt=0" swaggertype:"integer" example:"1"`
}
