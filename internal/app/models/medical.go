package models

// MedicalRecord represents a medical_data row
type MedicalRecord struct {
	RecordNum int64   `json:"recordNum"`
	BloodType string  `json:"bloodType"`
	Weight    float64 `json:"weight"`
	Height    float64 `json:"height"`
	Sex       string  `json:"sex"`
	InmateID  int64   `json:"inmateId"`
}
