package models

// Sentence represents a sentence handed to an inmate. Duration is in months.
type Sentence struct {
	SentenceID int64  `json:"sentenceId"`
	Duration   int    `json:"duration"`
	CrimeName  string `json:"crimeName"`
	CrimeType  string `json:"crimeType"`
	Severity   int    `json:"severity"`
	InmateID   int64  `json:"inmateId"`
}

// HighSeverityThreshold is the threshold above which a crime counts as high severity.
const HighSeverityThreshold = 7
