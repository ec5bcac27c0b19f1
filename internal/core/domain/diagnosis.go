package domain

import "time"

// EstimateSource - происхождение оценки, чтобы тихая деградация
// AI -> эвристика была наблюдаемой
type EstimateSource string

const (
	EstimateSourceStatic    EstimateSource = "static"
	EstimateSourceAI        EstimateSource = "ai"
	EstimateSourceHeuristic EstimateSource = "heuristic"
)

type DiagnosisRequest struct {
	UserID      string `json:"userId"`
	Category    string `json:"category"`
	Brand       string `json:"brand"`
	Model       string `json:"model,omitempty"`
	Issue       string `json:"issue"`
	CustomIssue string `json:"customIssue,omitempty"`
}

// IsCustom - выбран пункт "Others, please specify"
func (r DiagnosisRequest) IsCustom() bool {
	return r.CustomIssue != ""
}

type Estimate struct {
	Diagnosis     string         `json:"diagnosis"`
	EstimatedCost int            `json:"estimatedCost"`
	Currency      string         `json:"currency"`
	Source        EstimateSource `json:"source"`
}

// Diagnosis - самостоятельная запись одного события диагностики,
// сохраняется независимо от того, станет ли она заявкой
type Diagnosis struct {
	ID            string         `json:"id" bson:"_id"`
	UserID        string         `json:"userId" bson:"userId"`
	Category      string         `json:"category" bson:"category"`
	Brand         string         `json:"brand" bson:"brand"`
	Model         string         `json:"model,omitempty" bson:"model,omitempty"`
	Issue         string         `json:"issue" bson:"issue"`
	DiagnosisText string         `json:"diagnosisText" bson:"diagnosisText"`
	EstimatedCost int            `json:"estimatedCost" bson:"estimatedCost"`
	Currency      string         `json:"currency" bson:"currency"`
	Source        EstimateSource `json:"source" bson:"source"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
}
