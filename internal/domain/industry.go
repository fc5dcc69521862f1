package domain

// IndustryMapping associates an industry with the composite codes that
// select it. Immutable after load.
type IndustryMapping struct {
	Industry     string
	HollandCodes []string
}

// GeneralIndustry is the sentinel industry returned when no mapping
// matches even after widening the search to a single letter.
const GeneralIndustry = "General"

// Program is a JUPAS programme record. MedianScoreIndex is nil when the
// source table carries the "/" sentinel or a non-numeric value.
type Program struct {
	ProgrammeCode    string   `json:"programme_code"`
	ProgrammeName    string   `json:"programme_name"`
	Institution      string   `json:"institution"`
	MedianScoreIndex *float64 `json:"median_score_index"`
}

// Recommendation pairs an industry with its closest-scoring programme.
type Recommendation struct {
	Industry        string  `json:"industry"`
	Program         Program `json:"program"`
	ScoreDifference float64 `json:"score_difference"`
}
