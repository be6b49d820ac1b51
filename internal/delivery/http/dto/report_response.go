package dto

type TopCandidateResponse struct {
	CandidateID            int64   `json:"candidateId"`
	AveragePopularityScore float64 `json:"averagePopularityScore"`
}

type PopulateResponse struct {
	Populated bool `json:"populated"`
}

type HealthResponse struct {
	Database string        `json:"database"`
	Stats    StatsCounters `json:"stats"`
}

type StatsCounters struct {
	Calls    int64 `json:"calls"`
	Degraded int64 `json:"degraded"`
}
