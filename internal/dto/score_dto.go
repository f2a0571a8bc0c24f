package dto

type SubmitScoreRequest struct {
	Activity string `json:"activity"`
	Score    int    `json:"score"`
	Email    string `json:"email"`
}

type SubmitScoreResponse struct {
	Message string `json:"message"`
}

type CurrentScoreResponse struct {
	Score map[string]int `json:"score"`
}

type PastScore struct {
	Score     map[string]int `json:"score"`
	Timestamp string         `json:"timestamp"`
	Email     string         `json:"email"`
}

type PastScoresResponse struct {
	PastScores []PastScore `json:"pastScores"`
}
