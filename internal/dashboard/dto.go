package dashboard

import "github.com/pedrolmns/big-lambda/internal/job"

type JobStats struct {
	Total      int `json:"total"`
	Briefing   int `json:"briefing"`
	Production int `json:"production"`
	Review     int `json:"review"`
	Finalized  int `json:"finalized"`
	Paid       int `json:"paid"`
	Overdue    int `json:"overdue"`
	Archived   int `json:"archived"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type StatsResponse struct {
	Stats    JobStats         `json:"stats"`
	Revenue  []MonthlyRevenue `json:"revenue"`
	LastJobs []job.Job        `json:"last_jobs"`
}
