package dashboard

import (
	"sort"
	"time"

	"github.com/pedrolmns/big-lambda/internal/job"
	util "github.com/pedrolmns/big-lambda/internal/utils"
)

// Compute aggregates the active board for the dashboard. Paid jobs count only
// toward the archive; overdue means finalized with the deadline date already
// past.
func Compute(jobs []job.Job, now time.Time) StatsResponse {
	stats := JobStats{}
	revenueByMonth := map[string]float64{}

	today := util.StartOfDay(now)

	for _, j := range jobs {
		if j.IsDeleted {
			continue
		}
		if j.Status == job.StatusPaid {
			stats.Archived++
		} else {
			stats.Total++
		}

		switch j.Status {
		case job.StatusBriefing:
			stats.Briefing++
		case job.StatusProduction:
			stats.Production++
		case job.StatusReview:
			stats.Review++
		case job.StatusFinalized:
			stats.Finalized++
			if util.StartOfDay(j.Deadline.Time).Before(today) {
				stats.Overdue++
			}
		case job.StatusPaid:
			stats.Paid++
		}

		for _, p := range j.Payments {
			revenueByMonth[p.Date.In(util.Location()).Format("2006-01")] += p.Amount
		}
	}

	months := make([]string, 0, len(revenueByMonth))
	for m := range revenueByMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	revenue := make([]MonthlyRevenue, 0, len(months))
	for _, m := range months {
		revenue = append(revenue, MonthlyRevenue{Month: m, Revenue: revenueByMonth[m]})
	}

	last := lastJobs(jobs, 5)

	return StatsResponse{Stats: stats, Revenue: revenue, LastJobs: last}
}

func lastJobs(jobs []job.Job, n int) []job.Job {
	active := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if !j.IsDeleted {
			active = append(active, j)
		}
	}
	sort.Slice(active, func(i, k int) bool {
		return active[i].CreatedAt.After(active[k].CreatedAt)
	})
	if len(active) > n {
		active = active[:n]
	}
	return active
}
