// Package statistics summarizes recorded solves per month.
package statistics

import (
	"fmt"
	"sort"

	"github.com/at-ishikawa/mathgrade/internal/solve"
)

// PeriodStatistics holds statistics for a month, e.g. "2025-01"
type PeriodStatistics struct {
	Period         string
	Attempts       int // Total solves
	Correct        int // Solves graded correct
	UniqueProblems int // Distinct problems attempted
	NewlySolved    int // Problems answered correctly for the first time
}

// Accuracy returns the ratio of correct solves, or 0 without attempts.
func (p PeriodStatistics) Accuracy() float64 {
	if p.Attempts == 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Attempts)
}

// AggregateStatistics holds totals across all periods with global unique counts
type AggregateStatistics struct {
	Attempts       int
	Correct        int
	UniqueProblems int
	NewlySolved    int
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []PeriodStatistics
	Aggregate AggregateStatistics
}

type periodData struct {
	attempts    int
	correct     int
	problems    map[int64]struct{}
	newlySolved int
}

// CalculateStatistics calculates solve statistics.
// It accepts optional year and month filters (0 means no filter).
// A problem counts as newly solved in the period of its earliest correct solve,
// even when earlier solves fall outside the filter.
func CalculateStatistics(solves []solve.Solve, year, month int) StatisticsResult {
	ordered := make([]solve.Solve, len(solves))
	copy(ordered, solves)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].SolvedAt.Equal(ordered[j].SolvedAt) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].SolvedAt.Before(ordered[j].SolvedAt)
	})

	stats := make(map[string]*periodData)
	solvedBefore := make(map[int64]struct{})
	globalProblems := make(map[int64]struct{})

	for _, s := range ordered {
		if s.SolvedAt.IsZero() {
			continue
		}
		_, alreadySolved := solvedBefore[s.ProblemID]
		if s.IsCorrect {
			solvedBefore[s.ProblemID] = struct{}{}
		}

		if !matchesFilter(s.SolvedAt.Year(), int(s.SolvedAt.Month()), year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", s.SolvedAt.Year(), int(s.SolvedAt.Month()))
		data := ensurePeriodExists(stats, period)
		data.attempts++
		data.problems[s.ProblemID] = struct{}{}
		globalProblems[s.ProblemID] = struct{}{}
		if s.IsCorrect {
			data.correct++
			if !alreadySolved {
				data.newlySolved++
			}
		}
	}

	return buildResult(stats, globalProblems)
}

func ensurePeriodExists(stats map[string]*periodData, period string) *periodData {
	if stats[period] == nil {
		stats[period] = &periodData{
			problems: make(map[int64]struct{}),
		}
	}
	return stats[period]
}

func matchesFilter(solvedYear, solvedMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if solvedYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return solvedMonth == filterMonth
}

func buildResult(stats map[string]*periodData, globalProblems map[int64]struct{}) StatisticsResult {
	periods := make([]PeriodStatistics, 0, len(stats))

	var aggregate AggregateStatistics
	for period, data := range stats {
		periods = append(periods, PeriodStatistics{
			Period:         period,
			Attempts:       data.attempts,
			Correct:        data.correct,
			UniqueProblems: len(data.problems),
			NewlySolved:    data.newlySolved,
		})
		aggregate.Attempts += data.attempts
		aggregate.Correct += data.correct
		aggregate.NewlySolved += data.newlySolved
	}
	aggregate.UniqueProblems = len(globalProblems)

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods:   periods,
		Aggregate: aggregate,
	}
}
