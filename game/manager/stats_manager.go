package manager

import (
	"sort"
	"time"
)

// GroupSize is the number of records folded into one compressed record.
const GroupSize = 100

// GameRecord holds one finished session or a group of them.
type GameRecord struct {
	ID               string    `json:"id,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`            // Single sessions
	CompressionIndex int       `json:"compressionIndex"` // 0 for single sessions, >0 for groups
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MedianScore      float64   `json:"medianScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

// StatsManager keeps the score history of the finished sessions of one
// process. Nothing is written to disk.
type StatsManager struct {
	games []GameRecord
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		games: make([]GameRecord, 0),
	}
}

// AddGame records a finished session.
func (s *StatsManager) AddGame(id string, startTime, endTime time.Time, score int) {
	duration := endTime.Sub(startTime).Seconds()
	s.games = append(s.games, GameRecord{
		ID:               id,
		StartTime:        startTime,
		EndTime:          endTime,
		Score:            score,
		CompressionIndex: 0,
		GamesCount:       1,
		AverageScore:     float64(score),
		MedianScore:      float64(score),
		MaxScore:         score,
		MinScore:         score,
		AverageDuration:  duration,
		MaxDuration:      duration,
		MinDuration:      duration,
	})

	s.groupGames()
}

// groupGames folds every GroupSize records of one compression level into a
// single record of the next level.
func (s *StatsManager) groupGames() {
	sort.SliceStable(s.games, func(i, j int) bool {
		if s.games[i].CompressionIndex != s.games[j].CompressionIndex {
			return s.games[i].CompressionIndex < s.games[j].CompressionIndex
		}
		return s.games[i].StartTime.Before(s.games[j].StartTime)
	})

	for level := 0; ; level++ {
		records := make([]GameRecord, 0)
		for _, g := range s.games {
			if g.CompressionIndex == level {
				records = append(records, g)
			}
		}

		if len(records) < GroupSize {
			break
		}

		var newRecords []GameRecord
		for i := 0; i < len(records); i += GroupSize {
			end := i + GroupSize
			if end > len(records) {
				newRecords = append(newRecords, records[i:]...)
				break
			}
			newRecords = append(newRecords, compress(records[i:end], level+1))
		}

		remaining := make([]GameRecord, 0, len(s.games))
		for _, g := range s.games {
			if g.CompressionIndex != level {
				remaining = append(remaining, g)
			}
		}
		s.games = append(remaining, newRecords...)
	}
}

func compress(group []GameRecord, level int) GameRecord {
	var totalScore, totalDuration float64
	allScores := make([]float64, 0)
	out := GameRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	for _, g := range group {
		out.MaxScore = max(out.MaxScore, g.MaxScore)
		out.MinScore = min(out.MinScore, g.MinScore)
		out.MaxDuration = max(out.MaxDuration, g.MaxDuration)
		out.MinDuration = min(out.MinDuration, g.MinDuration)
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
		for i := 0; i < g.GamesCount; i++ {
			allScores = append(allScores, g.MedianScore)
		}
	}

	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	out.MedianScore = median(allScores)
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	n := len(values)
	if n%2 == 0 {
		return (values[n/2-1] + values[n/2]) / 2
	}
	return values[n/2]
}

// Records returns a copy of the current records.
func (s *StatsManager) Records() []GameRecord {
	out := make([]GameRecord, len(s.games))
	copy(out, s.games)
	return out
}

func (s *StatsManager) GamesPlayed() int {
	total := 0
	for _, g := range s.games {
		total += g.GamesCount
	}
	return total
}

func (s *StatsManager) HighScore() int {
	high := 0
	for _, g := range s.games {
		high = max(high, g.MaxScore)
	}
	return high
}

func (s *StatsManager) AverageScore() float64 {
	var total float64
	var games int
	for _, g := range s.games {
		total += g.AverageScore * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

func (s *StatsManager) MedianScore() float64 {
	scores := make([]float64, 0)
	for _, g := range s.games {
		for i := 0; i < g.GamesCount; i++ {
			scores = append(scores, g.MedianScore)
		}
	}
	return median(scores)
}

// AverageDuration is in seconds.
func (s *StatsManager) AverageDuration() float64 {
	var total float64
	var games int
	for _, g := range s.games {
		total += g.AverageDuration * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}
