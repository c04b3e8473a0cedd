package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const attemptsTable = "attempts"

// AnswerRecord is one chosen option inside an attempt.
type AnswerRecord struct {
	Question int    `json:"question"`
	Option   int    `json:"option"`
	Label    string `json:"label"`
	Weight   int    `json:"weight"`
}

// AttemptRecord is a completed quiz attempt.
type AttemptRecord struct {
	ID          string
	QuizTitle   string
	Score       int
	MaxScore    int
	Tier        string
	Answers     []AnswerRecord
	CompletedAt time.Time
}

// QueryOpts filters attempt queries.
type QueryOpts struct {
	QuizTitle string
	Limit     int
}

// TierCount is the number of attempts that landed in a tier.
type TierCount struct {
	Tier  string
	Count int
}

// Stats aggregates the attempt log.
type Stats struct {
	Attempts     int
	BestScore    int
	AverageScore float64
	Tiers        []TierCount
}

// AttemptRepo persists completed attempts. Only finished attempts are
// recorded; an in-progress quiz is never stored.
type AttemptRepo interface {
	AppendAttempt(ctx context.Context, rec AttemptRecord) error
	RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)
	Stats(ctx context.Context, opts QueryOpts) (Stats, error)
	Clear(ctx context.Context) (int64, error)
}

type attemptRepo struct {
	db *sql.DB
	sb *entsql.DialectBuilder
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, rec AttemptRecord) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	query, args := r.sb.Insert(attemptsTable).
		Columns("id", "quiz_title", "score", "max_score", "tier", "answers", "completed_at").
		Values(rec.ID, rec.QuizTitle, rec.Score, rec.MaxScore, rec.Tier, string(answers), rec.CompletedAt.UnixMilli()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	sel := r.sb.Select("id", "quiz_title", "score", "max_score", "tier", "answers", "completed_at").
		From(r.sb.Table(attemptsTable)).
		OrderBy(entsql.Desc("completed_at"))
	if opts.QuizTitle != "" {
		sel.Where(entsql.EQ("quiz_title", opts.QuizTitle))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var (
			rec       AttemptRecord
			answers   string
			completed int64
		)
		if err := rows.Scan(&rec.ID, &rec.QuizTitle, &rec.Score, &rec.MaxScore, &rec.Tier, &answers, &completed); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
			return nil, fmt.Errorf("decode answers of %s: %w", rec.ID, err)
		}
		rec.CompletedAt = time.UnixMilli(completed)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *attemptRepo) Stats(ctx context.Context, opts QueryOpts) (Stats, error) {
	var stats Stats

	totals := r.sb.Select(entsql.Count("*"), entsql.Max("score"), entsql.Avg("score")).
		From(r.sb.Table(attemptsTable))
	if opts.QuizTitle != "" {
		totals.Where(entsql.EQ("quiz_title", opts.QuizTitle))
	}
	query, args := totals.Query()

	var (
		best sql.NullInt64
		avg  sql.NullFloat64
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&stats.Attempts, &best, &avg); err != nil {
		return Stats{}, fmt.Errorf("query totals: %w", err)
	}
	stats.BestScore = int(best.Int64)
	stats.AverageScore = avg.Float64

	byTier := r.sb.Select("tier", entsql.Count("*")).
		From(r.sb.Table(attemptsTable)).
		GroupBy("tier").
		OrderBy(entsql.Desc(entsql.Count("*")), "tier")
	if opts.QuizTitle != "" {
		byTier.Where(entsql.EQ("quiz_title", opts.QuizTitle))
	}
	query, args = byTier.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return Stats{}, fmt.Errorf("query tiers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tc TierCount
		if err := rows.Scan(&tc.Tier, &tc.Count); err != nil {
			return Stats{}, fmt.Errorf("scan tier: %w", err)
		}
		stats.Tiers = append(stats.Tiers, tc)
	}
	return stats, rows.Err()
}

func (r *attemptRepo) Clear(ctx context.Context) (int64, error) {
	query, args := r.sb.Delete(attemptsTable).Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clear attempts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
