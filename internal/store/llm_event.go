package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// llmEventRow is the llm_request_events row as stored. Timestamps are
// UTC unix nanoseconds.
type llmEventRow struct {
	ID           int    `db:"id"`
	Timestamp    int64  `db:"timestamp"`
	Provider     string `db:"provider"`
	Model        string `db:"model"`
	Purpose      string `db:"purpose"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	LatencyMs    int64  `db:"latency_ms"`
	Success      bool   `db:"success"`
	ErrorMessage string `db:"error_message"`
	RequestBody  string `db:"request_body"`
	ResponseBody string `db:"response_body"`
}

func toLLMEvent(row llmEventRow) LLMEvent {
	return LLMEvent{
		ID:        row.ID,
		Timestamp: time.Unix(0, row.Timestamp).UTC(),
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}

// sqlxEventRepo implements EventRepo using sqlx over SQLite.
type sqlxEventRepo struct {
	db *sqlx.DB
}

const insertEventQuery = `INSERT INTO llm_request_events
	(timestamp, provider, model, purpose, input_tokens, output_tokens,
	 latency_ms, success, error_message, request_body, response_body)
	VALUES (:timestamp, :provider, :model, :purpose, :input_tokens, :output_tokens,
	 :latency_ms, :success, :error_message, :request_body, :response_body)`

func (r *sqlxEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	row := llmEventRow{
		Timestamp:    time.Now().UTC().UnixNano(),
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		RequestBody:  data.RequestBody,
		ResponseBody: data.ResponseBody,
	}
	if _, err := r.db.NamedExecContext(ctx, insertEventQuery, row); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

const selectEvents = `SELECT id, timestamp, provider, model, purpose, input_tokens, output_tokens,
	latency_ms, success, error_message, request_body, response_body
	FROM llm_request_events`

func (r *sqlxEventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	var where []string
	params := map[string]any{}
	if opts.Purpose != "" {
		where = append(where, "purpose = :purpose")
		params["purpose"] = opts.Purpose
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= :from")
		params["from"] = opts.From.UTC().UnixNano()
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= :to")
		params["to"] = opts.To.UTC().UnixNano()
	}

	q := selectEvents
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id DESC"
	if opts.Limit > 0 {
		q += " LIMIT :limit"
		params["limit"] = opts.Limit
	}

	query, args, err := sqlx.Named(q, params)
	if err != nil {
		return nil, fmt.Errorf("build LLM event query: %w", err)
	}

	var rows []llmEventRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, toLLMEvent(row))
	}
	return events, nil
}

func (r *sqlxEventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	var row llmEventRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(selectEvents+" WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	e := toLLMEvent(row)
	return &e, nil
}

func (r *sqlxEventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	var out []PurposeUsage
	err := r.db.SelectContext(ctx, &out, `SELECT purpose,
		COUNT(*) AS calls,
		SUM(CASE WHEN success THEN 0 ELSE 1 END) AS failures,
		SUM(input_tokens) AS input_tokens,
		SUM(output_tokens) AS output_tokens,
		CAST(AVG(latency_ms) AS INTEGER) AS avg_latency_ms
		FROM llm_request_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	return out, nil
}

func (r *sqlxEventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	var out []ModelUsage
	err := r.db.SelectContext(ctx, &out, `SELECT model,
		COUNT(*) AS calls,
		SUM(input_tokens) AS input_tokens,
		SUM(output_tokens) AS output_tokens
		FROM llm_request_events GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	return out, nil
}
