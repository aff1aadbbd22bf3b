package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type recordingTracer struct {
	name  string
	calls *[]string
}

func (r recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	*r.calls = append(*r.calls, r.name+":start")
	return ctx
}

func (r recordingTracer) TraceQueryEnd(_ context.Context, _ *pgx.Conn, _ pgx.TraceQueryEndData) {
	*r.calls = append(*r.calls, r.name+":end")
}

func TestChainTracers(t *testing.T) {
	assert.Nil(t, chainTracers())

	var calls []string
	single := recordingTracer{name: "a", calls: &calls}
	assert.Equal(t, single, chainTracers(single))

	chained := chainTracers(single, recordingTracer{name: "b", calls: &calls})
	ctx := chained.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	chained.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Equal(t, []string{"a:start", "b:start", "a:end", "b:end"}, calls)
}

func TestQueryMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewQueryMetrics("test", reg)

	run := func(sql string, err error) {
		ctx := m.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: sql})
		m.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: err})
	}

	run("SELECT e.id FROM employees e JOIN departments d ON e.department_id = d.id", nil)
	run("  select 1", nil)
	run("DELETE FROM departments WHERE id = $1", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.queries.WithLabelValues("select", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues("delete", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))

	// an end without a matching start is ignored
	m.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	assert.Equal(t, 2.0, testutil.ToFloat64(m.queries.WithLabelValues("select", "ok")))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "insert", Operation("INSERT INTO products (name) VALUES ($1)"))
	assert.Equal(t, "with", Operation("WITH p AS (SELECT 1) SELECT * FROM p"))
	assert.Equal(t, "other", Operation("begin"))
	assert.Equal(t, "other", Operation(""))
}
