package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"incubator/pkg/content"
	"incubator/pkg/events"
	"incubator/pkg/jobs"
	"incubator/pkg/startups"
)

// PostgresLoader reads every collection from the catalog tables, ordered by position.
type PostgresLoader struct {
	pool *pgxpool.Pool
}

func NewPostgresLoader(pool *pgxpool.Pool) *PostgresLoader {
	return &PostgresLoader{pool: pool}
}

func (l *PostgresLoader) Load(ctx context.Context) (Data, error) {
	var d Data
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { d.Jobs, err = l.jobs(ctx); return })
	g.Go(func() (err error) { d.Startups, err = l.startups(ctx); return })
	g.Go(func() (err error) { d.Events, err = l.events(ctx); return })
	g.Go(func() (err error) { d.Team, err = l.team(ctx); return })
	g.Go(func() (err error) { d.FAQ, err = l.faq(ctx); return })
	g.Go(func() (err error) { d.Programs, err = l.programs(ctx); return })

	if err := g.Wait(); err != nil {
		return Data{}, err
	}
	return d, nil
}

func (l *PostgresLoader) jobs(ctx context.Context) ([]jobs.Job, error) {
	query := `SELECT id, startup, title, location, remote, type, sector, description, apply_link, salary, equity, experience, featured
              FROM jobs
              ORDER BY position, id`

	return queryAll(ctx, l.pool, "jobs", query, func(rows pgx.Rows) (jobs.Job, error) {
		var j jobs.Job
		err := rows.Scan(&j.ID, &j.Startup, &j.Title, &j.Location, &j.Remote, &j.Type, &j.Sector,
			&j.Description, &j.ApplyLink, &j.Salary, &j.Equity, &j.Experience, &j.Featured)
		return j, err
	})
}

func (l *PostgresLoader) startups(ctx context.Context) ([]startups.Startup, error) {
	query := `SELECT id, name, sector, stage, funding, description, logo, metrics
              FROM startups
              ORDER BY position, id`

	return queryAll(ctx, l.pool, "startups", query, func(rows pgx.Rows) (startups.Startup, error) {
		var s startups.Startup
		err := rows.Scan(&s.ID, &s.Name, &s.Sector, &s.Stage, &s.Funding, &s.Description, &s.Logo, &s.Metrics)
		return s, err
	})
}

func (l *PostgresLoader) events(ctx context.Context) ([]events.Event, error) {
	query := `SELECT id, title, description, date, time, location, type, is_demo_day, featured, capacity, registered, speakers, agenda
              FROM events
              ORDER BY position, id`

	return queryAll(ctx, l.pool, "events", query, func(rows pgx.Rows) (events.Event, error) {
		var e events.Event
		err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.Type,
			&e.IsDemoDay, &e.Featured, &e.Capacity, &e.Registered, &e.Speakers, &e.Agenda)
		return e, err
	})
}

func (l *PostgresLoader) team(ctx context.Context) ([]content.TeamMember, error) {
	query := `SELECT id, name, role, avatar, bio, linkedin, badge FROM team_members ORDER BY position, id`

	return queryAll(ctx, l.pool, "team_members", query, func(rows pgx.Rows) (content.TeamMember, error) {
		var m content.TeamMember
		err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Avatar, &m.Bio, &m.LinkedIn, &m.Badge)
		return m, err
	})
}

func (l *PostgresLoader) faq(ctx context.Context) ([]content.FAQItem, error) {
	query := `SELECT id, question, answer, category FROM faqs ORDER BY position, id`

	return queryAll(ctx, l.pool, "faqs", query, func(rows pgx.Rows) (content.FAQItem, error) {
		var f content.FAQItem
		err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category)
		return f, err
	})
}

func (l *PostgresLoader) programs(ctx context.Context) ([]content.Program, error) {
	query := `SELECT id, track, duration, structure, description, benefits, ideal, commitment, cohort_size
              FROM programs
              ORDER BY position, id`

	return queryAll(ctx, l.pool, "programs", query, func(rows pgx.Rows) (content.Program, error) {
		var p content.Program
		err := rows.Scan(&p.ID, &p.Track, &p.Duration, &p.Structure, &p.Description, &p.Benefits,
			&p.Ideal, &p.Commitment, &p.CohortSize)
		return p, err
	})
}

func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, table, query string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	return out, nil
}

// Seed upserts d into the catalog tables in one transaction, keeping the
// slice order in the position column.
func Seed(ctx context.Context, pool *pgxpool.Pool, d Data) error {
	if err := Validate(d); err != nil {
		return err
	}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for i, j := range d.Jobs {
		batch.Queue(`INSERT INTO jobs (id, position, startup, title, location, remote, type, sector, description, apply_link, salary, equity, experience, featured)
                     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
                     ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, startup = EXCLUDED.startup, title = EXCLUDED.title,
                         location = EXCLUDED.location, remote = EXCLUDED.remote, type = EXCLUDED.type, sector = EXCLUDED.sector,
                         description = EXCLUDED.description, apply_link = EXCLUDED.apply_link, salary = EXCLUDED.salary,
                         equity = EXCLUDED.equity, experience = EXCLUDED.experience, featured = EXCLUDED.featured`,
			j.ID, i, j.Startup, j.Title, j.Location, j.Remote, j.Type, j.Sector, j.Description, j.ApplyLink, j.Salary, j.Equity, j.Experience, j.Featured)
	}
	for i, s := range d.Startups {
		batch.Queue(`INSERT INTO startups (id, position, name, sector, stage, funding, description, logo, metrics)
                     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                     ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, name = EXCLUDED.name, sector = EXCLUDED.sector,
                         stage = EXCLUDED.stage, funding = EXCLUDED.funding, description = EXCLUDED.description,
                         logo = EXCLUDED.logo, metrics = EXCLUDED.metrics`,
			s.ID, i, s.Name, s.Sector, s.Stage, s.Funding, s.Description, s.Logo, metrics(s.Metrics))
	}
	for i, e := range d.Events {
		batch.Queue(`INSERT INTO events (id, position, title, description, date, time, location, type, is_demo_day, featured, capacity, registered, speakers, agenda)
                     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
                     ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, title = EXCLUDED.title, description = EXCLUDED.description,
                         date = EXCLUDED.date, time = EXCLUDED.time, location = EXCLUDED.location, type = EXCLUDED.type,
                         is_demo_day = EXCLUDED.is_demo_day, featured = EXCLUDED.featured, capacity = EXCLUDED.capacity,
                         registered = EXCLUDED.registered, speakers = EXCLUDED.speakers, agenda = EXCLUDED.agenda`,
			e.ID, i, e.Title, e.Description, e.Date, e.Time, e.Location, e.Type, e.IsDemoDay, e.Featured, e.Capacity, e.Registered, nonNil(e.Speakers), nonNil(e.Agenda))
	}
	for i, m := range d.Team {
		batch.Queue(`INSERT INTO team_members (id, position, name, role, avatar, bio, linkedin, badge)
                     VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                     ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, name = EXCLUDED.name, role = EXCLUDED.role,
                         avatar = EXCLUDED.avatar, bio = EXCLUDED.bio, linkedin = EXCLUDED.linkedin, badge = EXCLUDED.badge`,
			m.ID, i, m.Name, m.Role, m.Avatar, m.Bio, m.LinkedIn, m.Badge)
	}
	for i, f := range d.FAQ {
		batch.Queue(`INSERT INTO faqs (id, position, question, answer, category)
                     VALUES ($1, $2, $3, $4, $5)
                     ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, question = EXCLUDED.question,
                         answer = EXCLUDED.answer, category = EXCLUDED.category`,
			f.ID, i, f.Question, f.Answer, f.Category)
	}
	for i, p := range d.Programs {
		batch.Queue(`INSERT INTO programs (id, position, track, duration, structure, description, benefits, ideal, commitment, cohort_size)
                     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                     ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, track = EXCLUDED.track, duration = EXCLUDED.duration,
                         structure = EXCLUDED.structure, description = EXCLUDED.description, benefits = EXCLUDED.benefits,
                         ideal = EXCLUDED.ideal, commitment = EXCLUDED.commitment, cohort_size = EXCLUDED.cohort_size`,
			p.ID, i, p.Track, p.Duration, p.Structure, p.Description, nonNil(p.Benefits), p.Ideal, p.Commitment, p.CohortSize)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func metrics(m []startups.Metric) []startups.Metric {
	if m == nil {
		return []startups.Metric{}
	}
	return m
}
