// Package dashboard owns the state of the historical reconciliation
// dashboard and runs the filter, aggregation and presentation pipeline over
// it.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/de-tools/finsync/pkg/services/charts"
	"github.com/de-tools/finsync/pkg/services/reconciliation"
	"github.com/de-tools/finsync/pkg/services/source"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Controller is the single owner of the loaded records and the current view.
// It is safe for concurrent use.
type Controller interface {
	// Load reads the source into a new record store and applies the default filter
	Load(ctx context.Context) error
	// Reload discards the store and loads it again
	Reload(ctx context.Context) error
	// Apply recomputes the view for f; on failure the previous view is kept
	Apply(ctx context.Context, f domain.Filter) (domain.View, error)
	Current() (domain.View, error)
	NextPage() (domain.View, error)
	PrevPage() (domain.View, error)
	GoToPage(page int) (domain.View, error)
	DayDetail(ctx context.Context, date string) (domain.DayDetail, error)
	Compare(ctx context.Context, a, b domain.DateRange) (domain.Comparison, error)
	SearchTransactions(ctx context.Context, q domain.TransactionQuery) ([]domain.DatedTransaction, error)
	Export(ctx context.Context, req domain.ExportRequest) (domain.ExportReceipt, error)
	ExportDay(ctx context.Context, date string) (domain.ExportReceipt, error)
	// DefaultFilter is the filter applied after a load: the last month of data
	DefaultFilter() (domain.Filter, error)
	// DefaultComparison is the last month against the month before it
	DefaultComparison() (domain.DateRange, domain.DateRange, error)
}

type state struct {
	store  *domain.RecordStore
	filter domain.Filter
	view   *domain.View
}

type controller struct {
	mu     sync.Mutex
	source source.Source
	state  state
	now    func() time.Time
	newID  func() string
}

func NewController(src source.Source) Controller {
	return &controller{
		source: src,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (c *controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.store != nil {
		return nil
	}
	return c.load(ctx)
}

func (c *controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load(ctx)
}

func (c *controller) load(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	recs, err := c.source.Records(ctx)
	if err != nil {
		logger.Error().Err(err).Str("source", c.source.Name()).Msg("failed to load historical data")
		return fmt.Errorf("failed to load historical data: %w", err)
	}

	st := state{store: domain.NewRecordStore(recs)}
	if f, ok := defaultFilter(st.store); ok {
		view, err := compute(ctx, st.store, f)
		if err != nil {
			return err
		}
		st.filter = f
		st.view = &view
	}
	c.state = st

	logger.Info().
		Str("source", c.source.Name()).
		Int("records", st.store.Len()).
		Msg("historical data loaded")
	return nil
}

func (c *controller) Apply(ctx context.Context, f domain.Filter) (domain.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.store == nil {
		return domain.View{}, domain.ErrNotLoaded
	}

	view, err := compute(ctx, c.state.store, f)
	if err != nil {
		return domain.View{}, err
	}
	c.state.filter = f
	c.state.view = &view
	return view, nil
}

// compute runs the whole pipeline for f and returns the first page.
func compute(ctx context.Context, store *domain.RecordStore, f domain.Filter) (domain.View, error) {
	if err := f.Validate(); err != nil {
		return domain.View{}, err
	}
	if f.Granularity == "" {
		f.Granularity = domain.GranularityDaily
	}

	filtered, err := reconciliation.Filter(store.Records(), f)
	if err != nil {
		return domain.View{}, err
	}

	periods := reconciliation.Aggregate(filtered, f.Granularity)
	reconciliation.SortByKey(periods)

	series := reconciliation.TimeSeries(periods, f.Granularity)
	shares := reconciliation.StatusPercentages(periods)
	dist := reconciliation.MethodDistribution(periods)

	view := domain.View{
		Filter:       f,
		Periods:      periods,
		Summary:      reconciliation.Summarize(periods),
		Series:       series,
		StatusShares: shares,
		Distribution: dist,
		Charts:       charts.Dashboard(series, shares, dist),
	}
	paginate(&view, 1)

	zerolog.Ctx(ctx).Debug().
		Str("range", f.Range.String()).
		Str("method", string(f.Method)).
		Str("view", string(f.Granularity)).
		Int("periods", len(periods)).
		Msg("view computed")
	return view, nil
}

func paginate(view *domain.View, page int) {
	view.Page = reconciliation.Paginate(len(view.Periods), page)
	view.Items = view.Periods[view.Page.Start:view.Page.End]
}

func (c *controller) Current() (domain.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.view == nil {
		return domain.View{}, domain.ErrNotLoaded
	}
	return *c.state.view, nil
}

func (c *controller) NextPage() (domain.View, error) {
	return c.turnPage(func(p domain.Page) int { return p.Number + 1 })
}

func (c *controller) PrevPage() (domain.View, error) {
	return c.turnPage(func(p domain.Page) int { return p.Number - 1 })
}

func (c *controller) GoToPage(page int) (domain.View, error) {
	return c.turnPage(func(domain.Page) int { return page })
}

func (c *controller) turnPage(next func(domain.Page) int) (domain.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.view == nil {
		return domain.View{}, domain.ErrNotLoaded
	}
	paginate(c.state.view, next(c.state.view.Page))
	return *c.state.view, nil
}

func (c *controller) loaded() (*domain.RecordStore, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.store == nil {
		return nil, domain.ErrNotLoaded
	}
	return c.state.store, nil
}

func (c *controller) DayDetail(_ context.Context, date string) (domain.DayDetail, error) {
	store, err := c.loaded()
	if err != nil {
		return domain.DayDetail{}, err
	}
	if err := domain.ValidateDate(date); err != nil {
		return domain.DayDetail{}, err
	}

	rec, ok := store.Get(date)
	if !ok {
		return domain.DayDetail{}, fmt.Errorf("%w %s", domain.ErrRecordNotFound, date)
	}

	day := reconciliation.Aggregate([]domain.DailyRecord{rec}, domain.GranularityDaily)
	breakdown := reconciliation.Breakdown(rec.PaymentMethods)
	return domain.DayDetail{
		Record:       day[0].DailyRecord,
		Breakdown:    breakdown,
		StatusCounts: reconciliation.CountStatuses(rec.Transactions),
		StatusShare:  reconciliation.StatusPercentages(day)[0],
		Chart:        charts.Detail(breakdown),
	}, nil
}

// Compare sums each range straight from the record source, ignoring the
// current filter. Sources that can read a range themselves are queried
// directly; otherwise the loaded record store serves both ranges.
func (c *controller) Compare(ctx context.Context, a, b domain.DateRange) (domain.Comparison, error) {
	store, err := c.loaded()
	if err != nil {
		return domain.Comparison{}, err
	}
	for _, r := range []domain.DateRange{a, b} {
		if err := r.Validate(); err != nil {
			return domain.Comparison{}, err
		}
	}

	read := store.Range
	if rs, ok := c.source.(source.RangeSource); ok {
		read = rs.Range
	}

	var first, second domain.PeriodTotals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := read(gctx, a)
		if err != nil {
			return fmt.Errorf("read first period: %w", err)
		}
		first = reconciliation.Totals(recs, a)
		return nil
	})
	g.Go(func() error {
		recs, err := read(gctx, b)
		if err != nil {
			return fmt.Errorf("read second period: %w", err)
		}
		second = reconciliation.Totals(recs, b)
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Comparison{}, err
	}

	return domain.Comparison{
		First:  first,
		Second: second,
		Chart:  charts.Comparison(first, second),
	}, nil
}

func (c *controller) SearchTransactions(_ context.Context, q domain.TransactionQuery) ([]domain.DatedTransaction, error) {
	store, err := c.loaded()
	if err != nil {
		return nil, err
	}
	if q.Date != "" {
		if err := domain.ValidateDate(q.Date); err != nil {
			return nil, err
		}
	}
	if q.Status != "" {
		if _, err := domain.ParseStatus(string(q.Status)); err != nil {
			return nil, err
		}
	}
	return reconciliation.MatchTransactions(store.Records(), q), nil
}

func (c *controller) Export(ctx context.Context, req domain.ExportRequest) (domain.ExportReceipt, error) {
	if err := req.Validate(); err != nil {
		return domain.ExportReceipt{}, err
	}

	receipt := domain.ExportReceipt{
		ID:            c.newID(),
		Kind:          req.Kind,
		Format:        req.Format,
		IncludeCharts: req.IncludeCharts,
		Message:       req.Message(),
		RequestedAt:   c.now().UTC(),
	}
	zerolog.Ctx(ctx).Info().
		Str("export_id", receipt.ID).
		Str("kind", string(receipt.Kind)).
		Str("format", string(receipt.Format)).
		Msg("export requested")
	return receipt, nil
}

func (c *controller) ExportDay(ctx context.Context, date string) (domain.ExportReceipt, error) {
	detail, err := c.DayDetail(ctx, date)
	if err != nil {
		return domain.ExportReceipt{}, err
	}

	receipt := domain.ExportReceipt{
		ID:          c.newID(),
		Kind:        domain.ReportDetailed,
		Date:        detail.Record.Date,
		Message:     fmt.Sprintf("Exporting details for %s", detail.Record.Date),
		RequestedAt: c.now().UTC(),
	}
	zerolog.Ctx(ctx).Info().
		Str("export_id", receipt.ID).
		Str("date", receipt.Date).
		Msg("day export requested")
	return receipt, nil
}

func (c *controller) DefaultFilter() (domain.Filter, error) {
	store, err := c.loaded()
	if err != nil {
		return domain.Filter{}, err
	}
	f, ok := defaultFilter(store)
	if !ok {
		return domain.Filter{}, domain.ErrNotLoaded
	}
	return f, nil
}

func (c *controller) DefaultComparison() (domain.DateRange, domain.DateRange, error) {
	f, err := c.DefaultFilter()
	if err != nil {
		return domain.DateRange{}, domain.DateRange{}, err
	}
	end, _ := time.Parse(time.DateOnly, f.Range.Start)
	previous := domain.DateRange{
		Start: end.AddDate(0, -1, 0).Format(time.DateOnly),
		End:   f.Range.Start,
	}
	return f.Range, previous, nil
}

// defaultFilter covers the month ending at the last stored day.
func defaultFilter(store *domain.RecordStore) (domain.Filter, bool) {
	bounds, ok := store.Bounds()
	if !ok {
		return domain.Filter{}, false
	}
	end, err := time.Parse(time.DateOnly, bounds.End)
	if err != nil {
		return domain.Filter{}, false
	}
	return domain.Filter{
		Range: domain.DateRange{
			Start: end.AddDate(0, -1, 0).Format(time.DateOnly),
			End:   bounds.End,
		},
		Granularity: domain.GranularityDaily,
	}, true
}
