package domain

// Summary holds the dashboard KPIs of a view.
type Summary struct {
	TotalExpected      float64
	TotalReceived      float64
	TotalTransactions  int
	TotalDays          int
	DailyAverage       float64
	TotalDiscrepancies int
}

// SeriesPoint is one period of the dashboard time series.
type SeriesPoint struct {
	Key      string
	Label    string
	Received float64
	Expected float64
	Methods  MethodBreakdown
}

// StatusShare is the percentage of a period's transactions in each status.
type StatusShare struct {
	Key        string
	Reconciled float64
	Pending    float64
	Error      float64
}

type Page struct {
	Number     int
	Size       int
	TotalItems int
	TotalPages int
	Start      int
	End        int
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.End < p.TotalItems
}

type ChartKind string

const (
	ChartLine       ChartKind = "line"
	ChartDoughnut   ChartKind = "doughnut"
	ChartBarStacked ChartKind = "bar-stacked"
	ChartBarGrouped ChartKind = "bar-grouped"
	ChartPie        ChartKind = "pie"
)

type Dataset struct {
	Label string
	Data  []float64
}

// Chart is a chart specification for an external chart renderer.
type Chart struct {
	Kind     ChartKind
	Title    string
	Labels   []string
	Datasets []Dataset
}

// View is the fully computed dashboard for one filter.
type View struct {
	Filter       Filter
	Periods      []PeriodRecord
	Summary      Summary
	Series       []SeriesPoint
	StatusShares []StatusShare
	Distribution []MethodAmount
	Charts       []Chart
	Page         Page
	Items        []PeriodRecord
}

type PeriodTotals struct {
	Label      string
	Range      DateRange
	Expected   float64
	Received   float64
	Difference float64
}

type Comparison struct {
	First  PeriodTotals
	Second PeriodTotals
	Chart  Chart
}

// StatusCounts is the number of transactions in each status.
type StatusCounts struct {
	Reconciled int
	Pending    int
	Error      int
}

func (c StatusCounts) Total() int {
	return c.Reconciled + c.Pending + c.Error
}

type DayDetail struct {
	Record       DailyRecord
	Breakdown    []MethodAmount
	StatusCounts StatusCounts
	StatusShare  StatusShare
	Chart        Chart
}
