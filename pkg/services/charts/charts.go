// Package charts turns computed views into chart specifications that any
// chart renderer can draw.
package charts

import "github.com/de-tools/finsync/pkg/models/domain"

const (
	RevenueTitle      = "Revenue evolution"
	DistributionTitle = "Payment distribution"
	MethodTitle       = "Revenue by payment method"
	StatusTitle       = "Reconciliation status"
	ComparisonTitle   = "Period comparison"
	DetailTitle       = "Day distribution by method"
)

// Dashboard builds the four dashboard charts in display order.
func Dashboard(series []domain.SeriesPoint, shares []domain.StatusShare, dist []domain.MethodAmount) []domain.Chart {
	return []domain.Chart{
		Revenue(series),
		Distribution(DistributionTitle, domain.ChartDoughnut, dist),
		ByMethod(series),
		ByStatus(series, shares),
	}
}

func Revenue(series []domain.SeriesPoint) domain.Chart {
	received := make([]float64, 0, len(series))
	expected := make([]float64, 0, len(series))
	for _, p := range series {
		received = append(received, p.Received)
		expected = append(expected, p.Expected)
	}
	return domain.Chart{
		Kind:   domain.ChartLine,
		Title:  RevenueTitle,
		Labels: labels(series),
		Datasets: []domain.Dataset{
			{Label: "Received", Data: received},
			{Label: "Expected", Data: expected},
		},
	}
}

func ByMethod(series []domain.SeriesPoint) domain.Chart {
	datasets := make([]domain.Dataset, 0, len(domain.PaymentMethods))
	for _, m := range domain.PaymentMethods {
		data := make([]float64, 0, len(series))
		for _, p := range series {
			data = append(data, p.Methods[m])
		}
		datasets = append(datasets, domain.Dataset{Label: m.Label(), Data: data})
	}
	return domain.Chart{
		Kind:     domain.ChartBarStacked,
		Title:    MethodTitle,
		Labels:   labels(series),
		Datasets: datasets,
	}
}

func ByStatus(series []domain.SeriesPoint, shares []domain.StatusShare) domain.Chart {
	reconciled := make([]float64, 0, len(shares))
	pending := make([]float64, 0, len(shares))
	failed := make([]float64, 0, len(shares))
	for _, s := range shares {
		reconciled = append(reconciled, s.Reconciled)
		pending = append(pending, s.Pending)
		failed = append(failed, s.Error)
	}
	return domain.Chart{
		Kind:   domain.ChartBarStacked,
		Title:  StatusTitle,
		Labels: labels(series),
		Datasets: []domain.Dataset{
			{Label: "Reconciled", Data: reconciled},
			{Label: "Pending", Data: pending},
			{Label: "Error", Data: failed},
		},
	}
}

// Distribution renders a single-snapshot breakdown per payment method.
func Distribution(title string, kind domain.ChartKind, dist []domain.MethodAmount) domain.Chart {
	lbls := make([]string, 0, len(dist))
	data := make([]float64, 0, len(dist))
	for _, d := range dist {
		lbls = append(lbls, d.Method.Label())
		data = append(data, d.Amount)
	}
	return domain.Chart{
		Kind:     kind,
		Title:    title,
		Labels:   lbls,
		Datasets: []domain.Dataset{{Label: "Amount", Data: data}},
	}
}

func Detail(dist []domain.MethodAmount) domain.Chart {
	return Distribution(DetailTitle, domain.ChartPie, dist)
}

func Comparison(a, b domain.PeriodTotals) domain.Chart {
	return domain.Chart{
		Kind:   domain.ChartBarGrouped,
		Title:  ComparisonTitle,
		Labels: []string{"Expected", "Received", "Difference"},
		Datasets: []domain.Dataset{
			{Label: a.Label, Data: []float64{a.Expected, a.Received, a.Difference}},
			{Label: b.Label, Data: []float64{b.Expected, b.Received, b.Difference}},
		},
	}
}

func labels(series []domain.SeriesPoint) []string {
	out := make([]string, 0, len(series))
	for _, p := range series {
		out = append(out, p.Label)
	}
	return out
}
