package charts

import (
	"testing"

	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	series := []domain.SeriesPoint{
		{Key: "2024-01", Label: "01/2024", Received: 90, Expected: 100, Methods: domain.MethodBreakdown{domain.MethodVisa: 90}},
		{Key: "2024-02", Label: "02/2024", Received: 120, Expected: 100, Methods: domain.MethodBreakdown{domain.MethodPIX: 120}},
	}
	shares := []domain.StatusShare{{Key: "2024-01", Pending: 100}, {Key: "2024-02", Error: 50, Reconciled: 50}}
	dist := []domain.MethodAmount{
		{Method: domain.MethodMastercard},
		{Method: domain.MethodVisa, Amount: 90},
		{Method: domain.MethodPIX, Amount: 120},
		{Method: domain.MethodBoleto},
	}

	got := Dashboard(series, shares, dist)
	require.Len(t, got, 4)

	revenue := got[0]
	assert.Equal(t, domain.ChartLine, revenue.Kind)
	assert.Equal(t, []string{"01/2024", "02/2024"}, revenue.Labels)
	assert.Equal(t, []float64{90, 120}, revenue.Datasets[0].Data)
	assert.Equal(t, []float64{100, 100}, revenue.Datasets[1].Data)

	distribution := got[1]
	assert.Equal(t, domain.ChartDoughnut, distribution.Kind)
	assert.Equal(t, []string{"Mastercard", "Visa", "PIX", "Boleto"}, distribution.Labels)

	methods := got[2]
	assert.Equal(t, domain.ChartBarStacked, methods.Kind)
	require.Len(t, methods.Datasets, 4)
	assert.Equal(t, []float64{90, 0}, methods.Datasets[1].Data)

	status := got[3]
	assert.Equal(t, []float64{0, 50}, status.Datasets[0].Data)
	assert.Equal(t, []float64{100, 0}, status.Datasets[1].Data)
	assert.Equal(t, []float64{0, 50}, status.Datasets[2].Data)
}

func TestComparison(t *testing.T) {
	a := domain.PeriodTotals{Label: "A", Expected: 5000, Received: 4800, Difference: -200}
	b := domain.PeriodTotals{Label: "B", Expected: 5000, Received: 5100, Difference: 100}

	c := Comparison(a, b)
	assert.Equal(t, domain.ChartBarGrouped, c.Kind)
	assert.Equal(t, []string{"Expected", "Received", "Difference"}, c.Labels)
	require.Len(t, c.Datasets, 2)
	assert.Equal(t, []float64{5000, 4800, -200}, c.Datasets[0].Data)
	assert.Equal(t, []float64{5000, 5100, 100}, c.Datasets[1].Data)
}
