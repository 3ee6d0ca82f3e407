package adapters

import (
	"github.com/de-tools/finsync/pkg/models/api"
	"github.com/de-tools/finsync/pkg/models/domain"
)

func MapTransactionDomainToApi(t domain.Transaction) api.Transaction {
	return api.Transaction{
		ID:     t.ID,
		Method: string(t.Method),
		Amount: t.Amount,
		Status: string(t.Status),
	}
}

func MapDatedTransactionsDomainToApi(txs []domain.DatedTransaction) []api.Transaction {
	res := make([]api.Transaction, 0, len(txs))
	for _, t := range txs {
		tx := MapTransactionDomainToApi(t.Transaction)
		tx.Date = t.Date
		res = append(res, tx)
	}
	return res
}

func MapRecordDomainToApi(r domain.DailyRecord) api.Record {
	res := api.Record{
		Date:           r.Date,
		ExpectedAmount: r.ExpectedAmount,
		ReceivedAmount: r.ReceivedAmount,
		Difference:     r.Difference,
		Status:         string(r.Status),
		PaymentMethods: make(map[string]float64, len(domain.PaymentMethods)),
		Transactions:   make([]api.Transaction, 0, len(r.Transactions)),
	}
	// every method is present, zero when unused
	for _, m := range domain.PaymentMethods {
		res.PaymentMethods[string(m)] = r.PaymentMethods[m]
	}
	for _, t := range r.Transactions {
		res.Transactions = append(res.Transactions, MapTransactionDomainToApi(t))
	}
	return res
}

func MapPeriodDomainToApi(p domain.PeriodRecord) api.Record {
	res := MapRecordDomainToApi(p.DailyRecord)
	res.Days = p.Days
	return res
}

func MapFilterDomainToApi(f domain.Filter) api.Filter {
	method := string(f.Method)
	if method == "" {
		method = "all"
	}
	return api.Filter{
		StartDate: f.Range.Start,
		EndDate:   f.Range.End,
		Method:    method,
		View:      string(f.Granularity),
	}
}

func MapMethodAmountsDomainToApi(amounts []domain.MethodAmount) []api.MethodAmount {
	res := make([]api.MethodAmount, 0, len(amounts))
	for _, a := range amounts {
		res = append(res, api.MethodAmount{
			Method:     string(a.Method),
			Label:      a.Method.Label(),
			Amount:     a.Amount,
			Percentage: a.Percentage,
		})
	}
	return res
}

func MapChartDomainToApi(c domain.Chart) api.Chart {
	res := api.Chart{
		Kind:     string(c.Kind),
		Title:    c.Title,
		Labels:   append([]string{}, c.Labels...),
		Datasets: make([]api.Dataset, 0, len(c.Datasets)),
	}
	for _, d := range c.Datasets {
		res.Datasets = append(res.Datasets, api.Dataset{Label: d.Label, Data: append([]float64{}, d.Data...)})
	}
	return res
}

func MapViewDomainToApi(v domain.View) api.History {
	res := api.History{
		Filter: MapFilterDomainToApi(v.Filter),
		Summary: api.Summary{
			TotalExpected:      v.Summary.TotalExpected,
			TotalReceived:      v.Summary.TotalReceived,
			TotalTransactions:  v.Summary.TotalTransactions,
			TotalDays:          v.Summary.TotalDays,
			DailyAverage:       v.Summary.DailyAverage,
			TotalDiscrepancies: v.Summary.TotalDiscrepancies,
		},
		Distribution: MapMethodAmountsDomainToApi(v.Distribution),
		Charts:       make([]api.Chart, 0, len(v.Charts)),
		Page: api.Page{
			Number:     v.Page.Number,
			Size:       v.Page.Size,
			TotalItems: v.Page.TotalItems,
			TotalPages: v.Page.TotalPages,
			HasPrev:    v.Page.HasPrev(),
			HasNext:    v.Page.HasNext(),
		},
		Items: make([]api.Record, 0, len(v.Items)),
	}
	for _, c := range v.Charts {
		res.Charts = append(res.Charts, MapChartDomainToApi(c))
	}
	for _, p := range v.Items {
		res.Items = append(res.Items, MapPeriodDomainToApi(p))
	}
	return res
}

func MapDayDetailDomainToApi(d domain.DayDetail) api.DayDetail {
	return api.DayDetail{
		Record:    MapRecordDomainToApi(d.Record),
		Breakdown: MapMethodAmountsDomainToApi(d.Breakdown),
		StatusCounts: api.StatusCounts{
			Reconciled: d.StatusCounts.Reconciled,
			Pending:    d.StatusCounts.Pending,
			Error:      d.StatusCounts.Error,
		},
		StatusPercentages: api.StatusPercentages{
			Reconciled: d.StatusShare.Reconciled,
			Pending:    d.StatusShare.Pending,
			Error:      d.StatusShare.Error,
		},
		Chart: MapChartDomainToApi(d.Chart),
	}
}

func MapPeriodTotalsDomainToApi(t domain.PeriodTotals) api.PeriodTotals {
	return api.PeriodTotals{
		Label:      t.Label,
		StartDate:  t.Range.Start,
		EndDate:    t.Range.End,
		Expected:   t.Expected,
		Received:   t.Received,
		Difference: t.Difference,
	}
}

func MapComparisonDomainToApi(c domain.Comparison) api.Comparison {
	return api.Comparison{
		Period1: MapPeriodTotalsDomainToApi(c.First),
		Period2: MapPeriodTotalsDomainToApi(c.Second),
		Chart:   MapChartDomainToApi(c.Chart),
	}
}

func MapExportRequestApiToDomain(r api.ExportRequest) domain.ExportRequest {
	return domain.ExportRequest{
		Kind:          domain.ReportKind(r.ReportType),
		Format:        domain.ReportFormat(r.Format),
		IncludeCharts: r.IncludeCharts,
	}
}

func MapExportReceiptDomainToApi(r domain.ExportReceipt) api.ExportReceipt {
	return api.ExportReceipt{
		ID:            r.ID,
		ReportType:    string(r.Kind),
		Format:        string(r.Format),
		IncludeCharts: r.IncludeCharts,
		Date:          r.Date,
		Message:       r.Message,
		RequestedAt:   r.RequestedAt,
	}
}

func MapPresetDomainToApi(name string, f domain.Filter) api.Preset {
	af := MapFilterDomainToApi(f)
	return api.Preset{
		Name:      name,
		StartDate: af.StartDate,
		EndDate:   af.EndDate,
		Method:    af.Method,
		View:      af.View,
	}
}
