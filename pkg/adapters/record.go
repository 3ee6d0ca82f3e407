package adapters

import (
	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/de-tools/finsync/pkg/models/store"
)

func MapStoreRecordToDomain(r store.DailyRecord) domain.DailyRecord {
	txs := make([]domain.Transaction, 0, len(r.Transactions))
	for _, t := range r.Transactions {
		txs = append(txs, domain.Transaction{
			ID:     t.ID,
			Method: domain.PaymentMethod(t.Method),
			Amount: t.Amount,
			Status: domain.Status(t.Status),
		})
	}

	methods := domain.MethodBreakdown{
		domain.MethodMastercard: r.MastercardAmount,
		domain.MethodVisa:       r.VisaAmount,
		domain.MethodPIX:        r.PIXAmount,
		domain.MethodBoleto:     r.BoletoAmount,
	}
	// stored difference and status are not trusted
	return domain.NewDailyRecord(r.Date, r.ExpectedAmount, r.ReceivedAmount, methods, txs)
}

func MapDomainRecordToStore(r domain.DailyRecord) store.DailyRecord {
	txs := make([]store.Transaction, 0, len(r.Transactions))
	for i, t := range r.Transactions {
		txs = append(txs, store.Transaction{
			ID:     t.ID,
			Date:   r.Date,
			Seq:    i,
			Method: string(t.Method),
			Amount: t.Amount,
			Status: string(t.Status),
		})
	}

	return store.DailyRecord{
		Date:             r.Date,
		ExpectedAmount:   r.ExpectedAmount,
		ReceivedAmount:   r.ReceivedAmount,
		Difference:       r.Difference,
		Status:           string(r.Status),
		MastercardAmount: r.PaymentMethods[domain.MethodMastercard],
		VisaAmount:       r.PaymentMethods[domain.MethodVisa],
		PIXAmount:        r.PaymentMethods[domain.MethodPIX],
		BoletoAmount:     r.PaymentMethods[domain.MethodBoleto],
		Transactions:     txs,
	}
}

func MapStoreRecordsToDomain(records []store.DailyRecord) []domain.DailyRecord {
	out := make([]domain.DailyRecord, 0, len(records))
	for _, r := range records {
		out = append(out, MapStoreRecordToDomain(r))
	}
	return out
}

func MapDomainRecordsToStore(records []domain.DailyRecord) []store.DailyRecord {
	out := make([]store.DailyRecord, 0, len(records))
	for _, r := range records {
		out = append(out, MapDomainRecordToStore(r))
	}
	return out
}
