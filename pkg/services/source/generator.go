package source

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type GeneratorConfig struct {
	// Seed makes the output reproducible. Zero seeds from the clock.
	Seed uint64
	// Months of history ending at EndDate.
	Months int
	// EndDate is the last generated day. Zero means today.
	EndDate time.Time
}

// Generator produces synthetic but internally consistent daily records:
// method amounts add up to the received amount to the cent.
type Generator struct {
	cfg GeneratorConfig
	now func() time.Time
}

func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.Months <= 0 {
		cfg.Months = 12
	}
	return &Generator{cfg: cfg, now: time.Now}
}

func (g *Generator) Name() string {
	return KindGenerator
}

// transaction amounts are spread assuming this share of the day's
// transactions uses each method
var methodDivisors = map[domain.PaymentMethod]float64{
	domain.MethodMastercard: 2,
	domain.MethodVisa:       3,
	domain.MethodPIX:        4,
	domain.MethodBoleto:     4,
}

func (g *Generator) Records(ctx context.Context) ([]domain.DailyRecord, error) {
	seed := g.cfg.Seed
	if seed == 0 {
		seed = uint64(g.now().UnixNano())
	}
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	end := g.cfg.EndDate
	if end.IsZero() {
		end = g.now()
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, -g.cfg.Months, 0)

	ids := make(map[string]struct{})
	var records []domain.DailyRecord
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generate records: %w", err)
		}
		records = append(records, g.day(rnd, day.Format(time.DateOnly), ids))
	}
	return records, nil
}

func (g *Generator) day(rnd *rand.Rand, date string, ids map[string]struct{}) domain.DailyRecord {
	expected := cents(rnd.Float64()*50000 + 10000)
	received := expected.Add(cents((rnd.Float64() - 0.5) * 2000))

	shares := map[domain.PaymentMethod]float64{
		domain.MethodMastercard: rnd.Float64()*0.3 + 0.2,
		domain.MethodVisa:       rnd.Float64()*0.3 + 0.1,
		domain.MethodPIX:        rnd.Float64()*0.2 + 0.1,
	}
	var shareSum float64
	for _, s := range shares {
		shareSum += s
	}
	if shareSum > 1 {
		for m := range shares {
			shares[m] /= shareSum
		}
	}

	amounts := make(map[domain.PaymentMethod]decimal.Decimal, len(domain.PaymentMethods))
	rest := received
	for _, m := range []domain.PaymentMethod{domain.MethodMastercard, domain.MethodVisa, domain.MethodPIX} {
		amounts[m] = received.Mul(decimal.NewFromFloat(shares[m])).Round(2)
		rest = rest.Sub(amounts[m])
	}
	if rest.IsNegative() {
		amounts[domain.MethodPIX] = amounts[domain.MethodPIX].Add(rest)
		rest = decimal.Zero
	}
	amounts[domain.MethodBoleto] = rest

	methods := make(domain.MethodBreakdown, len(domain.PaymentMethods))
	for _, m := range domain.PaymentMethods {
		methods[m] = amounts[m].InexactFloat64()
	}

	expectedF := expected.InexactFloat64()
	receivedF := received.InexactFloat64()
	status := domain.DeriveStatus(expectedF, receivedF)

	count := rnd.IntN(20) + 5
	txs := make([]domain.Transaction, 0, count)
	for i := 0; i < count; i++ {
		method := domain.PaymentMethods[rnd.IntN(len(domain.PaymentMethods))]
		amount := methods[method] / (float64(count) / methodDivisors[method]) * (rnd.Float64() + 0.5)
		txs = append(txs, domain.Transaction{
			ID:     transactionID(rnd, ids),
			Method: method,
			Amount: cents(amount).InexactFloat64(),
			Status: status,
		})
	}

	return domain.NewDailyRecord(date, expectedF, receivedF, methods, txs)
}

func transactionID(rnd *rand.Rand, seen map[string]struct{}) string {
	for {
		id := fmt.Sprintf("TRANS%06d", rnd.IntN(1000000))
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			return id
		}
	}
}

func cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
