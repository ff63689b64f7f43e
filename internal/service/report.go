package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kasirpos/kasirpos/internal/apperr"
	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/report"
	"github.com/kasirpos/kasirpos/internal/repository"
)

// SalesReport is the date-ranged ledger projection behind the sales tab.
type SalesReport struct {
	Start        time.Time                       `json:"start"`
	End          time.Time                       `json:"end"`
	Totals       report.Totals                   `json:"totals"`
	Daily        map[string]float64              `json:"daily"`
	ByPayment    map[model.PaymentMethod]float64 `json:"byPayment"`
	Transactions []model.Transaction             `json:"transactions"`
}

// ProductReport pairs the top sellers of a date range with the low-stock list.
type ProductReport struct {
	Start    time.Time             `json:"start"`
	End      time.Time             `json:"end"`
	Top      []report.ProductSales `json:"top"`
	LowStock []model.Product       `json:"lowStock"`
}

type ReportService interface {
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (model.Transaction, error)
	SalesReport(ctx context.Context, start, end time.Time) (SalesReport, error)
	ProductReport(ctx context.Context, start, end time.Time, limit int) (ProductReport, error)
}

type reportService struct {
	catalogRepo repository.CatalogRepository
	ledgerRepo  repository.LedgerRepository
}

func NewReportService(
	catalogRepo repository.CatalogRepository,
	ledgerRepo repository.LedgerRepository,
) ReportService {
	return &reportService{
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
	}
}

func (s *reportService) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	transactions, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("ledger repository list transactions: %w", err)
	}
	return transactions, nil
}

func (s *reportService) GetTransaction(ctx context.Context, id uuid.UUID) (model.Transaction, error) {
	transactions, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("ledger repository list transactions: %w", err)
	}

	for _, txn := range transactions {
		if txn.ID == id {
			return txn, nil
		}
	}

	return model.Transaction{}, apperr.TransactionNotFoundErr
}

func (s *reportService) SalesReport(ctx context.Context, start, end time.Time) (SalesReport, error) {
	if end.Before(start) {
		return SalesReport{}, apperr.InvalidDateRangeErr
	}

	transactions, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		return SalesReport{}, fmt.Errorf("ledger repository list transactions: %w", err)
	}

	filtered := report.FilterByDateRange(transactions, start, end)

	return SalesReport{
		Start:        start,
		End:          end,
		Totals:       report.Summarize(filtered),
		Daily:        report.DailySeries(filtered),
		ByPayment:    report.ByPaymentMethod(filtered),
		Transactions: filtered,
	}, nil
}

func (s *reportService) ProductReport(ctx context.Context, start, end time.Time, limit int) (ProductReport, error) {
	if end.Before(start) {
		return ProductReport{}, apperr.InvalidDateRangeErr
	}

	transactions, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		return ProductReport{}, fmt.Errorf("ledger repository list transactions: %w", err)
	}

	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		return ProductReport{}, fmt.Errorf("catalog repository list products: %w", err)
	}

	filtered := report.FilterByDateRange(transactions, start, end)

	return ProductReport{
		Start:    start,
		End:      end,
		Top:      report.TopProducts(filtered, limit),
		LowStock: report.LowStock(products, report.DefaultLowStockThreshold),
	}, nil
}
