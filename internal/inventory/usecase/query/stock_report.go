package query

import (
	"fmt"

	"github.com/tansu/autoservice/internal/inventory/domain"
)

// StockReportHandler produces reorder and valuation views over the inventory
type StockReportHandler struct {
	repo domain.ItemRepository
}

// StockReport summarizes items that need attention
type StockReport struct {
	LowStock   []domain.Item `json:"low_stock"`
	OutOfStock []domain.Item `json:"out_of_stock"`
	TotalValue float64       `json:"total_value"`
}

// NewStockReportHandler creates a new stock report handler
func NewStockReportHandler(repo domain.ItemRepository) *StockReportHandler {
	return &StockReportHandler{repo: repo}
}

// Handle builds the report
func (h *StockReportHandler) Handle() (*StockReport, error) {
	low, err := h.repo.FindLowStock()
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	out, err := h.repo.FindOutOfStock()
	if err != nil {
		return nil, fmt.Errorf("failed to list out of stock items: %w", err)
	}
	value, err := h.repo.TotalStockValue()
	if err != nil {
		return nil, fmt.Errorf("failed to compute stock value: %w", err)
	}
	return &StockReport{LowStock: low, OutOfStock: out, TotalValue: value}, nil
}
