package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/tansu/autoservice/internal/customer/domain"
	apperr "github.com/tansu/autoservice/internal/domain"
)

// AppendHistoryCommand represents the command to log a vehicle-history entry
type AppendHistoryCommand struct {
	CustomerID uint
	Entry      string
}

// AppendHistoryHandler handles vehicle-history appends
type AppendHistoryHandler struct {
	repo domain.CustomerRepository
}

// NewAppendHistoryHandler creates a new append history handler
func NewAppendHistoryHandler(repo domain.CustomerRepository) *AppendHistoryHandler {
	return &AppendHistoryHandler{repo: repo}
}

// Handle prefixes the entry with a timestamp and appends it to the
// customer's log. Existing entries are never rewritten.
func (h *AppendHistoryHandler) Handle(cmd AppendHistoryCommand) error {
	if cmd.CustomerID == 0 {
		return fmt.Errorf("%w: customer id is required", apperr.ErrInvalidArgument)
	}
	entry := strings.TrimSpace(cmd.Entry)
	if entry == "" {
		return fmt.Errorf("%w: entry is required", apperr.ErrInvalidArgument)
	}

	stamped := fmt.Sprintf("[%s] %s", time.Now().Format("2006-01-02 15:04"), entry)
	if err := h.repo.AppendVehicleHistory(cmd.CustomerID, stamped); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}
