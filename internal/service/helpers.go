package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/foreman/internal/domain"
	"github.com/alexanderramin/foreman/internal/repository"
)

// clock is the service time source. Tests pin it to get stable ids and
// dates.
var clock = time.Now

func today() string {
	return domain.DisplayDate(clock())
}

// formatID renders an allocated number in the id scheme of kind: plain
// integers for jobs and leads, EST-<year>-NNN and INV-<year>-NNN otherwise.
func formatID(kind repository.SequenceKind, n int) string {
	year := clock().Year()
	switch kind {
	case repository.SeqEstimates:
		return fmt.Sprintf("EST-%d-%03d", year, n)
	case repository.SeqInvoices:
		return fmt.Sprintf("INV-%d-%03d", year, n)
	default:
		return strconv.Itoa(n)
	}
}

// parseRequiredMoney treats a blank amount as a missing field and anything
// else that fails to parse as invalid.
func parseRequiredMoney(field, raw string) (domain.Money, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrRequired, field)
	}
	m, err := domain.ParseMoney(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return m, nil
}
