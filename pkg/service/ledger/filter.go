package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/dto"
	"github.com/shopspring/decimal"
)

// SortOrder orders a filtered history.
type SortOrder string

const (
	NewestFirst   SortOrder = "newest"
	OldestFirst   SortOrder = "oldest"
	HighestAmount SortOrder = "highest"
	LowestAmount  SortOrder = "lowest"
)

// ParseSortOrder accepts a sort order in any letter case. Empty means NewestFirst.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return NewestFirst, nil
	case NewestFirst, OldestFirst, HighestAmount, LowestAmount:
		return o, nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// Filter narrows a history for display. Zero values leave a dimension
// unconstrained. From and To compare calendar dates, both inclusive.
type Filter struct {
	From      time.Time
	To        time.Time
	Kind      account.Kind
	MinAmount decimal.NullDecimal
	MaxAmount decimal.NullDecimal
	Sort      SortOrder
	// LastN keeps only the N most recent entries before the other
	// constraints are applied. Zero keeps everything.
	LastN int
}

// Apply returns the matching rows in the requested order. rows is not modified.
func (f Filter) Apply(rows []*dto.TransactionRead) []*dto.TransactionRead {
	scoped := append([]*dto.TransactionRead(nil), rows...)
	if f.LastN > 0 {
		sortRows(scoped, NewestFirst)
		if len(scoped) > f.LastN {
			scoped = scoped[:f.LastN]
		}
	}

	out := make([]*dto.TransactionRead, 0, len(scoped))
	for _, r := range scoped {
		if f.match(r) {
			out = append(out, r)
		}
	}
	sortRows(out, f.Sort)
	return out
}

func (f Filter) match(r *dto.TransactionRead) bool {
	day := dateOf(r.CreatedAt)
	if !f.From.IsZero() && day.Before(dateOf(f.From)) {
		return false
	}
	if !f.To.IsZero() && day.After(dateOf(f.To)) {
		return false
	}
	if f.Kind != "" && !strings.EqualFold(r.Kind, string(f.Kind)) {
		return false
	}
	if f.MinAmount.Valid && r.Amount.LessThan(f.MinAmount.Decimal) {
		return false
	}
	if f.MaxAmount.Valid && r.Amount.GreaterThan(f.MaxAmount.Decimal) {
		return false
	}
	return true
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sortRows(rows []*dto.TransactionRead, order SortOrder) {
	newer := func(a, b *dto.TransactionRead) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	}
	var less func(i, j int) bool
	switch order {
	case OldestFirst:
		less = func(i, j int) bool { return newer(rows[j], rows[i]) }
	case HighestAmount:
		less = func(i, j int) bool { return rows[i].Amount.GreaterThan(rows[j].Amount) }
	case LowestAmount:
		less = func(i, j int) bool { return rows[i].Amount.LessThan(rows[j].Amount) }
	default:
		less = func(i, j int) bool { return newer(rows[i], rows[j]) }
	}
	sort.SliceStable(rows, less)
}
