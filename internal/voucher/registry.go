package voucher

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/MinhTrung9443/storefront-api/internal/models"
)

var (
	// ErrNotFound is returned when a code does not resolve to any voucher.
	ErrNotFound = errors.New("voucher not found")
	// ErrExhausted is returned when a capped voucher has no redemptions left.
	ErrExhausted = errors.New("voucher usage limit reached")
)

// Registry is a concurrency-safe voucher store. A bloom filter over known
// codes rejects garbage lookups without touching the map, which matters when
// clients probe codes interactively while typing.
type Registry struct {
	mu     sync.RWMutex
	byCode map[string]*models.Voucher
	filter *bloom.BloomFilter
}

// NewRegistry creates a registry sized for the expected number of voucher
// codes at the given false-positive rate.
func NewRegistry(expectedCodes uint, falsePositiveRate float64) *Registry {
	return &Registry{
		byCode: make(map[string]*models.Voucher),
		filter: bloom.NewWithEstimates(expectedCodes, falsePositiveRate),
	}
}

// Add validates and registers a voucher. The stored voucher is a private
// copy; callers cannot mutate registry state through the input.
func (r *Registry) Add(v models.Voucher) (*models.Voucher, error) {
	validated, err := models.NewVoucher(v)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCode[validated.Code] = validated
	r.filter.AddString(validated.Code)
	return validated, nil
}

// FindByCode resolves a voucher by its normalized code. Codes are
// case-insensitive and surrounding whitespace is ignored.
func (r *Registry) FindByCode(ctx context.Context, code string) (*models.Voucher, error) {
	normalized := normalizeCode(code)
	if normalized == "" {
		return nil, ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Fast reject: a negative bloom answer is definitive.
	if !r.filter.TestString(normalized) {
		return nil, ErrNotFound
	}

	v, ok := r.byCode[normalized]
	if !ok {
		return nil, ErrNotFound
	}

	cp := *v
	return &cp, nil
}

// ListActive returns all vouchers currently flagged active, for the public
// voucher listing.
func (r *Registry) ListActive(ctx context.Context) []models.Voucher {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Voucher, 0, len(r.byCode))
	for _, v := range r.byCode {
		if v.IsActive {
			out = append(out, *v)
		}
	}
	return out
}

// ConsumeUsage atomically checks the global usage cap and increments the
// usage counter. Order creation calls this once per redemption; preview never
// does, so competing previews cannot double-book a voucher slot.
func (r *Registry) ConsumeUsage(ctx context.Context, code string) error {
	normalized := normalizeCode(code)

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byCode[normalized]
	if !ok {
		return ErrNotFound
	}
	if !v.UnlimitedUsage() && v.CurrentUsage >= v.GlobalUsageLimit {
		return ErrExhausted
	}
	v.CurrentUsage++
	return nil
}

// ReleaseUsage undoes a prior ConsumeUsage when a later step of order
// creation fails and the redemption must be handed back.
func (r *Registry) ReleaseUsage(ctx context.Context, code string) error {
	normalized := normalizeCode(code)

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byCode[normalized]
	if !ok {
		return ErrNotFound
	}
	if v.CurrentUsage > 0 {
		v.CurrentUsage--
	}
	return nil
}

// Stats returns statistics about the registered vouchers.
func (r *Registry) Stats() map[string]interface{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := 0
	for _, v := range r.byCode {
		if v.IsActive {
			active++
		}
	}

	return map[string]interface{}{
		"total_vouchers":  len(r.byCode),
		"active_vouchers": active,
	}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
