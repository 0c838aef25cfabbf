// Package directory maps human-entered state and commission names to the
// numeric commission IDs the Jagriti portal requires.
package directory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/JustJay7/jagriti-case-api/internal/cache"
	"github.com/JustJay7/jagriti-case-api/internal/jagriti"
	"github.com/JustJay7/jagriti-case-api/pkg/logger"
)

// NotFoundKind identifies what a failed lookup was searching for
type NotFoundKind string

const (
	KindState      NotFoundKind = "state"
	KindCommission NotFoundKind = "commission"
)

// NotFoundError means no directory entry matched the requested name or ID
type NotFoundError struct {
	Kind NotFoundKind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Resolver resolves names against the upstream commission directories
type Resolver struct {
	client *jagriti.Client
	cache  *cache.DirectoryCache
	logger *logger.Logger
}

// NewResolver creates a resolver backed by the given client and cache
func NewResolver(client *jagriti.Client, dirCache *cache.DirectoryCache, log *logger.Logger) *Resolver {
	return &Resolver{
		client: client,
		cache:  dirCache,
		logger: log,
	}
}

// ResolveState returns the commission ID for a state name. Matching is a
// case-insensitive exact comparison; the first entry in upstream order wins.
// Inactive entries and circuit benches are not excluded.
func (r *Resolver) ResolveState(ctx context.Context, name string) (int, error) {
	states, err := r.states(ctx)
	if err != nil {
		return 0, err
	}

	for _, s := range states {
		if strings.EqualFold(s.CommissionNameEn, name) {
			r.logger.Debug("Resolved state", "name", name, "commission_id", s.CommissionID)
			return s.CommissionID, nil
		}
	}
	return 0, &NotFoundError{Kind: KindState, Name: name}
}

// ResolveDistrict returns the commission ID for a district commission name
// within the given state. Same matching policy as ResolveState.
func (r *Resolver) ResolveDistrict(ctx context.Context, stateCommissionID int, name string) (int, error) {
	districts, err := r.districts(ctx, stateCommissionID)
	if err != nil {
		return 0, err
	}

	for _, d := range districts {
		if strings.EqualFold(d.CommissionNameEn, name) {
			r.logger.Debug("Resolved district commission", "name", name, "commission_id", d.CommissionID)
			return d.CommissionID, nil
		}
	}
	return 0, &NotFoundError{Kind: KindCommission, Name: name}
}

// StateNameByID is the reverse lookup: commission ID to state display name
func (r *Resolver) StateNameByID(ctx context.Context, stateCommissionID int) (string, error) {
	states, err := r.states(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range states {
		if s.CommissionID == stateCommissionID {
			return s.CommissionNameEn, nil
		}
	}
	return "", &NotFoundError{Kind: KindState, Name: fmt.Sprintf("%d", stateCommissionID)}
}

// States returns active, non-circuit-bench states sorted by display name
func (r *Resolver) States(ctx context.Context) ([]jagriti.Commission, error) {
	all, err := r.states(ctx)
	if err != nil {
		return nil, err
	}

	states := make([]jagriti.Commission, 0, len(all))
	for _, s := range all {
		if s.ActiveStatus && !s.CircuitAdditionBenchFlag {
			states = append(states, s)
		}
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].CommissionNameEn < states[j].CommissionNameEn
	})
	return states, nil
}

// Districts returns a state's active district commissions sorted by display name
func (r *Resolver) Districts(ctx context.Context, stateCommissionID int) ([]jagriti.Commission, error) {
	all, err := r.districts(ctx, stateCommissionID)
	if err != nil {
		return nil, err
	}

	districts := make([]jagriti.Commission, 0, len(all))
	for _, d := range all {
		if d.ActiveStatus {
			districts = append(districts, d)
		}
	}
	sort.Slice(districts, func(i, j int) bool {
		return districts[i].CommissionNameEn < districts[j].CommissionNameEn
	})
	return districts, nil
}

func (r *Resolver) states(ctx context.Context) ([]jagriti.Commission, error) {
	if entries, found := r.cache.Get(cache.StatesKey()); found {
		return entries, nil
	}

	states, err := r.client.StatesAndCircuitBenches(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.Set(cache.StatesKey(), states)
	return states, nil
}

func (r *Resolver) districts(ctx context.Context, stateCommissionID int) ([]jagriti.Commission, error) {
	key := cache.DistrictsKey(stateCommissionID)
	if entries, found := r.cache.Get(key); found {
		return entries, nil
	}

	districts, err := r.client.DistrictCommissions(ctx, stateCommissionID)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, districts)
	return districts, nil
}
