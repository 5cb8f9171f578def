// Package repository holds the in-memory domain collections and mirrors every
// mutation back to a store.Store.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/store"
)

// Persistence keys, one JSON document per collection.
const (
	KeyUsers    = "mh_users"
	KeySettings = "mh_settings"
	KeyOrders   = "mh_orders"
	KeyPrices   = "mh_prices"
)

var (
	ErrDuplicateID         = errors.New("user id already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrPriceNotFound       = errors.New("medicine price not found")
	ErrOrderAlreadyReplied = errors.New("order already replied")
	ErrOrderNotReplied     = errors.New("order has not been replied yet")
)

// Repository is created once per process and shared by reference.
// Mutations build the new collection, persist it, and only then swap it in,
// so a failed write leaves memory untouched.
type Repository struct {
	mu       sync.RWMutex
	store    store.Store
	users    []model.User
	orders   []model.Order
	prices   []model.MedicinePrice
	settings model.AdminSettings
}

// New loads every collection from st.
func New(ctx context.Context, st store.Store) (*Repository, error) {
	r := &Repository{
		store:    st,
		users:    []model.User{},
		orders:   []model.Order{},
		prices:   []model.MedicinePrice{},
		settings: model.DefaultAdminSettings(),
	}
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) load(ctx context.Context) error {
	if err := r.loadJSON(ctx, KeyUsers, &r.users); err != nil {
		return err
	}
	if err := r.loadJSON(ctx, KeyOrders, &r.orders); err != nil {
		return err
	}
	if err := r.loadJSON(ctx, KeyPrices, &r.prices); err != nil {
		return err
	}

	raw, ok, err := r.store.Get(ctx, KeySettings)
	if err != nil {
		return fmt.Errorf("load %s: %w", KeySettings, err)
	}
	if ok {
		s, err := model.MergeAdminSettings([]byte(raw))
		if err != nil {
			return fmt.Errorf("load %s: %w", KeySettings, err)
		}
		r.settings = s
	}
	return nil
}

func (r *Repository) loadJSON(ctx context.Context, key string, dst interface{}) error {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func encode(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *Repository) persist(ctx context.Context, key string, v interface{}) error {
	raw, err := encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// Stats is the admin dashboard summary.
type Stats struct {
	Users         int `json:"users"`
	Orders        int `json:"orders"`
	PendingOrders int `json:"pendingOrders"`
	Prices        int `json:"prices"`
}

func (r *Repository) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pending := 0
	for _, o := range r.orders {
		if o.IsPending() {
			pending++
		}
	}
	return Stats{Users: len(r.users), Orders: len(r.orders), PendingOrders: pending, Prices: len(r.prices)}
}
