package repository

import (
	"context"

	"github.com/ariebrainware/medi-help/model"
)

func (r *Repository) Orders() []model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Order{}, r.orders...)
}

// OrdersForUser returns the orders placed by userID in placement order.
func (r *Repository) OrdersForUser(userID string) []model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (r *Repository) Order(id string) (model.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// AddOrder appends o. There is no dedup.
func (r *Repository) AddOrder(ctx context.Context, o model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := append(append(make([]model.Order, 0, len(r.orders)+1), r.orders...), o)
	if err := r.persist(ctx, KeyOrders, orders); err != nil {
		return err
	}
	r.orders = orders
	return nil
}

// UpdateOrder applies fn to a copy of the order and persists the result.
// fn runs under the repository lock, so a check inside it cannot race another update.
func (r *Repository) UpdateOrder(ctx context.Context, id string, fn func(o *model.Order) error) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, o := range r.orders {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Order{}, ErrOrderNotFound
	}

	orders := append([]model.Order{}, r.orders...)
	updated := orders[idx]
	if err := fn(&updated); err != nil {
		return model.Order{}, err
	}
	// Identity fields are not fn's to change.
	updated.ID = orders[idx].ID
	updated.UserID = orders[idx].UserID
	orders[idx] = updated

	if err := r.persist(ctx, KeyOrders, orders); err != nil {
		return model.Order{}, err
	}
	r.orders = orders
	return updated, nil
}
