package repository

import (
	"context"

	"github.com/ariebrainware/medi-help/model"
)

func (r *Repository) Prices() []model.MedicinePrice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.MedicinePrice{}, r.prices...)
}

func (r *Repository) AddPrice(ctx context.Context, p model.MedicinePrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prices := append(append(make([]model.MedicinePrice, 0, len(r.prices)+1), r.prices...), p)
	return r.swapPrices(ctx, prices)
}

func (r *Repository) DeletePrice(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prices := make([]model.MedicinePrice, 0, len(r.prices))
	for _, p := range r.prices {
		if p.ID != id {
			prices = append(prices, p)
		}
	}
	if len(prices) == len(r.prices) {
		return ErrPriceNotFound
	}
	return r.swapPrices(ctx, prices)
}

// ReplacePrices overwrites the whole price list.
func (r *Repository) ReplacePrices(ctx context.Context, prices []model.MedicinePrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.swapPrices(ctx, append([]model.MedicinePrice{}, prices...))
}

func (r *Repository) swapPrices(ctx context.Context, prices []model.MedicinePrice) error {
	if err := r.persist(ctx, KeyPrices, prices); err != nil {
		return err
	}
	r.prices = prices
	return nil
}
