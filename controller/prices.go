package controller

import (
	"context"

	"github.com/ariebrainware/medi-help/model"
)

func (c *Controller) Prices() []model.MedicinePrice {
	return c.repo.Prices()
}

// AddPrice stores p under a fresh id.
func (c *Controller) AddPrice(ctx context.Context, p model.MedicinePrice) (model.MedicinePrice, error) {
	p.ID = c.newID()
	if err := c.repo.AddPrice(ctx, p); err != nil {
		return model.MedicinePrice{}, err
	}
	return p, nil
}

func (c *Controller) DeletePrice(ctx context.Context, id string) error {
	return c.repo.DeletePrice(ctx, id)
}

// ReplacePrices swaps the whole list. Entries without an id get one.
func (c *Controller) ReplacePrices(ctx context.Context, prices []model.MedicinePrice) ([]model.MedicinePrice, error) {
	out := make([]model.MedicinePrice, len(prices))
	for i, p := range prices {
		if isBlank(p.ID) {
			p.ID = c.newID()
		}
		out[i] = p
	}
	if err := c.repo.ReplacePrices(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}
