package controller

import (
	"context"
	"fmt"

	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/repository"
)

type OrderInput struct {
	MedName  string
	Quantity string
	Address  string
	Phone    string
}

// PlaceOrder appends a Pending order for userID.
func (c *Controller) PlaceOrder(ctx context.Context, userID string, in OrderInput) (model.Order, error) {
	u, ok := c.repo.User(userID)
	if !ok {
		return model.Order{}, repository.ErrUserNotFound
	}
	o := model.Order{
		ID:        c.newID(),
		UserID:    u.ID,
		UserName:  u.Name,
		MedName:   in.MedName,
		Quantity:  in.Quantity,
		Address:   in.Address,
		Phone:     in.Phone,
		Status:    model.OrderPending,
		Timestamp: c.now().UnixMilli(),
	}
	if err := c.repo.AddOrder(ctx, o); err != nil {
		return model.Order{}, fmt.Errorf("place order: %w", err)
	}
	return o, nil
}

func (c *Controller) Orders() []model.Order {
	return c.repo.Orders()
}

func (c *Controller) OrdersForUser(userID string) []model.Order {
	return c.repo.OrdersForUser(userID)
}

// ReplyOrder moves a Pending order to Replied. An order is replied to once.
func (c *Controller) ReplyOrder(ctx context.Context, orderID, reply string) (model.Order, error) {
	return c.repo.UpdateOrder(ctx, orderID, func(o *model.Order) error {
		if !o.IsPending() {
			return repository.ErrOrderAlreadyReplied
		}
		o.Status = model.OrderReplied
		o.AdminReply = reply
		return nil
	})
}

// ConfirmOrder records the patient's answer to an admin reply. Orders of
// other users are reported as not found.
func (c *Controller) ConfirmOrder(ctx context.Context, userID, orderID, text string) (model.Order, error) {
	return c.repo.UpdateOrder(ctx, orderID, func(o *model.Order) error {
		if o.UserID != userID {
			return repository.ErrOrderNotFound
		}
		if o.Status != model.OrderReplied {
			return repository.ErrOrderNotReplied
		}
		o.UserConfirmation = text
		return nil
	})
}
