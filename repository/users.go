package repository

import (
	"context"
	"fmt"

	"github.com/ariebrainware/medi-help/model"
)

// Users returns a copy of every user.
func (r *Repository) Users() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.User, len(r.users))
	for i, u := range r.users {
		out[i] = u.Clone()
	}
	return out
}

// User looks a user up by id.
func (r *Repository) User(id string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.userIndex(id); i >= 0 {
		return r.users[i].Clone(), true
	}
	return model.User{}, false
}

func (r *Repository) userIndex(id string) int {
	for i, u := range r.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// AddUser appends u, rejecting an id that is already taken.
func (r *Repository) AddUser(ctx context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.userIndex(u.ID) >= 0 {
		return ErrDuplicateID
	}
	users := append(r.cloneUsers(), u.Clone())
	if err := r.persist(ctx, KeyUsers, users); err != nil {
		return err
	}
	r.users = users
	return nil
}

// ReplaceUser stores u in place of the user keyed by oldID and returns the
// stored user. The prescription history is owned by the repository: the one
// already stored is kept and u.Prescriptions is ignored, so a diagnosis that
// lands between the caller's read and this write is not lost. When the id
// changes, every order of oldID is re-keyed and both collections are written
// in a single SetMulti; nothing changes if the new id belongs to someone else.
func (r *Repository) ReplaceUser(ctx context.Context, oldID string, u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.userIndex(oldID)
	if idx < 0 {
		return model.User{}, ErrUserNotFound
	}
	if u.ID != oldID && r.userIndex(u.ID) >= 0 {
		return model.User{}, ErrDuplicateID
	}

	u.Prescriptions = r.users[idx].Prescriptions
	users := r.cloneUsers()
	users[idx] = u.Clone()

	if u.ID == oldID {
		if err := r.persist(ctx, KeyUsers, users); err != nil {
			return model.User{}, err
		}
		r.users = users
		return users[idx].Clone(), nil
	}

	orders := make([]model.Order, len(r.orders))
	for i, o := range r.orders {
		if o.UserID == oldID {
			o.UserID = u.ID
		}
		orders[i] = o
	}

	usersRaw, err := encode(users)
	if err != nil {
		return model.User{}, fmt.Errorf("encode %s: %w", KeyUsers, err)
	}
	ordersRaw, err := encode(orders)
	if err != nil {
		return model.User{}, fmt.Errorf("encode %s: %w", KeyOrders, err)
	}
	if err := r.store.SetMulti(ctx, map[string]string{KeyUsers: usersRaw, KeyOrders: ordersRaw}); err != nil {
		return model.User{}, fmt.Errorf("persist user id change: %w", err)
	}
	r.users = users
	r.orders = orders
	return users[idx].Clone(), nil
}

// PrependPrescription records p as the user's newest prescription, keeping
// at most model.MaxPrescriptions.
func (r *Repository) PrependPrescription(ctx context.Context, userID string, p model.Prescription) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.userIndex(userID)
	if idx < 0 {
		return model.User{}, ErrUserNotFound
	}
	users := r.cloneUsers()
	users[idx] = users[idx].WithPrescription(p.Clone())
	if err := r.persist(ctx, KeyUsers, users); err != nil {
		return model.User{}, err
	}
	r.users = users
	return users[idx].Clone(), nil
}

func (r *Repository) cloneUsers() []model.User {
	out := make([]model.User, len(r.users), len(r.users)+1)
	copy(out, r.users)
	return out
}
