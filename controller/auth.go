package controller

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/util"
)

// Session is the outcome of a successful login. User is nil for the admin.
type Session struct {
	UserID string
	Role   string
	User   *model.User
}

type RegisterInput struct {
	ID       string
	Name     string
	Password string
}

// Register creates a patient and logs them in.
func (c *Controller) Register(ctx context.Context, in RegisterInput) (Session, error) {
	if isBlank(in.ID) || isBlank(in.Password) {
		return Session{}, ErrBlankCredentials
	}
	if in.ID == model.AdminID {
		return Session{}, ErrReservedID
	}
	u := model.User{
		ID:       in.ID,
		Name:     util.NormalizeName(in.Name),
		Password: in.Password,
	}
	if err := c.repo.AddUser(ctx, u); err != nil {
		return Session{}, fmt.Errorf("register %q: %w", in.ID, err)
	}
	return Session{UserID: u.ID, Role: model.RolePatient, User: &u}, nil
}

// Login checks the reserved admin pair first, then the users collection.
func (c *Controller) Login(ctx context.Context, id, password string) (Session, error) {
	if model.IsAdminCredential(id, password) {
		return Session{UserID: model.AdminID, Role: model.RoleAdmin}, nil
	}
	u, ok := c.repo.User(id)
	if !ok || subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
		return Session{}, ErrInvalidCredentials
	}
	return Session{UserID: u.ID, Role: model.RolePatient, User: &u}, nil
}

// ProfileUpdate is the full editable profile. Prescriptions are not part of it.
type ProfileUpdate struct {
	ID         string
	Name       string
	Password   string
	Age        string
	Gender     string
	BloodGroup string
	Address    string
	Mobile     string
	ProfilePic string
	ThemeIndex int
}

// UpdateProfile replaces the profile of oldID. Changing the id re-keys the
// user's orders in the same write; a collision with another user changes nothing.
func (c *Controller) UpdateProfile(ctx context.Context, oldID string, upd ProfileUpdate) (model.User, error) {
	if isBlank(upd.ID) || isBlank(upd.Password) {
		return model.User{}, ErrBlankCredentials
	}
	if upd.ID == model.AdminID {
		return model.User{}, ErrReservedID
	}
	if !model.IsValidThemeIndex(upd.ThemeIndex) {
		return model.User{}, ErrInvalidTheme
	}
	updated := model.User{
		ID:         upd.ID,
		Name:       util.NormalizeName(upd.Name),
		Password:   upd.Password,
		Age:        upd.Age,
		Gender:     upd.Gender,
		BloodGroup: upd.BloodGroup,
		Address:    upd.Address,
		Mobile:     upd.Mobile,
		ProfilePic: upd.ProfilePic,
		ThemeIndex: upd.ThemeIndex,
	}
	stored, err := c.repo.ReplaceUser(ctx, oldID, updated)
	if err != nil {
		return model.User{}, fmt.Errorf("update profile %q: %w", oldID, err)
	}
	return stored, nil
}
