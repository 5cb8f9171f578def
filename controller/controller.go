// Package controller is the application flow layer between the HTTP handlers
// and the repository. It owns the business rules: credentials, the id cascade,
// the order lifecycle, and the diagnosis round-trip.
package controller

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/repository"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrBlankCredentials    = errors.New("id and password must not be blank")
	ErrReservedID          = errors.New("user id is reserved")
	ErrInvalidTheme        = errors.New("unknown theme")
	ErrNoSymptoms          = errors.New("at least one symptom is required")
	ErrDiagnosisInProgress = errors.New("a diagnosis is already in progress for this user")
)

// Diagnoser is the AI surface the controller needs. *ai.Adapter implements it.
type Diagnoser interface {
	RequestDiagnosis(ctx context.Context, record model.MedicalRecord, who model.PatientIdentity) (model.Prescription, error)
	LookupMedicineInfo(ctx context.Context, query string) string
	FindAlternativeBrands(ctx context.Context, query string) []model.AlternativeBrand
}

type Controller struct {
	repo  *repository.Repository
	ai    Diagnoser
	now   func() time.Time
	newID func() string

	// diagnosing holds the ids of users with an outstanding AI call.
	diagnosing sync.Map
}

type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Controller) { c.newID = newID }
}

func New(repo *repository.Repository, ai Diagnoser, opts ...Option) *Controller {
	c := &Controller{
		repo:  repo,
		ai:    ai,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Dashboard returns the admin summary counts.
func (c *Controller) Dashboard() repository.Stats {
	return c.repo.Stats()
}

func (c *Controller) Users() []model.User {
	return c.repo.Users()
}

func (c *Controller) User(id string) (model.User, error) {
	u, ok := c.repo.User(id)
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (c *Controller) Settings() model.AdminSettings {
	return c.repo.Settings()
}

// UpdateSettings replaces the whole settings record.
func (c *Controller) UpdateSettings(ctx context.Context, s model.AdminSettings) (model.AdminSettings, error) {
	if !model.IsValidPrescriptionTheme(s.PrescriptionTheme) {
		return model.AdminSettings{}, ErrInvalidTheme
	}
	if err := c.repo.ReplaceSettings(ctx, s); err != nil {
		return model.AdminSettings{}, err
	}
	return s, nil
}
