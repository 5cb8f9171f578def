package controller

import (
	"context"
	"fmt"

	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/repository"
	"github.com/rs/zerolog/log"
)

// Diagnose asks the AI for a prescription and stores it as the user's newest.
// Nothing is stored when the AI call fails. One call per user at a time.
func (c *Controller) Diagnose(ctx context.Context, userID string, record model.MedicalRecord) (model.Prescription, error) {
	if !record.HasSymptoms() {
		return model.Prescription{}, ErrNoSymptoms
	}
	u, ok := c.repo.User(userID)
	if !ok {
		return model.Prescription{}, repository.ErrUserNotFound
	}

	if _, busy := c.diagnosing.LoadOrStore(userID, struct{}{}); busy {
		return model.Prescription{}, ErrDiagnosisInProgress
	}
	defer c.diagnosing.Delete(userID)

	p, err := c.ai.RequestDiagnosis(ctx, record, u.Identity())
	if err != nil {
		return model.Prescription{}, err
	}

	// ErrUserNotFound here means the id changed while the AI answered.
	if _, err := c.repo.PrependPrescription(ctx, userID, p); err != nil {
		return model.Prescription{}, fmt.Errorf("store prescription: %w", err)
	}
	log.Info().Str("user_id", userID).Str("prescription_id", p.ID).Msg("prescription created")
	return p, nil
}

// Prescriptions returns the user's history, newest first.
func (c *Controller) Prescriptions(userID string) ([]model.Prescription, error) {
	u, ok := c.repo.User(userID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if u.Prescriptions == nil {
		return []model.Prescription{}, nil
	}
	return u.Prescriptions, nil
}

func (c *Controller) MedicineInfo(ctx context.Context, query string) string {
	return c.ai.LookupMedicineInfo(ctx, query)
}

func (c *Controller) Alternatives(ctx context.Context, query string) []model.AlternativeBrand {
	return c.ai.FindAlternativeBrands(ctx, query)
}
