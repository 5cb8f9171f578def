package repository

import (
	"context"

	"github.com/ariebrainware/medi-help/model"
)

func (r *Repository) Settings() model.AdminSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// ReplaceSettings overwrites the whole settings record.
func (r *Repository) ReplaceSettings(ctx context.Context, s model.AdminSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.persist(ctx, KeySettings, s); err != nil {
		return err
	}
	r.settings = s
	return nil
}
