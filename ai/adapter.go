package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/util"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// NoInfoText is returned when the model has nothing to say about a medicine.
	NoInfoText = "কোনো তথ্য পাওয়া যায়নি।"
	// InfoFailurePrefix starts the text returned when the lookup itself fails.
	InfoFailurePrefix = "তথ্য সংগ্রহ করা সম্ভব হয়নি: "
)

// Adapter wraps a Generator with prompts, declared schemas and validation.
// It holds no per-call state and is safe for concurrent use.
type Adapter struct {
	gen      Generator
	model    string
	timeout  time.Duration
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
	logger   zerolog.Logger
}

type Option func(*Adapter)

func WithModel(name string) Option {
	return func(a *Adapter) { a.model = name }
}

// WithTimeout bounds each call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) { a.timeout = d }
}

func WithClock(now func() time.Time) Option {
	return func(a *Adapter) { a.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(a *Adapter) { a.newID = newID }
}

func WithLogger(l zerolog.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

func NewAdapter(gen Generator, opts ...Option) *Adapter {
	a := &Adapter{
		gen:      gen,
		model:    "gemini-3-flash-preview",
		timeout:  60 * time.Second,
		validate: validator.New(),
		now:      time.Now,
		newID:    newPrescriptionID,
		logger:   log.Logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func newPrescriptionID() string {
	return "RX-" + strings.ToUpper(uuid.NewString())
}

type medicinePayload struct {
	EnglishName *string `json:"englishName" validate:"required"`
	BengaliName *string `json:"bengaliName" validate:"required"`
	GenericName *string `json:"genericName" validate:"required"`
	Purpose     *string `json:"purpose" validate:"required"`
	Dosage      *string `json:"dosage" validate:"required"`
}

type diagnosisPayload struct {
	Diagnosis *string           `json:"diagnosis" validate:"required"`
	Advice    *string           `json:"advice" validate:"required"`
	Medicines []medicinePayload `json:"medicines" validate:"required,dive"`
}

type alternativePayload struct {
	Name    *string `json:"name" validate:"required"`
	Company *string `json:"company" validate:"required"`
	Price   *string `json:"price" validate:"required"`
	Generic *string `json:"generic" validate:"required"`
}

// RequestDiagnosis asks the model for a prescription. Record demographics
// win over the user's own; the result is not persisted here.
func (a *Adapter) RequestDiagnosis(ctx context.Context, record model.MedicalRecord, who model.PatientIdentity) (model.Prescription, error) {
	const op = "diagnosis"
	p := resolvePatient(record, who)

	text, err := a.generate(ctx, op, Request{Model: a.model, Prompt: diagnosisPrompt(p, record), Schema: diagnosisSchema})
	if err != nil {
		return model.Prescription{}, err
	}
	if strings.TrimSpace(text) == "" {
		return model.Prescription{}, &Error{Kind: KindEmptyResponse, Op: op}
	}

	var payload diagnosisPayload
	if err := json.Unmarshal([]byte(extractObject(text)), &payload); err != nil {
		return model.Prescription{}, a.malformed(op, text, err)
	}
	if err := a.validate.Struct(&payload); err != nil {
		return model.Prescription{}, a.malformed(op, text, err)
	}

	medicines := make([]model.MedicineItem, len(payload.Medicines))
	for i, m := range payload.Medicines {
		medicines[i] = model.MedicineItem{
			EnglishName: *m.EnglishName,
			BengaliName: *m.BengaliName,
			GenericName: *m.GenericName,
			Purpose:     *m.Purpose,
			Dosage:      *m.Dosage,
		}
	}

	return model.Prescription{
		ID:            a.newID(),
		UserID:        who.ID,
		PatientName:   p.Name,
		PatientAge:    p.Age,
		PatientGender: p.Gender,
		Diagnosis:     *payload.Diagnosis,
		Advice:        *payload.Advice,
		Medicines:     medicines,
		Date:          FormatBengaliDate(a.now()),
	}, nil
}

// LookupMedicineInfo returns the model's free-text description of a medicine.
// It never fails: an empty answer yields NoInfoText and a failed call yields
// InfoFailurePrefix followed by the reason.
func (a *Adapter) LookupMedicineInfo(ctx context.Context, query string) string {
	text, err := a.generate(ctx, "medicine_info", Request{Model: a.model, Prompt: medicineInfoPrompt(query)})
	if err != nil {
		a.logger.Warn().Err(err).Str("query", query).Msg("medicine info lookup failed")
		var aiErr *Error
		if errors.As(err, &aiErr) {
			return InfoFailurePrefix + aiErr.UserMessage()
		}
		return InfoFailurePrefix + err.Error()
	}
	if strings.TrimSpace(text) == "" {
		return NoInfoText
	}
	return text
}

// FindAlternativeBrands lists other brands of the same medicine. Any failure
// gives an empty list; the lookup is advisory.
func (a *Adapter) FindAlternativeBrands(ctx context.Context, query string) []model.AlternativeBrand {
	const op = "alternatives"
	out := []model.AlternativeBrand{}

	text, err := a.generate(ctx, op, Request{Model: a.model, Prompt: alternativesPrompt(query), Schema: alternativesSchema})
	if err != nil {
		a.logger.Warn().Err(err).Str("query", query).Msg("alternative brand lookup failed")
		return out
	}
	if strings.TrimSpace(text) == "" {
		return out
	}

	var payload []alternativePayload
	if err := json.Unmarshal([]byte(extractArray(text)), &payload); err != nil {
		a.logger.Warn().Err(a.malformed(op, text, err)).Msg("alternative brand lookup failed")
		return out
	}
	for _, item := range payload {
		if err := a.validate.Struct(&item); err != nil {
			a.logger.Warn().Err(a.malformed(op, text, err)).Msg("alternative brand lookup failed")
			return []model.AlternativeBrand{}
		}
		out = append(out, model.AlternativeBrand{
			Name:    *item.Name,
			Company: *item.Company,
			Price:   *item.Price,
			Generic: *item.Generic,
		})
	}
	return out
}

func (a *Adapter) generate(ctx context.Context, op string, req Request) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := a.gen.Generate(ctx, req)
	if err != nil {
		kind := KindTransport
		if errors.Is(err, ErrMissingAPIKey) {
			kind = KindConfiguration
		}
		return "", &Error{Kind: kind, Op: op, Err: err}
	}
	a.logger.Debug().Str("op", op).Str("model", req.Model).Dur("latency", time.Since(start)).Int("chars", len(text)).Msg("ai call completed")
	return text, nil
}

func (a *Adapter) malformed(op, text string, cause error) error {
	a.logger.Error().Err(cause).Str("op", op).Str("response", util.TruncateUTF8(text, 500)).Msg("malformed AI response")
	return &Error{Kind: KindMalformedResponse, Op: op, Err: fmt.Errorf("parse response: %w", cause)}
}
