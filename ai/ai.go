// Package ai turns medical records into prescriptions, and answers medicine
// questions, through a hosted generative model that returns JSON.
package ai

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by a Generator that has no credential configured.
var ErrMissingAPIKey = errors.New("AI API key is not configured")

// SchemaType mirrors the type names the Gemini API uses.
type SchemaType string

const (
	TypeString SchemaType = "STRING"
	TypeObject SchemaType = "OBJECT"
	TypeArray  SchemaType = "ARRAY"
)

// Schema declares the JSON shape the model must answer with.
type Schema struct {
	Type       SchemaType
	Properties map[string]*Schema
	Items      *Schema
	Required   []string
}

// Request is a single completion call. A nil Schema asks for free text.
type Request struct {
	Model  string
	Prompt string
	Schema *Schema
}

// Generator sends one request to the model and returns the response text.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Kind classifies adapter failures.
type Kind int

const (
	KindUnknown Kind = iota
	// KindConfiguration means the credential is missing; no call was made.
	KindConfiguration
	// KindTransport means the call itself failed.
	KindTransport
	// KindEmptyResponse means the model answered with no text.
	KindEmptyResponse
	// KindMalformedResponse means the text was not the declared JSON shape.
	KindMalformedResponse
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindTransport:
		return "transport"
	case KindEmptyResponse:
		return "empty_response"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// Error is returned by RequestDiagnosis.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("ai %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("ai %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown to the patient. Malformed responses get a
// generic message; the detail only goes to the log.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindConfiguration:
		return "এপিআই কী (API Key) সেট করা নেই। সার্ভারের পরিবেশে GEMINI_API_KEY যোগ করুন।"
	case KindEmptyResponse:
		return "এআই কোনো রেসপন্স প্রদান করেনি। আপনার ইন্টারনেট সংযোগ ও কনফিগারেশন চেক করুন।"
	case KindTransport:
		return "এআই সার্ভিস থেকে কোনো রেসপন্স পাওয়া যায়নি। আপনার ইন্টারনেট চেক করুন।"
	default:
		return "এআই সার্ভিস কাজ করছে না। অনুগ্রহ করে কিছুক্ষণ পর আবার চেষ্টা করুন।"
	}
}

// KindOf returns the Kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
