package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"prose around", `noise {"a":{"b":2}} trailing`, `{"a":{"b":2}}`},
		{"code fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"no braces", "  hello  ", "hello"},
		{"close before open", `} {`, `} {`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractObject(tt.input))
		})
	}
}

func TestExtractArray(t *testing.T) {
	assert.Equal(t, `[{"a":1},{"b":[2]}]`, extractArray(`list: [{"a":1},{"b":[2]}] done`))
	assert.Equal(t, `nothing`, extractArray(`nothing`))
}

func TestFormatBengaliDate(t *testing.T) {
	assert.Equal(t, "১৫/১০/২০২৬", FormatBengaliDate(time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)))
	// 20:30 UTC is already the next day in Dhaka.
	assert.Equal(t, "১/১/২০২৭", FormatBengaliDate(time.Date(2026, 12, 31, 20, 30, 0, 0, time.UTC)))
}

func TestErrorKinds(t *testing.T) {
	err := &Error{Kind: KindMalformedResponse, Op: "diagnosis"}
	assert.Equal(t, "ai diagnosis: malformed_response", err.Error())
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
	assert.NotEqual(t, (&Error{Kind: KindConfiguration}).UserMessage(), (&Error{Kind: KindTransport}).UserMessage())
}
