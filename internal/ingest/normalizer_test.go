package ingest

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivahub/drivahub/internal/domain"
)

var fixedNow = time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	return NewWithClock(func() time.Time { return fixedNow })
}

func normalizeString(t *testing.T, body string) (*Result, error) {
	t.Helper()
	doc, err := Decode([]byte(body))
	require.NoError(t, err)
	return newTestNormalizer().Normalize(doc)
}

func ptr(f float64) *float64 {
	return &f
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expected      *Result
		expectedError error
	}{
		{
			name: "Envelope with result string",
			body: `[{"result": "{\"weeklyPerformance\":{\"totalEarnings\":500,\"totalMilesDriven\":300},\"loads\":[{\"pickupLocation\":\"A\",\"dropoffLocation\":\"B\",\"price\":200}]}"}]`,
			expected: &Result{
				Statement: &domain.StatementDraft{
					Date:          "2024-03-10",
					Amount:        500,
					Miles:         300,
					DeadheadMiles: ptr(0),
					Type:          domain.StatementTypeRegular,
				},
				Loads: []domain.LoadDraft{
					{Pickup: "A", Dropoff: "B", Amount: 200, Date: "2024-03-10", Miles: 0},
				},
			},
		},
		{
			name: "Envelope with chat completion content",
			body: `[{"choices":[{"message":{"content":"{\"weeklyPerformance\":{\"date\":\"2024-03-08\",\"totalEarnings\":1000,\"totalMilesDriven\":500,\"deadheadMiles\":50}}"}}]}]`,
			expected: &Result{
				Statement: &domain.StatementDraft{
					Date:          "2024-03-08",
					Amount:        1000,
					Miles:         500,
					DeadheadMiles: ptr(50),
					Type:          domain.StatementTypeRegular,
				},
				Loads: []domain.LoadDraft{},
			},
		},
		{
			name: "Envelope content wrapped in a code fence",
			body: "[{\"result\": \"```json\\n{\\\"loads\\\":[{\\\"pickupLocation\\\":\\\"Dallas, TX\\\",\\\"dropoffLocation\\\":\\\"Austin, TX\\\",\\\"price\\\":850}]}\\n```\"}]",
			expected: &Result{
				Loads: []domain.LoadDraft{
					{Pickup: "Dallas, TX", Dropoff: "Austin, TX", Amount: 850, Date: "2024-03-10"},
				},
			},
		},
		{
			name: "Direct shape with loads dated by the statement",
			body: `{
				"weeklyPerformance": {"date": "03/04/2024", "totalEarnings": "$2,150.75", "totalMilesDriven": 1800},
				"loads": [
					{"pickupLocation": "  Reno  ", "dropoffLocation": "", "price": 1200.5},
					null,
					{"price": "950"}
				]
			}`,
			expected: &Result{
				Statement: &domain.StatementDraft{
					Date:          "2024-03-04",
					Amount:        2150.75,
					Miles:         1800,
					DeadheadMiles: ptr(0),
					Type:          domain.StatementTypeRegular,
				},
				Loads: []domain.LoadDraft{
					{Pickup: "Reno", Dropoff: "Unknown", Amount: 1200.5, Date: "2024-03-04"},
					{Pickup: "Unknown", Dropoff: "Unknown", Amount: 950, Date: "2024-03-04"},
				},
			},
		},
		{
			name: "Unreadable and negative numbers become zero",
			body: `{"weeklyPerformance": {"date": "2024-03-08", "totalEarnings": "n/a", "totalMilesDriven": -20, "deadheadMiles": true}}`,
			expected: &Result{
				Statement: &domain.StatementDraft{
					Date:          "2024-03-08",
					Amount:        0,
					Miles:         0,
					DeadheadMiles: ptr(0),
					Type:          domain.StatementTypeRegular,
				},
				Loads: []domain.LoadDraft{},
			},
		},
		{
			name: "Statement given as text",
			body: `{"weeklyPerformance": "see page 2"}`,
			expected: &Result{
				Statement: &domain.StatementDraft{
					Date:          "2024-03-10",
					DeadheadMiles: ptr(0),
					Type:          domain.StatementTypeRegular,
				},
				Loads: []domain.LoadDraft{},
			},
		},
		{
			name: "Statement flag with loads",
			body: `{"weeklyPerformance": true, "loads": [{"pickupLocation": "Reno", "dropoffLocation": "Boise", "price": 700}]}`,
			expected: &Result{
				Statement: &domain.StatementDraft{
					Date:          "2024-03-10",
					DeadheadMiles: ptr(0),
					Type:          domain.StatementTypeRegular,
				},
				Loads: []domain.LoadDraft{
					{Pickup: "Reno", Dropoff: "Boise", Amount: 700, Date: "2024-03-10"},
				},
			},
		},
		{
			name:          "Statement date is not a calendar date",
			body:          `{"weeklyPerformance": {"date": "Week ending 3/8", "totalEarnings": 900}, "loads": [{"price": 100}]}`,
			expectedError: ErrInvalidDate,
		},
		{
			name:          "Enveloped statement date is not a calendar date",
			body:          `[{"result": "{\"weeklyPerformance\":{\"date\":\"Week ending 3/8\",\"totalEarnings\":900},\"loads\":[{\"price\":100}]}"}]`,
			expectedError: ErrInvalidDate,
		},
		{
			name:          "Empty object",
			body:          `{}`,
			expectedError: ErrNoDataFound,
		},
		{
			name:          "Empty array",
			body:          `[]`,
			expectedError: ErrNoDataFound,
		},
		{
			name:          "Unrelated object",
			body:          `{"status": "ok", "pages": 2}`,
			expectedError: ErrNoDataFound,
		},
		{
			name:          "Null payload fields",
			body:          `{"weeklyPerformance": null, "loads": null}`,
			expectedError: ErrNoDataFound,
		},
		{
			name:          "Envelope without content",
			body:          `[{"id": "chatcmpl-1", "choices": []}]`,
			expectedError: ErrNoDataFound,
		},
		{
			name:          "Envelope with invalid nested JSON",
			body:          `[{"result": "Sorry, I could not read this document."}]`,
			expectedError: ErrMalformedEnvelope,
		},
		{
			name:          "Nested payload without known fields",
			body:          `[{"result": "{\"summary\": \"nothing here\"}"}]`,
			expectedError: ErrNoDataFound,
		},
		{
			name:          "Loads is not an array",
			body:          `{"loads": "none"}`,
			expectedError: ErrNoDataFound,
		},
		{
			name:          "Only null loads",
			body:          `{"loads": [null, null]}`,
			expectedError: ErrNoDataFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := normalizeString(t, tt.body)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.ErrorIs(t, err, ErrParse)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestNormalize_EnvelopeMatchesDirect(t *testing.T) {
	payloads := []map[string]any{
		{
			"weeklyPerformance": map[string]any{"totalEarnings": 500, "totalMilesDriven": 300},
			"loads":             []any{map[string]any{"pickupLocation": "A", "dropoffLocation": "B", "price": 200}},
		},
		{
			"weeklyPerformance": map[string]any{"date": "2024-02-26", "totalEarnings": 1875.25, "deadheadMiles": 120},
		},
		{
			"loads": []any{
				map[string]any{"pickupLocation": "Fresno"},
				nil,
				map[string]any{"dropoffLocation": "Tulsa", "price": "310.40"},
			},
		},
	}

	for i, payload := range payloads {
		inner, err := json.Marshal(payload)
		require.NoError(t, err)

		resultEnvelope, err := json.Marshal([]any{map[string]any{"result": string(inner)}})
		require.NoError(t, err)
		chatEnvelope, err := json.Marshal([]any{map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": string(inner)}}},
		}})
		require.NoError(t, err)

		direct, err := normalizeString(t, string(inner))
		require.NoError(t, err, "payload %d", i)
		fromResult, err := normalizeString(t, string(resultEnvelope))
		require.NoError(t, err, "payload %d", i)
		fromChat, err := normalizeString(t, string(chatEnvelope))
		require.NoError(t, err, "payload %d", i)

		assert.Equal(t, direct, fromResult, "payload %d", i)
		assert.Equal(t, direct, fromChat, "payload %d", i)
	}
}

func TestNormalize_OnlyFirstEnvelopeElementIsRead(t *testing.T) {
	_, err := normalizeString(t, `[{"result": "{not json"}, {"result": "{\"loads\":[{}]}"}]`)
	assert.ErrorIs(t, err, ErrMalformedEnvelope)

	res, err := normalizeString(t, `[{"result": "{\"loads\":[{}]}"}, {"result": "{not json"}]`)
	require.NoError(t, err)
	assert.Len(t, res.Loads, 1)
}

func TestNormalize_NilDocument(t *testing.T) {
	res, err := newTestNormalizer().Normalize(nil)
	assert.ErrorIs(t, err, ErrNoDataFound)
	assert.Nil(t, res)
}

func TestNormalize_TodayUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	n := NewWithClock(func() time.Time { return time.Date(2024, 3, 10, 20, 0, 0, 0, loc) })

	doc, err := Decode([]byte(`{"weeklyPerformance": {"totalEarnings": 1}}`))
	require.NoError(t, err)
	res, err := n.Normalize(doc)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", res.Statement.Date)
}

func TestDecode(t *testing.T) {
	_, err := Decode([]byte(`<html>Bad Gateway</html>`))
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.ErrorIs(t, err, ErrParse)

	doc, err := Decode([]byte(`{"loads": []}`))
	require.NoError(t, err)
	assert.NotNil(t, doc)
}
