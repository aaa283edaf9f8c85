package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
)

func TestParseOrderKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    *int
		wantErr bool
	}{
		{"absent", "", nil, false},
		{"null", "null", nil, false},
		{"zero", "0", intPtr(0), false},
		{"positive", "7", intPtr(7), false},
		{"negative passes through", "-1", intPtr(-1), false},
		{"string", `"abc"`, nil, true},
		{"float", "1.5", nil, true},
		{"bool", "true", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseOrderKey(json.RawMessage(tt.raw))
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidOrderKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"title":"x"}`, false},
		{"empty", "", true},
		{"whitespace", "  \n", true},
		{"malformed", `{"title":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var v topicRequest
			err := decodeJSON(httptest.NewRecorder(), req, &v)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x", v.Title)
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	t.Parallel()

	body := `{"title":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var v topicRequest
	err := decodeJSON(httptest.NewRecorder(), req, &v)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPathID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.SetPathValue("id", tt.value)
			got, err := pathID(req, "id")
			if tt.wantErr {
				var ve *domain.ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, "id", ve.Errors[0].Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryInt(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?limit=5&offset=x", nil)

	n, err := queryInt(req, "limit")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = queryInt(req, "missing")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = queryInt(req, "offset")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func intPtr(n int) *int { return &n }
