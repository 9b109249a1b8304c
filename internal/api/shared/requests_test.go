package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countRequest struct {
	Count int `json:"count" validate:"min=1,max=10"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    countRequest
		wantErr bool
	}{
		{name: "valid", body: `{"count": 3}`, want: countRequest{Count: 3}},
		{name: "trailing comma", body: `{"count": 3,}`, wantErr: true},
		{name: "unknown field", body: `{"count": 3, "extra": true}`, wantErr: true},
		{name: "trailing data", body: `{"count": 3}{"count": 4}`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var got countRequest

			err := DecodeJSON(req, &got)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(req, &countRequest{}), ErrEmptyBody)
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if !s.ok {
		return assert.AnError
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(countRequest{Count: 5}))
	assert.Error(t, ValidateRequest(countRequest{Count: 11}))
	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.ErrorIs(t, ValidateRequest(selfValidating{}), assert.AnError)
}
