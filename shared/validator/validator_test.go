package validator_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"todolist/shared/failure"
	"todolist/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createRequest struct {
	Name  string `form:"name" validate:"required,max=10"`
	Count int    `form:"count" validate:"min=0,max=5"`
	Done  bool   `form:"done"`
}

func (c *createRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
}

type rawRequest struct {
	Label string `form:"label" validate:"min=2"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *createRequest
		expectError string
	}{
		{
			name: "valid struct",
			data: &createRequest{Name: "Buy milk", Count: 1},
		},
		{
			name:        "missing required field",
			data:        &createRequest{Count: 1},
			expectError: "name is required",
		},
		{
			name:        "string too long is measured in characters",
			data:        &createRequest{Name: "abcdefghijk"},
			expectError: "name must be at most 10 characters",
		},
		{
			name:        "number too large",
			data:        &createRequest{Name: "ok", Count: 6},
			expectError: "count must be at most 5",
		},
		{
			name:        "number too small",
			data:        &createRequest{Name: "ok", Count: -1},
			expectError: "count must be at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expectError, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name        string
		form        url.Values
		expectError string
		expect      createRequest
	}{
		{
			name:   "valid form",
			form:   url.Values{"name": {"  Buy milk "}, "count": {"2"}, "done": {"true"}},
			expect: createRequest{Name: "Buy milk", Count: 2, Done: true},
		},
		{
			name:   "plus and percent escapes are decoded",
			form:   url.Values{"name": {"1+1=2"}},
			expect: createRequest{Name: "1+1=2"},
		},
		{
			name:        "missing name",
			form:        url.Values{},
			expectError: "name is required",
		},
		{
			name:        "whitespace name",
			form:        url.Values{"name": {"   "}},
			expectError: "name is required",
		},
		{
			name:        "name too long",
			form:        url.Values{"name": {"abcdefghijk"}},
			expectError: "name must be at most 10 characters",
		},
		{
			name:        "invalid integer",
			form:        url.Values{"name": {"ok"}, "count": {"two"}},
			expectError: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			var data createRequest
			err := validator.ValidateForm(req, &data)

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expect, data)
		})
	}
}

func TestValidateFormWithoutNormalizer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("label=+"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var data rawRequest
	err := validator.ValidateForm(req, &data)

	require.Error(t, err)
	assert.Equal(t, "label must be at least 2 characters", err.Error())
	assert.Equal(t, " ", data.Label)
}
