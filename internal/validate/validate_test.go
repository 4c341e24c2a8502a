package validate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"lowercase hex", "507f1f77bcf86cd799439011", true},
		{"uppercase hex", "507F1F77BCF86CD799439011", true},
		{"mixed case", "507f1F77bCf86cD799439011", true},
		{"too short", "507f1f77bcf86cd79943901", false},
		{"too long", "507f1f77bcf86cd7994390111", false},
		{"non-hex character", "507f1f77bcf86cd79943901g", false},
		{"empty", "", false},
		{"whitespace", "507f1f77bcf86cd79943901 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ID(tt.input))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"ten digits", "6505550123", true},
		{"leading zeros", "0005550123", true},
		{"nine digits", "650555012", false},
		{"eleven digits", "65055501234", false},
		{"letters", "65055501ab", false},
		{"all zeros", "0000000000", false},
		{"empty", "", false},
		{"with dashes", "650-555-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Phone(tt.input))
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "alice@example.com", true},
		{"dotted local part", "alice.smith@example.com", true},
		{"quoted local part", `"alice smith"@example.com`, true},
		{"subdomain", "alice@mail.example.co", true},
		{"bracketed dotted quad", "alice@[192.168.1.1]", true},
		{"missing at", "alice.example.com", false},
		{"single-letter tld", "alice@example.c", false},
		{"angle brackets", "<alice>@example.com", false},
		{"space in local part", "alice smith@example.com", false},
		{"double dot in local part", "alice..smith@example.com", false},
		{"missing domain", "alice@", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Email(tt.input))
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"http passes through", "http://example.com", "http://example.com"},
		{"https passes through", "https://example.com/a", "https://example.com/a"},
		{"ftp passes through", "ftp://example.com", "ftp://example.com"},
		{"bare host repaired", "example.com", "http://example.com"},
		{"other scheme repaired", "gopher://example.com", "http://gopher://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.input))
		})
	}
}

func TestRequireValidID(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "reached")
	}

	t.Run("malformed id stops the pipeline with 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("not-an-id")

		err := RequireValidID(next)(c)
		assert.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("well-formed id reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("507f1f77bcf86cd799439011")

		err := RequireValidID(next)(c)
		assert.NoError(t, err)
		assert.Equal(t, "reached", rec.Body.String())
	})
}
