package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemeSettingRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SchemeSettingRequest
		wantErr string
	}{
		{"valid", SchemeSettingRequest{Name: "ORCID", Scheme: "ORCID", URL: "https://orcid.org/##"}, ""},
		{"empty url allowed", SchemeSettingRequest{Name: "WEKO", Scheme: "WEKO"}, ""},
		{"empty scheme allowed", SchemeSettingRequest{Name: "CiNii", URL: "https://ci.nii.ac.jp/author/##"}, ""},
		{"missing name", SchemeSettingRequest{URL: "https://orcid.org/##"}, "name is required"},
		{"blank name", SchemeSettingRequest{Name: "   ", URL: "https://orcid.org/##"}, "name: name must not be blank"},
		{"name too long", SchemeSettingRequest{Name: strings.Repeat("a", 256)}, "name: "},
		{"broken url", SchemeSettingRequest{Name: "ROR", URL: "not a url ##"}, "url: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
