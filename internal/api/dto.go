package api

import (
	"regexp"
	"strings"

	"weko_authors_go_backend/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SchemeSettingRequest is the body of create and update calls on both settings tables.
type SchemeSettingRequest struct {
	Name   string `json:"name"`
	Scheme string `json:"scheme"`
	URL    string `json:"url"`
}

var nonBlank = regexp.MustCompile(`\S`)

func (r SchemeSettingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Match(nonBlank).Error("name must not be blank"),
			validation.RuneLength(1, 255),
		),
		validation.Field(&r.Scheme,
			validation.RuneLength(0, 255),
		),
		validation.Field(&r.URL,
			validation.When(r.URL != "",
				validation.By(urlTemplate),
			),
		),
	)
}

// urlTemplate accepts a URL that may still contain the identifier placeholder.
func urlTemplate(value interface{}) error {
	s, _ := value.(string)
	return is.URL.Validate(strings.ReplaceAll(s, models.URLPlaceholder, "0"))
}
