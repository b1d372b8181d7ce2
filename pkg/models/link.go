package models

import (
	"errors"
	"fmt"
	"strings"

	"social-news-go/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// Field limits shared with the TUI form inputs.
const (
	MaxTitleLength  = 255
	MaxAuthorLength = 255
	MaxURLLength    = 2048
)

// Link is a single bookmarked item. It is also the wire shape of both the
// news feed entries and the submit response.
type Link struct {
	Title  string `json:"title" validate:"required,max=255"`
	URL    string `json:"url" validate:"required,max=2048"`
	Author string `json:"author" validate:"required,max=255"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewLink builds a Link from raw field values. Values are trimmed; every
// field is required and the URL must parse.
func NewLink(title, url, author string) (Link, error) {
	link := Link{
		Title:  strings.TrimSpace(title),
		URL:    strings.TrimSpace(url),
		Author: strings.TrimSpace(author),
	}

	if err := validate.Struct(link); err != nil {
		return Link{}, describeValidation(err)
	}
	if _, err := utils.ValidateURL(link.URL); err != nil {
		return Link{}, err
	}

	return link, nil
}

// describeValidation turns validator errors into a short message naming the
// first offending field.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("invalid link: %w", err)
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	if field == "url" {
		field = "URL"
	}
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "max":
		return fmt.Errorf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Errorf("invalid %s", field)
	}
}

// String renders the link as a single line, e.g. for log output.
func (l Link) String() string {
	return fmt.Sprintf("%s <%s> by %s", l.Title, l.URL, l.Author)
}
