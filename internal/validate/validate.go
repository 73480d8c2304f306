// Package validate provides input validation for Droptrack drafts and
// patches. Struct-tag validation runs through go-playground/validator;
// domain-specific checks (rating steps, URL schemes) are explicit helpers.
package validate

import (
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/cryptopilot/droptrack/internal/errors"
)

const (
	// MaxTitleLength is the maximum length for an entity title.
	MaxTitleLength = 128
	// MaxURLLength is the maximum length for a URL.
	MaxURLLength = 2048
	// MaxCategoryLength is the maximum length for a category label.
	MaxCategoryLength = 64
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a draft using its `validate` tags. Failures come back as
// UserError so they surface as rejection notifications, never panics.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return errors.NewUserErrorWithField(
			strings.ToLower(fe.Field()),
			fe.Param(),
			"Invalid value for "+strings.ToLower(fe.Field()),
			"Check the "+strings.ToLower(fe.Field())+" field ("+fe.Tag()+")")
	}
	return errors.NewUserError("Invalid input", "Check the submitted fields")
}

// Title validates an entity title.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewUserError("Title cannot be empty", "Provide a title")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserErrorWithField("title", title,
			"Title too long",
			"Titles must be 128 characters or fewer")
	}
	return nil
}

// CategoryName validates a category label before it enters the registry.
func CategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ErrEmptyCategory
	}
	if utf8.RuneCountInString(name) > MaxCategoryLength {
		return errors.NewUserErrorWithField("category", name,
			"Category name too long",
			"Category names must be 64 characters or fewer")
	}
	return nil
}

// URL validates an http(s) URL.
func URL(rawURL string) error {
	if rawURL == "" {
		return errors.NewUserError("URL cannot be empty", "Provide a valid URL")
	}
	if len(rawURL) > MaxURLLength {
		return errors.NewUserError("URL too long", "URLs must be 2048 characters or fewer")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL format",
			"Provide a valid URL starting with https://")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL scheme",
			"URLs must use http:// or https://")
	}
	if parsed.Hostname() == "" {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL: missing hostname",
			"Provide a valid URL like https://example.com")
	}
	return nil
}

// OptionalURL validates a URL that may be empty.
func OptionalURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}
	return URL(rawURL)
}

// Rating validates a leaderboard rating: 1.0-5.0 inclusive in 0.5 steps.
func Rating(rating float64) error {
	if rating < 1.0 || rating > 5.0 {
		return errors.ErrInvalidRating
	}
	doubled := rating * 2
	if math.Abs(doubled-math.Round(doubled)) > 1e-9 {
		return errors.ErrInvalidRating
	}
	return nil
}

// Rank validates a leaderboard rank. Ranks are positive but need not be
// contiguous.
func Rank(rank int) error {
	if rank < 1 {
		return errors.NewUserErrorWithField("rank", "",
			"Rank must be a positive integer",
			"Use 1 or greater")
	}
	return nil
}

// NonEmpty validates that a string is not blank.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field)
	}
	return nil
}
