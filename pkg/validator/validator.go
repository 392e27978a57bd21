package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/yt-summarizer/pkg/youtube"
)

// TagYouTubeURL validates that a string field holds a supported YouTube URL
const TagYouTubeURL = "youtube_url"

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with the project's custom tags
func New() *CustomValidator {
	v, err := newValidate(map[string]validator.Func{
		TagYouTubeURL: validateYouTubeURL,
	})
	if err != nil {
		panic(err)
	}
	return &CustomValidator{v: v}
}

func newValidate(tags map[string]validator.Func) (*validator.Validate, error) {
	v := validator.New()
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register validation %q: %w", tag, err)
		}
	}
	return v, nil
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

func validateYouTubeURL(fl validator.FieldLevel) bool {
	_, err := youtube.ExtractVideoID(fl.Field().String())
	return err == nil
}
