package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	lumenerrors "github.com/lumenui/lumen/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})

	return validateInst
}

// ValidateGallery performs schema and cross-field validation on the gallery
// configuration.
func ValidateGallery(cfg *GalleryConfig) error {
	if cfg == nil {
		return lumenerrors.NewValidationError("gallery", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for i, button := range cfg.Buttons {
		if button.Label == "" && button.Icon == "" && !button.Loading {
			return lumenerrors.NewValidationError(
				fieldForButton(i, "label"),
				"button needs a label, an icon, or a loading indicator",
				nil,
			)
		}

		if button.LoadingDelayMS > 0 && !button.Loading {
			return lumenerrors.NewValidationError(
				fieldForButton(i, "loading_delay_ms"),
				"a loading delay requires loading to be enabled",
				nil,
			)
		}
	}

	return nil
}

func fieldForButton(index int, field string) string {
	return fmt.Sprintf("buttons[%d].%s", index, field)
}

func convertValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		field := strings.TrimPrefix(first.Namespace(), "GalleryConfig.")
		return lumenerrors.NewValidationError(
			field,
			fmt.Sprintf("failed %q constraint", first.Tag()),
			err,
		)
	}

	return lumenerrors.NewValidationError("", err.Error(), err)
}
