package gen

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names in violation paths
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeArtifact enforces "at least the required shape": unknown extra fields
// are dropped, missing or out-of-bounds fields are a schema violation.
func decodeArtifact(raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			path := typeErr.Field
			if path == "" {
				path = "$"
			}
			return &SchemaError{Path: path, Expect: typeErr.Type.String()}
		}
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			expect := fe.Tag()
			if fe.Param() != "" {
				expect += "=" + fe.Param()
			}
			return &SchemaError{Path: fe.Namespace(), Expect: expect}
		}
		return &SchemaError{Path: "$", Expect: err.Error()}
	}
	return nil
}
