// Package validation registers the custom rules used in request binding tags.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// MobileNumberPattern matches a 10 digit local number on a mobile network
	MobileNumberPattern = `^0[25]\d{8}$`

	// EntityIDPattern matches generated ids such as student-17
	EntityIDPattern = `^[a-z]+-[1-9]\d*$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	MobileNumber *regexp.Regexp
	EntityID     *regexp.Regexp
}{
	MobileNumber: regexp.MustCompile(MobileNumberPattern),
	EntityID:     regexp.MustCompile(EntityIDPattern),
}

// Rule tags
const (
	TagMobile   = "mobile"
	TagEntityID = "entityid"
)

// Register adds the custom rules to v and reports fields by their JSON names
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)

	if err := v.RegisterValidation(TagMobile, mobileNumber); err != nil {
		return err
	}
	return v.RegisterValidation(TagEntityID, entityID)
}

// RegisterWithGin adds the custom rules to gin's binding validator
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return Register(v)
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func mobileNumber(fl validator.FieldLevel) bool {
	return CompiledPatterns.MobileNumber.MatchString(fl.Field().String())
}

// entityID checks the id format; a param such as entityid=student also pins the kind
func entityID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if !CompiledPatterns.EntityID.MatchString(id) {
		return false
	}
	if kind := fl.Param(); kind != "" {
		return strings.HasPrefix(id, kind+"-")
	}
	return true
}
