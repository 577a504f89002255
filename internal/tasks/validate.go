package tasks

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskflow/internal/model"
)

// Validation messages, in the order the rules are checked.
const (
	MsgTitleRequired      = "title required"
	MsgTitleTooLong       = "title too long"
	MsgDescriptionTooLong = "description too long"
	MsgCategoryTooLong    = "category too long"
	MsgInvalidPriority    = "invalid priority"
	MsgInvalidStatus      = "invalid status"
)

// Result is the outcome of Validate. Errors is empty when IsValid is true.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type rule struct {
	value   func(model.Task) string
	tag     string
	message string
}

var (
	validate = newValidator()

	rules = []rule{
		{func(t model.Task) string { return t.Title }, "notblank", MsgTitleRequired},
		{func(t model.Task) string { return t.Title }, maxTag(model.TitleMaxLength), MsgTitleTooLong},
		{func(t model.Task) string { return t.Description }, maxTag(model.DescriptionMaxLength), MsgDescriptionTooLong},
		{func(t model.Task) string { return t.Category }, maxTag(model.CategoryMaxLength), MsgCategoryTooLong},
		{func(t model.Task) string { return string(t.Priority) }, oneOfTag(model.AllPriorities()), MsgInvalidPriority},
		{func(t model.Task) string { return string(t.Status) }, oneOfTag(model.AllStatuses()), MsgInvalidStatus},
	}
)

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	if err != nil {
		panic(err)
	}
	return v
}

func maxTag(n int) string {
	return "max=" + strconv.Itoa(n)
}

func oneOfTag[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "oneof=" + strings.Join(parts, " ")
}

// Validate checks a candidate task against every field rule and collects all
// violations. It never fails; the caller decides whether to block the save.
func Validate(candidate model.Task) Result {
	errs := []string{}
	for _, r := range rules {
		if err := validate.Var(r.value(candidate), r.tag); err != nil {
			errs = append(errs, r.message)
		}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}
