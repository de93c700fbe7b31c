package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/avc-dev/movies-api/internal/model"
	"github.com/go-playground/validator/v10"
)

// absoluteURLTag кастомное правило: строка разбирается как URL со схемой и хостом
const absoluteURLTag = "absurl"

// MovieValidator проверяет кандидатов в записи фильмов.
// Не имеет побочных эффектов и безопасен для конкурентного использования.
type MovieValidator struct {
	validate *validator.Validate
	rules    []fieldRule
}

// New создает валидатор со схемой фильма
func New() *MovieValidator {
	validate := validator.New()
	if err := validate.RegisterValidation(absoluteURLTag, isAbsoluteURL); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", absoluteURLTag, err))
	}

	return &MovieValidator{
		validate: validate,
		rules:    movieRules(),
	}
}

// ValidateMovie проверяет полный фильм: все обязательные поля должны присутствовать.
// Неизвестные поля, включая id, игнорируются.
func (v *MovieValidator) ValidateMovie(payload []byte) (model.Movie, error) {
	fields, err := decodeObject(payload)
	if err != nil {
		return model.Movie{}, err
	}

	patch, issues := v.check(fields, true)
	if len(issues) > 0 {
		return model.Movie{}, &Error{Issues: issues}
	}

	return model.Movie{}.Apply(patch), nil
}

// ValidatePartialMovie проверяет только присланные поля по тем же правилам, что и ValidateMovie
func (v *MovieValidator) ValidatePartialMovie(payload []byte) (model.MoviePatch, error) {
	fields, err := decodeObject(payload)
	if err != nil {
		return model.MoviePatch{}, err
	}

	patch, issues := v.check(fields, false)
	if len(issues) > 0 {
		return model.MoviePatch{}, &Error{Issues: issues}
	}

	return patch, nil
}

// ValidateStoredMovie проверяет запись, которая уже несет свой идентификатор (например, из seed-файла)
func (v *MovieValidator) ValidateStoredMovie(payload []byte) (model.Movie, error) {
	fields, err := decodeObject(payload)
	if err != nil {
		return model.Movie{}, err
	}

	var issues []FieldError

	var id string
	raw, ok := fields["id"]
	switch {
	case !ok:
		issues = append(issues, FieldError{Field: "id", Message: "Movie id is required"})
	case json.Unmarshal(raw, &id) != nil || isNull(raw) || id == "":
		issues = append(issues, FieldError{Field: "id", Message: "Movie id must be a non-empty string"})
	}

	patch, fieldIssues := v.check(fields, true)
	issues = append(issues, fieldIssues...)
	if len(issues) > 0 {
		return model.Movie{}, &Error{Issues: issues}
	}

	movie := model.Movie{ID: id}.Apply(patch)
	return movie, nil
}

// check прогоняет набор правил по полям объекта.
// При requireAll отсутствие обязательного поля считается нарушением,
// иначе отсутствующие поля пропускаются.
func (v *MovieValidator) check(fields map[string]json.RawMessage, requireAll bool) (model.MoviePatch, []FieldError) {
	var (
		patch  model.MoviePatch
		issues []FieldError
	)

	for _, rule := range v.rules {
		raw, present := fields[rule.name]
		if !present {
			if requireAll && !rule.optional {
				issues = append(issues, FieldError{Field: rule.name, Message: rule.missingMessage()})
			}
			continue
		}

		value, fieldIssues := v.checkField(rule, raw)
		if len(fieldIssues) > 0 {
			issues = append(issues, fieldIssues...)
			continue
		}

		rule.assign(&patch, value)
	}

	return patch, issues
}

func (v *MovieValidator) checkField(rule fieldRule, raw json.RawMessage) (any, []FieldError) {
	if isNull(raw) {
		return nil, []FieldError{{Field: rule.name, Message: rule.typeMessage}}
	}

	value, ok := rule.decode(raw)
	if !ok {
		return nil, []FieldError{{Field: rule.name, Message: rule.typeMessage}}
	}

	if rule.tag == "" {
		return value, nil
	}

	err := v.validate.Var(value, rule.tag)
	if err == nil {
		return value, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, []FieldError{{Field: rule.name, Message: fmt.Sprintf("%s is invalid", rule.name)}}
	}

	issues := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		issues = append(issues, FieldError{
			// для элементов массива Namespace содержит индекс, например "[1]"
			Field:   rule.name + fe.Namespace(),
			Message: rule.message(fe),
		})
	}

	return nil, issues
}

func (r fieldRule) missingMessage() string {
	if r.requiredMessage != "" {
		return r.requiredMessage
	}
	return fmt.Sprintf("Movie %s is required", r.name)
}

func (r fieldRule) message(fe validator.FieldError) string {
	if msg, ok := r.messages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("Movie %s must be greater than or equal to %s", r.name, fe.Param())
	case "lte":
		return fmt.Sprintf("Movie %s must be less than or equal to %s", r.name, fe.Param())
	case "min":
		return fmt.Sprintf("Movie %s must have at least %s element(s)", r.name, fe.Param())
	case "oneof":
		return fmt.Sprintf("Movie %s must be one of: %s", r.name, fe.Param())
	default:
		return fmt.Sprintf("Movie %s is invalid", r.name)
	}
}

func decodeObject(payload []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil || fields == nil {
		return nil, &Error{Issues: []FieldError{{Message: "Request body must be a JSON object"}}}
	}
	return fields, nil
}

func isAbsoluteURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
