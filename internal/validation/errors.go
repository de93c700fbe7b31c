package validation

import (
	"encoding/json"
	"strings"
)

// FieldError описывает нарушение правила для одного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error возвращается, когда кандидат не проходит схему.
// Содержит все найденные нарушения, а не только первое.
type Error struct {
	Issues []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Field == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// MarshalJSON сериализует ошибку как массив нарушений
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Issues)
}

// HasField сообщает, есть ли нарушение для указанного поля
func (e *Error) HasField(field string) bool {
	for _, issue := range e.Issues {
		if issue.Field == field || strings.HasPrefix(issue.Field, field+"[") {
			return true
		}
	}
	return false
}
