package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/avc-dev/movies-api/internal/model"
)

// maxSafeInteger наибольшее целое, точно представимое в JSON-числе двойной точности
const maxSafeInteger = 1<<53 - 1

// fieldRule описывает одно поле схемы фильма.
// Один и тот же набор правил используется и для полной, и для частичной проверки.
type fieldRule struct {
	name     string
	optional bool
	// tag правила go-playground/validator, применяемые к уже декодированному значению
	tag         string
	typeMessage string
	// requiredMessage сообщение об отсутствии поля при полной проверке
	requiredMessage string
	// messages переопределяет текст ошибки для конкретного тега
	messages map[string]string
	decode   func(raw json.RawMessage) (any, bool)
	assign   func(patch *model.MoviePatch, value any)
}

func movieRules() []fieldRule {
	return []fieldRule{
		{
			name:            "title",
			tag:             "min=1",
			typeMessage:     "Movie title must be a string",
			requiredMessage: "Movie title is required",
			messages:        map[string]string{"min": "Movie title must not be empty"},
			decode:          decodeString,
			assign: func(patch *model.MoviePatch, value any) {
				title := value.(string)
				patch.Title = &title
			},
		},
		{
			name:        "year",
			tag:         "gte=1900,lte=2025",
			typeMessage: "Movie year must be an integer",
			decode:      decodeInteger,
			assign: func(patch *model.MoviePatch, value any) {
				year := value.(int)
				patch.Year = &year
			},
		},
		{
			name:        "director",
			typeMessage: "Movie director must be a string",
			decode:      decodeString,
			assign: func(patch *model.MoviePatch, value any) {
				director := value.(string)
				patch.Director = &director
			},
		},
		{
			name:        "duration",
			typeMessage: "Movie duration must be an integer",
			decode:      decodeInteger,
			assign: func(patch *model.MoviePatch, value any) {
				duration := value.(int)
				patch.Duration = &duration
			},
		},
		{
			name:        "rate",
			optional:    true,
			tag:         "gte=0,lte=10",
			typeMessage: "Movie rate must be a number",
			decode:      decodeNumber,
			assign: func(patch *model.MoviePatch, value any) {
				rate := value.(float64)
				patch.Rate = &rate
			},
		},
		{
			name:        "poster",
			tag:         absoluteURLTag,
			typeMessage: "Movie poster must be a string",
			messages:    map[string]string{absoluteURLTag: "Poster must be a valid URL"},
			decode:      decodeString,
			assign: func(patch *model.MoviePatch, value any) {
				poster := value.(string)
				patch.Poster = &poster
			},
		},
		{
			name:            "genre",
			tag:             "min=1,dive,oneof=" + genreEnum(),
			typeMessage:     "Movie genre must be an array of enum Genre",
			requiredMessage: "Movie genre is required",
			messages: map[string]string{
				"min":   "Movie genre must contain at least one genre",
				"oneof": "Movie genre must be an array of enum Genre",
			},
			decode: decodeStrings,
			assign: func(patch *model.MoviePatch, value any) {
				raw := value.([]string)
				genres := make([]model.Genre, len(raw))
				for i, g := range raw {
					genres[i] = model.Genre(g)
				}
				patch.Genre = genres
			},
		},
	}
}

func genreEnum() string {
	genres := model.Genres()
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.String()
	}
	return strings.Join(names, " ")
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeString(raw json.RawMessage) (any, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return s, true
}

func decodeNumber(raw json.RawMessage) (any, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, false
	}
	return f, true
}

// decodeInteger принимает любое JSON-число без дробной части, в том числе 2010.0
func decodeInteger(raw json.RawMessage) (any, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, false
	}
	if f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
		return nil, false
	}
	return int(f), true
}

func decodeStrings(raw json.RawMessage) (any, bool) {
	var ss []string
	if err := json.Unmarshal(raw, &ss); err != nil {
		return nil, false
	}
	if ss == nil {
		ss = []string{}
	}
	return ss, true
}
