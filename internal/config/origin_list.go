package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// OriginList список разрешенных CORS origin в виде scheme://host[:port]
type OriginList []string

func (l OriginList) String() string {
	return strings.Join(l, ",")
}

// Set разбирает список, разделенный запятыми, и заменяет текущее значение
func (l *OriginList) Set(value string) error {
	origins := make(OriginList, 0)

	for _, part := range strings.Split(value, ",") {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}

		u, err := url.Parse(origin)
		if err != nil {
			return fmt.Errorf("invalid origin %q: %w", origin, err)
		}
		if u.Scheme == "" || u.Host == "" || (u.Path != "" && u.Path != "/") || u.RawQuery != "" {
			return fmt.Errorf("invalid origin format: %s", origin)
		}

		origins = append(origins, strings.TrimSuffix(origin, "/"))
	}

	*l = origins

	return nil
}

func (l *OriginList) UnmarshalText(text []byte) error {
	return l.Set(string(text))
}

// Contains сообщает, входит ли origin в список (сравнение точное)
func (l OriginList) Contains(origin string) bool {
	return slices.Contains(l, origin)
}
