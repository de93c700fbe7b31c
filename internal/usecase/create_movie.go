package usecase

import (
	"fmt"

	"github.com/avc-dev/movies-api/internal/model"
	"go.uber.org/zap"
)

// CreateMovie проверяет тело запроса по полной схеме и сохраняет новый фильм.
// Ошибка валидации возвращается без обертки, чтобы handler мог отдать список нарушений.
func (u *MovieUsecase) CreateMovie(payload []byte) (model.Movie, error) {
	candidate, err := u.validator.ValidateMovie(payload)
	if err != nil {
		return model.Movie{}, err
	}

	movie, err := u.service.CreateMovie(candidate)
	if err != nil {
		u.logger.Error("failed to create movie",
			zap.String("title", candidate.Title),
			zap.Error(err),
		)
		return model.Movie{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	u.logger.Info("movie created",
		zap.String("id", movie.ID),
		zap.String("title", movie.Title),
	)

	return movie, nil
}
