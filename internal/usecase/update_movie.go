package usecase

import (
	"fmt"

	"github.com/avc-dev/movies-api/internal/model"
	"go.uber.org/zap"
)

// UpdateMovie частично обновляет фильм.
// Существование фильма проверяется до валидации: для неизвестного id ответ всегда "не найден".
func (u *MovieUsecase) UpdateMovie(id string, payload []byte) (model.Movie, error) {
	exists, err := u.repo.Exists(id)
	if err != nil {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	if !exists {
		return model.Movie{}, fmt.Errorf("%w: id %s", ErrMovieNotFound, id)
	}

	patch, err := u.validator.ValidatePartialMovie(payload)
	if err != nil {
		return model.Movie{}, err
	}

	movie, err := u.repo.UpdateMovie(id, patch)
	if err != nil {
		u.logger.Warn("failed to update movie",
			zap.String("id", id),
			zap.Error(err),
		)
		return model.Movie{}, wrapStoreError(err)
	}

	u.logger.Info("movie updated", zap.String("id", id))

	return movie, nil
}
