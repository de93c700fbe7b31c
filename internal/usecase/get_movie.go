package usecase

import (
	"github.com/avc-dev/movies-api/internal/model"
	"go.uber.org/zap"
)

// GetMovie получает фильм по идентификатору
func (u *MovieUsecase) GetMovie(id string) (model.Movie, error) {
	movie, err := u.repo.GetMovieByID(id)
	if err != nil {
		u.logger.Debug("failed to get movie by id",
			zap.String("id", id),
			zap.Error(err),
		)
		return model.Movie{}, wrapStoreError(err)
	}

	return movie, nil
}
