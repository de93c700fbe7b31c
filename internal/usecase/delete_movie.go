package usecase

import "go.uber.org/zap"

// DeleteMovie удаляет фильм по идентификатору
func (u *MovieUsecase) DeleteMovie(id string) error {
	if err := u.repo.DeleteMovie(id); err != nil {
		u.logger.Debug("failed to delete movie",
			zap.String("id", id),
			zap.Error(err),
		)
		return wrapStoreError(err)
	}

	u.logger.Info("movie deleted", zap.String("id", id))

	return nil
}
