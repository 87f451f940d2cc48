package impl

import (
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"

	"github.com/pkg/errors"
)

// notFoundErrors maps repository sentinels to the application errors rendered to clients.
var notFoundErrors = map[error]*domainerrors.BaseError{
	repository.ErrUserNotFound:            domainerrors.ErrUserNotFound,
	repository.ErrDonationRequestNotFound: domainerrors.ErrDonationRequestNotFound,
	repository.ErrBlogNotFound:            domainerrors.ErrBlogNotFound,
}

// translateRepoError converts repository sentinels into application errors and
// wraps anything else with msg.
func translateRepoError(err error, msg string) error {
	if errors.Is(err, repository.ErrInvalidID) {
		return errors.Wrap(domainerrors.ErrInvalidID, msg)
	}

	for sentinel, appErr := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return errors.Wrap(appErr, msg)
		}
	}

	return errors.Wrap(err, msg)
}
