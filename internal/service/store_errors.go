package service

import (
	"errors"

	appErrors "github.com/noah-isme/hackathon-portal-api/pkg/errors"
)

// storeError surfaces a record store failure with the driver's own message.
func storeError(err error) *appErrors.Error {
	return appErrors.StoreError(rootCause(err))
}

func rootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return err
}
