package services

import "kilimopesa_backend/pkg/apperrors"

// requireOwner gates every mutation of a listing. Reads stay public, writes
// belong to the creator only.
func requireOwner(ownerID, userID string) error {
	if ownerID != userID {
		return apperrors.ErrNotOwner
	}
	return nil
}
