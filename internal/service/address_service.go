package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/rs/zerolog"
)

type IAddressService interface {
	GetSavedAddress(ctx context.Context, identity model.Identity) (*model.SavedAddress, error)
	SaveAddress(ctx context.Context, identity model.Identity, address model.Address) (*model.SavedAddress, error)
}

var _ IAddressService = (*AddressService)(nil)

type AddressService struct {
	repo   repository.IAddressRepo
	logger *zerolog.Logger
}

func NewAddressService(repo repository.IAddressRepo, logger *zerolog.Logger) *AddressService {
	if repo == nil {
		panic("address repo cannot be nil")
	}
	return &AddressService{repo: repo, logger: loggerOrNop(logger)}
}

// GetSavedAddress returns NotFound when the user never saved one.
func (s *AddressService) GetSavedAddress(ctx context.Context, identity model.Identity) (*model.SavedAddress, error) {
	if !identity.IsAuthenticated() {
		return nil, apperr.New(apperr.UnauthorizedCode, "Sign in to use a saved address")
	}
	address, err := s.repo.GetAddress(ctx, identity.UserID)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, apperr.New(apperr.NotFoundCode, "No saved address")
	}
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", identity.UserID).Msg("failed to load saved address")
		return nil, apperr.Wrap(apperr.InternalErrorCode, "Failed to load saved address", err)
	}
	return address, nil
}

func (s *AddressService) SaveAddress(ctx context.Context, identity model.Identity, address model.Address) (*model.SavedAddress, error) {
	if !identity.IsAuthenticated() {
		return nil, apperr.New(apperr.UnauthorizedCode, "Sign in to save an address")
	}
	address = trimAddress(address)
	if err := ValidateCustomer(address, false, true); err != nil {
		return nil, err
	}

	saved := &model.SavedAddress{UserID: identity.UserID, Address: address}
	if err := s.repo.SaveAddress(ctx, saved); err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "Failed to save address", err)
	}
	return saved, nil
}
