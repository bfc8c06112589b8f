package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gemquest/internal/models/db_models"
	"gemquest/internal/models/request_models"
	"gemquest/internal/models/response_models"
	"gemquest/internal/repositories"
	"gemquest/pkg/utils"
)

type PaymentMethodServiceInterface interface {
	CreatePaymentMethod(ctx context.Context, request request_models.CreatePaymentMethodRequest) (*response_models.PaymentMethodResponse, error)
	ListPaymentMethods(ctx context.Context, userID string) ([]response_models.PaymentMethodResponse, error)
	SetDefaultPaymentMethod(ctx context.Context, userID, methodID string) error
	DeletePaymentMethod(ctx context.Context, methodID string) error
}

type PaymentMethodService struct {
	methodRepo repositories.PaymentMethodRepository
	parentRepo repositories.ParentRepository
	cipher     *utils.CardCipher
}

func NewPaymentMethodService(
	methodRepo repositories.PaymentMethodRepository,
	parentRepo repositories.ParentRepository,
	cipher *utils.CardCipher,
) PaymentMethodServiceInterface {
	return &PaymentMethodService{
		methodRepo: methodRepo,
		parentRepo: parentRepo,
		cipher:     cipher,
	}
}

func (s *PaymentMethodService) CreatePaymentMethod(ctx context.Context, request request_models.CreatePaymentMethodRequest) (*response_models.PaymentMethodResponse, error) {
	parent, err := s.parentRepo.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil {
		return nil, utils.ErrParentNotFound
	}

	cardEnc, err := s.cipher.Encrypt(request.CardNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	cvvEnc, err := s.cipher.Encrypt(request.Cvv)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	lastFour := request.CardNumber
	if len(lastFour) > 4 {
		lastFour = lastFour[len(lastFour)-4:]
	}

	userID, _ := uuid.Parse(request.UserID)
	method := &db_models.PaymentMethod{
		UserID:         userID,
		CardNumberEnc:  cardEnc,
		CvvEnc:         cvvEnc,
		LastFour:       lastFour,
		ExpiryMonth:    request.ExpiryMonth,
		ExpiryYear:     request.ExpiryYear,
		CardholderName: request.CardholderName,
		BillingAddress: request.BillingAddress,
	}

	if err := s.methodRepo.Insert(ctx, method); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.ToPaymentMethodResponse(method)
	return &resp, nil
}

func (s *PaymentMethodService) ListPaymentMethods(ctx context.Context, userID string) ([]response_models.PaymentMethodResponse, error) {
	methods, err := s.methodRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PaymentMethodResponse, 0, len(methods))
	for i := range methods {
		out = append(out, response_models.ToPaymentMethodResponse(&methods[i]))
	}
	return out, nil
}

func (s *PaymentMethodService) SetDefaultPaymentMethod(ctx context.Context, userID, methodID string) error {
	if err := s.methodRepo.SetDefault(ctx, userID, methodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrPaymentMethodNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PaymentMethodService) DeletePaymentMethod(ctx context.Context, methodID string) error {
	if err := s.methodRepo.Delete(ctx, methodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrPaymentMethodNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}
