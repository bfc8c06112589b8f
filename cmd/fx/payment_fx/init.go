package payment_fx

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"gemquest/internal/api/controllers"
	"gemquest/internal/repositories"
	"gemquest/internal/services"
	"gemquest/pkg/cardnetwork"
	"gemquest/pkg/utils"
)

var Module = fx.Provide(
	provideMethodRepo,
	provideTransactionRepo,
	ProvideCardCipher,
	ProvideCardNetworkClient,
	providePaymentMethodService,
	providePayoutService,
	providePaymentController)

func provideMethodRepo(db *gorm.DB) repositories.PaymentMethodRepository {
	return repositories.NewPaymentMethodRepository(db)
}

func provideTransactionRepo(db *gorm.DB) repositories.PaymentTransactionRepository {
	return repositories.NewPaymentTransactionRepository(db)
}

// ProvideCardCipher reads CARD_ENCRYPTION_KEY (hex, 64 chars) and
// builds the AES-GCM cipher used for card data at rest.
func ProvideCardCipher() (*utils.CardCipher, error) {
	keyHex := os.Getenv("CARD_ENCRYPTION_KEY")
	if keyHex == "" {
		return nil, fmt.Errorf("CARD_ENCRYPTION_KEY is required")
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("CARD_ENCRYPTION_KEY must be hex encoded: %w", err)
	}
	return utils.NewCardCipher(key)
}

// ProvideCardNetworkClient selects the funds-transfer backend:
// CARD_NETWORK_PROVIDER = visa | mock (default mock).
func ProvideCardNetworkClient() cardnetwork.Client {
	provider := os.Getenv("CARD_NETWORK_PROVIDER")
	if provider == "" {
		provider = "mock"
	}

	switch strings.ToLower(provider) {
	case "visa":
		cfg := cardnetwork.VisaConfig{
			BaseURL:  os.Getenv("VISA_BASE_URL"),
			UserID:   os.Getenv("VISA_USER_ID"),
			Password: os.Getenv("VISA_PASSWORD"),
		}
		if cfg.BaseURL == "" || cfg.UserID == "" || cfg.Password == "" {
			log.Fatal("VISA_BASE_URL, VISA_USER_ID and VISA_PASSWORD are required when using the visa provider")
		}
		return cardnetwork.NewVisaClient(cfg)
	default:
		log.Println("Using mock card network client")
		return cardnetwork.NewMockClient()
	}
}

func providePaymentMethodService(
	methodRepo repositories.PaymentMethodRepository,
	parentRepo repositories.ParentRepository,
	cipher *utils.CardCipher,
) services.PaymentMethodServiceInterface {
	return services.NewPaymentMethodService(methodRepo, parentRepo, cipher)
}

func providePayoutService(
	parentRepo repositories.ParentRepository,
	childRepo repositories.ChildRepository,
	methodRepo repositories.PaymentMethodRepository,
	txnRepo repositories.PaymentTransactionRepository,
	network cardnetwork.Client,
	cipher *utils.CardCipher,
) services.PayoutServiceInterface {
	return services.NewPayoutService(parentRepo, childRepo, methodRepo, txnRepo, network, cipher)
}

func providePaymentController(
	payoutService services.PayoutServiceInterface,
	methodService services.PaymentMethodServiceInterface,
) *controllers.PaymentController {
	return controllers.NewPaymentController(payoutService, methodService)
}
