package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/config"
	"github.com/adyen/ecommerce-e2e/internal/fixtures"
	"github.com/adyen/ecommerce-e2e/internal/handlers"
	"github.com/adyen/ecommerce-e2e/internal/models"
	"github.com/adyen/ecommerce-e2e/internal/repository"
)

// BuildServerDependencies wires the fake storefront over an in-memory
// account repository. The configured login account and the address the
// signup scenarios expect to collide with are registered up front.
func BuildServerDependencies(serverCfg config.ServerConfig, site *config.SiteConfig, logger *zap.Logger) (ServerDependencies, *repository.AccountRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	accounts := repository.NewAccountRepository()
	catalog := models.DefaultCatalog()

	seeds := []map[string]string{
		seedForm(site.LoginName, site.LoginEmail, site.LoginPassword),
		seedForm("Existing User", fixtures.ExistingSignupEmail(), site.LoginPassword),
	}
	for _, form := range seeds {
		account, err := models.NewAccount(form)
		if err != nil {
			return ServerDependencies{}, nil, fmt.Errorf("seed account %s: %w", form["email"], err)
		}
		err = accounts.CreateAccount(account)
		if errors.Is(err, models.ErrAccountExists) {
			continue
		}
		if err != nil {
			return ServerDependencies{}, nil, fmt.Errorf("seed account %s: %w", form["email"], err)
		}
	}
	logger.Info("seeded accounts", zap.Int("count", accounts.Count()))

	deps := ServerDependencies{
		ServerConfig:         serverCfg,
		Logger:               logger,
		ProductsListHandler:  handlers.NewProductsListHandler(catalog, logger),
		BrandsListHandler:    handlers.NewBrandsListHandler(catalog, logger),
		SearchProductHandler: handlers.NewSearchProductHandler(catalog, logger),
		VerifyLoginHandler:   handlers.NewVerifyLoginHandler(accounts, logger),
		CreateAccountHandler: handlers.NewCreateAccountHandler(accounts, logger),
		DeleteAccountHandler: handlers.NewDeleteAccountHandler(accounts, logger),
		UpdateAccountHandler: handlers.NewUpdateAccountHandler(accounts, logger),
		UserDetailHandler:    handlers.NewUserDetailHandler(accounts, logger),
	}
	return deps, accounts, nil
}

func seedForm(name, email, password string) map[string]string {
	data := fixtures.APIUserAccount()
	data.Name = name
	data.Email = email
	data.Password = password
	return data.Form()
}
