package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/models"
	"github.com/adyen/ecommerce-e2e/internal/storeapi"
)

// AccountStore is the account persistence the handlers need
type AccountStore interface {
	CreateAccount(account *models.Account) error
	GetAccountByEmail(email string) (*models.Account, error)
	VerifyLogin(email, password string) bool
	UpdateAccount(email, password string, form map[string]string) error
	DeleteAccount(email, password string) error
}

// UserDetailResponse carries a single account
type UserDetailResponse struct {
	ResponseCode int                 `json:"responseCode"`
	User         storeapi.UserDetail `json:"user"`
}

func credentials(form map[string]string) (email, password string, ok bool) {
	email, hasEmail := form["email"]
	password, hasPassword := form["password"]
	return email, password, hasEmail && hasPassword
}

// VerifyLoginHandler handles /api/verifyLogin
type VerifyLoginHandler struct {
	store  AccountStore
	logger *zap.Logger
}

// NewVerifyLoginHandler creates a new VerifyLoginHandler
func NewVerifyLoginHandler(store AccountStore, logger *zap.Logger) *VerifyLoginHandler {
	return &VerifyLoginHandler{store: store, logger: named(logger, "verify_login")}
}

// ServeHTTP answers POST email/password with 200 "User exists!" or 404 "User not found!"
func (h *VerifyLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendMethodNotSupported(w, h.logger)
		return
	}

	form, err := formValues(r)
	if err != nil {
		sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MsgLoginParamsMissing)
		return
	}
	email, password, ok := credentials(form)
	if !ok {
		sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MsgLoginParamsMissing)
		return
	}

	if !h.store.VerifyLogin(email, password) {
		sendMessage(w, h.logger, storeapi.CodeNotFound, storeapi.MsgUserNotFound)
		return
	}
	sendMessage(w, h.logger, storeapi.CodeOK, storeapi.MsgUserExists)
}

// CreateAccountHandler handles /api/createAccount
type CreateAccountHandler struct {
	store  AccountStore
	logger *zap.Logger
}

// NewCreateAccountHandler creates a new CreateAccountHandler
func NewCreateAccountHandler(store AccountStore, logger *zap.Logger) *CreateAccountHandler {
	return &CreateAccountHandler{store: store, logger: named(logger, "create_account")}
}

// ServeHTTP registers a new account from the POSTed form
func (h *CreateAccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendMethodNotSupported(w, h.logger)
		return
	}

	form, err := formValues(r)
	if err != nil {
		sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MissingParamMessage("name"))
		return
	}

	account, err := models.NewAccount(form)
	if err != nil {
		var missing *models.MissingFieldError
		if errors.As(err, &missing) {
			sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MissingParamMessage(missing.Field))
			return
		}
		sendMessage(w, h.logger, storeapi.CodeBadRequest, err.Error())
		return
	}

	if err := h.store.CreateAccount(account); err != nil {
		if errors.Is(err, models.ErrAccountExists) {
			sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MsgEmailExists)
			return
		}
		h.logger.Error("failed to create account", zap.Error(err))
		sendMessage(w, h.logger, storeapi.CodeBadRequest, err.Error())
		return
	}

	h.logger.Info("account created", zap.String("email", account.Email))
	sendMessage(w, h.logger, storeapi.CodeCreated, storeapi.MsgUserCreated)
}

// DeleteAccountHandler handles /api/deleteAccount
type DeleteAccountHandler struct {
	store  AccountStore
	logger *zap.Logger
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler
func NewDeleteAccountHandler(store AccountStore, logger *zap.Logger) *DeleteAccountHandler {
	return &DeleteAccountHandler{store: store, logger: named(logger, "delete_account")}
}

// ServeHTTP removes the account named by the DELETE body credentials
func (h *DeleteAccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		sendMethodNotSupported(w, h.logger)
		return
	}

	form, err := formValues(r)
	if err != nil {
		sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MsgDeleteParamsMissing)
		return
	}
	email, password, ok := credentials(form)
	if !ok {
		sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MsgDeleteParamsMissing)
		return
	}

	if err := h.store.DeleteAccount(email, password); err != nil {
		sendMessage(w, h.logger, storeapi.CodeNotFound, storeapi.MsgAccountNotFound)
		return
	}
	sendMessage(w, h.logger, storeapi.CodeOK, storeapi.MsgAccountDeleted)
}

// UpdateAccountHandler handles /api/updateAccount
type UpdateAccountHandler struct {
	store  AccountStore
	logger *zap.Logger
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler
func NewUpdateAccountHandler(store AccountStore, logger *zap.Logger) *UpdateAccountHandler {
	return &UpdateAccountHandler{store: store, logger: named(logger, "update_account")}
}

// ServeHTTP applies the PUT form to the account it authenticates
func (h *UpdateAccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		sendMethodNotSupported(w, h.logger)
		return
	}

	form, err := formValues(r)
	if err != nil {
		sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MsgUpdateParamsMissing)
		return
	}
	email, password, ok := credentials(form)
	if !ok {
		sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MsgUpdateParamsMissing)
		return
	}

	if err := h.store.UpdateAccount(email, password, form); err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			sendMessage(w, h.logger, storeapi.CodeNotFound, storeapi.MsgAccountNotFound)
			return
		}
		sendMessage(w, h.logger, storeapi.CodeBadRequest, err.Error())
		return
	}
	sendMessage(w, h.logger, storeapi.CodeOK, storeapi.MsgUserUpdated)
}

// UserDetailHandler handles /api/getUserDetailByEmail
type UserDetailHandler struct {
	store  AccountStore
	logger *zap.Logger
}

// NewUserDetailHandler creates a new UserDetailHandler
func NewUserDetailHandler(store AccountStore, logger *zap.Logger) *UserDetailHandler {
	return &UserDetailHandler{store: store, logger: named(logger, "user_detail")}
}

// ServeHTTP answers GET ?email=<email> with the account profile
func (h *UserDetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendMethodNotSupported(w, h.logger)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MsgEmailParamMissing)
		return
	}

	account, err := h.store.GetAccountByEmail(email)
	if err != nil {
		sendMessage(w, h.logger, storeapi.CodeNotFound, storeapi.MsgAccountNotFoundByMail)
		return
	}

	writeJSON(w, h.logger, UserDetailResponse{
		ResponseCode: storeapi.CodeOK,
		User: storeapi.UserDetail{
			ID:         account.ID,
			Name:       account.Name,
			Email:      account.Email,
			Title:      string(account.Title),
			BirthDay:   account.BirthDate,
			BirthMonth: account.BirthMonth,
			BirthYear:  account.BirthYear,
			FirstName:  account.FirstName,
			LastName:   account.LastName,
			Company:    account.Company,
			Address1:   account.Address1,
			Address2:   account.Address2,
			Country:    account.Country,
			State:      account.State,
			City:       account.City,
			Zipcode:    account.Zipcode,
		},
	})
}
