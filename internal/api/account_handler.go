package api

import (
	"net/http"

	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/domain"
	"github.com/zaishu/zaishu-api/internal/platform/logger"
	"github.com/zaishu/zaishu-api/internal/service/auth"
	"github.com/zaishu/zaishu-api/internal/store"
)

// AccountHandler handles registration and login.
type AccountHandler struct {
	users            store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(
	users store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AccountHandler {
	return &AccountHandler{
		users:            users,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
	}
}

// Register creates an account and signs the new user in.
func (h *AccountHandler) Register(r *http.Request) (any, error) {
	p, err := shared.ParseParams(r)
	if err != nil {
		return nil, err
	}

	var req RegisterRequest
	req.Account, _ = p.String("account")
	req.Password = p["password"]
	req.Nickname, _ = p.String("nickname")

	if err := shared.ValidateRequest(&req); err != nil {
		if field := shared.FirstInvalidField(err); field != "" {
			return nil, shared.Validation(shared.CodeInvalidParam, "invalid "+field)
		}
		return nil, err
	}

	user, err := domain.NewUser(req.Account, req.Password, req.Nickname)
	if err != nil {
		return nil, err
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		return nil, err
	}

	logger.FromContext(r.Context()).Info("account registered", "user_id", user.ID)
	return h.issue(r, user)
}

// Login verifies the account password and issues a token. Unknown account and
// wrong password answer the same way.
func (h *AccountHandler) Login(r *http.Request) (any, error) {
	p, err := shared.ParseParams(r)
	if err != nil {
		return nil, err
	}

	var req LoginRequest
	req.Account, _ = p.String("account")
	req.Password = p["password"]

	if err := shared.ValidateRequest(&req); err != nil {
		if field := shared.FirstInvalidField(err); field != "" {
			return nil, shared.Validation(shared.CodeInvalidParam, "invalid "+field)
		}
		return nil, err
	}

	user, err := h.users.GetByAccount(r.Context(), req.Account)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, shared.Auth(shared.CodeLoginFailed, "invalid account or password")
		}
		return nil, err
	}
	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		return nil, shared.Auth(shared.CodeLoginFailed, "invalid account or password")
	}

	return h.issue(r, user)
}

func (h *AccountHandler) issue(r *http.Request, user *domain.User) (any, error) {
	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		return nil, err
	}
	return AuthResponse{UserID: user.ID, Token: token, User: user}, nil
}
