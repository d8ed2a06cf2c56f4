package authprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"police-hr-backend/db"
	userstore "police-hr-backend/lib/auth/store"
	authutils "police-hr-backend/lib/utils/auth-utils"
	initchecker "police-hr-backend/lib/utils/init-checker"
	"police-hr-backend/models"
	authapimodels "police-hr-backend/models/api/auth"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Login(request authapimodels.LoginData) (view authapimodels.TokenView, err error)
	Refresh(request authapimodels.RefreshData) (view authapimodels.TokenView, err error)
	CreateUser(tenantID string, request authapimodels.UserCreateData) (id string, err error)
	ListUsers(tenantID string) (list []authapimodels.UserView, err error)
	DeactivateUser(tenantID, id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: userstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store userstore.Provider
}

func (i impl) Login(request authapimodels.LoginData) (view authapimodels.TokenView, err error) {
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	user, err := i.store.GetByEmail(request.Email)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil || !user.IsActive {
		return view, models.NewBadRequestError("неверная почта или пароль")
	}
	if authutils.HashPassword(user.PasswordSalt, request.Password) != user.PasswordHash {
		return view, models.NewBadRequestError("неверная почта или пароль")
	}
	view, err = i.issueTokens(*user)
	if err != nil {
		return view, err
	}
	log.
		WithField("tenant_id", user.TenantID).
		WithField("rec_id", user.ID).
		Info("пользователь вошёл в систему")
	return view, nil
}

func (i impl) Refresh(request authapimodels.RefreshData) (view authapimodels.TokenView, err error) {
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	userID, err := authutils.ParseRefreshToken(request.RefreshToken)
	if err != nil {
		return view, models.NewBadRequestError("refresh токен недействителен")
	}
	user, err := i.store.GetByID(userID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil || !user.IsActive {
		return view, models.NewBadRequestError("пользователь не найден или заблокирован")
	}
	return i.issueTokens(*user)
}

func (i impl) CreateUser(tenantID string, request authapimodels.UserCreateData) (id string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return "", models.NewBadRequestError(err.Error())
	}
	salt := authutils.NewSalt()
	rec := dbmodels.TenantUser{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		Email:        request.Email,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordSalt: salt,
		PasswordHash: authutils.HashPassword(salt, request.Password),
		Role:         request.Role,
		IsActive:     true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания пользователя")
	}
	logger.
		WithField("rec_id", id).
		WithField("role", request.Role).
		Info("создан пользователь подразделения")
	return id, nil
}

func (i impl) ListUsers(tenantID string) (list []authapimodels.UserView, err error) {
	recList, err := i.store.List(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка пользователей")
	}
	list = make([]authapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, authapimodels.UserConvert(rec))
	}
	return list, nil
}

func (i impl) DeactivateUser(tenantID, id string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	user, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil || user.TenantID != tenantID {
		return models.NewNotFoundError("пользователь не найден")
	}
	if !user.IsActive {
		return models.NewBadRequestError("пользователь уже заблокирован")
	}
	err = i.store.Update(tenantID, id, map[string]interface{}{
		"is_active": false,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка блокировки пользователя")
	}
	logger.Info("пользователь заблокирован")
	return nil
}

func (i impl) issueTokens(user dbmodels.TenantUser) (view authapimodels.TokenView, err error) {
	view.AccessToken, err = authutils.GetToken(user.ID, user.GetFIO(), user.TenantID, user.Role)
	if err != nil {
		return view, errors.Wrap(err, "ошибка выпуска токена")
	}
	view.RefreshToken, err = authutils.GetRefreshToken(user.ID, user.GetFIO())
	if err != nil {
		return view, errors.Wrap(err, "ошибка выпуска refresh токена")
	}
	return view, nil
}
