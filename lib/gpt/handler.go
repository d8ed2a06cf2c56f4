package gptprovider

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"police-hr-backend/config"
	"police-hr-backend/db"
	yagptclient "police-hr-backend/lib/gpt/yagpt-client"
	settingsstore "police-hr-backend/lib/tenant/settings-store"
	initchecker "police-hr-backend/lib/utils/init-checker"
	"police-hr-backend/models"
)

const defaultDecisionPromt = "Ты помощник кадровой службы. " +
	"По материалам дисциплинарного дела подготовь проект приказа о наложении взыскания. " +
	"Пиши официальным языком, не выноси решение за руководителя, оставь место для подписи."

type Provider interface {
	GenerateDecisionDraft(ctx context.Context, tenantID, caseText string) (draft string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		client:        yagptclient.NewClient(config.Conf.YaGPT.APIKey, config.Conf.YaGPT.CatalogID),
		settingsStore: settingsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"client", instance.client,
		"settingsStore", instance.settingsStore,
	)
	Instance = instance
}

type impl struct {
	client        yagptclient.Provider
	settingsStore settingsstore.Provider
}

func (i impl) GenerateDecisionDraft(ctx context.Context, tenantID, caseText string) (draft string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if config.Conf.YaGPT.APIKey == "" {
		return "", models.NewBadRequestError("генерация проекта решения не настроена")
	}
	promt, err := i.settingsStore.GetValueByCode(tenantID, models.TenantDecisionGpt)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения настройки генерации")
	}
	if promt == "" {
		promt = defaultDecisionPromt
	}
	draft, err = i.client.Generate(ctx, promt, caseText)
	if err != nil {
		return "", err
	}
	logger.WithField("draft_len", fmt.Sprintf("%d", len(draft))).Info("сгенерирован проект решения")
	return draft, nil
}
