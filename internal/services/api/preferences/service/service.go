// Package service resolves and stores display language preferences
package service

import (
	"context"

	"layoffs/internal/core/i18n"
	perr "layoffs/internal/platform/errors"
	"layoffs/internal/platform/logger"
	"layoffs/internal/services/api/preferences/domain"
	"layoffs/internal/services/api/preferences/repo"
)

// Service defines the preferences service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the preferences service
type Svc struct {
	repo     repo.Repo
	fallback i18n.Lang
}

// New constructs the service; fallback is returned for clients without a stored choice
func New(r repo.Repo, fallback i18n.Lang) *Svc {
	if r == nil {
		panic("preferences.Service requires a non nil Repo")
	}
	return &Svc{repo: r, fallback: fallback.Or(i18n.DefaultLang)}
}

// Language returns the stored language or the fallback
func (s *Svc) Language(ctx context.Context, clientID string) (domain.LanguageView, error) {
	out := domain.LanguageView{ClientID: clientID, Lang: s.fallback.String()}
	if clientID == "" {
		return out, nil
	}
	raw, ok, err := s.repo.Language(ctx, clientID)
	if err != nil {
		return domain.LanguageView{}, err
	}
	if !ok {
		return out, nil
	}
	l, err := i18n.ParseLang(raw)
	if err != nil {
		// stale value from an older catalog, serve the default
		logger.C(ctx).Warn().Str("stored", raw).Msg("ignoring unsupported stored language")
		return out, nil
	}
	out.Lang, out.Stored = l.String(), true
	return out, nil
}

// SetLanguage validates and stores lang for the client
func (s *Svc) SetLanguage(ctx context.Context, clientID, lang string) (domain.LanguageView, error) {
	if clientID == "" {
		return domain.LanguageView{}, perr.InvalidArgf("missing client id")
	}
	l, err := i18n.ParseLang(lang)
	if err != nil {
		return domain.LanguageView{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, "lang must be en or ro"), "lang")
	}
	if err := s.repo.SetLanguage(ctx, clientID, l.String()); err != nil {
		return domain.LanguageView{}, err
	}
	return domain.LanguageView{ClientID: clientID, Lang: l.String(), Stored: true}, nil
}
