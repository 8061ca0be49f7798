package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/assisting"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/suggesting"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
)

// writeServiceError traduz os erros dos usecases para a resposta padronizada
// da API. Cada erro de usecase carrega o próprio código; erros de validação
// apontam o campo ofensor.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidField, validationErr.Message, map[string]any{
			"field": validationErr.Field,
		})
		return
	}

	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
		return
	}

	var suggestionErr *suggesting.SuggestionError
	if errors.As(err, &suggestionErr) {
		apiErrors.WriteError(w, suggestionErr.Code, suggestionErr.Error(), nil)
		return
	}

	var accountErr *connecting.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
		return
	}

	var assistantErr *assisting.AssistantError
	if errors.As(err, &assistantErr) {
		apiErrors.WriteError(w, assistantErr.Code, "Serviço de IA indisponível", nil)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}
