package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/suggesting"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-manager-api/pkg/middleware"
)

func CreateSuggestion(service suggesting.SuggestionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreateSuggestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		suggestion, err := service.Create(userClaims.UserID, &req)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(suggestion)
	}
}

func ListSuggestions(service suggesting.SuggestionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		suggestions, err := service.FindAll(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(suggestions)
	}
}

func ListPendingSuggestions(service suggesting.SuggestionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		suggestions, err := service.GetPending(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(suggestions)
	}
}

func GetSuggestion(service suggesting.SuggestionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		suggestionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if suggestionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sugestão não fornecido", nil)
			return
		}

		suggestion, err := service.FindOne(suggestionID, userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(suggestion)
	}
}

func UpdateSuggestion(service suggesting.SuggestionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		suggestionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if suggestionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sugestão não fornecido", nil)
			return
		}

		var req domain.UpdateSuggestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		suggestion, err := service.Update(suggestionID, userClaims.UserID, &req)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(suggestion)
	}
}

// ApproveSuggestion transiciona a sugestão para APPROVED. Sugestões já
// resolvidas respondem com conflito.
func ApproveSuggestion(service suggesting.SuggestionService) http.HandlerFunc {
	return transitionSuggestion(service.Approve)
}

// RejectSuggestion transiciona a sugestão para REJECTED
func RejectSuggestion(service suggesting.SuggestionService) http.HandlerFunc {
	return transitionSuggestion(service.Reject)
}

func transitionSuggestion(transition func(suggestionID, userID string) (*domain.Suggestion, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		suggestionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if suggestionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sugestão não fornecido", nil)
			return
		}

		suggestion, err := transition(suggestionID, userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(suggestion)
	}
}

func DeleteSuggestion(service suggesting.SuggestionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		suggestionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if suggestionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sugestão não fornecido", nil)
			return
		}

		if err := service.Remove(suggestionID, userClaims.UserID); err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
