package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/assisting"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
)

func GenerateContent(service assisting.AssistantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assisting.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		text, err := service.Generate(r.Context(), &req)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"text": text,
		})
	}
}

func QueryKnowledgeBase(service assisting.AssistantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assisting.RAGRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		response, err := service.QueryKnowledgeBase(r.Context(), &req)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

func Chat(service assisting.AssistantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assisting.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		message, err := service.Chat(r.Context(), &req)
		if err != nil {
			logrus.Error(err)
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(message)
	}
}
