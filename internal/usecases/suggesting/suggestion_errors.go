package suggesting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de sugestões
var (
	ErrSuggestionNotFound   = errors.New("suggestion not found")
	ErrSuggestionNotPending = errors.New("suggestion is not pending")

	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// SuggestionError é um erro com contexto adicional para sugestões
type SuggestionError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	SuggestionID string // ID da sugestão envolvida (quando aplicável)
	Details      string // Detalhes adicionais
}

func (e *SuggestionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SuggestionError) Unwrap() error {
	return e.Err
}

func NewSuggestionError(err error, code string, details string) *SuggestionError {
	return &SuggestionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSuggestionErrorWithID(err error, code string, suggestionID string, details string) *SuggestionError {
	return &SuggestionError{
		Err:          err,
		Code:         code,
		SuggestionID: suggestionID,
		Details:      details,
	}
}
