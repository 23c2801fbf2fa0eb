// Package response centraliza a escrita das respostas JSON dos handlers,
// incluindo a tradução de AppError para o corpo de erro padronizado.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/logger"
)

// JSON escreve data com o status informado. data nil gera só o cabeçalho.
func JSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Error traduz err para {code, category, message}. 5xx é logado como erro,
// o resto como debug.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"path":   r.URL.Path,
			"method": r.Method,
		})
	}

	JSON(w, log, status, domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// Handle é o atalho usado ao fim de cada handler: erro ou sucesso com successStatus.
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}
	JSON(w, log, successStatus, data)
}

// DecodeJSON lê o corpo em dst. Corpo vazio é aceito quando allowEmpty.
func DecodeJSON(r *http.Request, dst interface{}, allowEmpty bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		if allowEmpty {
			return nil
		}
		return apperror.NewValidationError("Corpo da requisição ausente.")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}
