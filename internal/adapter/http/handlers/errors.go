package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "apolices_xpto/internal/adapter/http/dto/request"
	"apolices_xpto/internal/usecase"
	"apolices_xpto/pkg"

	"github.com/go-playground/validator/v10"
)

var (
	errMalformedPayload = pkg.NewDomainErrorSimple("MALFORMED_REQUEST", "Malformed request body", http.StatusBadRequest)
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusUnprocessableEntity)
)

// mapBindError tells malformed input (400) from input that parsed but failed
// validation (422).
func mapBindError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return pkg.NewDomainError("INVALID_REQUEST", fmt.Sprintf("Invalid request: %s", verrs[0].Field()), err, http.StatusUnprocessableEntity)
	}
	return errMalformedPayload
}

// mapRequestError covers the cross-field rules applied by the request DTOs.
func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDate),
		errors.Is(err, request.ErrFimBeforeInicio),
		errors.Is(err, request.ErrInicioFarFromEmissao),
		errors.Is(err, request.ErrNonPositiveInsuredValue),
		errors.Is(err, request.ErrInvalidSortField),
		errors.Is(err, request.ErrInvalidTipo),
		errors.Is(err, request.ErrInvalidStatus):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return errInvalidPayload
	}
}

// mapUseCaseError translates use case errors. numero and id only feed the
// not-found messages.
func mapUseCaseError(err error, numero, id string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPolicyNumero):
		return pkg.NewDomainErrorSimple("INVALID_POLICY_NUMERO", "numero must have between 1 and 14 characters", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidEndorsementID):
		return pkg.NewDomainErrorSimple("INVALID_ENDORSEMENT_ID", "id must have between 1 and 36 characters", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPolicyTerms):
		return pkg.NewDomainErrorSimple("INVALID_POLICY_TERMS", "Invalid policy terms", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", fmt.Sprintf("Policy with numero '%s' not found", numero), http.StatusNotFound)
	case errors.Is(err, usecase.ErrEndorsementNotFound):
		return pkg.NewDomainErrorSimple("ENDORSEMENT_NOT_FOUND", fmt.Sprintf("Endorsement with id '%s' not found", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoValidEndorsementToCancel):
		return pkg.NewDomainErrorSimple("NO_VALID_ENDORSEMENT_TO_CANCEL", "No valid endorsement to cancel", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNegativeInsuredAmount):
		return pkg.NewDomainErrorSimple("INVALID_INSURED_AMOUNT", "Resulting importancia_segurada must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidVigencia):
		return pkg.NewDomainErrorSimple("INVALID_VIGENCIA", "Resulting fim_vigencia must not be before inicio_vigencia", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPolicyNumeroExhausted):
		return pkg.NewDomainErrorSimple("POLICY_NUMERO_EXHAUSTED", "Could not generate a unique policy numero, try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrPolicyNumeroConflict):
		return pkg.NewDomainErrorSimple("POLICY_NUMERO_CONFLICT", "Policy numero already taken, try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Policy was modified by another request, try again", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
