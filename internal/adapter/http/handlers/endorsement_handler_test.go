package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apolices_xpto/internal/adapter/http/handlers/mocks"
	"apolices_xpto/internal/domain/entities"
	"apolices_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEndorsementRouter(uc *mocks.MockIEndorsementUseCase) *gin.Engine {
	h := NewEndorsementHandler(uc)
	r := gin.New()
	r.POST("/v1/policies/:numero/endorsements", h.CreateEndorsement)
	r.GET("/v1/policies/:numero/endorsements", h.ListEndorsements)
	r.GET("/v1/policies/:numero/endorsements/:id", h.GetEndorsement)
	return r
}

func postEndorsement(r *gin.Engine, numero, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/policies/"+numero+"/endorsements", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEndorsementHandler_CreateEndorsement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("regular endorsement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEndorsementUseCase(ctrl)
		r := newEndorsementRouter(uc)

		uc.EXPECT().Create(gomock.Any(), "01681760574732", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, d entities.EndorsementDelta) (string, error) {
				if d.ImportanciaSegurada == nil || *d.ImportanciaSegurada != 75_000_000 {
					t.Fatalf("unexpected delta: %+v", d)
				}
				if d.InicioVigencia != nil || d.FimVigencia != nil {
					t.Fatalf("absent fields must stay nil: %+v", d)
				}
				return "end-1", nil
			},
		)

		w := postEndorsement(r, "01681760574732", `{"data_emissao":"2024-11-01","importancia_segurada":75000000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if got := w.Header().Get(HeaderInsertedID); got != "end-1" {
			t.Fatalf("expected inserted id header, got %q", got)
		}
	})

	t.Run("empty delta requests a cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEndorsementUseCase(ctrl)
		r := newEndorsementRouter(uc)

		uc.EXPECT().Create(gomock.Any(), "01681760574732", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, d entities.EndorsementDelta) (string, error) {
				if d.HasAmendableFields() {
					t.Fatalf("expected empty delta: %+v", d)
				}
				return "end-2", nil
			},
		)

		w := postEndorsement(r, "01681760574732", `{"data_emissao":"2024-11-02"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("no valid endorsement to cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEndorsementUseCase(ctrl)
		r := newEndorsementRouter(uc)

		uc.EXPECT().Create(gomock.Any(), "01681760574732", gomock.Any()).Return("", usecase.ErrNoValidEndorsementToCancel)

		w := postEndorsement(r, "01681760574732", `{"data_emissao":"2024-11-02"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != "No valid endorsement to cancel" {
			t.Fatalf("unexpected message: %q", body.Message)
		}
	})

	t.Run("policy not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEndorsementUseCase(ctrl)
		r := newEndorsementRouter(uc)

		uc.EXPECT().Create(gomock.Any(), "nonexistent", gomock.Any()).Return("", usecase.ErrPolicyNotFound)

		w := postEndorsement(r, "nonexistent", `{"data_emissao":"2024-11-02","fim_vigencia":"2026-01-01"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("concurrent modification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEndorsementUseCase(ctrl)
		r := newEndorsementRouter(uc)

		uc.EXPECT().Create(gomock.Any(), "01681760574732", gomock.Any()).
			Return("", fmt.Errorf("%w: lost race", usecase.ErrConcurrentModification))

		w := postEndorsement(r, "01681760574732", `{"data_emissao":"2024-11-02"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid payloads", func(t *testing.T) {
		cases := []struct {
			body string
			code int
		}{
			{`{`, http.StatusBadRequest},
			{`{"importancia_segurada":1}`, http.StatusUnprocessableEntity},
			{`{"data_emissao":"01/11/2024"}`, http.StatusUnprocessableEntity},
			{`{"data_emissao":"2024-11-01","importancia_segurada":-5}`, http.StatusUnprocessableEntity},
			{`{"data_emissao":"2024-11-01","inicio_vigencia":"2025-01-01","fim_vigencia":"2024-01-01"}`, http.StatusUnprocessableEntity},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			r := newEndorsementRouter(mocks.NewMockIEndorsementUseCase(ctrl))

			if w := postEndorsement(r, "01681760574732", tc.body); w.Code != tc.code {
				t.Fatalf("%s: expected %d, got %d", tc.body, tc.code, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func TestEndorsementHandler_GetEndorsement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cancelled endorsement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEndorsementUseCase(ctrl)
		r := newEndorsementRouter(uc)

		is := int64(75_000_000)
		uc.EXPECT().GetByID(gomock.Any(), "01681760574732", "end-1").Return(entities.Endorsement{
			ID:                       "end-1",
			Sequencia:                1,
			Tipo:                     entities.EndorsementTipoAumentoIS,
			DataEmissao:              time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
			ImportanciaSegurada:      &is,
			CancelledByEndorsementID: "end-2",
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/policies/01681760574732/endorsements/end-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["tipo"] != "aumento_is" || body["cancelled_by_endorsement_id"] != "end-2" || body["cancelled_endorsement_id"] != nil {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["policy_numero"] != "01681760574732" || body["data_emissao"] != "2024-11-01" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEndorsementUseCase(ctrl)
		r := newEndorsementRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "01681760574732", "nonexistent").Return(entities.Endorsement{}, usecase.ErrEndorsementNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/policies/01681760574732/endorsements/nonexistent", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != "Endorsement with id 'nonexistent' not found" {
			t.Fatalf("unexpected message: %q", body.Message)
		}
	})
}

func TestEndorsementHandler_ListEndorsements(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEndorsementUseCase(ctrl)
		r := newEndorsementRouter(uc)

		uc.EXPECT().List(gomock.Any(), "01681760574732", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, f entities.EndorsementFilter) ([]entities.Endorsement, int, error) {
				if f.Tipo != entities.EndorsementTipoCancelamento || f.SortBy != "tipo" || f.DataEmissaoGTE == nil {
					t.Fatalf("unexpected filter: %+v", f)
				}
				return []entities.Endorsement{{ID: "end-2", Tipo: entities.EndorsementTipoCancelamento, CancelledEndorsementID: "end-1"}}, 1, nil
			},
		)

		url := "/v1/policies/01681760574732/endorsements?tipo=cancelamento&sort_by=tipo&data_emissao_gte=2024-11-01"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get(HeaderTotalCount); got != "1" {
			t.Fatalf("expected total count 1, got %q", got)
		}
	})

	t.Run("unknown tipo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newEndorsementRouter(mocks.NewMockIEndorsementUseCase(ctrl))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/policies/01681760574732/endorsements?tipo=AUMENTO", nil))

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("policy not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEndorsementUseCase(ctrl)
		r := newEndorsementRouter(uc)

		uc.EXPECT().List(gomock.Any(), "nonexistent", gomock.Any()).Return(nil, 0, usecase.ErrPolicyNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/policies/nonexistent/endorsements", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
