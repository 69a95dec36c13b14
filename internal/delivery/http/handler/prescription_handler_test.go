package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/entity"
	"ayursutra/internal/usecase"
	"ayursutra/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type stubPrescriptionUsecase struct {
	listResp   *dto.PrescriptionListResponse
	createResp *dto.PrescriptionResponse
	decideResp *dto.PrescriptionResponse
	err        error
}

func (s *stubPrescriptionUsecase) List(ctx context.Context, principal entity.Principal) (*dto.PrescriptionListResponse, error) {
	return s.listResp, s.err
}

func (s *stubPrescriptionUsecase) Create(ctx context.Context, principal entity.Principal, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	return s.createResp, s.err
}

func (s *stubPrescriptionUsecase) Decide(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	return s.decideResp, s.err
}

func TestDecideErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", usecase.ErrPrescriptionNotFound, http.StatusNotFound},
		{"not assigned", usecase.ErrPrescriptionNotAssigned, http.StatusForbidden},
		{"already decided", usecase.ErrPrescriptionFinalized, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPrescriptionHandler(&stubPrescriptionUsecase{err: tt.err}, validator.NewValidator())

			req := authedRequest(http.MethodPut, "/api/v1/prescriptions/"+uuid.NewString(), `{"status":"accepted"}`)
			req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})

			rec := httptest.NewRecorder()
			h.Decide(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDecideRejectsUnknownStatus(t *testing.T) {
	h := NewPrescriptionHandler(&stubPrescriptionUsecase{}, validator.NewValidator())

	req := authedRequest(http.MethodPut, "/api/v1/prescriptions/"+uuid.NewString(), `{"status":"pending"}`)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})

	rec := httptest.NewRecorder()
	h.Decide(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePrescriptionMissingReference(t *testing.T) {
	h := NewPrescriptionHandler(&stubPrescriptionUsecase{err: usecase.ErrMissingReference}, validator.NewValidator())

	body := `{"patient_id":"` + uuid.NewString() + `","therapist_name":"therapist","prescription_text":"Abhyanga daily"}`
	req := authedRequest(http.MethodPost, "/api/v1/prescriptions", body)

	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreatePrescriptionSuccess(t *testing.T) {
	stub := &stubPrescriptionUsecase{
		createResp: &dto.PrescriptionResponse{ID: uuid.New(), Status: "pending"},
	}
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	body := `{"patient_id":"` + uuid.NewString() + `","therapist_name":"therapist","prescription_text":"Abhyanga daily","duration_days":14,"frequency":"daily"}`
	req := authedRequest(http.MethodPost, "/api/v1/prescriptions", body)

	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}
