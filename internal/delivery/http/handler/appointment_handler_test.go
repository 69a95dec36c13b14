package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/delivery/http/middleware"
	"ayursutra/internal/domain/entity"
	"ayursutra/internal/usecase"
	"ayursutra/pkg/response"
	"ayursutra/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAppointmentUsecase returns canned values so the handler's error
// mapping can be tested without a database.
type stubAppointmentUsecase struct {
	listResp   *dto.AppointmentListResponse
	createResp *dto.AppointmentResponse
	updateResp *dto.AppointmentResponse
	gotUpdate  *dto.UpdateAppointmentRequest
	err        error
}

func (s *stubAppointmentUsecase) List(ctx context.Context, principal entity.Principal) (*dto.AppointmentListResponse, error) {
	return s.listResp, s.err
}

func (s *stubAppointmentUsecase) Create(ctx context.Context, principal entity.Principal, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.createResp, s.err
}

func (s *stubAppointmentUsecase) UpdateStatus(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	s.gotUpdate = req
	return s.updateResp, s.err
}

func (s *stubAppointmentUsecase) Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	return s.err
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	principal := entity.Principal{ID: uuid.New(), Role: entity.RoleTherapist}
	ctx := context.WithValue(req.Context(), middleware.PrincipalKey, principal)
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestUpdateStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"not owned", usecase.ErrAppointmentNotOwned, http.StatusForbidden},
		{"already finalized", usecase.ErrAppointmentFinalized, http.StatusConflict},
		{"missing reference", usecase.ErrMissingReference, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(&stubAppointmentUsecase{err: tt.err}, validator.NewValidator())

			req := authedRequest(http.MethodPut, "/api/v1/appointments/"+uuid.NewString(), `{"status":"completed"}`)
			req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})

			rec := httptest.NewRecorder()
			h.UpdateStatus(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			envelope := decodeEnvelope(t, rec)
			assert.False(t, envelope.Success)
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	req := authedRequest(http.MethodPut, "/api/v1/appointments/"+uuid.NewString(), `{"status":"rescheduled"}`)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusInvalidID(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	req := authedRequest(http.MethodPut, "/api/v1/appointments/abc", `{"status":"completed"}`)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusSuccess(t *testing.T) {
	stub := &stubAppointmentUsecase{
		updateResp: &dto.AppointmentResponse{ID: uuid.New(), Status: "completed"},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := authedRequest(http.MethodPut, "/api/v1/appointments/"+uuid.NewString(), `{"status":"completed","notes":"done"}`)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}

func TestUpdateStatusWithoutNotesDecodesNilNotes(t *testing.T) {
	stub := &stubAppointmentUsecase{
		updateResp: &dto.AppointmentResponse{ID: uuid.New(), Status: "cancelled", Notes: "initial consult"},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	// No notes key in the body: the stored notes must not be blanked.
	req := authedRequest(http.MethodPut, "/api/v1/appointments/"+uuid.NewString(), `{"status":"cancelled"}`)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.gotUpdate)
	assert.Nil(t, stub.gotUpdate.Notes)
}

func TestCreateAppointmentValidation(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	// Missing therapist name and a malformed date.
	body := `{"patient_id":"` + uuid.NewString() + `","therapy_id":"` + uuid.NewString() + `","appointment_date":"14-03-2025","appointment_time":"10:00"}`
	req := authedRequest(http.MethodPost, "/api/v1/appointments", body)

	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAppointmentForbiddenForOtherPatient(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{err: usecase.ErrAppointmentNotOwned}, validator.NewValidator())

	body := `{"patient_id":"` + uuid.NewString() + `","therapy_id":"` + uuid.NewString() + `","therapist_name":"therapist","appointment_date":"2025-03-14","appointment_time":"10:00"}`
	req := authedRequest(http.MethodPost, "/api/v1/appointments", body)

	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListUnauthenticated(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
