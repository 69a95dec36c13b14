package usecase

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"ayursutra/internal/domain/entity"
	"ayursutra/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// testDialector wires a gorm.DB to an inert connection pool so transaction
// boundaries (Begin/Commit/Rollback) can be observed without a database. All
// row access goes through the stub repositories below, never through this
// pool.
type testDialector struct {
	pool *txRecorder
}

func (d testDialector) Name() string { return "postgres" }

func (d testDialector) Initialize(db *gorm.DB) error {
	db.ConnPool = d.pool
	return nil
}

func (d testDialector) Migrator(db *gorm.DB) gorm.Migrator { return nil }

func (d testDialector) DataTypeOf(*schema.Field) string { return "" }

func (d testDialector) DefaultValueOf(*schema.Field) clause.Expression { return clause.Expr{} }

func (d testDialector) BindVarTo(writer clause.Writer, stmt *gorm.Statement, v interface{}) {
	_ = writer.WriteByte('?')
}

func (d testDialector) QuoteTo(writer clause.Writer, s string) {
	_, _ = writer.WriteString(s)
}

func (d testDialector) Explain(sql string, vars ...interface{}) string { return sql }

// txRecorder counts transactions begun, committed and rolled back.
type txRecorder struct {
	begun      int
	committed  int
	rolledBack int
}

func (p *txRecorder) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, nil
}

func (p *txRecorder) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (p *txRecorder) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (p *txRecorder) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (p *txRecorder) BeginTx(ctx context.Context, opts *sql.TxOptions) (gorm.ConnPool, error) {
	p.begun++
	return &recordedTx{txRecorder: p}, nil
}

type recordedTx struct {
	*txRecorder
	done bool
}

func (t *recordedTx) Commit() error {
	if !t.done {
		t.done = true
		t.txRecorder.committed++
	}
	return nil
}

func (t *recordedTx) Rollback() error {
	if !t.done {
		t.done = true
		t.txRecorder.rolledBack++
	}
	return nil
}

func newTestDB(t *testing.T) (*gorm.DB, *txRecorder) {
	t.Helper()
	recorder := &txRecorder{}
	db, err := gorm.Open(testDialector{pool: recorder}, &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return db, recorder
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Stub repositories. Each embeds its interface so only the methods a test
// exercises need stubbing; the *gorm.DB argument is ignored.

type stubAppointmentRepo struct {
	repository.AppointmentRepository
	appointment    *entity.Appointment
	findErr        error
	reloaded       *entity.Appointment
	reloadErr      error
	findCalls      int
	createErr      error
	transitionRows int64
	transitionErr  error
	gotStatus      entity.AppointmentStatus
	gotNotes       *string
}

func (s *stubAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if s.createErr != nil {
		return s.createErr
	}
	appointment.ID = uuid.New()
	return nil
}

func (s *stubAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	s.findCalls++
	if s.findCalls > 1 {
		if s.reloadErr != nil {
			return nil, s.reloadErr
		}
		if s.reloaded != nil {
			return s.reloaded, nil
		}
	}
	return s.appointment, s.findErr
}

func (s *stubAppointmentRepo) TransitionFromScheduled(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus, notes *string) (int64, error) {
	s.gotStatus = status
	s.gotNotes = notes
	return s.transitionRows, s.transitionErr
}

type stubPatientRepo struct {
	repository.PatientRepository
	patient *entity.Patient
	err     error
}

func (s *stubPatientRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return s.patient, s.err
}

type stubTherapyRepo struct {
	repository.TherapyRepository
	therapy *entity.Therapy
	err     error
}

func (s *stubTherapyRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Therapy, error) {
	return s.therapy, s.err
}

type stubUserRepo struct {
	repository.UserRepository
	user *entity.User
	err  error
}

func (s *stubUserRepo) FindByUsernameAndRole(db *gorm.DB, username string, roleID int) (*entity.User, error) {
	return s.user, s.err
}

type stubRevenueRepo struct {
	repository.RevenueRepository
	therapistEntries []*entity.TherapistRevenueEntry
	doctorEntries    []*entity.DoctorRevenueEntry
	therapistErr     error
	doctorErr        error
}

func (s *stubRevenueRepo) CreateTherapistEntry(db *gorm.DB, entry *entity.TherapistRevenueEntry) error {
	if s.therapistErr != nil {
		return s.therapistErr
	}
	s.therapistEntries = append(s.therapistEntries, entry)
	return nil
}

func (s *stubRevenueRepo) CreateDoctorEntry(db *gorm.DB, entry *entity.DoctorRevenueEntry) error {
	if s.doctorErr != nil {
		return s.doctorErr
	}
	s.doctorEntries = append(s.doctorEntries, entry)
	return nil
}

type stubPrescriptionRepo struct {
	repository.PrescriptionRepository
	created        *entity.Prescription
	createErr      error
	prescription   *entity.Prescription
	findErr        error
	transitionRows int64
}

func (s *stubPrescriptionRepo) Create(db *gorm.DB, prescription *entity.Prescription) error {
	if s.createErr != nil {
		return s.createErr
	}
	prescription.ID = uuid.New()
	s.created = prescription
	return nil
}

func (s *stubPrescriptionRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.prescription != nil {
		return s.prescription, nil
	}
	return s.created, nil
}

func (s *stubPrescriptionRepo) TransitionFromPending(db *gorm.DB, id uuid.UUID, status entity.PrescriptionStatus) (int64, error) {
	return s.transitionRows, nil
}
