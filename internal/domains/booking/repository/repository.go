package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"nutricoach/infras/otel"
	"nutricoach/infras/postgres"
	"nutricoach/internal/domains/booking/model"
	"nutricoach/shared/constant"
	gDto "nutricoach/shared/dto"
	"nutricoach/shared/logger"
	gRepo "nutricoach/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrSlotUnavailable reports that a requested slot was reserved by someone
// else between the availability read and the write.
var ErrSlotUnavailable = errors.New("slot is no longer available")

// BookedSlot is the slot allocator's storage contract. ReserveTx and
// ReleaseByOwnerTx run inside a caller-owned transaction so the business
// record and its slots commit or roll back together.
type BookedSlot interface {
	AllSlotKeys(ctx context.Context) ([]string, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookedSlot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookedSlot, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	ReserveTx(ctx context.Context, tx *sqlx.Tx, slots []model.BookedSlot) error
	ReleaseByOwnerTx(ctx context.Context, tx *sqlx.Tx, ownerField, ownerID string) error
	ReleaseBySlotIDTx(ctx context.Context, tx *sqlx.Tx, slotID string) error
}

type ConsultationRequest interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.ConsultationRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ConsultationRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ConsultationRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type CoachingCall interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.CoachingCall) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CoachingCall, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CoachingCall, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type bookedSlotImpl struct {
	gRepo.Repository[model.BookedSlot]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBookedSlot(db *postgres.Connection, otel otel.Otel) BookedSlot {
	return &bookedSlotImpl{
		Repository: gRepo.NewRepository[model.BookedSlot](model.SlotEntityName, model.SlotTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *bookedSlotImpl) AllSlotKeys(ctx context.Context) (keys []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booked_slot.AllSlotKeys")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT %s FROM %s", model.FieldSlotKey, model.SlotTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	keys = []string{}

	if err = repo.db.Read.SelectContext(ctx, &keys, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to load booked slot keys: %w", err)
	}

	return keys, nil
}

// ReserveTx locks the candidate keys, rejects the reservation if any are
// already taken, then inserts every row. Partial reservation is impossible:
// the caller's transaction rolls everything back on error, and the unique
// constraint on slot_key backstops the lock-read against writers outside
// this code path.
func (repo *bookedSlotImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, slots []model.BookedSlot) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booked_slot.ReserveTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	keys := make([]string, len(slots))
	for i, slot := range slots {
		keys[i] = slot.SlotKey
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ANY($1) FOR UPDATE", model.FieldSlotKey, model.SlotTableName, model.FieldSlotKey)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	taken := []string{}

	if err = tx.SelectContext(ctx, &taken, query, pq.Array(keys)); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock slot keys: %w", err)
	}

	if len(taken) > 0 {
		return ErrSlotUnavailable
	}

	for _, slot := range slots {
		if err = repo.InsertTx(ctx, tx, slot); err != nil {
			if isUniqueViolation(err) {
				return ErrSlotUnavailable
			}

			return err
		}
	}

	return nil
}

// ReleaseByOwnerTx frees every slot held by a business record. Secondary rows
// go first to satisfy the self-referential foreign key on primary_slot_id.
func (repo *bookedSlotImpl) ReleaseByOwnerTx(ctx context.Context, tx *sqlx.Tx, ownerField, ownerID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booked_slot.ReleaseByOwnerTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	secondaryFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: ownerField, Value: ownerID, Operator: gDto.FilterOperatorEq, Table: model.SlotTableName},
			gDto.Filter{Field: model.FieldIsSecondary, Value: true, Operator: gDto.FilterOperatorEq, Table: model.SlotTableName, ArgName: "is_secondary"},
		},
	}

	if err = repo.DeleteTx(ctx, tx, secondaryFilter); err != nil {
		return err
	}

	ownerFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: ownerField, Value: ownerID, Operator: gDto.FilterOperatorEq, Table: model.SlotTableName},
		},
	}

	return repo.DeleteTx(ctx, tx, ownerFilter)
}

// ReleaseBySlotIDTx frees a single primary slot and any secondary row linked
// to it.
func (repo *bookedSlotImpl) ReleaseBySlotIDTx(ctx context.Context, tx *sqlx.Tx, slotID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booked_slot.ReleaseBySlotIDTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	linkedFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldPrimarySlotID, Value: slotID, Operator: gDto.FilterOperatorEq, Table: model.SlotTableName},
		},
	}

	if err = repo.DeleteTx(ctx, tx, linkedFilter); err != nil {
		return err
	}

	idFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: slotID, Operator: gDto.FilterOperatorEq, Table: model.SlotTableName},
		},
	}

	return repo.DeleteTx(ctx, tx, idFilter)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

type consultationRequestImpl struct {
	gRepo.Repository[model.ConsultationRequest]
	db   *postgres.Connection
	otel otel.Otel
}

func NewConsultationRequest(db *postgres.Connection, otel otel.Otel) ConsultationRequest {
	return &consultationRequestImpl{
		Repository: gRepo.NewRepository[model.ConsultationRequest](model.ConsultationEntityName, model.ConsultationTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type coachingCallImpl struct {
	gRepo.Repository[model.CoachingCall]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCoachingCall(db *postgres.Connection, otel otel.Otel) CoachingCall {
	return &coachingCallImpl{
		Repository: gRepo.NewRepository[model.CoachingCall](model.CallEntityName, model.CallTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
