package repository

import (
	"context"
	"time"

	"cargofunds/internal/model"
	"cargofunds/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberColumn names the request column that references a team member.
type MemberColumn string

const (
	DriverColumn      MemberColumn = "driver_id"
	TransporterColumn MemberColumn = "transporter_id"
)

type RequestRepository interface {
	Create(ctx context.Context, request *model.Request) error
	Update(ctx context.Context, request *model.Request) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Request, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Request, error)
	FindByNumber(ctx context.Context, number string) (*model.Request, error)
	List(ctx context.Context, page pagination.Params) ([]model.Request, int64, error)
	ListByStatus(ctx context.Context, status string) ([]model.Request, error)
	ListByType(ctx context.Context, requestType string) ([]model.Request, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Request, error)
	ListByMember(ctx context.Context, column MemberColumn, memberID uuid.UUID) ([]model.Request, error)
	CountByMember(ctx context.Context, column MemberColumn, memberID uuid.UUID, excludeStatuses ...string) (int64, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *model.Request) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Create(request).Error
}

// Update writes every column. Association structs are ignored; the foreign key columns are the source of truth.
func (r *requestRepository) Update(ctx context.Context, request *model.Request) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Save(request).Error
}

func (r *requestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Request{}).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Request, error) {
	var request model.Request
	if err := GetDB(ctx, r.db).Preload("CreatedBy").First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Request, error) {
	var request model.Request
	if err := forUpdate(GetDB(ctx, r.db)).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) FindByNumber(ctx context.Context, number string) (*model.Request, error) {
	var request model.Request
	if err := GetDB(ctx, r.db).Preload("CreatedBy").Where("request_number = ?", number).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) List(ctx context.Context, page pagination.Params) ([]model.Request, int64, error) {
	var requests []model.Request
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Request{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("CreatedBy").
		Scopes(page.Scope).
		Order("request_date DESC, created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *requestRepository) ListByStatus(ctx context.Context, status string) ([]model.Request, error) {
	return r.listWhere(ctx, "status = ?", status)
}

func (r *requestRepository) ListByType(ctx context.Context, requestType string) ([]model.Request, error) {
	return r.listWhere(ctx, "type = ?", requestType)
}

// ListByDateRange returns requests dated in [from, to).
func (r *requestRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Request, error) {
	return r.listWhere(ctx, "request_date >= ? AND request_date < ?", from, to)
}

func (r *requestRepository) ListByMember(ctx context.Context, column MemberColumn, memberID uuid.UUID) ([]model.Request, error) {
	return r.listWhere(ctx, string(column)+" = ?", memberID)
}

func (r *requestRepository) CountByMember(ctx context.Context, column MemberColumn, memberID uuid.UUID, excludeStatuses ...string) (int64, error) {
	var count int64
	query := GetDB(ctx, r.db).Model(&model.Request{}).Where(string(column)+" = ?", memberID)
	if len(excludeStatuses) > 0 {
		query = query.Where("status NOT IN ?", excludeStatuses)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *requestRepository) listWhere(ctx context.Context, query string, args ...interface{}) ([]model.Request, error) {
	var requests []model.Request
	if err := GetDB(ctx, r.db).Preload("CreatedBy").
		Where(query, args...).
		Order("request_date DESC, created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
