package repository

import (
	"context"

	"cargofunds/internal/model"
	"cargofunds/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberRepository stores drivers or transporters. Both tables share the employee columns.
type MemberRepository[T any] interface {
	Create(ctx context.Context, member *T) error
	Update(ctx context.Context, member *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*T, error)
	FindByMatricule(ctx context.Context, matricule string) (*T, error)
	FindByCIN(ctx context.Context, cin string) (*T, error)
	List(ctx context.Context, page pagination.Params) ([]T, int64, error)
	ListAvailable(ctx context.Context) ([]T, error)
}

type memberRepository[T any] struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) MemberRepository[model.Driver] {
	return &memberRepository[model.Driver]{db: db}
}

func NewTransporterRepository(db *gorm.DB) MemberRepository[model.Transporter] {
	return &memberRepository[model.Transporter]{db: db}
}

func (r *memberRepository[T]) Create(ctx context.Context, member *T) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Create(member).Error
}

func (r *memberRepository[T]) Update(ctx context.Context, member *T) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Save(member).Error
}

func (r *memberRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(new(T)).Error
}

func (r *memberRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.first(GetDB(ctx, r.db).Preload("Requests"), "id = ?", id)
}

func (r *memberRepository[T]) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.first(forUpdate(GetDB(ctx, r.db)), "id = ?", id)
}

func (r *memberRepository[T]) FindByMatricule(ctx context.Context, matricule string) (*T, error) {
	return r.first(GetDB(ctx, r.db).Preload("Requests"), "matricule = ?", matricule)
}

func (r *memberRepository[T]) FindByCIN(ctx context.Context, cin string) (*T, error) {
	return r.first(GetDB(ctx, r.db).Preload("Requests"), "cin = ?", cin)
}

func (r *memberRepository[T]) List(ctx context.Context, page pagination.Params) ([]T, int64, error) {
	var members []T
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Requests").
		Scopes(page.Scope).
		Order("last_name ASC, first_name ASC").
		Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

func (r *memberRepository[T]) ListAvailable(ctx context.Context) ([]T, error) {
	var members []T
	if err := GetDB(ctx, r.db).Preload("Requests").
		Where("available = ?", true).
		Order("last_name ASC, first_name ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository[T]) first(db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var member T
	if err := db.Where(query, args...).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}
