package repository

import (
	"context"
	"strings"
	"time"

	"buildconnect/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           string    `gorm:"column:id;primaryKey;size:36"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	FullName     string    `gorm:"column:full_name"`
	Phone        *string   `gorm:"column:phone"`
	Role         string    `gorm:"column:role;index;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var phone string
	if m.Phone != nil {
		phone = *m.Phone
	}

	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Phone:        phone,
		Role:         domain.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	var phone *string
	if u.Phone != "" {
		v := u.Phone
		phone = &v
	}

	return userModel{
		ID:           u.ID,
		Email:        normalizeEmail(u.Email),
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Phone:        phone,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create inserts u. A taken email yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return translate(err)
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	err := conn(ctx, r.db).Where("email = ?", normalizeEmail(email)).First(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainUser(m), nil
}

// GetByIDs returns the users found among ids keyed by id.
func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []userModel
	if err := conn(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	for _, m := range rows {
		out[m.ID] = toDomainUser(m)
	}
	return out, nil
}

// UpdateRole moves the user from one role to another. ErrNotFound means no
// user with that id currently holds the from role.
func (r *UserRepository) UpdateRole(ctx context.Context, id string, from, to domain.UserRole) error {
	tx := conn(ctx, r.db).Model(&userModel{}).
		Where("id = ? AND role = ?", id, string(from)).
		Update("role", string(to))
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := conn(ctx, r.db).Model(&userModel{}).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// Ping checks that the database answers.
func (r *UserRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return translate(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return translate(err)
	}
	return nil
}
