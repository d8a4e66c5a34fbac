// Package adapters は予約フィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"repair_backend/internal/feature/appointments/domain/entity"
	"repair_backend/internal/feature/appointments/usecase"
)

// appointmentMySQL はAppointmentRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type appointmentMySQL struct {
	db *gorm.DB
}

// appointmentMySQLがAppointmentRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AppointmentRepository = (*appointmentMySQL)(nil)

// NewAppointmentMySQL は指定されたgorm.DB接続でappointmentMySQLの新しいインスタンスを生成します。
func NewAppointmentMySQL(db *gorm.DB) *appointmentMySQL {
	return &appointmentMySQL{db: db}
}

// Create は予約をデータベースに追加します。
// CreatedAtはGORMが自動設定します。
func (r *appointmentMySQL) Create(ctx context.Context, a *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindByUserID は指定ユーザーの予約を予約日の降順で取得します。
// 予約が存在しない場合は空のスライスを返します。
func (r *appointmentMySQL) FindByUserID(ctx context.Context, userID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}
