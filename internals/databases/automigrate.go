package database

import (
	attendanceModel "gerejaku_backend/internals/features/attendances/attendances/model"
	congregationModel "gerejaku_backend/internals/features/congregations/congregations/model"
	inventoryModel "gerejaku_backend/internals/features/inventories/inventories/model"
	albumModel "gerejaku_backend/internals/features/media/albums/model"
	authModel "gerejaku_backend/internals/features/users/auth/model"
	userModel "gerejaku_backend/internals/features/users/user/model"

	"gorm.io/gorm"
)

// Models: urutan penting (parent dulu baru child) supaya FK bisa dibuat.
func Models() []interface{} {
	return []interface{}{
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&congregationModel.CongregationModel{},
		&attendanceModel.SermonSessionModel{},
		&attendanceModel.AttendanceModel{},
		&inventoryModel.InventoryModel{},
		&inventoryModel.InventoryMaintenanceModel{},
		&inventoryModel.InventoryInspectionModel{},
		&albumModel.AlbumModel{},
		&albumModel.ImageModel{},
	}
}

// AutoMigrate dipakai untuk dev (DB_AUTO_MIGRATE=true) dan test sqlite.
// Produksi memakai SQL di migrations/ lewat RunMigrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
