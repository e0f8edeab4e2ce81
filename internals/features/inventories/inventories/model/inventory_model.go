package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   ENUMS
========================================================= */

const (
	InventoryCategorySoundSystem = "sound-system"
	InventoryCategoryMultimedia  = "multimedia"
	InventoryCategoryOther       = "other"
)

const (
	InventoryStatusGood             = "good"
	InventoryStatusDamaged          = "damaged"
	InventoryStatusUnderMaintenance = "under-maintenance"
	InventoryStatusDisposed         = "disposed"
)

const (
	MaintenanceStatusOngoing   = "ongoing"
	MaintenanceStatusCompleted = "completed"
)

/* =========================================================
   INVENTORY
========================================================= */

type InventoryModel struct {
	InventoryID           uuid.UUID      `gorm:"column:inventory_id;type:uuid;primaryKey" json:"inventory_id"`
	InventoryName         string         `gorm:"column:inventory_name;size:150;not null" json:"inventory_name"`
	InventoryQuantity     int            `gorm:"column:inventory_quantity;not null;default:1" json:"inventory_quantity"`
	InventoryCategory     string         `gorm:"column:inventory_category;size:20;not null;default:other;index" json:"inventory_category"`
	InventoryStatus       string         `gorm:"column:inventory_status;size:20;not null;default:good;index" json:"inventory_status"`
	InventoryPrice        int64          `gorm:"column:inventory_price;not null;default:0" json:"inventory_price"`
	InventoryPurchaseDate datatypes.Date `gorm:"column:inventory_purchase_date" json:"inventory_purchase_date"`
	InventoryCreatedAt    time.Time      `gorm:"column:inventory_created_at;autoCreateTime" json:"inventory_created_at"`
	InventoryUpdatedAt    time.Time      `gorm:"column:inventory_updated_at;autoUpdateTime" json:"inventory_updated_at"`

	Maintenances []InventoryMaintenanceModel `gorm:"foreignKey:InventoryMaintenanceInventoryID;references:InventoryID;constraint:OnDelete:CASCADE" json:"maintenances,omitempty"`
	Inspections  []InventoryInspectionModel  `gorm:"foreignKey:InventoryInspectionInventoryID;references:InventoryID;constraint:OnDelete:CASCADE" json:"inspections,omitempty"`
}

func (InventoryModel) TableName() string { return "inventories" }

func (m *InventoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.InventoryID == uuid.Nil {
		m.InventoryID = uuid.New()
	}
	if m.InventoryCategory == "" {
		m.InventoryCategory = InventoryCategoryOther
	}
	if m.InventoryStatus == "" {
		m.InventoryStatus = InventoryStatusGood
	}
	return nil
}

/* =========================================================
   MAINTENANCE
========================================================= */

type InventoryMaintenanceModel struct {
	InventoryMaintenanceID          uuid.UUID `gorm:"column:inventory_maintenance_id;type:uuid;primaryKey" json:"inventory_maintenance_id"`
	InventoryMaintenanceInventoryID uuid.UUID `gorm:"column:inventory_maintenance_inventory_id;type:uuid;not null;index" json:"inventory_maintenance_inventory_id"`
	InventoryMaintenanceName        string    `gorm:"column:inventory_maintenance_name;size:150;not null" json:"inventory_maintenance_name"`
	InventoryMaintenanceDescription *string   `gorm:"column:inventory_maintenance_description;type:text" json:"inventory_maintenance_description,omitempty"`
	InventoryMaintenanceStatus      string    `gorm:"column:inventory_maintenance_status;size:20;not null;default:ongoing" json:"inventory_maintenance_status"`
	InventoryMaintenanceCost        int64     `gorm:"column:inventory_maintenance_cost;not null;default:0" json:"inventory_maintenance_cost"`
	InventoryMaintenanceQuantity    int       `gorm:"column:inventory_maintenance_quantity;not null;default:1" json:"inventory_maintenance_quantity"`
	InventoryMaintenanceCreatedAt   time.Time `gorm:"column:inventory_maintenance_created_at;autoCreateTime" json:"inventory_maintenance_created_at"`
	InventoryMaintenanceUpdatedAt   time.Time `gorm:"column:inventory_maintenance_updated_at;autoUpdateTime" json:"inventory_maintenance_updated_at"`
}

func (InventoryMaintenanceModel) TableName() string { return "inventory_maintenances" }

func (m *InventoryMaintenanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.InventoryMaintenanceID == uuid.Nil {
		m.InventoryMaintenanceID = uuid.New()
	}
	if m.InventoryMaintenanceStatus == "" {
		m.InventoryMaintenanceStatus = MaintenanceStatusOngoing
	}
	return nil
}

/* =========================================================
   INSPECTION
========================================================= */

// Status inspeksi memakai enum yang sama dengan InventoryStatus*.
type InventoryInspectionModel struct {
	InventoryInspectionID          uuid.UUID `gorm:"column:inventory_inspection_id;type:uuid;primaryKey" json:"inventory_inspection_id"`
	InventoryInspectionInventoryID uuid.UUID `gorm:"column:inventory_inspection_inventory_id;type:uuid;not null;index" json:"inventory_inspection_inventory_id"`
	InventoryInspectionStatus      string    `gorm:"column:inventory_inspection_status;size:20;not null" json:"inventory_inspection_status"`
	InventoryInspectionCreatedAt   time.Time `gorm:"column:inventory_inspection_created_at;autoCreateTime" json:"inventory_inspection_created_at"`
	InventoryInspectionUpdatedAt   time.Time `gorm:"column:inventory_inspection_updated_at;autoUpdateTime" json:"inventory_inspection_updated_at"`
}

func (InventoryInspectionModel) TableName() string { return "inventory_inspections" }

func (m *InventoryInspectionModel) BeforeCreate(tx *gorm.DB) error {
	if m.InventoryInspectionID == uuid.Nil {
		m.InventoryInspectionID = uuid.New()
	}
	return nil
}
