package model

import "github.com/you-humble/parts-inventory/internal/entity"

const (
	KindCategory        entity.Kind = "Category"
	KindUnit            entity.Kind = "Unit"
	KindMountingStyle   entity.Kind = "MountingStyle"
	KindFootprint       entity.Kind = "Footprint"
	KindStorageGroup    entity.Kind = "StorageGroup"
	KindStorageLocation entity.Kind = "StorageLocation"
	KindDistributor     entity.Kind = "Distributor"
	KindPart            entity.Kind = "Part"
	KindPartLocation    entity.Kind = "PartLocation"
	KindPartDistributor entity.Kind = "PartDistributor"
	KindOrder           entity.Kind = "Order"
	KindStockChange     entity.Kind = "StockChange"
)

// Field names shared by several kinds.
const (
	FieldName        = "name"
	FieldDesc        = "desc"
	FieldURL         = "url"
	FieldIsDefault   = "is_default"
	FieldIsPreferred = "is_preferred"
	FieldCreatedAt   = "created_at"
	FieldAmount      = "amount"
	FieldPrice       = "price"

	FieldParentCategory        = "parent_category_id"
	FieldParentStorageLocation = "parent_storage_location_id"
	FieldStorageGroup          = "storage_group_id"
	FieldMountingStyle         = "mounting_style_id"
	FieldFootprint             = "footprint_id"
	FieldUnit                  = "unit_id"
	FieldCategory              = "category_id"
	FieldMinStock              = "min_stock"
	FieldExternalNumber        = "external_number"
	FieldPart                  = "part_id"
	FieldStorageLocation       = "storage_location_id"
	FieldDistributor           = "distributor_id"
	FieldOrderNo               = "order_no"
	FieldPkgPrice              = "pkg_price"
	FieldPkgUnits              = "pkg_units"
	FieldPartLocation          = "part_location_id"
	FieldOrder                 = "order_id"
)

// Computed fields, merged into views and never stored.
const (
	FieldStockLevel = "stock_level"
	FieldStockPrice = "stock_price"
	FieldStockLow   = "stock_low"
	FieldOpenOrders = "open_orders"
	FieldCompleted  = "completed"
)

const DefaultUnitName = "pcs"
