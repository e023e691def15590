package inventory

import (
	"github.com/you-humble/parts-inventory/internal/entity"
	m "github.com/you-humble/parts-inventory/internal/model"
)

func name(unique bool) entity.Field {
	return entity.Field{Name: m.FieldName, Type: entity.TypeString, Unique: unique}
}

func desc(nullable bool) entity.Field {
	return entity.Field{Name: m.FieldDesc, Type: entity.TypeString, Nullable: nullable, Default: ""}
}

func text(field string) entity.Field {
	return entity.Field{Name: field, Type: entity.TypeString, Default: ""}
}

func ref(field string, kind entity.Kind, nullable bool) entity.Field {
	return entity.Field{Name: field, Type: entity.TypeRef, Ref: kind, Nullable: nullable}
}

func flag(field string) entity.Field {
	return entity.Field{Name: field, Type: entity.TypeBool, Default: false}
}

func timestamp() entity.Field {
	return entity.Field{Name: m.FieldCreatedAt, Type: entity.TypeInt, Nullable: true}
}

var (
	categorySchema = entity.NewSchema(m.KindCategory,
		name(false),
		desc(true),
		ref(m.FieldParentCategory, m.KindCategory, true),
	)

	unitSchema = entity.NewSchema(m.KindUnit,
		name(true),
		desc(true),
		flag(m.FieldIsDefault),
	)

	mountingStyleSchema = entity.NewSchema(m.KindMountingStyle,
		name(true),
		desc(true),
	)

	footprintSchema = entity.NewSchema(m.KindFootprint,
		name(true),
		ref(m.FieldMountingStyle, m.KindMountingStyle, true),
	)

	storageGroupSchema = entity.NewSchema(m.KindStorageGroup,
		name(true),
		desc(false),
	)

	storageLocationSchema = entity.NewSchema(m.KindStorageLocation,
		name(false),
		desc(false),
		ref(m.FieldParentStorageLocation, m.KindStorageLocation, true),
		ref(m.FieldStorageGroup, m.KindStorageGroup, true),
	)

	distributorSchema = entity.NewSchema(m.KindDistributor,
		name(true),
		desc(false),
		text(m.FieldURL),
	)

	partSchema = entity.NewSchema(m.KindPart,
		name(false),
		desc(true),
		ref(m.FieldUnit, m.KindUnit, false),
		ref(m.FieldFootprint, m.KindFootprint, true),
		ref(m.FieldMountingStyle, m.KindMountingStyle, true),
		ref(m.FieldCategory, m.KindCategory, false),
		entity.Field{Name: m.FieldMinStock, Type: entity.TypeInt, Default: int64(0)},
		text(m.FieldExternalNumber),
	)

	partLocationSchema = entity.NewSchema(m.KindPartLocation,
		ref(m.FieldPart, m.KindPart, false),
		ref(m.FieldStorageLocation, m.KindStorageLocation, false),
		desc(false),
		flag(m.FieldIsDefault),
	)

	partDistributorSchema = entity.NewSchema(m.KindPartDistributor,
		ref(m.FieldPart, m.KindPart, false),
		ref(m.FieldDistributor, m.KindDistributor, false),
		desc(false),
		text(m.FieldOrderNo),
		text(m.FieldURL),
		entity.Field{Name: m.FieldPkgPrice, Type: entity.TypeFloat, Default: float64(0)},
		entity.Field{Name: m.FieldPkgUnits, Type: entity.TypeInt, Default: int64(0)},
		flag(m.FieldIsPreferred),
	)

	orderSchema = entity.NewSchema(m.KindOrder,
		ref(m.FieldPart, m.KindPart, false),
		ref(m.FieldDistributor, m.KindDistributor, true),
		timestamp(),
		entity.Field{Name: m.FieldAmount, Type: entity.TypeInt, Default: int64(1)},
		entity.Field{Name: m.FieldPrice, Type: entity.TypeFloat, Default: float64(0)},
	)

	stockChangeSchema = entity.NewSchema(m.KindStockChange,
		ref(m.FieldPartLocation, m.KindPartLocation, false),
		ref(m.FieldOrder, m.KindOrder, true),
		desc(false),
		timestamp(),
		entity.Field{Name: m.FieldAmount, Type: entity.TypeInt, Default: int64(1)},
		entity.Field{Name: m.FieldPrice, Type: entity.TypeFloat, Default: float64(0)},
	)
)
