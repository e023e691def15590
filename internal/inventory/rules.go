package inventory

import (
	"slices"

	"github.com/you-humble/parts-inventory/internal/entity"
	m "github.com/you-humble/parts-inventory/internal/model"
)

// Rules is the delete rule table, keyed by the kind being deleted.
func Rules() map[entity.Kind][]entity.Rule {
	return map[entity.Kind][]entity.Rule{
		m.KindPart: {
			{Dependent: m.KindPartDistributor, Field: m.FieldPart, Action: entity.Cascade},
			{Dependent: m.KindOrder, Field: m.FieldPart, Action: entity.Cascade},
			{Dependent: m.KindPartLocation, Field: m.FieldPart, Action: entity.Cascade},
		},
		m.KindPartLocation: {
			{Dependent: m.KindStockChange, Field: m.FieldPartLocation, Action: entity.Cascade},
		},
		m.KindOrder: {
			{Dependent: m.KindStockChange, Field: m.FieldOrder, Action: entity.Nullify},
		},
		m.KindDistributor: {
			{Dependent: m.KindOrder, Field: m.FieldDistributor, Action: entity.Nullify},
			{Dependent: m.KindPartDistributor, Field: m.FieldDistributor, Action: entity.Cascade},
		},
		m.KindCategory: {
			{Dependent: m.KindPart, Field: m.FieldCategory, Action: entity.Restrict},
			{Dependent: m.KindCategory, Field: m.FieldParentCategory, Action: entity.Nullify},
		},
		m.KindUnit: {
			{Dependent: m.KindPart, Field: m.FieldUnit, Action: entity.Restrict},
		},
		m.KindStorageLocation: {
			{Dependent: m.KindStorageLocation, Field: m.FieldParentStorageLocation, Action: entity.Nullify},
			{Dependent: m.KindPartLocation, Field: m.FieldStorageLocation, Action: entity.Cascade},
		},
		m.KindStorageGroup: {
			{Dependent: m.KindStorageLocation, Field: m.FieldStorageGroup, Action: entity.Nullify},
		},
		m.KindMountingStyle: {
			{Dependent: m.KindFootprint, Field: m.FieldMountingStyle, Action: entity.Nullify},
			{Dependent: m.KindPart, Field: m.FieldMountingStyle, Action: entity.Nullify},
		},
		m.KindFootprint: {
			{Dependent: m.KindPart, Field: m.FieldFootprint, Action: entity.Nullify},
		},
	}
}

// IndexedFields lists, per collection, the reference fields scanned on delete and by
// ledger sums.
func IndexedFields() map[string][]string {
	out := make(map[string][]string)
	for _, rules := range Rules() {
		for _, rl := range rules {
			coll := string(rl.Dependent)
			if !slices.Contains(out[coll], rl.Field) {
				out[coll] = append(out[coll], rl.Field)
			}
		}
	}
	for _, f := range out {
		slices.Sort(f)
	}
	return out
}
