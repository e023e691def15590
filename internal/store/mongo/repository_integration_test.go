//go:build integration

package mongo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/inventory"
	m "github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/internal/store"
	mongostore "github.com/you-humble/parts-inventory/internal/store/mongo"
)

var _ = Describe("Mongo store", func() {
	var s store.Store

	BeforeEach(func() {
		repo := mongostore.NewStore(mongoContainer.Database())
		Expect(repo.Clear(suiteCtx)).To(Succeed())
		Expect(mongostore.EnsureIndexes(suiteCtx, mongoContainer.Database(), inventory.IndexedFields())).To(Succeed())
		s = repo
	})

	Context("documents", func() {
		It("creates, reads and replaces by identity", func() {
			id, err := s.Create(suiteCtx, "Unit", store.Document{"name": "pcs", "is_default": true})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).NotTo(BeEmpty())

			doc, err := s.Get(suiteCtx, "Unit", id)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.ID()).To(Equal(id))
			Expect(doc["name"]).To(Equal("pcs"))

			ok, err := s.Replace(suiteCtx, "Unit", store.Document{store.IDField: id, "name": "pieces"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			doc, err = s.Get(suiteCtx, "Unit", id)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc["name"]).To(Equal("pieces"))
			Expect(doc).NotTo(HaveKey("is_default"))
		})

		It("does not insert on replace", func() {
			ghost := bson.NewObjectID().Hex()
			ok, err := s.Replace(suiteCtx, "Unit", store.Document{store.IDField: ghost, "name": "pcs"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())

			exists, err := s.Exists(suiteCtx, "Unit", ghost)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("refuses documents that already have an identity", func() {
			_, err := s.Create(suiteCtx, "Unit", store.Document{store.IDField: "x"})
			Expect(err).To(MatchError(store.ErrIdentityAssigned))
		})

		It("returns nil for missing documents", func() {
			doc, err := s.Get(suiteCtx, "Unit", "missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(doc).To(BeNil())

			ok, err := s.Exists(suiteCtx, "Unit", "missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})

	Context("queries", func() {
		var a, b, c string

		BeforeEach(func() {
			var err error
			a, err = s.Create(suiteCtx, "PartLocation", store.Document{"part_id": "p1", "is_default": true})
			Expect(err).NotTo(HaveOccurred())
			b, err = s.Create(suiteCtx, "PartLocation", store.Document{"part_id": "p1", "is_default": false})
			Expect(err).NotTo(HaveOccurred())
			c, err = s.Create(suiteCtx, "PartLocation", store.Document{"part_id": "p2", "is_default": false})
			Expect(err).NotTo(HaveOccurred())
		})

		It("searches by equality and inequality in insertion order", func() {
			docs, err := s.SearchMany(suiteCtx, "PartLocation", store.Filter{"part_id": "p1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(2))
			Expect(docs[0].ID()).To(Equal(a))
			Expect(docs[1].ID()).To(Equal(b))

			doc, err := s.SearchOne(suiteCtx, "PartLocation", store.Filter{
				"is_default":  false,
				store.IDField: store.Ne(b),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.ID()).To(Equal(c))
		})

		It("updates one and many", func() {
			ok, err := s.Update(suiteCtx, "PartLocation", b, store.Patch{"is_default": true})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			Expect(s.UpdateMany(suiteCtx, "PartLocation",
				store.Filter{"is_default": true, store.IDField: store.Ne(b)},
				store.Patch{"is_default": false},
			)).To(Succeed())

			flagged, err := s.SearchMany(suiteCtx, "PartLocation", store.Filter{"is_default": true})
			Expect(err).NotTo(HaveOccurred())
			Expect(flagged).To(HaveLen(1))
			Expect(flagged[0].ID()).To(Equal(b))
		})

		It("nullifies references", func() {
			Expect(s.UpdateMany(suiteCtx, "PartLocation",
				store.Filter{"part_id": "p1"},
				store.Patch{"part_id": nil},
			)).To(Succeed())

			docs, err := s.SearchMany(suiteCtx, "PartLocation", store.Filter{"part_id": nil})
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(2))
		})

		It("deletes", func() {
			Expect(s.Delete(suiteCtx, "PartLocation", a)).To(Succeed())
			Expect(s.Delete(suiteCtx, "PartLocation", a)).To(Succeed())

			ok, err := s.Exists(suiteCtx, "PartLocation", a)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})

	Context("sums", func() {
		It("sums a numeric field over matching documents", func() {
			for _, amount := range []int64{5, -2, 4} {
				_, err := s.Create(suiteCtx, string(m.KindStockChange), store.Document{
					m.FieldPartLocation: "pl",
					m.FieldAmount:       amount,
				})
				Expect(err).NotTo(HaveOccurred())
			}
			_, err := s.Create(suiteCtx, string(m.KindStockChange), store.Document{
				m.FieldPartLocation: "other",
				m.FieldAmount:       int64(100),
			})
			Expect(err).NotTo(HaveOccurred())

			total, err := s.Sum(suiteCtx, string(m.KindStockChange), m.FieldAmount, store.Filter{m.FieldPartLocation: "pl"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(7.0))

			total, err = s.Sum(suiteCtx, string(m.KindStockChange), m.FieldAmount, store.Filter{m.FieldPartLocation: "none"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
		})
	})

	Context("inventory on mongo", func() {
		It("values stock with FIFO across locations", func() {
			ctrl := inventory.New(s)
			Expect(inventory.SeedDefaults(suiteCtx, ctrl)).To(Succeed())

			units, err := ctrl.All(suiteCtx, m.KindUnit)
			Expect(err).NotTo(HaveOccurred())
			Expect(units).To(HaveLen(1))

			save := func(kind string, values map[string]any) string {
				r, err := ctrl.New(entity.Kind(kind), values)
				Expect(err).NotTo(HaveOccurred())
				Expect(ctrl.Save(suiteCtx, r)).To(Succeed())
				return r.ID()
			}

			cat := save("Category", map[string]any{"name": "caps"})
			part := save("Part", map[string]any{"name": "100n", "unit_id": units[0].ID(), "category_id": cat})
			sl := save("StorageLocation", map[string]any{"name": "box"})
			a := save("PartLocation", map[string]any{"part_id": part, "storage_location_id": sl})
			b := save("PartLocation", map[string]any{"part_id": part, "storage_location_id": sl})

			save("StockChange", map[string]any{"part_location_id": a, "amount": 5, "price": 0.5})
			save("StockChange", map[string]any{"part_location_id": b, "amount": 6, "price": 1.2})
			save("StockChange", map[string]any{"part_location_id": a, "amount": -4})

			p, err := ctrl.Get(suiteCtx, m.KindPart, part)
			Expect(err).NotTo(HaveOccurred())
			view, err := ctrl.View(suiteCtx, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(view[m.FieldStockLevel]).To(Equal(int64(7)))
			Expect(view[m.FieldStockPrice]).To(BeNumerically("~", 1.3, 1e-9))

			Expect(ctrl.Delete(suiteCtx, p)).To(Succeed())
			left, err := ctrl.All(suiteCtx, m.KindStockChange)
			Expect(err).NotTo(HaveOccurred())
			Expect(left).To(BeEmpty())
		})
	})
})
