package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/model"
)

type productRepoImpl struct {
	db    *gorm.DB
	state *storeState
	inTx  bool
}

func (r *productRepoImpl) Seed(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	return withWriteLock(r.state, r.inTx, func() error {
		rows := make([]model.Product, len(products))
		for i, p := range products {
			p.Seq = r.state.nextSeq()
			rows[i] = p
		}

		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&rows).Error
	})
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return withWriteLock(r.state, r.inTx, func() error {
		if product.ID == "" {
			product.ID = uuid.NewString()
		}
		product.Seq = r.state.nextSeq()

		return translate(r.db.WithContext(ctx).Create(product).Error)
	})
}

func (r *productRepoImpl) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error

	if err != nil {
		return nil, translate(err)
	}

	return &product, nil
}

func (r *productRepoImpl) FindAll(ctx context.Context) ([]*model.Product, error) {
	products := []*model.Product{}
	err := r.db.WithContext(ctx).
		Order("seq ASC").
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}
