package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/model"
)

type orderRepoImpl struct {
	db    *gorm.DB
	state *storeState
	inTx  bool
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return withWriteLock(r.state, r.inTx, func() error {
		if order.ID == "" {
			order.ID = uuid.NewString()
		}
		if order.CreatedAt.IsZero() {
			order.CreatedAt = time.Now()
		}
		order.Seq = r.state.nextSeq()

		return translate(r.db.WithContext(ctx).Create(order).Error)
	})
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&order).Error

	if err != nil {
		return nil, translate(err)
	}

	return &order, nil
}

func (r *orderRepoImpl) FindAll(ctx context.Context) ([]*model.Order, error) {
	orders := []*model.Order{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("seq DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}
