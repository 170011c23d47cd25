package interactor

import (
	"context"

	"github.com/MarcGrol/shopclient/lib/myasync"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/model"
	"github.com/MarcGrol/shopclient/services/storefront"
)

type ShopInteractor struct {
	repository storefront.Repository
	logger     mylog.Logger
}

func NewShopInteractor(repository storefront.Repository) *ShopInteractor {
	return &ShopInteractor{
		repository: repository,
		logger:     mylog.New("shop"),
	}
}

func (i *ShopInteractor) Execute(c context.Context) *myasync.Single[model.Shop] {
	i.logger.Log(c, "", mylog.SeverityInfo, "Fetch shop")

	return execute(c, i.repository.Shop(storefront.NewShopQuery()), convertToShop)
}
