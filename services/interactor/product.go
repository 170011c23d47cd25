package interactor

import (
	"context"

	"github.com/MarcGrol/shopclient/lib/myasync"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/model"
	"github.com/MarcGrol/shopclient/services/storefront"
)

type ProductByIDInteractor struct {
	repository storefront.Repository
	logger     mylog.Logger
}

func NewProductByIDInteractor(repository storefront.Repository) *ProductByIDInteractor {
	return &ProductByIDInteractor{
		repository: repository,
		logger:     mylog.New("product"),
	}
}

func (i *ProductByIDInteractor) Execute(c context.Context, productID string) (*myasync.Single[model.Product], error) {
	err := checkNotBlank(productID, "productId can't be empty")
	if err != nil {
		return nil, err
	}

	i.logger.Log(c, productID, mylog.SeverityInfo, "Fetch product %s", productID)

	query := storefront.NewProductByIDQuery(productID)
	return execute(c, i.repository.Product(query), convertToProduct(productID)), nil
}
