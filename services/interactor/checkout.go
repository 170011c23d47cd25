package interactor

import (
	"context"

	"github.com/MarcGrol/shopclient/lib/myasync"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/model"
	"github.com/MarcGrol/shopclient/services/storefront"
)

type CheckoutByIDInteractor struct {
	repository storefront.Repository
	logger     mylog.Logger
}

func NewCheckoutByIDInteractor(repository storefront.Repository) *CheckoutByIDInteractor {
	return &CheckoutByIDInteractor{
		repository: repository,
		logger:     mylog.New("checkout"),
	}
}

// Execute fails immediately on a blank checkoutID; all other failures arrive through the returned single.
func (i *CheckoutByIDInteractor) Execute(c context.Context, checkoutID string) (*myasync.Single[model.Checkout], error) {
	err := checkNotBlank(checkoutID, "checkoutId can't be empty")
	if err != nil {
		return nil, err
	}

	i.logger.Log(c, checkoutID, mylog.SeverityInfo, "Fetch checkout %s", checkoutID)

	query := storefront.NewCheckoutByIDQuery(checkoutID)
	return execute(c, i.repository.Checkout(query), convertToCheckout(checkoutID)), nil
}
