package interactor

import (
	"context"

	"github.com/MarcGrol/shopclient/lib/myasync"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/model"
	"github.com/MarcGrol/shopclient/services/storefront"
)

type CollectionByIDInteractor struct {
	repository storefront.Repository
	logger     mylog.Logger
}

func NewCollectionByIDInteractor(repository storefront.Repository) *CollectionByIDInteractor {
	return &CollectionByIDInteractor{
		repository: repository,
		logger:     mylog.New("collection"),
	}
}

func (i *CollectionByIDInteractor) Execute(c context.Context, collectionID string) (*myasync.Single[model.Collection], error) {
	err := checkNotBlank(collectionID, "collectionId can't be empty")
	if err != nil {
		return nil, err
	}

	i.logger.Log(c, collectionID, mylog.SeverityInfo, "Fetch collection %s", collectionID)

	query := storefront.NewCollectionByIDQuery(collectionID)
	return execute(c, i.repository.Collection(query), convertToCollection(collectionID)), nil
}
