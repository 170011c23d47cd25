package storefront

import (
	"github.com/MarcGrol/shopclient/lib/myasync"
	"github.com/MarcGrol/shopclient/lib/mygraphql"
)

//go:generate mockgen -source=repository.go -package storefront -destination repository_mock.go Repository
type Repository interface {
	Checkout(query CheckoutByIDQuery) myasync.RemoteCall[mygraphql.Response[CheckoutByIDData]]
	Product(query ProductByIDQuery) myasync.RemoteCall[mygraphql.Response[ProductByIDData]]
	Collection(query CollectionByIDQuery) myasync.RemoteCall[mygraphql.Response[CollectionByIDData]]
	Shop(query ShopQuery) myasync.RemoteCall[mygraphql.Response[ShopData]]
}

type graphqlRepository struct {
	client *mygraphql.Client
}

func NewRepository(client *mygraphql.Client) Repository {
	return &graphqlRepository{
		client: client,
	}
}

func (r *graphqlRepository) Checkout(query CheckoutByIDQuery) myasync.RemoteCall[mygraphql.Response[CheckoutByIDData]] {
	return mygraphql.Query[CheckoutByIDData](r.client, query.Request())
}

func (r *graphqlRepository) Product(query ProductByIDQuery) myasync.RemoteCall[mygraphql.Response[ProductByIDData]] {
	return mygraphql.Query[ProductByIDData](r.client, query.Request())
}

func (r *graphqlRepository) Collection(query CollectionByIDQuery) myasync.RemoteCall[mygraphql.Response[CollectionByIDData]] {
	return mygraphql.Query[CollectionByIDData](r.client, query.Request())
}

func (r *graphqlRepository) Shop(query ShopQuery) myasync.RemoteCall[mygraphql.Response[ShopData]] {
	return mygraphql.Query[ShopData](r.client, query.Request())
}
