// Package storefrontapi exposes the storefront interactors as a JSON api.
package storefrontapi

import (
	"context"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/MarcGrol/shopclient/lib/myasync"
	"github.com/MarcGrol/shopclient/lib/mycontext"
	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/myhttp"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/model"
	"github.com/MarcGrol/shopclient/services/interactor"
	"github.com/MarcGrol/shopclient/services/storefront"
)

const maxProductsPerRequest = 50

type byIDQuery struct {
	ID string `form:"id"`
}

type byIDsQuery struct {
	IDs []string `form:"id"`
}

type webService struct {
	logger      mylog.Logger
	formDecoder *formcodec.Decoder
	checkouts   *interactor.CheckoutByIDInteractor
	products    *interactor.ProductByIDInteractor
	collections *interactor.CollectionByIDInteractor
	shop        *interactor.ShopInteractor
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(repository storefront.Repository) *webService {
	return &webService{
		logger:      mylog.New("storefrontapi"),
		formDecoder: formcodec.NewDecoder(),
		checkouts:   interactor.NewCheckoutByIDInteractor(repository),
		products:    interactor.NewProductByIDInteractor(repository),
		collections: interactor.NewCollectionByIDInteractor(repository),
		shop:        interactor.NewShopInteractor(repository),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/checkout", s.getCheckout()).Methods("GET")
	router.HandleFunc("/api/product", s.getProduct()).Methods("GET")
	router.HandleFunc("/api/products", s.getProducts()).Methods("GET")
	router.HandleFunc("/api/collection", s.getCollection()).Methods("GET")
	router.HandleFunc("/api/shop", s.getShop()).Methods("GET")
}

func (s *webService) getCheckout() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query := byIDQuery{}
		err := s.formDecoder.Decode(&query, r.URL.Query())
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidArgumentError(err))
			return
		}

		single, err := s.checkouts.Execute(c, query.ID)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		checkout, err := await(c, single)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, checkout)
	}
}

func (s *webService) getProduct() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query := byIDQuery{}
		err := s.formDecoder.Decode(&query, r.URL.Query())
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidArgumentError(err))
			return
		}

		product, err := s.fetchProduct(c, query.ID)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, product)
	}
}

// getProducts fetches all requested products concurrently and returns them in the requested order.
// The first failure aborts the remaining fetches.
func (s *webService) getProducts() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query := byIDsQuery{}
		err := s.formDecoder.Decode(&query, r.URL.Query())
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidArgumentError(err))
			return
		}
		if len(query.IDs) == 0 {
			responseWriter.WriteError(c, w, myerrors.NewInvalidArgumentErrorf("at least one id is required"))
			return
		}
		if len(query.IDs) > maxProductsPerRequest {
			responseWriter.WriteError(c, w, myerrors.NewInvalidArgumentErrorf("at most %d ids are allowed, got %d", maxProductsPerRequest, len(query.IDs)))
			return
		}

		products := make([]model.Product, len(query.IDs))
		group, gc := errgroup.WithContext(c)
		for idx, productID := range query.IDs {
			group.Go(func() error {
				product, err := s.fetchProduct(gc, productID)
				if err != nil {
					return err
				}
				products[idx] = product
				return nil
			})
		}
		err = group.Wait()
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, products)
	}
}

func (s *webService) fetchProduct(c context.Context, productID string) (model.Product, error) {
	single, err := s.products.Execute(c, productID)
	if err != nil {
		return model.Product{}, err
	}
	return await(c, single)
}

func (s *webService) getCollection() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query := byIDQuery{}
		err := s.formDecoder.Decode(&query, r.URL.Query())
		if err != nil {
			responseWriter.WriteError(c, w, myerrors.NewInvalidArgumentError(err))
			return
		}

		single, err := s.collections.Execute(c, query.ID)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		collection, err := await(c, single)
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, collection)
	}
}

func (s *webService) getShop() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		shop, err := await(c, s.shop.Execute(c))
		if err != nil {
			responseWriter.WriteError(c, w, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, shop)
	}
}

// await gives up on the single when c expires before a result arrived.
func await[T any](c context.Context, single *myasync.Single[T]) (T, error) {
	value, err := single.Await(c)
	if err != nil {
		single.Cancel()
	}
	return value, err
}
