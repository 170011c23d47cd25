package warmup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/mygraphql"
	"github.com/MarcGrol/shopclient/services/storefront"
)

type shopCall struct {
	data *storefront.ShopData
	err  error
}

func (c shopCall) Execute(ctx context.Context) (mygraphql.Response[storefront.ShopData], error) {
	return mygraphql.Response[storefront.ShopData]{Data: c.data}, c.err
}

func (c shopCall) Cancel() {}

func TestWarmup(t *testing.T) {

	t.Run("Storefront reachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, repository := setup(ctrl)

		// given
		repository.EXPECT().Shop(gomock.Any()).Return(shopCall{data: &storefront.ShopData{Shop: storefront.ShopNode{Name: "Eva's shop"}}})

		// when
		response := doGet(t, router)

		// then
		assert.Equal(t, http.StatusNoContent, response.Code)
	})

	t.Run("Storefront unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, repository := setup(ctrl)

		// given
		repository.EXPECT().Shop(gomock.Any()).Return(shopCall{err: myerrors.NewTransportError(assert.AnError)})

		// when
		response := doGet(t, router)

		// then
		assert.Equal(t, http.StatusServiceUnavailable, response.Code)
	})
}

func setup(ctrl *gomock.Controller) (*mux.Router, *storefront.MockRepository) {
	router := mux.NewRouter()
	repository := storefront.NewMockRepository(ctrl)
	NewService(repository).RegisterEndpoints(context.TODO(), router)
	return router, repository
}

func doGet(t *testing.T, router *mux.Router) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodGet, "/_ah/warmup", nil)
	assert.NoError(t, err)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}
