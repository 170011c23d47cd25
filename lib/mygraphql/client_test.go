package mygraphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopclient/lib/myasync"
	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/mymetrics"
	"github.com/MarcGrol/shopclient/lib/myuuid"
)

var exampleRequest = Request{
	Query:         "query CheckoutByID($id: ID!) { node(id: $id) { id } }",
	OperationName: "CheckoutByID",
	Variables:     map[string]any{"id": "gid://shopify/Checkout/123"},
}

func TestClient(t *testing.T) {

	t.Run("Posts query and decodes payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		mux := http.NewServeMux()
		ts := httptest.NewServer(mux)
		defer ts.Close()
		client := setup(ctrl, ts.URL)

		mux.HandleFunc("/api/graphql.json", func(w http.ResponseWriter, r *http.Request) {
			// request validation logic
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "secret-token", r.Header.Get("X-Shopify-Storefront-Access-Token"))
			assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

			got := Request{}
			err := json.NewDecoder(r.Body).Decode(&got)
			assert.NoError(t, err)
			assert.Equal(t, exampleRequest.Query, got.Query)
			assert.Equal(t, "CheckoutByID", got.OperationName)
			assert.Equal(t, "gid://shopify/Checkout/123", got.Variables["id"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":{"ID":"gid://shopify/Checkout/123","Ready":true}}`))
		})

		// when
		resp, err := Query[checkoutPayload](client, exampleRequest).Execute(context.TODO())

		// then
		assert.NoError(t, err)
		assert.Empty(t, resp.Errors)
		assert.Equal(t, &checkoutPayload{ID: "gid://shopify/Checkout/123", Ready: true}, resp.Data)
	})

	t.Run("GraphQL errors are part of response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":null,"errors":[{"message":"Not found","path":["node"]},{"message":"Expired"}]}`))
		}))
		defer ts.Close()
		client := setup(ctrl, ts.URL+"/api/graphql.json")

		// when
		resp, err := Query[checkoutPayload](client, exampleRequest).Execute(context.TODO())

		// then
		assert.NoError(t, err)
		assert.Nil(t, resp.Data)
		assert.Len(t, resp.Errors, 2)
		assert.Equal(t, "Not found", resp.Errors[0].Message)
		assert.Equal(t, []any{"node"}, resp.Errors[0].Path)
		assert.Equal(t, "Expired", resp.Errors[1].Message)
	})

	t.Run("Http error status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer ts.Close()
		client := setup(ctrl, ts.URL+"/api/graphql.json")

		// when
		_, err := Query[checkoutPayload](client, exampleRequest).Execute(context.TODO())

		// then
		assert.Equal(t, myerrors.KindTransportFailure, myerrors.GetKind(err))
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("Invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>maintenance</html>`))
		}))
		defer ts.Close()
		client := setup(ctrl, ts.URL+"/api/graphql.json")

		// when
		_, err := Query[checkoutPayload](client, exampleRequest).Execute(context.TODO())

		// then
		assert.Equal(t, myerrors.KindTransportFailure, myerrors.GetKind(err))
	})

	t.Run("Unreachable server", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()
		client := setup(ctrl, url)

		// when
		_, err := Query[checkoutPayload](client, exampleRequest).Execute(context.TODO())

		// then
		assert.Equal(t, myerrors.KindTransportFailure, myerrors.GetKind(err))
	})

	t.Run("Cancel aborts request in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		entered := make(chan struct{})
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(entered)
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		}))
		defer ts.Close()
		client := setup(ctrl, ts.URL)

		// when
		call := Query[checkoutPayload](client, exampleRequest)
		errs := make(chan error, 1)
		go func() {
			_, err := call.Execute(context.TODO())
			errs <- err
		}()
		<-entered
		call.Cancel()

		// then
		err := <-errs
		assert.True(t, myerrors.Is(err, myerrors.KindCancelled))
	})

	t.Run("Cancelled before execution", func(t *testing.T) {
		call := Query[checkoutPayload](&Client{}, exampleRequest)
		call.Cancel()

		_, err := call.Execute(context.TODO())

		assert.Equal(t, myasync.ErrCancelled, err)
	})

	t.Run("Executes at most once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		calls := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(`{"data":{"ID":"1"}}`))
		}))
		defer ts.Close()
		client := setup(ctrl, ts.URL)

		// when
		call := Query[checkoutPayload](client, exampleRequest)
		_, err := call.Execute(context.TODO())
		assert.NoError(t, err)
		_, err = call.Execute(context.TODO())

		// then
		assert.Equal(t, myerrors.KindInternal, myerrors.GetKind(err))
		assert.Equal(t, 1, calls)
	})
}

func setup(ctrl *gomock.Controller, endpoint string) *Client {
	uuider := myuuid.NewMockUUIDer(ctrl)
	uuider.EXPECT().Create().Return("req-1").AnyTimes()

	return NewClient(endpoint, "secret-token", 2*time.Second, uuider, mymetrics.NewRemoteCallMetrics(prometheus.NewRegistry()))
}
