package mygraphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/MarcGrol/shopclient/lib/myasync"
	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/lib/mymetrics"
	"github.com/MarcGrol/shopclient/lib/myuuid"
)

const (
	defaultTimeout    = 10 * time.Second
	accessTokenHeader = "X-Shopify-Storefront-Access-Token"
)

type Client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
	uuider      myuuid.UUIDer
	metrics     *mymetrics.RemoteCallMetrics
	logger      mylog.Logger
}

// NewClient creates a client for a single GraphQL endpoint. The timeout applies to each
// individual http exchange; zero means the default. metrics may be nil.
func NewClient(endpoint string, accessToken string, timeout time.Duration, uuider myuuid.UUIDer, metrics *mymetrics.RemoteCallMetrics) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:    endpoint,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		uuider:  uuider,
		metrics: metrics,
		logger:  mylog.New("graphql"),
	}
}

// Query prepares a call that posts request once it gets executed.
func Query[T any](client *Client, request Request) myasync.RemoteCall[Response[T]] {
	return &call[T]{
		client:  client,
		request: request,
	}
}

type call[T any] struct {
	sync.Mutex
	client    *Client
	request   Request
	executed  bool
	cancelled bool
	cancel    context.CancelFunc
}

func (cl *call[T]) Execute(c context.Context) (Response[T], error) {
	cl.Lock()
	if cl.executed {
		cl.Unlock()
		return Response[T]{}, myerrors.NewInternalError(fmt.Errorf("graphql call %s already executed", cl.request.OperationName))
	}
	cl.executed = true

	if cl.cancelled {
		cl.Unlock()
		return Response[T]{}, myasync.ErrCancelled
	}

	ctx, cancel := context.WithCancel(c)
	cl.cancel = cancel
	cl.Unlock()

	defer cancel()

	return send[T](ctx, cl.client, cl.request)
}

func (cl *call[T]) Cancel() {
	cl.Lock()
	defer cl.Unlock()

	cl.cancelled = true
	if cl.cancel != nil {
		cl.cancel()
	}
}

func send[T any](c context.Context, client *Client, request Request) (Response[T], error) {
	started := time.Now()
	requestID := client.uuider.Create()

	resp, err := doSend[T](c, client, requestID, request)

	outcome := mymetrics.OutcomeSuccess
	switch {
	case err != nil && errors.Is(c.Err(), context.Canceled):
		outcome = mymetrics.OutcomeCancelled
		err = myerrors.NewCancelledError(err)
	case err != nil && c.Err() != nil:
		outcome = mymetrics.OutcomeCancelled
	case err != nil:
		outcome = mymetrics.OutcomeTransportFailure
	case len(resp.Errors) > 0:
		outcome = mymetrics.OutcomeRemoteFailure
	}
	client.metrics.Observe(request.OperationName, outcome, time.Since(started))

	if err != nil {
		client.logger.Log(c, requestID, mylog.SeverityWarn, "GraphQL %s failed after %s: %s", request.OperationName, time.Since(started), err)
		return Response[T]{}, err
	}

	client.logger.Log(c, requestID, mylog.SeverityInfo, "GraphQL %s -> %s (%d errors)", request.OperationName, outcome, len(resp.Errors))

	return resp, nil
}

func doSend[T any](c context.Context, client *Client, requestID string, request Request) (Response[T], error) {
	body, err := json.Marshal(request)
	if err != nil {
		return Response[T]{}, myerrors.NewTransportError(fmt.Errorf("error marshalling graphql request %s: %w", request.OperationName, err))
	}

	httpReq, err := http.NewRequestWithContext(c, http.MethodPost, client.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response[T]{}, myerrors.NewTransportError(fmt.Errorf("error creating http request for %s: %w", client.endpoint, err))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", requestID)
	if client.accessToken != "" {
		httpReq.Header.Set(accessTokenHeader, client.accessToken)
	}

	httpResp, err := client.httpClient.Do(httpReq)
	if err != nil {
		return Response[T]{}, myerrors.NewTransportError(fmt.Errorf("error sending graphql request %s: %w", request.OperationName, err))
	}
	defer httpResp.Body.Close()

	respPayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Response[T]{}, myerrors.NewTransportError(fmt.Errorf("error reading graphql response %s: %w", request.OperationName, err))
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return Response[T]{}, myerrors.NewTransportError(fmt.Errorf("graphql request %s returned http status %d", request.OperationName, httpResp.StatusCode))
	}

	resp := Response[T]{}
	err = json.Unmarshal(respPayload, &resp)
	if err != nil {
		return Response[T]{}, myerrors.NewTransportError(fmt.Errorf("error parsing graphql response %s: %w", request.OperationName, err))
	}

	return resp, nil
}
