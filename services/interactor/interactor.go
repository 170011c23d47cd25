// Package interactor holds the use cases of the storefront client. Each interactor validates its
// input, issues exactly one remote call and delivers one typed result asynchronously.
package interactor

import (
	"context"
	"strings"

	"github.com/MarcGrol/shopclient/lib/myasync"
	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/mygraphql"
)

func execute[P, M any](c context.Context, call myasync.RemoteCall[mygraphql.Response[P]], convert func(P) (M, error)) *myasync.Single[M] {
	payload := myasync.Map(myasync.FromCall(c, call), mygraphql.Reduce[P])
	return myasync.Map(payload, convert)
}

func checkNotBlank(value string, message string) error {
	if strings.TrimSpace(value) == "" {
		return myerrors.NewInvalidArgumentErrorf("%s", message)
	}
	return nil
}
