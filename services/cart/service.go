// Package cart keeps the shopper's cart on the server side, so it survives between storefront visits.
package cart

import (
	"github.com/MarcGrol/shopclient/lib/myevents"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/lib/mytime"
	"github.com/MarcGrol/shopclient/lib/myuuid"
)

type service struct {
	cartStore mystore.Store[CartRecord]
	publisher myevents.Publisher
	nower     mytime.Nower
	uuider    myuuid.UUIDer
	logger    mylog.Logger
}

func newService(store mystore.Store[CartRecord], pub myevents.Publisher, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		cartStore: store,
		publisher: pub,
		nower:     nower,
		uuider:    uuider,
		logger:    logger,
	}
}
